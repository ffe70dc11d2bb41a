package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/ledger"
	"github.com/Goulart21/gestao-frota/pkg/mathutil"
	"github.com/spf13/cobra"
)

var seedDays int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the ledger with demo data",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedDays, "days", 90, "days of historical revenue to generate")
}

func runSeed(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	now := time.Now()
	machines := []string{"Escavadeira", "Caminhão", "Retro-Escavadeira"}

	revenues := 0
	start := now.AddDate(0, 0, -seedDays)
	for i := 0; i < seedDays; i++ {
		day := start.AddDate(0, 0, i)
		// Roughly 70% of days are work days.
		if rand.Float64() >= 0.7 {
			continue
		}
		for _, machine := range machines[:1+rand.Intn(len(machines))] {
			amount := mathutil.Round(800.00 + rand.Float64()*1700.00)
			if err := st.InsertRevenue(machine, amount, day.Format(constants.DateLayout)); err != nil {
				return fmt.Errorf("seeding revenue: %w", err)
			}
			revenues++
		}
	}

	expenses := []struct {
		title     string
		amount    float64
		date      time.Time
		recurring bool
		frequency ledger.Frequency
	}{
		{"Aluguel do Galpão", 3500.00, now.AddDate(0, 0, -90), true, ledger.FrequencyMonthly},
		{"Seguro Obrigatório da Frota", 8000.00, now.AddDate(0, 0, -30), true, ledger.FrequencyQuarterly},
		{"Licença de Software de Rastreamento", 1200.00, now.AddDate(0, 0, 60), true, ledger.FrequencyAnnual},
		{"Troca de Pneus Caminhão #02", 4500.00, now.AddDate(0, 0, -15), false, ledger.FrequencyNone},
		{"Fundo de Reserva de Caixa", 10000.00, now, false, ledger.FrequencyNone},
	}
	for _, e := range expenses {
		if err := st.InsertExpense(e.title, e.amount, e.date.Format(constants.DateLayout), e.recurring, e.frequency); err != nil {
			return fmt.Errorf("seeding expense: %w", err)
		}
	}

	fmt.Printf("Seeded %d revenue entries and %d expenses\n", revenues, len(expenses))
	return nil
}
