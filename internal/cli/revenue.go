package cli

import (
	"fmt"
	"time"

	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/format"
	"github.com/Goulart21/gestao-frota/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	revenueMachine string
	revenueRate    string
	revenueHours   string
	revenueDate    string
)

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Record a day's hours-worked revenue for a machine",
	RunE:  runRevenue,
}

func init() {
	rootCmd.AddCommand(revenueCmd)
	revenueCmd.Flags().StringVarP(&revenueMachine, "machine", "m", "", "machine name (e.g. Escavadeira)")
	revenueCmd.Flags().StringVar(&revenueRate, "rate", "", "hourly rate")
	revenueCmd.Flags().StringVar(&revenueHours, "hours", "", "hours worked")
	revenueCmd.Flags().StringVar(&revenueDate, "date", "", "work date (DD/MM/YYYY, defaults to today)")
	_ = revenueCmd.MarkFlagRequired("machine")
	_ = revenueCmd.MarkFlagRequired("rate")
	_ = revenueCmd.MarkFlagRequired("hours")
}

func runRevenue(_ *cobra.Command, _ []string) error {
	if revenueDate == "" {
		revenueDate = time.Now().Format(constants.DateLayout)
	}
	if err := validation.ValidateDate(revenueDate); err != nil {
		return err
	}
	if err := validation.ValidateTitle(revenueMachine); err != nil {
		return fmt.Errorf("machine name: %w", err)
	}
	rate, err := validation.ParseAmount(revenueRate)
	if err != nil {
		return fmt.Errorf("rate: %w", err)
	}
	hours, err := validation.ParseAmount(revenueHours)
	if err != nil {
		return fmt.Errorf("hours: %w", err)
	}
	total := rate * hours

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.InsertRevenue(revenueMachine, total, revenueDate); err != nil {
		return fmt.Errorf("saving revenue: %w", err)
	}
	logger.Debug("revenue recorded",
		zap.String("op", "cli.revenue"),
		zap.String("machine", revenueMachine),
		zap.Float64("amount", total),
	)
	fmt.Printf("Recorded %s for %s on %s\n", format.Currency(total), revenueMachine, revenueDate)
	return nil
}
