package cli

import (
	"fmt"
	"time"

	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/format"
	"github.com/Goulart21/gestao-frota/pkg/ledger"
	"github.com/Goulart21/gestao-frota/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	expenseTitle     string
	expenseAmount    string
	expenseDate      string
	expenseRecurring bool
	expenseFrequency string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record an expense, optionally recurring on a calendar cadence",
	RunE:  runExpense,
}

func init() {
	rootCmd.AddCommand(expenseCmd)
	expenseCmd.Flags().StringVarP(&expenseTitle, "title", "t", "", "expense title/description")
	expenseCmd.Flags().StringVar(&expenseAmount, "amount", "", "expense amount")
	expenseCmd.Flags().StringVar(&expenseDate, "date", "", "first occurrence date (DD/MM/YYYY, defaults to today)")
	expenseCmd.Flags().BoolVarP(&expenseRecurring, "recurring", "r", false, "expense repeats on a fixed cadence")
	expenseCmd.Flags().StringVarP(&expenseFrequency, "frequency", "f", "", "recurrence cadence: Mensal, Trimestral, Semestral, Anual")
	_ = expenseCmd.MarkFlagRequired("title")
	_ = expenseCmd.MarkFlagRequired("amount")
}

func runExpense(_ *cobra.Command, _ []string) error {
	if expenseDate == "" {
		expenseDate = time.Now().Format(constants.DateLayout)
	}
	if err := validation.ValidateTitle(expenseTitle); err != nil {
		return err
	}
	amount, err := validation.ParsePositiveAmount(expenseAmount)
	if err != nil {
		return err
	}
	if err := validation.ValidateDate(expenseDate); err != nil {
		return err
	}

	frequency := ledger.FrequencyNone
	if expenseRecurring {
		frequency, err = ledger.ParseFrequency(expenseFrequency)
		if err != nil {
			return fmt.Errorf("recurring expense needs a valid frequency: %w", err)
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.InsertExpense(expenseTitle, amount, expenseDate, expenseRecurring, frequency); err != nil {
		return fmt.Errorf("saving expense: %w", err)
	}
	logger.Debug("expense recorded",
		zap.String("op", "cli.expense"),
		zap.String("title", expenseTitle),
		zap.Float64("amount", amount),
		zap.Bool("recurring", expenseRecurring),
	)
	if expenseRecurring {
		fmt.Printf("Recorded %s expense %q starting %s (%s)\n", format.Currency(amount), expenseTitle, expenseDate, frequency)
	} else {
		fmt.Printf("Recorded %s expense %q on %s\n", format.Currency(amount), expenseTitle, expenseDate)
	}
	return nil
}
