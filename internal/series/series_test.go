package series

import (
	"testing"
	"time"

	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/datetime"
	"github.com/Goulart21/gestao-frota/pkg/ledger"
	"github.com/Goulart21/gestao-frota/pkg/mathutil"
)

var testNow = datetime.MustParseTime(datetime.DateLayout, "15/05/2024")

// pointByDate indexes a series result for assertions.
func pointByDate(points []ledger.DailySeriesPoint, date string) (ledger.DailySeriesPoint, bool) {
	d := datetime.MustParseTime(datetime.DateLayout, date)
	for _, p := range points {
		if p.Date.Equal(d) {
			return p, true
		}
	}
	return ledger.DailySeriesPoint{}, false
}

func TestWindowShape(t *testing.T) {
	tests := []struct {
		name    string
		horizon int
	}{
		{
			name:    "Default horizon",
			horizon: 365,
		},
		{
			name:    "Interactive horizon",
			horizon: 180,
		},
		{
			name:    "Zero horizon",
			horizon: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := BuildWithFixedTime(nil, ledger.Snapshot{}, tt.horizon, testNow)

			expected := 366 + tt.horizon
			if len(points) != expected {
				t.Errorf("BuildWithFixedTime() returned %d points, expected %d", len(points), expected)
			}
			for i := 1; i < len(points); i++ {
				if diff := points[i].Date.Sub(points[i-1].Date); diff != 24*time.Hour {
					t.Fatalf("gap of %v between %v and %v", diff, points[i-1].Date, points[i].Date)
				}
			}
			if !points[0].Date.Equal(testNow.AddDate(0, 0, -constants.HistoryDays)) {
				t.Errorf("window starts at %v", points[0].Date)
			}
			if !points[len(points)-1].Date.Equal(testNow.AddDate(0, 0, tt.horizon)) {
				t.Errorf("window ends at %v", points[len(points)-1].Date)
			}
		})
	}
}

func TestNetInvariant(t *testing.T) {
	snap := ledger.Snapshot{
		Expenses: []ledger.ExpenseEntry{
			{Title: "Aluguel", Amount: 3500, FirstDate: "01/01/2024", Recurring: true, Frequency: ledger.FrequencyMonthly},
			{Title: "Pneus", Amount: 4500, FirstDate: "30/04/2024"},
		},
		RevenueTotals: []ledger.RevenueTotal{
			{Date: "10/05/2024", Amount: 1200},
			{Date: "30/04/2024", Amount: 800},
		},
	}

	points := BuildWithFixedTime(nil, snap, 60, testNow)
	for _, p := range points {
		if p.Net != p.Revenue-p.Expense {
			t.Errorf("net invariant broken at %v: net=%v revenue=%v expense=%v", p.Date, p.Net, p.Revenue, p.Expense)
		}
	}
}

func TestNonRecurringExpense(t *testing.T) {
	snap := ledger.Snapshot{
		Expenses: []ledger.ExpenseEntry{
			{Title: "Troca de Pneus", Amount: 4500, FirstDate: "30/04/2024", Recurring: false},
		},
	}

	points := BuildWithFixedTime(nil, snap, 30, testNow)
	for _, p := range points {
		want := 0.0
		if datetime.FormatDate(p.Date) == "30/04/2024" {
			want = 4500
		}
		if p.Expense != want {
			t.Errorf("expense at %v = %v, expected %v", p.Date, p.Expense, want)
		}
	}
}

func TestRecurringExpenseStepping(t *testing.T) {
	tests := []struct {
		name      string
		frequency ledger.Frequency
		firstDate string
		horizon   int
		hits      []string
	}{
		{
			name:      "Monthly rent walks to window end",
			frequency: ledger.FrequencyMonthly,
			firstDate: "01/01/2024",
			horizon:   30,
			hits:      []string{"01/01/2024", "01/02/2024", "01/03/2024", "01/04/2024", "01/05/2024", "01/06/2024"},
		},
		{
			name:      "Quarterly steps by three months",
			frequency: ledger.FrequencyQuarterly,
			firstDate: "15/04/2024",
			horizon:   120,
			hits:      []string{"15/04/2024", "15/07/2024"},
		},
		{
			name:      "Semiannual steps by six months",
			frequency: ledger.FrequencySemiannual,
			firstDate: "01/11/2023",
			horizon:   30,
			hits:      []string{"01/11/2023", "01/05/2024"},
		},
		{
			name:      "Annual steps by one year",
			frequency: ledger.FrequencyAnnual,
			firstDate: "01/03/2023",
			horizon:   365,
			hits:      []string{"01/03/2023", "01/03/2024", "01/03/2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := ledger.Snapshot{
				Expenses: []ledger.ExpenseEntry{
					{Title: "Recorrente", Amount: 3500, FirstDate: tt.firstDate, Recurring: true, Frequency: tt.frequency},
				},
			}
			points := BuildWithFixedTime(nil, snap, tt.horizon, testNow)

			hitSet := make(map[string]bool, len(tt.hits))
			for _, h := range tt.hits {
				hitSet[h] = true
			}
			for _, p := range points {
				want := 0.0
				if hitSet[datetime.FormatDate(p.Date)] {
					want = 3500
				}
				if p.Expense != want {
					t.Errorf("expense at %s = %v, expected %v", datetime.FormatDate(p.Date), p.Expense, want)
				}
			}
		})
	}
}

func TestRecurringExpenseClampsMonthEnd(t *testing.T) {
	snap := ledger.Snapshot{
		Expenses: []ledger.ExpenseEntry{
			{Title: "Parcela", Amount: 1000, FirstDate: "31/01/2024", Recurring: true, Frequency: ledger.FrequencyMonthly},
		},
	}
	points := BuildWithFixedTime(nil, snap, 0, testNow)

	// 31/01 clamps to the leap-year 29/02 and the walk continues from the
	// clamped day.
	for _, date := range []string{"31/01/2024", "29/02/2024", "29/03/2024", "29/04/2024"} {
		p, ok := pointByDate(points, date)
		if !ok {
			t.Fatalf("no point for %s", date)
		}
		if p.Expense != 1000 {
			t.Errorf("expense at %s = %v, expected 1000", date, p.Expense)
		}
	}
	if p, ok := pointByDate(points, "31/03/2024"); ok && p.Expense != 0 {
		t.Errorf("expense at 31/03/2024 = %v, expected 0 (walk follows the clamped day)", p.Expense)
	}
}

func TestUnknownFrequencySkipped(t *testing.T) {
	snap := ledger.Snapshot{
		Expenses: []ledger.ExpenseEntry{
			{Title: "Estranho", Amount: 999, FirstDate: "01/05/2024", Recurring: true, Frequency: ledger.Frequency("Semanal")},
		},
	}
	points := BuildWithFixedTime(nil, snap, 30, testNow)
	for _, p := range points {
		if p.Expense != 0 {
			t.Errorf("expense at %v = %v, expected 0 for unknown frequency", p.Date, p.Expense)
		}
	}
}

func TestMalformedDatesSkipped(t *testing.T) {
	snap := ledger.Snapshot{
		Expenses: []ledger.ExpenseEntry{
			{Title: "Data ruim", Amount: 500, FirstDate: "2024-05-01"},
		},
		RevenueTotals: []ledger.RevenueTotal{
			{Date: "99/99/9999", Amount: 1000},
		},
	}
	points := BuildWithFixedTime(nil, snap, 10, testNow)

	if len(points) != 366+10 {
		t.Fatalf("BuildWithFixedTime() returned %d points, expected %d", len(points), 366+10)
	}
	for _, p := range points {
		if p.Expense != 0 {
			t.Errorf("expense at %v = %v, expected 0", p.Date, p.Expense)
		}
		// The malformed revenue row never entered the sample set, so the
		// fallback constant fills the future days.
		if !p.Date.Before(testNow) && p.Revenue != constants.FallbackDailyRevenue {
			t.Errorf("revenue at %v = %v, expected fallback %v", p.Date, p.Revenue, constants.FallbackDailyRevenue)
		}
	}
}

func TestRevenueFallbackFill(t *testing.T) {
	points := BuildWithFixedTime(nil, ledger.Snapshot{}, 30, testNow)
	for _, p := range points {
		if p.Date.Before(testNow) {
			if p.Revenue != 0 {
				t.Errorf("past revenue at %v = %v, expected 0", p.Date, p.Revenue)
			}
		} else if p.Revenue != constants.FallbackDailyRevenue {
			t.Errorf("future revenue at %v = %v, expected %v", p.Date, p.Revenue, constants.FallbackDailyRevenue)
		}
	}
}

func TestRevenueProjectionMean(t *testing.T) {
	snap := ledger.Snapshot{
		RevenueTotals: []ledger.RevenueTotal{
			{Date: "01/04/2024", Amount: 1000},
			{Date: "02/04/2024", Amount: 2000},
		},
	}
	points := BuildWithFixedTime(nil, snap, 15, testNow)

	for _, p := range points {
		switch datetime.FormatDate(p.Date) {
		case "01/04/2024":
			if p.Revenue != 1000 {
				t.Errorf("logged revenue at 01/04/2024 = %v, expected 1000", p.Revenue)
			}
		case "02/04/2024":
			if p.Revenue != 2000 {
				t.Errorf("logged revenue at 02/04/2024 = %v, expected 2000", p.Revenue)
			}
		default:
			if p.Date.Before(testNow) {
				if p.Revenue != 0 {
					t.Errorf("past gap at %v = %v, expected 0", p.Date, p.Revenue)
				}
			} else if !mathutil.WithinTolerance(p.Revenue, 1500, 1e-9) {
				t.Errorf("projected revenue at %v = %v, expected 1500", p.Date, p.Revenue)
			}
		}
	}
}

// The ledger holds one revenue entry (Escavadeira, 1200.00 on 10/05/2024)
// and one monthly rent starting 01/01/2024; aggregating 30 days out from
// 15/05/2024 must show the logged revenue, the rent at each monthly step,
// and the historical mean (1200.00) from today forward.
func TestCombinedScenario(t *testing.T) {
	snap := ledger.Snapshot{
		Expenses: []ledger.ExpenseEntry{
			{Title: "Aluguel do Galpão", Amount: 3500, FirstDate: "01/01/2024", Recurring: true, Frequency: ledger.FrequencyMonthly},
		},
		RevenueTotals: []ledger.RevenueTotal{
			{Date: "10/05/2024", Amount: 1200},
		},
	}
	points := BuildWithFixedTime(nil, snap, 30, testNow)

	p, ok := pointByDate(points, "10/05/2024")
	if !ok || p.Revenue != 1200 {
		t.Errorf("revenue at 10/05/2024 = %v, expected 1200", p.Revenue)
	}

	rentDates := []string{"01/01/2024", "01/02/2024", "01/03/2024", "01/04/2024", "01/05/2024", "01/06/2024"}
	for _, date := range rentDates {
		p, ok := pointByDate(points, date)
		if !ok {
			t.Fatalf("no point for %s", date)
		}
		if p.Expense != 3500 {
			t.Errorf("expense at %s = %v, expected 3500", date, p.Expense)
		}
	}

	for _, p := range points {
		if !p.Date.Before(testNow) && datetime.FormatDate(p.Date) != "10/05/2024" {
			if p.Revenue != 1200 {
				t.Errorf("projected revenue at %v = %v, expected mean 1200", p.Date, p.Revenue)
			}
		}
	}
}

func TestEmptyLedgerStillCompleteWindow(t *testing.T) {
	points := BuildWithFixedTime(nil, ledger.Snapshot{}, 180, testNow)
	if len(points) != 366+180 {
		t.Fatalf("BuildWithFixedTime() returned %d points, expected %d", len(points), 366+180)
	}
	for _, p := range points {
		if p.Expense != 0 {
			t.Errorf("expense at %v = %v, expected 0", p.Date, p.Expense)
		}
	}
}
