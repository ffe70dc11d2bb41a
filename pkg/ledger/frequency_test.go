package ledger

import "testing"

func TestMonthStep(t *testing.T) {
	tests := []struct {
		name      string
		frequency Frequency
		months    int
		recurs    bool
	}{
		{
			name:      "Monthly",
			frequency: FrequencyMonthly,
			months:    1,
			recurs:    true,
		},
		{
			name:      "Quarterly",
			frequency: FrequencyQuarterly,
			months:    3,
			recurs:    true,
		},
		{
			name:      "Semiannual",
			frequency: FrequencySemiannual,
			months:    6,
			recurs:    true,
		},
		{
			name:      "Annual",
			frequency: FrequencyAnnual,
			months:    12,
			recurs:    true,
		},
		{
			name:      "None",
			frequency: FrequencyNone,
			months:    0,
			recurs:    false,
		},
		{
			name:      "Unknown value",
			frequency: Frequency("Semanal"),
			months:    0,
			recurs:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, recurs := tt.frequency.MonthStep()
			if months != tt.months || recurs != tt.recurs {
				t.Errorf("MonthStep() = (%d, %v), expected (%d, %v)", months, recurs, tt.months, tt.recurs)
			}
		})
	}
}

func TestParseFrequency(t *testing.T) {
	for _, valid := range []string{"Mensal", "Trimestral", "Semestral", "Anual"} {
		if _, err := ParseFrequency(valid); err != nil {
			t.Errorf("ParseFrequency(%q) error = %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "N/A", "mensal", "Weekly"} {
		if _, err := ParseFrequency(invalid); err == nil {
			t.Errorf("ParseFrequency(%q) expected error", invalid)
		}
	}
}
