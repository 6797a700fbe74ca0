package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lonely cell dies", 0, true, false},
		{"underpopulated cell dies", 1, true, false},
		{"cell with two neighbors survives", 2, true, true},
		{"cell with three neighbors survives", 3, true, true},
		{"overpopulated cell dies", 4, true, false},
		{"crowded cell dies", 8, true, false},
		{"dead cell stays dead", 2, false, false},
		{"dead cell with three neighbors is born", 3, false, true},
		{"dead cell with four neighbors stays dead", 4, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v",
					tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}
