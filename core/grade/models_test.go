package grade

import "testing"

func TestGrade_Percent(t *testing.T) {
	tests := []struct {
		name  string
		grade Grade
		want  float64
	}{
		{name: "simple", grade: Grade{Score: 45, MaxScore: 50}, want: 90},
		{name: "full marks", grade: Grade{Score: 100, MaxScore: 100}, want: 100},
		{name: "zero score", grade: Grade{Score: 0, MaxScore: 50}, want: 0},
		{name: "zero max score", grade: Grade{Score: 10, MaxScore: 0}, want: 0},
		{name: "fractional", grade: Grade{Score: 1, MaxScore: 3}, want: 100.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grade.Percent(); got != tt.want {
				t.Errorf("Percent() = %v, want %v", got, tt.want)
			}
		})
	}
}
