package footprint

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, "Excellent"},
		{2000, "Excellent"},
		{2001, "Very good"},
		{3360, "Very good"},
		{3361, "Fair"},
		{4800, "Fair"},
		{4801, "Needs improvement"},
	}

	for _, tt := range tests {
		if got := Grade(tt.total).Level; got != tt.want {
			t.Errorf("Grade(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestScaleMax(t *testing.T) {
	if got := ScaleMax(1000); got != NationalAverageKg {
		t.Errorf("ScaleMax(1000) = %d, want %d", got, NationalAverageKg)
	}
	if got := ScaleMax(9000); got != 9000 {
		t.Errorf("ScaleMax(9000) = %d, want 9000", got)
	}
	if got := len(Benchmarks(1234)); got != 4 {
		t.Errorf("Benchmarks returned %d entries, want 4", got)
	}
}
