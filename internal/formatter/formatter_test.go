package formatter_test

import (
	"reflect"
	"testing"

	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/internal/formatter"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/models"
)

func sampleSummaries() []models.PitchTypeSummary {
	return []models.PitchTypeSummary{
		{PitchType: "SL", PitchName: "Slider", TotalPitches: 40, OutCount: 10, OutPercentage: 25.0},
		{PitchType: "FF", PitchName: "Four-Seam Fastball", TotalPitches: 100, OutCount: 30, OutPercentage: 30.0},
		{PitchType: "CH", PitchName: "Changeup", TotalPitches: 40, OutCount: 12, OutPercentage: 30.0},
		{PitchType: "CU", PitchName: "Curveball", TotalPitches: 10, OutCount: 5, OutPercentage: 50.0},
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    formatter.SortKey
		wantErr bool
	}{
		{"Empty defaults to percentage", "", formatter.SortByPercentage, false},
		{"Percentage", "percentage", formatter.SortByPercentage, false},
		{"Count", "count", formatter.SortByCount, false},
		{"Name", "name", formatter.SortByName, false},
		{"Unknown key", "velocity", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatter.ParseSortKey(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got none", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSortKey(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSortByPercentageDescending(t *testing.T) {
	ordered := formatter.Sort(sampleSummaries(), formatter.SortByPercentage, true)

	want := []string{"CU", "CH", "FF", "SL"} // 50, 30 (Changeup before Four-Seam by name), 30, 25
	got := pitchTypes(ordered)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestSortByCountAscending(t *testing.T) {
	ordered := formatter.Sort(sampleSummaries(), formatter.SortByCount, false)

	want := []string{"CU", "CH", "SL", "FF"} // ties (40) broken by name: Changeup, Slider
	got := pitchTypes(ordered)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestSortByName(t *testing.T) {
	ordered := formatter.Sort(sampleSummaries(), formatter.SortByName, false)

	want := []string{"CH", "CU", "FF", "SL"}
	got := pitchTypes(ordered)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}

func TestSortTieBreakStaysAscendingWhenDescending(t *testing.T) {
	// CH and FF tie at 30%; descending order must still break the tie by
	// name ascending.
	ordered := formatter.Sort(sampleSummaries(), formatter.SortByPercentage, true)

	for i, s := range ordered {
		if s.PitchType == "CH" {
			if i+1 >= len(ordered) || ordered[i+1].PitchType != "FF" {
				t.Errorf("expected Changeup immediately before Four-Seam Fastball, got order %v", pitchTypes(ordered))
			}
			return
		}
	}
	t.Fatal("CH not found in output")
}

func TestSortIsDeterministic(t *testing.T) {
	first := formatter.Sort(sampleSummaries(), formatter.SortByPercentage, true)
	second := formatter.Sort(sampleSummaries(), formatter.SortByPercentage, true)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different orders: %v vs %v", pitchTypes(first), pitchTypes(second))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := sampleSummaries()
	original := make([]models.PitchTypeSummary, len(input))
	copy(original, input)

	formatter.Sort(input, formatter.SortByCount, true)

	if !reflect.DeepEqual(input, original) {
		t.Errorf("input was mutated: %v", pitchTypes(input))
	}
}

func TestSortEmptyInput(t *testing.T) {
	ordered := formatter.Sort(nil, formatter.SortByPercentage, true)
	if len(ordered) != 0 {
		t.Errorf("expected empty output, got %d entries", len(ordered))
	}
}

func pitchTypes(summaries []models.PitchTypeSummary) []string {
	types := make([]string, len(summaries))
	for i, s := range summaries {
		types[i] = s.PitchType
	}
	return types
}
