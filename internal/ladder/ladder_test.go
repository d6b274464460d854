package ladder

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  []int
		want []int
	}{
		{"default", []int{1, 2, 4, 7, 15, 30}, []int{1, 2, 4, 7, 15, 30}},
		{"unsorted", []int{30, 1, 7, 2, 15, 4}, []int{1, 2, 4, 7, 15, 30}},
		{"duplicates", []int{1, 1, 2, 2, 4, 4}, []int{1, 2, 4}},
		{"drops nonpositive", []int{-3, 0, 1, 2, 4}, []int{1, 2, 4}},
		{"minimum length", []int{3, 1, 2}, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.raw)
		if err != nil {
			t.Errorf("%s: Normalize(%v) error: %v", tt.name, tt.raw, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: Normalize(%v) = %v, want %v", tt.name, tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeRejectsShortLadders(t *testing.T) {
	tests := [][]int{
		nil,
		{},
		{1},
		{1, 2},
		{1, 1, 1, 1},
		{-1, 0, 2, 2},
	}

	for _, raw := range tests {
		if _, err := Normalize(raw); !errors.Is(err, ErrTooFewIntervals) {
			t.Errorf("Normalize(%v) error = %v, want ErrTooFewIntervals", raw, err)
		}
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	raw := []int{30, 1, 7, 2, 15, 4}
	if _, err := Normalize(raw); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []int{30, 1, 7, 2, 15, 4}
	if !reflect.DeepEqual(raw, want) {
		t.Errorf("Normalize modified its input: %v", raw)
	}
}

func TestNextStage(t *testing.T) {
	tests := []struct {
		stage     int
		ladderLen int
		correct   bool
		want      int
	}{
		{0, 6, true, 1},
		{1, 6, true, 2},
		{4, 6, true, 5},
		{5, 6, true, 5}, // saturates at the top
		{0, 6, false, 0},
		{3, 6, false, 0},
		{5, 6, false, 0},
		{2, 3, true, 2},
	}

	for _, tt := range tests {
		got := NextStage(tt.stage, tt.ladderLen, tt.correct)
		if got != tt.want {
			t.Errorf("NextStage(%d, %d, %v) = %d, want %d", tt.stage, tt.ladderLen, tt.correct, got, tt.want)
		}
	}
}

func TestNextStageStaysInBounds(t *testing.T) {
	ladderLen := 4
	for stage := 0; stage < ladderLen; stage++ {
		for _, correct := range []bool{true, false} {
			got := NextStage(stage, ladderLen, correct)
			if got < 0 || got >= ladderLen {
				t.Errorf("NextStage(%d, %d, %v) = %d, out of bounds", stage, ladderLen, correct, got)
			}
		}
	}
}

func TestIsMastered(t *testing.T) {
	tests := []struct {
		stage     int
		ladderLen int
		want      bool
	}{
		{0, 6, false},
		{4, 6, false},
		{5, 6, true},
		{2, 3, true},
	}

	for _, tt := range tests {
		got := IsMastered(tt.stage, tt.ladderLen)
		if got != tt.want {
			t.Errorf("IsMastered(%d, %d) = %v, want %v", tt.stage, tt.ladderLen, got, tt.want)
		}
	}
}

func TestDefaultIsNormalized(t *testing.T) {
	got, err := Normalize(Default())
	if err != nil {
		t.Fatalf("Normalize(Default()): %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("Default() = %v, not normalized (%v)", Default(), got)
	}
}
