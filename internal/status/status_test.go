package status

import "testing"

func TestDerive(t *testing.T) {
	tests := []struct {
		recognition bool
		production  bool
		listening   bool
		want        Status
	}{
		{false, false, false, NotYet},
		{true, true, true, Master},
		{true, false, false, Readable},
		{true, true, false, Readable},
		{true, false, true, Readable},
		{false, false, true, Listenable},
		{false, true, true, Listenable},
		{false, true, false, Speakable},
	}

	for _, tt := range tests {
		got := Derive(tt.recognition, tt.production, tt.listening)
		if got != tt.want {
			t.Errorf("Derive(%v, %v, %v) = %s, want %s", tt.recognition, tt.production, tt.listening, got, tt.want)
		}
	}
}

func TestDeriveListeningBeatsProduction(t *testing.T) {
	// With both C and B mastered but not A, listening takes priority.
	if got := Derive(false, true, true); got != Listenable {
		t.Errorf("Derive(false, true, true) = %s, want %s", got, Listenable)
	}
}
