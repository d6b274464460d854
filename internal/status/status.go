// Package status derives an item's overall learning status from the
// per-skill mastery flags.
package status

// Status is an item's overall learning status across the three skills.
type Status string

const (
	NotYet     Status = "NotYet"
	Listenable Status = "Listenable"
	Speakable  Status = "Speakable"
	Readable   Status = "Readable"
	Master     Status = "Master"
)

// Derive assigns the status by fixed priority, not additive score:
// all three skills mastered wins, then recognition (A), then listening (C),
// then production (B).
func Derive(recognition, production, listening bool) Status {
	switch {
	case recognition && production && listening:
		return Master
	case recognition:
		return Readable
	case listening:
		return Listenable
	case production:
		return Speakable
	default:
		return NotYet
	}
}
