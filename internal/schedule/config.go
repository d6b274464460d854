// Package schedule decides when each (item, skill) pair is due for review
// and how a single graded answer moves it along the interval ladder.
//
// Every date in this package is a calendar date string (YYYY-MM-DD) in one
// configured timezone. Comparing date-with-time values against date-only
// strings was a recurring bug class in predecessors of this engine, so
// nothing here compares timestamps.
package schedule

import "time"

// DateLayout is the calendar date format used for due dates.
const DateLayout = "2006-01-02"

// DefaultQueueLimit bounds a single review session.
const DefaultQueueLimit = 30

// Config carries the engine's clock and queue settings.
type Config struct {
	// Location is the timezone in which "today" is computed.
	Location *time.Location

	// QueueLimit caps BuildDueQueue. Zero means DefaultQueueLimit.
	QueueLimit int

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns the standard configuration: JST calendar days and a
// queue of 30.
func DefaultConfig() Config {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		loc = time.FixedZone("JST", 9*60*60)
	}
	return Config{
		Location:   loc,
		QueueLimit: DefaultQueueLimit,
	}
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c Config) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

// Today returns the current calendar date in the configured timezone.
func (c Config) Today() string {
	return c.now().In(c.location()).Format(DateLayout)
}

// DueDate returns the calendar date the given number of days from today.
func (c Config) DueDate(days int) string {
	return c.now().In(c.location()).AddDate(0, 0, days).Format(DateLayout)
}

func (c Config) queueLimit() int {
	if c.QueueLimit > 0 {
		return c.QueueLimit
	}
	return DefaultQueueLimit
}

// isDue is the single membership test shared by queue building and
// counting: an entry is due when its next review date is on or before
// today. ISO date strings order lexicographically, so this is a
// calendar-date comparison.
func isDue(nextDue, today string) bool {
	return nextDue == "" || nextDue <= today
}
