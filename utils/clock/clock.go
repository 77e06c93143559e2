package clock

import "time"

// Jamaica is the operating timezone of every warehouse (UTC-05:00, no DST).
var Jamaica = time.FixedZone("JMT", -5*60*60)

const DateLayout = "2006-01-02"

// Clock is the wall-clock source consumed by the workflows.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().In(Jamaica)
}

// Fixed always returns the same instant; used by tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f).In(Jamaica)
}

// Today returns midnight of the clock's current date.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf truncates t to midnight in Jamaica time.
func DateOf(t time.Time) time.Time {
	t = t.In(Jamaica)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Jamaica)
}

// ParseDate parses a YYYY-MM-DD form value as a Jamaica calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, Jamaica)
}
