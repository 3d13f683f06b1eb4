// Package interval models half-open wall-clock time ranges on a single day.
//
// Times are zero-padded 24-hour "HH:MM" strings. Because the format is fixed
// width, plain string comparison orders them correctly; Parse enforces the
// format so that invariant cannot be violated by malformed input. This is a
// deliberate simplification, not a general time library.
package interval

import "errors"

var ErrInvalidInterval = errors.New("invalid interval")

// Interval is the half-open range [Start, End). Construct via Parse; a parsed
// Interval is guaranteed well-formed.
type Interval struct {
	Start string
	End   string
}

// Parse validates both endpoints and start < end. It is the only validation
// gate for intervals.
func Parse(start, end string) (Interval, error) {
	if !validClock(start) || !validClock(end) {
		return Interval{}, ErrInvalidInterval
	}
	if start >= end {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open ranges intersect. Ranges that
// only touch at a boundary (one ends where the other starts) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

func (i Interval) String() string {
	return i.Start + "-" + i.End
}

// validClock accepts exactly "HH:MM" with HH in 00..23 and MM in 00..59.
func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, idx := range [...]int{0, 1, 3, 4} {
		if s[idx] < '0' || s[idx] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour <= 23 && minute <= 59
}
