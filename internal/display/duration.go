package display

import (
	"fmt"
	"time"
)

// FormatElapsed renders a duration as "D days HH:MM:SS", with a fractional
// part only when present. Negative values borrow a whole day the way the
// original reports did: -10s is "-1 days +23:59:50".
func FormatElapsed(d time.Duration) string {
	const day = 24 * time.Hour

	days := d / day
	rem := d % day
	if rem < 0 {
		days--
		rem += day
	}

	hours := rem / time.Hour
	rem %= time.Hour
	minutes := rem / time.Minute
	rem %= time.Minute
	seconds := rem / time.Second
	frac := rem % time.Second

	sign := ""
	if days < 0 {
		sign = "+"
	}

	out := fmt.Sprintf("%d days %s%02d:%02d:%02d", days, sign, hours, minutes, seconds)
	switch {
	case frac == 0:
	case frac%time.Microsecond == 0:
		out += fmt.Sprintf(".%06d", frac/time.Microsecond)
	default:
		out += fmt.Sprintf(".%09d", frac)
	}
	return out
}
