package utils

import (
	"math"
	"time"
)

// ServiceDays returns the inclusive day count of a service span: the elapsed
// days between in and out, rounded up to whole days, plus one for the start
// day. A span of exactly two days (Jan 1 to Jan 3) therefore counts as 3.
func ServiceDays(in, out time.Time) int64 {
	if out.Before(in) {
		return 0
	}
	elapsed := int64(math.Ceil(out.Sub(in).Hours() / 24))
	return elapsed + 1
}
