package usecase

import "time"

// 現在の時間
type Clock interface {
	Now() time.Time
}

// SystemClock truncates to microseconds, the precision postgres keeps,
// so a record reads back with the timestamps it was written with.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
