package utils

import "time"

// Kyoto local time (JST, +09:00, no DST)
var jstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Tokyo"); err == nil {
		return loc
	}
	return time.FixedZone("JST", 9*3600)
}()

func JST() *time.Location { return jstLoc }

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseDateJST parses a YYYY-MM-DD string as midnight JST.
func ParseDateJST(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, jstLoc)
}

// TruncateToDayJST drops the time-of-day component in JST.
func TruncateToDayJST(t time.Time) time.Time {
	tj := t.In(jstLoc)
	return time.Date(tj.Year(), tj.Month(), tj.Day(), 0, 0, 0, 0, jstLoc)
}

// DaySpan is the inclusive number of calendar days between start and end.
// A trip from 2024-05-01 to 2024-05-03 spans 3 days.
func DaySpan(start, end time.Time) int {
	s := TruncateToDayJST(start)
	e := TruncateToDayJST(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func FormatDateJST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(jstLoc).Format("2006-01-02")
}

func FormatRFC3339JST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(jstLoc).Format(time.RFC3339)
}
