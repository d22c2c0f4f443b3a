package social

import "time"

// timeLayout matches the millisecond ISO-8601 form the stored document has
// always used for timestamps.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime is forgiving: a timestamp that does not parse sorts before
// every one that does.
func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	return time.Time{}
}
