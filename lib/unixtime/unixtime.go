package unixtime

import (
	"fmt"
	"time"
)

// ToSeconds converts an instant to whole epoch seconds, evaluated in UTC.
// <time.Time> always carries a location, so there is no "naive local
// timestamp silently treated as UTC" failure mode here.
func ToSeconds(t time.Time) int64 {
	return t.UTC().Unix()
}

// ToMillis is ToSeconds scaled to milliseconds, which is what the stats
// endpoints expect. Sub-second precision is dropped, not rounded.
func ToMillis(t time.Time) int64 {
	return ToSeconds(t) * 1000
}

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02T15:04:05"
)

// ParseDate parses either a date or a full datetime, interpreting the
// input as UTC.
func ParseDate(s string) (time.Time, error) {
	layout := dateLayout
	help := "YYYY-MM-DD"
	if len(s) > len(dateLayout) {
		layout = datetimeLayout
		help = "YYYY-MM-DDThh:mm:ss"
	}

	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q cannot be parsed as a datetime, must be of form %s", s, help)
	}
	return t, nil
}
