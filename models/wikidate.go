package models

import (
	"errors"
	"fmt"
	"time"
)

// TiddlyWiki serialises dates as a 17-digit UTC string:
// YYYY0MM0DD0hh0mm0ss plus milliseconds ("20230101120000000"). The format
// sorts lexicographically in time order, which the changed-since queries
// rely on.
const wikiDateLen = 17

// ErrInvalidWikiDate is returned by ParseWikiDate for values that are not a
// 17-digit timestamp.
var ErrInvalidWikiDate = errors.New("invalid wiki date")

// FormatWikiDate renders ts in the canonical TiddlyWiki timestamp format,
// always in UTC.
func FormatWikiDate(ts time.Time) string {
	ts = ts.UTC()
	return fmt.Sprintf("%04d%02d%02d%02d%02d%02d%03d",
		ts.Year(), int(ts.Month()), ts.Day(),
		ts.Hour(), ts.Minute(), ts.Second(),
		ts.Nanosecond()/int(time.Millisecond))
}

// ParseWikiDate parses a canonical TiddlyWiki timestamp back into a UTC
// time.Time.
func ParseWikiDate(value string) (time.Time, error) {
	if len(value) != wikiDateLen {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWikiDate, value)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWikiDate, value)
		}
	}

	ts, err := time.ParseInLocation("20060102150405", value[:14], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWikiDate, value)
	}

	millis := int(value[14]-'0')*100 + int(value[15]-'0')*10 + int(value[16]-'0')
	return ts.Add(time.Duration(millis) * time.Millisecond), nil
}
