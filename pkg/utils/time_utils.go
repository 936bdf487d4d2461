package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Falls back to a fixed ICT (+07:00) zone when tzdata is unavailable.
var defaultLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

// LoadLocationOrDefault resolves an IANA zone name, returning the ICT zone on failure.
func LoadLocationOrDefault(name string) *time.Location {
	if name == "" {
		return defaultLoc
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return defaultLoc
	}
	return loc
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay is inclusive: 23:59:59.999.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// ParseDateIn parses YYYY-MM-DD as midnight in loc.
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// SQLZoneName names loc for a database AT TIME ZONE clause. Fixed zones become
// Etc/GMT names, whose sign is inverted (UTC+7 is Etc/GMT-7).
func SQLZoneName(loc *time.Location) string {
	if loc == nil {
		return "UTC"
	}
	if name := loc.String(); name != "" && name != "Local" {
		if _, err := time.LoadLocation(name); err == nil {
			return name
		}
	}
	_, offset := time.Now().In(loc).Zone()
	if offset == 0 || offset%3600 != 0 {
		return "UTC"
	}
	return fmt.Sprintf("Etc/GMT%+d", -offset/3600)
}
