package weather

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var hourLabelPattern = regexp.MustCompile(`(?i)(\d+)(AM|PM)`)

var dayAbbreviations = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatHourLabel renders the hour of t as a 12-hour label: 0h is "12AM", 13h is "1PM"
func FormatHourLabel(t time.Time) string {
	h := t.Hour()
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d%s", h, suffix)
}

// ParseHourLabel converts a 12-hour label back to a 0-23 hour
func ParseHourLabel(label string) (int, bool) {
	m := hourLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	switch strings.ToUpper(m[2]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, true
}

// DayLabel returns the three-letter weekday of an ISO date, evaluated at noon UTC
func DayLabel(isoDate string) (string, error) {
	t, err := time.Parse("2006-01-02T15:04:05Z", isoDate+"T12:00:00Z")
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", isoDate, err)
	}
	return dayAbbreviations[t.Weekday()], nil
}

// WeekdayAbbreviation returns the three-letter label for d
func WeekdayAbbreviation(d time.Weekday) string {
	return dayAbbreviations[d]
}
