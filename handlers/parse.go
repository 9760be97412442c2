package handlers

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday, "lundi": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "mardi": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "mercredi": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "jeudi": time.Thursday,
	"friday": time.Friday, "fri": time.Friday, "vendredi": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday, "samedi": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday, "dimanche": time.Sunday,
}

// parseWeekday accepts English and French day names, full or abbreviated.
func parseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// parseClock validates and canonicalises a wall-clock "hh:mm" argument.
func parseClock(s string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected hh:mm", s)
	}
	return t.Format("15:04"), nil
}
