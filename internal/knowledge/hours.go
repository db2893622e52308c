package knowledge

import (
	"sort"
	"strings"

	"github.com/animalloo/animalloo-backend/internal/domain"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

const unknownWeekday = 99

var weekdayOrdinals = map[string]int{
	"monday": 1, "mon": 1,
	"tuesday": 2, "tue": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thu": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
	"sunday": 7, "sun": 7,
}

// WeekdayOrdinal maps a weekday name to 1..7, Monday first. Unrecognised names
// get 99 so they sort last.
func WeekdayOrdinal(day string) int {
	if n, ok := weekdayOrdinals[strings.ToLower(strings.TrimSpace(day))]; ok {
		return n
	}
	return unknownWeekday
}

// HoursEntries reads ?day ?open ?close rows. Weekday IRIs such as
// schema:Monday are reduced to their local name.
func HoursEntries(rows []sparql.Binding) []domain.OperatingHoursEntry {
	out := make([]domain.OperatingHoursEntry, 0, len(rows))
	for _, row := range rows {
		day := LocalName(row.Get("day"))
		if day == "" {
			continue
		}
		out = append(out, domain.OperatingHoursEntry{
			Weekday: day,
			Open:    row.Get("open"),
			Close:   row.Get("close"),
		})
	}
	return out
}

// RenderHours sorts entries by weekday, renders one line per entry, drops exact
// duplicate lines and joins the rest with newlines.
func RenderHours(entries []domain.OperatingHoursEntry) string {
	sorted := make([]domain.OperatingHoursEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return WeekdayOrdinal(sorted[i].Weekday) < WeekdayOrdinal(sorted[j].Weekday)
	})

	seen := make(map[string]struct{}, len(sorted))
	lines := make([]string, 0, len(sorted))
	for _, e := range sorted {
		line := renderHoursLine(e)
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderHoursLine(e domain.OperatingHoursEntry) string {
	open := truncateTime(e.Open)
	if open == "" {
		return e.Weekday + ": no time information"
	}
	return e.Weekday + ": " + open + " ~ " + truncateTime(e.Close)
}

// truncateTime keeps HH:MM.
func truncateTime(t string) string {
	t = strings.TrimSpace(t)
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
