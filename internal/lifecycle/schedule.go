// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package lifecycle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseScheduleInput parses the editor's scheduling fields: a Finnish-style
// dd.mm.yyyy date and a 24-hour HH:MM time, in the given location. Dates
// that do not exist on the calendar (31.02., 29.02. outside leap years) are
// rejected rather than normalized.
func ParseScheduleInput(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	day, month, year, err := parseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := parseClock(timeStr)
	if err != nil {
		return time.Time{}, err
	}

	at := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	// time.Date normalizes out-of-range components; a changed day or month
	// means the input named a date that does not exist.
	if at.Day() != day || at.Month() != time.Month(month) || at.Year() != year {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("Päivämäärää %s ei ole olemassa", dateStr)}
	}
	return at, nil
}

func parseDate(dateStr string) (day, month, year int, err error) {
	invalid := &ValidationError{Message: "Virheellinen päivämäärä, käytä muotoa pp.kk.vvvv"}

	parts := strings.Split(strings.TrimSpace(dateStr), ".")
	if len(parts) != 3 {
		return 0, 0, 0, invalid
	}
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, invalid
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, invalid
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, invalid
	}

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, 0, invalid
	}
	if year < 2000 || year > 2100 {
		return 0, 0, 0, &ValidationError{Message: "Vuoden täytyy olla välillä 2000–2100"}
	}
	return day, month, year, nil
}

func parseClock(timeStr string) (hour, minute int, err error) {
	invalid := &ValidationError{Message: "Virheellinen kellonaika, käytä muotoa tt:mm"}

	parts := strings.Split(strings.TrimSpace(timeStr), ":")
	if len(parts) != 2 {
		return 0, 0, invalid
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, invalid
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, invalid
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, invalid
	}
	return hour, minute, nil
}
