// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package lifecycle

import (
	"testing"
	"time"
)

func TestParseScheduleInput(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "valid", date: "28.02.2026", time: "09:30",
			want: time.Date(2026, 2, 28, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "single digits", date: "1.3.2026", time: "8:05",
			want: time.Date(2026, 3, 1, 8, 5, 0, 0, time.UTC),
		},
		{
			name: "leap day on a leap year", date: "29.02.2028", time: "00:00",
			want: time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{name: "leap day on a common year", date: "29.02.2026", time: "12:00", wantErr: true},
		{name: "nonexistent date", date: "31.02.2026", time: "12:00", wantErr: true},
		{name: "iso format rejected", date: "2026-02-28", time: "12:00", wantErr: true},
		{name: "missing time part", date: "28.02.2026", time: "12", wantErr: true},
		{name: "hour out of range", date: "28.02.2026", time: "24:00", wantErr: true},
		{name: "minute out of range", date: "28.02.2026", time: "12:60", wantErr: true},
		{name: "year below range", date: "28.02.1999", time: "12:00", wantErr: true},
		{name: "year above range", date: "28.02.2101", time: "12:00", wantErr: true},
		{name: "day zero", date: "0.1.2026", time: "12:00", wantErr: true},
		{name: "month out of range", date: "15.13.2026", time: "12:00", wantErr: true},
		{name: "empty", date: "", time: "", wantErr: true},
		{name: "garbage", date: "ensi viikolla", time: "aamulla", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScheduleInput(tt.date, tt.time, time.UTC)
			if tt.wantErr {
				if !IsValidation(err) {
					t.Errorf("ParseScheduleInput(%q, %q) err = %v, want ValidationError", tt.date, tt.time, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScheduleInput(%q, %q) error: %v", tt.date, tt.time, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseScheduleInput(%q, %q) = %v, want %v", tt.date, tt.time, got, tt.want)
			}
		})
	}
}
