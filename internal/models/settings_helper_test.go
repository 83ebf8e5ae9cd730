package models

import (
	"reflect"
	"testing"
	"time"
)

func TestSettingsMapRoundTrip(t *testing.T) {
	original := Settings{
		Reminder: ReminderSettings{
			Enabled:          false,
			Time:             "07:45",
			Frequency:        FrequencyCustom,
			CustomDays:       []time.Weekday{time.Saturday, time.Sunday},
			LastNotifiedDate: "2024-05-02",
		},
		Timezone:               "Europe/Madrid",
		NotificationPermission: PermissionDenied,
	}

	got, err := MapToSettings(SettingsToMap(original))
	if err != nil {
		t.Fatalf("MapToSettings() error = %v", err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Errorf("round trip = %+v, want %+v", got, original)
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	s := Settings{}
	ApplyDefaultSettings(&s)

	if s.Reminder.Time != "20:00" {
		t.Errorf("Time = %q, want 20:00", s.Reminder.Time)
	}
	if s.Reminder.Frequency != FrequencyDaily {
		t.Errorf("Frequency = %q, want daily", s.Reminder.Frequency)
	}
	wantDays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	if !reflect.DeepEqual(s.Reminder.CustomDays, wantDays) {
		t.Errorf("CustomDays = %v, want %v", s.Reminder.CustomDays, wantDays)
	}
	if s.NotificationPermission != PermissionUndetermined {
		t.Errorf("NotificationPermission = %q, want undetermined", s.NotificationPermission)
	}

	if d := DefaultSettings(); !d.Reminder.Enabled {
		t.Error("DefaultSettings() should enable the reminder")
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{input: "mon,wed,fri", want: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{input: "0, 6", want: []time.Weekday{time.Sunday, time.Saturday}},
		{input: "Tuesday,tue", want: []time.Weekday{time.Tuesday}},
		{input: "", want: []time.Weekday{}},
		{input: "7", wantErr: true},
		{input: "funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "20:00", want: "20:00"},
		{in: "8:00", want: "08:00"},
		{in: " 7:05 ", want: "07:05"},
		{in: "25:00", wantErr: true},
		{in: "8pm", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NormalizeTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReminderSettingsValidate(t *testing.T) {
	ok := ReminderSettings{Time: "20:00", Frequency: FrequencyWeekdays}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	bad := []ReminderSettings{
		{Time: "8pm", Frequency: FrequencyDaily},
		{Time: "8:00", Frequency: FrequencyDaily},
		{Time: " 20:00", Frequency: FrequencyDaily},
		{Time: "20:00", Frequency: "hourly"},
		{Time: "20:00", Frequency: FrequencyCustom, CustomDays: []time.Weekday{9}},
	}
	for _, r := range bad {
		if err := r.Validate(); err == nil {
			t.Errorf("Validate(%+v) expected error", r)
		}
	}
}
