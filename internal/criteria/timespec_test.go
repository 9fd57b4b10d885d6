package criteria

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeSpec
		wantErr bool
	}{
		{name: "newer than days", input: "+7d", want: TimeSpec{NewerThan, 7 * 24 * time.Hour}},
		{name: "older than minutes", input: "-30m", want: TimeSpec{OlderThan, 30 * time.Minute}},
		{name: "bare hours", input: "24h", want: TimeSpec{AgeEqual, 24 * time.Hour}},
		{name: "explicit equal seconds", input: "=10s", want: TimeSpec{AgeEqual, 10 * time.Second}},
		{name: "weeks", input: "+2w", want: TimeSpec{NewerThan, 14 * 24 * time.Hour}},
		{name: "months", input: "-1M", want: TimeSpec{OlderThan, 30 * 24 * time.Hour}},
		{name: "years", input: "1y", want: TimeSpec{AgeEqual, 365 * 24 * time.Hour}},

		// Error cases
		{name: "empty string", input: "", wantErr: true},
		{name: "missing unit", input: "10", wantErr: true},
		{name: "unknown unit", input: "10x", wantErr: true},
		{name: "uppercase day", input: "1D", wantErr: true},
		{name: "operator only", input: "+d", wantErr: true},
		{name: "overflow", input: "99999999999y", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeSpec(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimeSpec(%q) expected error, got nil", tt.input)
				} else if !errors.Is(err, ErrInvalidTimeSpec) {
					t.Errorf("ParseTimeSpec(%q) error = %v, want ErrInvalidTimeSpec", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseTimeSpec(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("ParseTimeSpec(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeSpecMatches(t *testing.T) {
	tests := []struct {
		name string
		spec TimeSpec
		age  time.Duration
		want bool
	}{
		{"equal exact", TimeSpec{AgeEqual, 10 * time.Second}, 10 * time.Second, true},
		{"equal lower boundary", TimeSpec{AgeEqual, 10 * time.Second}, 9 * time.Second, true},
		{"equal upper boundary", TimeSpec{AgeEqual, 10 * time.Second}, 11 * time.Second, true},
		{"equal below window", TimeSpec{AgeEqual, 10 * time.Second}, 8500 * time.Millisecond, false},
		{"equal above window", TimeSpec{AgeEqual, 10 * time.Second}, 11500 * time.Millisecond, false},
		{"equal sub-second limit", TimeSpec{AgeEqual, 500 * time.Millisecond}, 0, true},
		{"newer than younger", TimeSpec{NewerThan, time.Hour}, time.Minute, true},
		{"newer than older", TimeSpec{NewerThan, time.Hour}, 2 * time.Hour, false},
		{"newer than boundary", TimeSpec{NewerThan, time.Hour}, time.Hour, false},
		{"older than older", TimeSpec{OlderThan, time.Hour}, 2 * time.Hour, true},
		{"older than younger", TimeSpec{OlderThan, time.Hour}, time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Matches(tt.age); got != tt.want {
				t.Errorf("%v.Matches(%v) = %v, want %v", tt.spec, tt.age, got, tt.want)
			}
		})
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		modTime time.Time
		want    time.Duration
	}{
		{"past", now.Add(-90 * time.Minute), 90 * time.Minute},
		{"now", now, 0},
		{"future clamps to zero", now.Add(time.Hour), 0},
		{"unknown clamps to zero", time.Time{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(now, tt.modTime); got != tt.want {
				t.Errorf("Age(%v, %v) = %v, want %v", now, tt.modTime, got, tt.want)
			}
		})
	}
}
