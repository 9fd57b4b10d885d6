package timeparse

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)

	tests := []struct {
		name    string
		input   string
		loc     *time.Location
		want    time.Time
		wantErr bool
	}{
		{
			name:  "date only in UTC",
			input: "2018-10-27",
			loc:   time.UTC,
			want:  time.Date(2018, 10, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only in given zone",
			input: "2018-10-27",
			loc:   tokyo,
			want:  time.Date(2018, 10, 27, 0, 0, 0, 0, tokyo),
		},
		{
			name:  "date and time",
			input: "2018-10-27 10:30:45",
			loc:   time.UTC,
			want:  time.Date(2018, 10, 27, 10, 30, 45, 0, time.UTC),
		},
		{
			name:  "RFC3339 ignores loc",
			input: "2018-10-27T10:00:00-07:00",
			loc:   tokyo,
			want:  time.Date(2018, 10, 27, 10, 0, 0, 0, time.FixedZone("", -7*3600)),
		},
		{
			name:  "nil loc means local",
			input: "2018-10-27",
			want:  time.Date(2018, 10, 27, 0, 0, 0, 0, time.Local),
		},
		{
			name:    "invalid format",
			input:   "10/27/2018",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "invalid date",
			input:   "2018-13-45",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input, tt.loc)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
