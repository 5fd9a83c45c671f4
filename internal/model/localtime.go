package model

import (
	"bytes"
	"fmt"
	"time"
)

// LocalTimeLayout is a zone-less ISO-8601 date-time, as the backend writes
// its creation timestamps.
const LocalTimeLayout = "2006-01-02T15:04:05.999999999"

// LocalTime is a wall-clock timestamp with no zone. Decoding also accepts
// RFC 3339; the zone is then dropped.
type LocalTime struct {
	time.Time
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.Format(LocalTimeLayout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("local time: not a string: %s", b)
	}
	s := string(b[1 : len(b)-1])
	for _, layout := range []string{LocalTimeLayout, time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(), time.UTC)
			return nil
		}
	}
	return fmt.Errorf("local time: cannot parse %q", s)
}
