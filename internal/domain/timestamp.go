package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision,
// e.g. 2024-05-01T13:45:10.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", b)
	}
	parsed, err := time.Parse(time.RFC3339Nano, string(b[1:len(b)-1]))
	if err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}
	*t = NewTimestamp(parsed)
	return nil
}
