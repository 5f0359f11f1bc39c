package model

import (
	"database/sql/driver"
	"time"

	"github.com/jinzhu/now"

	"autoparts/internal/errors"
)

const timestampLayout = "2006-01-02 15:04:05"

// Timestamp is a nullable UTC time stored as "YYYY-MM-DD HH:MM:SS" text, the layout SQLite's
// CURRENT_TIMESTAMP produces. Rows written by older app versions use that layout in TEXT columns.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// NewTimestamp wraps t, truncated to whole seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Second), Valid: true}
}

// Ptr returns nil for NULL.
func (ts Timestamp) Ptr() *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time

	return &t
}

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*ts = Timestamp{}

		return nil
	case time.Time:
		*ts = Timestamp{Time: v.UTC(), Valid: true}

		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case int64:
		*ts = Timestamp{Time: time.Unix(v, 0).UTC(), Valid: true}

		return nil
	default:
		return errors.Errorf("unsupported timestamp value %T", value)
	}
}

func (ts *Timestamp) parse(s string) error {
	if s == "" {
		*ts = Timestamp{}

		return nil
	}

	t, err := now.ParseInLocation(time.UTC, s)
	if err != nil {
		return errors.Wrapf(err, "parse timestamp %q", s)
	}
	*ts = Timestamp{Time: t.UTC(), Valid: true}

	return nil
}

// Value implements driver.Valuer.
func (ts Timestamp) Value() (driver.Value, error) {
	if !ts.Valid {
		return nil, nil
	}

	return ts.Time.UTC().Format(timestampLayout), nil
}
