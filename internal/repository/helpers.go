package repository

import "time"

// nullableTime maps the zero time to SQL NULL so unknown publication times
// stay NULL in the database.
func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
