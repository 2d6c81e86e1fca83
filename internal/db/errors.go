package db

import "fmt"

// MissingRecordError is returned when a single-record section has no row,
// which usually means the database was never seeded.
type MissingRecordError struct {
	Table string
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("no %s record found; run seed-db first", e.Table)
}
