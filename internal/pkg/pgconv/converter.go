package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// MinutesFromPgtypeTime converts a PostgreSQL time-of-day column value to
// whole minutes since midnight; nil for NULL.
func MinutesFromPgtypeTime(pt pgtype.Time) *int {
	if !pt.Valid {
		return nil
	}
	minutes := int(pt.Microseconds / 60_000_000)
	return &minutes
}

// MinutesToPgtypeTime is the write-side counterpart of MinutesFromPgtypeTime.
func MinutesToPgtypeTime(minutes *int) pgtype.Time {
	if minutes == nil {
		return pgtype.Time{Valid: false}
	}
	return pgtype.Time{Microseconds: int64(*minutes) * 60_000_000, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
