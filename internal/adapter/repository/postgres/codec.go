package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/nordbok/bokforing/internal/domain"
)

// Dates are stored as DATE columns; the domain deals in ISO-8601
// strings. Conversion in both directions lives here.

func dateToPg(d domain.Date) pgtype.Date {
	t, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return pgtype.Date{}
	}

	return pgtype.Date{Time: t, Valid: true}
}

func pgToDate(d pgtype.Date) domain.Date {
	if !d.Valid {
		return ""
	}

	return domain.Date(d.Time.Format("2006-01-02"))
}

func timeToPg(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timePtrToPg(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}

	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func pgToTimePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}

	t := ts.Time

	return &t
}
