package service

import (
	"fmt"
	"time"
)

// Period: granularitas bucket untuk trend query.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod menormalisasi token period; token tidak dikenal jatuh ke
// monthly, bukan error.
func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return Period(raw)
	default:
		return PeriodMonthly
	}
}

// BucketKey menghasilkan kunci bucket kalender untuk satu timestamp.
// daily: YYYY-MM-DD, weekly: ISO year-week, monthly: YYYY-MM, yearly: YYYY.
func BucketKey(p Period, t time.Time) string {
	switch p {
	case PeriodDaily:
		return t.Format("2006-01-02")
	case PeriodWeekly:
		y, w := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	case PeriodYearly:
		return t.Format("2006")
	default:
		return t.Format("2006-01")
	}
}

// BucketExpr: ekspresi to_char Postgres yang konsisten dengan BucketKey.
func BucketExpr(p Period, col string) string {
	switch p {
	case PeriodDaily:
		return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", col)
	case PeriodWeekly:
		return fmt.Sprintf(`to_char(%s, 'IYYY-"W"IW')`, col)
	case PeriodYearly:
		return fmt.Sprintf("to_char(%s, 'YYYY')", col)
	default:
		return fmt.Sprintf("to_char(%s, 'YYYY-MM')", col)
	}
}
