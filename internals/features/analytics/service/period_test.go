package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodDaily, ParsePeriod("daily"))
	assert.Equal(t, PeriodWeekly, ParsePeriod("weekly"))
	assert.Equal(t, PeriodMonthly, ParsePeriod("monthly"))
	assert.Equal(t, PeriodYearly, ParsePeriod("yearly"))

	// token tidak dikenal jatuh ke monthly
	assert.Equal(t, PeriodMonthly, ParsePeriod(""))
	assert.Equal(t, PeriodMonthly, ParsePeriod("hourly"))
	assert.Equal(t, PeriodMonthly, ParsePeriod("Monthly"))
}

func TestBucketKey(t *testing.T) {
	d := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-05", BucketKey(PeriodDaily, d))
	assert.Equal(t, "2024-W10", BucketKey(PeriodWeekly, d))
	assert.Equal(t, "2024-03", BucketKey(PeriodMonthly, d))
	assert.Equal(t, "2024", BucketKey(PeriodYearly, d))
}

func TestBucketKeyISOWeekYearBoundary(t *testing.T) {
	// 2024-12-30 jatuh di ISO week 1 tahun 2025
	d := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-W01", BucketKey(PeriodWeekly, d))
}

func TestBucketExpr(t *testing.T) {
	assert.Equal(t, "to_char(dim_time.time_date, 'YYYY-MM-DD')", BucketExpr(PeriodDaily, "dim_time.time_date"))
	assert.Equal(t, `to_char(dim_time.time_date, 'IYYY-"W"IW')`, BucketExpr(PeriodWeekly, "dim_time.time_date"))
	assert.Equal(t, "to_char(dim_time.time_date, 'YYYY-MM')", BucketExpr(PeriodMonthly, "dim_time.time_date"))
	assert.Equal(t, "to_char(dim_time.time_date, 'YYYY')", BucketExpr(PeriodYearly, "dim_time.time_date"))
}
