package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewTimeRowDerivedFields(t *testing.T) {
	// 2024-03-15 itu Jumat
	row := NewTimeRow(date(2024, time.March, 15))

	assert.Equal(t, 2024, row.TimeYear)
	assert.Equal(t, 1, row.TimeQuarter)
	assert.Equal(t, 3, row.TimeMonth)
	assert.Equal(t, "March", row.TimeMonthName)
	assert.Equal(t, 15, row.TimeDay)
	assert.Equal(t, 5, row.TimeDayOfWeek)
	assert.Equal(t, "Friday", row.TimeDayName)
	assert.False(t, row.TimeIsWeekend)
	assert.False(t, row.TimeIsHoliday)
	assert.Equal(t, "Spring", row.TimeSemester)
	assert.Equal(t, "2023-2024", row.TimeAcademicYear)
}

func TestNewTimeRowDayOfWeek(t *testing.T) {
	tests := []struct {
		day     time.Time
		dow     int
		weekend bool
	}{
		{date(2024, time.January, 8), 1, false},  // Senin
		{date(2024, time.January, 13), 6, true},  // Sabtu
		{date(2024, time.January, 14), 7, true},  // Minggu
	}
	for _, tt := range tests {
		row := NewTimeRow(tt.day)
		assert.Equal(t, tt.dow, row.TimeDayOfWeek, tt.day.Format("2006-01-02"))
		assert.Equal(t, tt.weekend, row.TimeIsWeekend, tt.day.Format("2006-01-02"))
	}
}

func TestIsFixedHoliday(t *testing.T) {
	assert.True(t, IsFixedHoliday(date(2024, time.January, 1)))
	assert.True(t, IsFixedHoliday(date(2024, time.July, 4)))
	assert.True(t, IsFixedHoliday(date(2024, time.December, 25)))
	assert.False(t, IsFixedHoliday(date(2024, time.December, 24)))
	assert.False(t, IsFixedHoliday(date(2024, time.August, 17)))
}

func TestSemesterFor(t *testing.T) {
	tests := []struct {
		month    time.Month
		expected string
	}{
		{time.January, "Spring"},
		{time.May, "Spring"},
		{time.June, "Summer"},
		{time.August, "Summer"},
		{time.September, "Fall"},
		{time.December, "Fall"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SemesterFor(date(2024, tt.month, 10)), tt.month.String())
	}
}

func TestAcademicYearFor(t *testing.T) {
	// berganti di Agustus
	assert.Equal(t, "2023-2024", AcademicYearFor(date(2024, time.July, 31)))
	assert.Equal(t, "2024-2025", AcademicYearFor(date(2024, time.August, 1)))
	assert.Equal(t, "2024-2025", AcademicYearFor(date(2025, time.January, 15)))
}
