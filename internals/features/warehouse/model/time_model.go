package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeModel: satu baris per tanggal kalender. Semua field turunan dihitung
// sekali saat baris dibuat dan tidak pernah dihitung ulang (denormalisasi
// disengaja untuk grouping temporal yang cepat).
type TimeModel struct {
	TimeID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:time_id" json:"time_id"`
	TimeDate time.Time `gorm:"type:date;not null;uniqueIndex;column:time_date"               json:"time_date"`

	TimeYear      int    `gorm:"not null;index;column:time_year"          json:"time_year"`
	TimeQuarter   int    `gorm:"not null;column:time_quarter"             json:"time_quarter"`
	TimeMonth     int    `gorm:"not null;index;column:time_month"         json:"time_month"`
	TimeMonthName string `gorm:"type:varchar(20);not null;column:time_month_name" json:"time_month_name"`
	TimeDay       int    `gorm:"not null;column:time_day"                 json:"time_day"`
	TimeDayOfWeek int    `gorm:"not null;column:time_day_of_week"         json:"time_day_of_week"`
	TimeDayName   string `gorm:"type:varchar(20);not null;column:time_day_name" json:"time_day_name"`
	TimeIsWeekend bool   `gorm:"not null;column:time_is_weekend"          json:"time_is_weekend"`
	TimeIsHoliday bool   `gorm:"not null;default:false;column:time_is_holiday" json:"time_is_holiday"`

	TimeSemester     string `gorm:"type:varchar(20);not null;index;column:time_semester"      json:"time_semester"`
	TimeAcademicYear string `gorm:"type:varchar(20);not null;index;column:time_academic_year" json:"time_academic_year"`
}

func (TimeModel) TableName() string { return "dim_time" }

// NewTimeRow menghitung seluruh atribut turunan untuk satu tanggal.
func NewTimeRow(d time.Time) TimeModel {
	d = d.UTC().Truncate(24 * time.Hour)

	// ISO-ish: Monday=1 .. Sunday=7
	dow := int(d.Weekday())
	if dow == 0 {
		dow = 7
	}

	return TimeModel{
		TimeDate:         d,
		TimeYear:         d.Year(),
		TimeQuarter:      (int(d.Month())-1)/3 + 1,
		TimeMonth:        int(d.Month()),
		TimeMonthName:    d.Month().String(),
		TimeDay:          d.Day(),
		TimeDayOfWeek:    dow,
		TimeDayName:      d.Weekday().String(),
		TimeIsWeekend:    dow >= 6,
		TimeIsHoliday:    IsFixedHoliday(d),
		TimeSemester:     SemesterFor(d),
		TimeAcademicYear: AcademicYearFor(d),
	}
}

// IsFixedHoliday: hanya hari libur tetap utama.
func IsFixedHoliday(d time.Time) bool {
	switch {
	case d.Month() == time.January && d.Day() == 1:
		return true
	case d.Month() == time.July && d.Day() == 4:
		return true
	case d.Month() == time.December && d.Day() == 25:
		return true
	}
	return false
}

// SemesterFor: Spring Jan–May, Summer Jun–Aug, Fall Sep–Dec.
func SemesterFor(d time.Time) string {
	switch m := int(d.Month()); {
	case m <= 5:
		return "Spring"
	case m <= 8:
		return "Summer"
	default:
		return "Fall"
	}
}

// AcademicYearFor: tahun akademik berganti di bulan Agustus.
func AcademicYearFor(d time.Time) string {
	y := d.Year()
	if int(d.Month()) >= 8 {
		return fmt.Sprintf("%d-%d", y, y+1)
	}
	return fmt.Sprintf("%d-%d", y-1, y)
}
