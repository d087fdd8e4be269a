package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	whModel "eduanalytics_backend/internals/features/warehouse/model"
)

// TimeDimensionService mengelola dim_time: generate range tanggal yang
// kontigu dan resolve tanggal fact ke time_id.
type TimeDimensionService struct {
	DB *gorm.DB
}

func NewTimeDimensionService(db *gorm.DB) *TimeDimensionService {
	return &TimeDimensionService{DB: db}
}

// GenerateRange membuat satu baris per tanggal untuk [start, end], tanpa gap.
// Idempotent: tanggal yang sudah ada dilewati (ON CONFLICT DO NOTHING).
func (s *TimeDimensionService) GenerateRange(start, end time.Time) (int, error) {
	start = start.UTC().Truncate(24 * time.Hour)
	end = end.UTC().Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0, fmt.Errorf("invalid time range: end %s before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	rows := make([]whModel.TimeModel, 0, 366)
	inserted := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rows = append(rows, whModel.NewTimeRow(d))

		if len(rows) == 366 {
			n, err := s.insertBatch(rows)
			if err != nil {
				return inserted, err
			}
			inserted += n
			rows = rows[:0]
		}
	}
	if len(rows) > 0 {
		n, err := s.insertBatch(rows)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func (s *TimeDimensionService) insertBatch(rows []whModel.TimeModel) (int, error) {
	res := s.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "time_date"}},
			DoNothing: true,
		}).
		Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// TimeIDForDate resolve tanggal ke baris dim_time. Setiap fact wajib punya
// time row; tanggal di luar range yang sudah digenerate = error.
func (s *TimeDimensionService) TimeIDForDate(d time.Time) (uuid.UUID, error) {
	var row whModel.TimeModel
	err := s.DB.
		Where("time_date = ?", d.UTC().Truncate(24*time.Hour).Format("2006-01-02")).
		First(&row).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("no dim_time row for %s: %w", d.Format("2006-01-02"), err)
	}
	return row.TimeID, nil
}

// EnsureDate memastikan time row untuk tanggal tsb ada, lalu mengembalikan id-nya.
// Dipakai jalur ETL supaya load tidak gagal hanya karena range belum digenerate.
func (s *TimeDimensionService) EnsureDate(d time.Time) (uuid.UUID, error) {
	if id, err := s.TimeIDForDate(d); err == nil {
		return id, nil
	}
	if _, err := s.GenerateRange(d, d); err != nil {
		return uuid.Nil, err
	}
	return s.TimeIDForDate(d)
}
