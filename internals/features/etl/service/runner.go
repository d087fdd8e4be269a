package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/configs"
	"eduanalytics_backend/internals/features/etl/model"
)

// jobStore memisahkan lifecycle job dari persistence-nya supaya runner
// bisa diuji tanpa database. Finish hanya berlaku untuk job yang masih
// running; job yang sudah terminal tidak pernah berpindah status lagi.
type jobStore interface {
	Create(job *model.ETLJobLogModel) error
	Get(id uuid.UUID) (model.ETLJobLogModel, error)
	Status(id uuid.UUID) (model.JobStatus, error)
	UpdateProgress(id uuid.UUID, processed, successful, failed int64) error
	Finish(id uuid.UUID, status model.JobStatus, errMsg *string) error
	List(status *model.JobStatus, kind *string, limit int) ([]model.ETLJobLogModel, error)
}

/* =========================================================
   GORM-backed store
   ========================================================= */

type gormJobStore struct {
	db *gorm.DB
}

func (s gormJobStore) Create(job *model.ETLJobLogModel) error {
	return s.db.Create(job).Error
}

func (s gormJobStore) Get(id uuid.UUID) (model.ETLJobLogModel, error) {
	var job model.ETLJobLogModel
	err := s.db.Where("etl_job_id = ?", id).First(&job).Error
	return job, err
}

func (s gormJobStore) Status(id uuid.UUID) (model.JobStatus, error) {
	job, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return job.ETLJobStatus, nil
}

func (s gormJobStore) UpdateProgress(id uuid.UUID, processed, successful, failed int64) error {
	return s.db.Model(&model.ETLJobLogModel{}).
		Where("etl_job_id = ?", id).
		Updates(map[string]any{
			"etl_job_processed":  processed,
			"etl_job_successful": successful,
			"etl_job_failed":     failed,
		}).Error
}

func (s gormJobStore) Finish(id uuid.UUID, status model.JobStatus, errMsg *string) error {
	// Status terminal itu final: hanya job running yang bisa ditransisikan.
	// Cancel yang diterima setelah checkpoint terakhir tidak boleh
	// tertimpa completed oleh runner.
	now := time.Now()
	return s.db.Model(&model.ETLJobLogModel{}).
		Where("etl_job_id = ? AND etl_job_status = ?", id, model.JobStatusRunning).
		Updates(map[string]any{
			"etl_job_status":      status,
			"etl_job_error":       errMsg,
			"etl_job_finished_at": now,
		}).Error
}

func (s gormJobStore) List(status *model.JobStatus, kind *string, limit int) ([]model.ETLJobLogModel, error) {
	q := s.db.Model(&model.ETLJobLogModel{})
	if status != nil {
		q = q.Where("etl_job_status = ?", *status)
	}
	if kind != nil {
		q = q.Where("etl_job_kind = ?", *kind)
	}
	var jobs []model.ETLJobLogModel
	err := q.Order("etl_job_started_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}

/* =========================================================
   Runner
   ========================================================= */

// rowInserter: sisi warehouse dari satu baris; di production selalu
// loader.LoadRow di atas *gorm.DB.
type rowInserter func(row map[string]string) error

// Runner mengeksekusi import job di goroutine terpisah. Progress ditulis
// tiap progressEvery baris, dan di titik yang sama status dicek ulang
// untuk cooperative cancel.
type Runner struct {
	store         jobStore
	progressEvery int
}

func NewRunner(db *gorm.DB) *Runner {
	every := configs.ETLProgressEvery
	if every <= 0 {
		every = 100
	}
	return &Runner{
		store:         gormJobStore{db: db},
		progressEvery: every,
	}
}

// Start membuat job log lalu menjalankan import async. Error yang
// dikembalikan hanya untuk kegagalan membuat job; kegagalan baris
// dilaporkan lewat counter.
func (r *Runner) Start(kind JobKind, fileName, filePath string, rows []map[string]string, insert rowInserter) (model.ETLJobLogModel, error) {
	job := model.ETLJobLogModel{
		ETLJobKind:      string(kind),
		ETLJobStatus:    model.JobStatusRunning,
		ETLJobFileName:  fileName,
		ETLJobFilePath:  filePath,
		ETLJobTotalRows: int64(len(rows)),
	}
	if err := r.store.Create(&job); err != nil {
		return model.ETLJobLogModel{}, err
	}

	go r.run(job.ETLJobID, rows, insert)
	return job, nil
}

func (r *Runner) run(jobID uuid.UUID, rows []map[string]string, insert rowInserter) {
	defer func() {
		if rec := recover(); rec != nil {
			msg := fmt.Sprintf("panic saat import: %v", rec)
			log.Printf("[ERROR] ETL job %s: %s", jobID, msg)
			_ = r.store.Finish(jobID, model.JobStatusFailed, &msg)
		}
	}()

	var processed, successful, failed int64
	for i, row := range rows {
		if err := insert(row); err != nil {
			failed++
		} else {
			successful++
		}
		processed++

		// Checkpoint: tulis progress + cek cancel
		if (i+1)%r.progressEvery == 0 {
			if err := r.store.UpdateProgress(jobID, processed, successful, failed); err != nil {
				log.Printf("[ERROR] ETL job %s: update progress: %v", jobID, err)
			}
			status, err := r.store.Status(jobID)
			if err == nil && status == model.JobStatusCancelled {
				log.Printf("[INFO] ETL job %s dibatalkan pada baris %d", jobID, processed)
				_ = r.store.UpdateProgress(jobID, processed, successful, failed)
				return
			}
		}
	}

	if err := r.store.UpdateProgress(jobID, processed, successful, failed); err != nil {
		log.Printf("[ERROR] ETL job %s: update progress akhir: %v", jobID, err)
	}
	if err := r.store.Finish(jobID, model.JobStatusCompleted, nil); err != nil {
		log.Printf("[ERROR] ETL job %s: tandai selesai: %v", jobID, err)
	}
}

// Cancel menandai job cancelled. Hanya job running yang bisa dibatalkan;
// runner berhenti di checkpoint berikutnya.
func (r *Runner) Cancel(id uuid.UUID) (model.ETLJobLogModel, error) {
	job, err := r.store.Get(id)
	if err != nil {
		return model.ETLJobLogModel{}, err
	}
	if job.IsTerminal() {
		return job, fmt.Errorf("job %s sudah %s, tidak bisa dibatalkan", id, job.ETLJobStatus)
	}
	if err := r.store.Finish(id, model.JobStatusCancelled, nil); err != nil {
		return model.ETLJobLogModel{}, err
	}

	// Finish bersyarat: kalau runner keburu selesai di antara Get dan
	// Finish, transisi no-op dan cancel dilaporkan gagal
	job, err = r.store.Get(id)
	if err != nil {
		return model.ETLJobLogModel{}, err
	}
	if job.ETLJobStatus != model.JobStatusCancelled {
		return job, fmt.Errorf("job %s sudah %s, tidak bisa dibatalkan", id, job.ETLJobStatus)
	}
	return job, nil
}

func (r *Runner) Get(id uuid.UUID) (model.ETLJobLogModel, error) {
	return r.store.Get(id)
}

func (r *Runner) List(status *model.JobStatus, kind *string, limit int) ([]model.ETLJobLogModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return r.store.List(status, kind, limit)
}
