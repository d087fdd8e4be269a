package model

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// ETLJobLogModel: satu baris per import job. Counter di-update berkala
// selama job jalan, jadi status endpoint bisa dipakai buat polling progress.
type ETLJobLogModel struct {
	ETLJobID          uuid.UUID  `gorm:"column:etl_job_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ETLJobKind        string     `gorm:"column:etl_job_kind;type:varchar(30);not null;index:idx_etl_job_kind" json:"kind"`
	ETLJobStatus      JobStatus  `gorm:"column:etl_job_status;type:varchar(20);not null;index:idx_etl_job_status" json:"status"`
	ETLJobFileName    string     `gorm:"column:etl_job_file_name;type:varchar(255);not null" json:"file_name"`
	ETLJobFilePath    string     `gorm:"column:etl_job_file_path;type:varchar(500);not null" json:"-"`
	ETLJobTotalRows   int64      `gorm:"column:etl_job_total_rows;default:0" json:"total_rows"`
	ETLJobProcessed   int64      `gorm:"column:etl_job_processed;default:0" json:"processed_rows"`
	ETLJobSuccessful  int64      `gorm:"column:etl_job_successful;default:0" json:"successful_rows"`
	ETLJobFailed      int64      `gorm:"column:etl_job_failed;default:0" json:"failed_rows"`
	ETLJobError       *string    `gorm:"column:etl_job_error;type:text" json:"error_message"`
	ETLJobStartedAt   time.Time  `gorm:"column:etl_job_started_at;autoCreateTime" json:"started_at"`
	ETLJobFinishedAt  *time.Time `gorm:"column:etl_job_finished_at" json:"finished_at"`
}

func (ETLJobLogModel) TableName() string { return "etl_job_logs" }

// IsTerminal: job sudah tidak berjalan lagi.
func (m ETLJobLogModel) IsTerminal() bool {
	return m.ETLJobStatus != JobStatusRunning
}
