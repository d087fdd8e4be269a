package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduanalytics_backend/internals/features/etl/model"
)

// memJobStore: implementasi in-memory untuk menguji lifecycle runner
// tanpa database.
type memJobStore struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]model.ETLJobLogModel
}

func newMemJobStore() *memJobStore {
	return &memJobStore{jobs: map[uuid.UUID]model.ETLJobLogModel{}}
}

func (s *memJobStore) Create(job *model.ETLJobLogModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.ETLJobID == uuid.Nil {
		job.ETLJobID = uuid.New()
	}
	s.jobs[job.ETLJobID] = *job
	return nil
}

func (s *memJobStore) Get(id uuid.UUID) (model.ETLJobLogModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return model.ETLJobLogModel{}, errors.New("job tidak ditemukan")
	}
	return job, nil
}

func (s *memJobStore) Status(id uuid.UUID) (model.JobStatus, error) {
	job, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return job.ETLJobStatus, nil
}

func (s *memJobStore) UpdateProgress(id uuid.UUID, processed, successful, failed int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.jobs[id]
	job.ETLJobProcessed = processed
	job.ETLJobSuccessful = successful
	job.ETLJobFailed = failed
	s.jobs[id] = job
	return nil
}

func (s *memJobStore) Finish(id uuid.UUID, status model.JobStatus, errMsg *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.jobs[id]
	// kontrak jobStore: status terminal final
	if job.IsTerminal() {
		return nil
	}
	job.ETLJobStatus = status
	job.ETLJobError = errMsg
	s.jobs[id] = job
	return nil
}

func (s *memJobStore) List(status *model.JobStatus, kind *string, limit int) ([]model.ETLJobLogModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ETLJobLogModel
	for _, job := range s.jobs {
		if status != nil && job.ETLJobStatus != *status {
			continue
		}
		if kind != nil && job.ETLJobKind != *kind {
			continue
		}
		out = append(out, job)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func makeRows(n int) []map[string]string {
	rows := make([]map[string]string, n)
	for i := range rows {
		rows[i] = map[string]string{"n": "x"}
	}
	return rows
}

func startJob(store *memJobStore, total int64) uuid.UUID {
	job := model.ETLJobLogModel{
		ETLJobKind:      string(JobKindStudent),
		ETLJobStatus:    model.JobStatusRunning,
		ETLJobFileName:  "students.csv",
		ETLJobTotalRows: total,
	}
	_ = store.Create(&job)
	return job.ETLJobID
}

func TestRunnerCompletesWithRowFailures(t *testing.T) {
	store := newMemJobStore()
	r := &Runner{store: store, progressEvery: 2}
	jobID := startJob(store, 5)

	// baris ke-2 dan ke-4 gagal; kegagalan baris cuma dihitung
	i := 0
	r.run(jobID, makeRows(5), func(row map[string]string) error {
		i++
		if i%2 == 0 {
			return errors.New("baris rusak")
		}
		return nil
	})

	job, err := store.Get(jobID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, job.ETLJobStatus)
	assert.Equal(t, int64(5), job.ETLJobProcessed)
	assert.Equal(t, int64(3), job.ETLJobSuccessful)
	assert.Equal(t, int64(2), job.ETLJobFailed)
	assert.Nil(t, job.ETLJobError)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	store := newMemJobStore()
	r := &Runner{store: store, progressEvery: 2}
	jobID := startJob(store, 100)

	processed := 0
	r.run(jobID, makeRows(100), func(row map[string]string) error {
		processed++
		if processed == 3 {
			// cancel di tengah: runner berhenti di checkpoint berikutnya
			require.NoError(t, store.Finish(jobID, model.JobStatusCancelled, nil))
		}
		return nil
	})

	job, err := store.Get(jobID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCancelled, job.ETLJobStatus)
	assert.Less(t, job.ETLJobProcessed, int64(100))
	assert.Equal(t, job.ETLJobProcessed, job.ETLJobSuccessful)
}

func TestRunnerCancelAfterLastCheckpointStaysCancelled(t *testing.T) {
	store := newMemJobStore()
	// progressEvery > jumlah baris: cancel tidak pernah terlihat di
	// checkpoint mana pun
	r := &Runner{store: store, progressEvery: 100}
	jobID := startJob(store, 5)

	processed := 0
	r.run(jobID, makeRows(5), func(row map[string]string) error {
		processed++
		if processed == 3 {
			job, err := r.Cancel(jobID)
			require.NoError(t, err)
			require.Equal(t, model.JobStatusCancelled, job.ETLJobStatus)
		}
		return nil
	})

	// cancel sudah diterima caller; selesainya loop tidak boleh
	// menimpanya dengan completed
	job, err := store.Get(jobID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCancelled, job.ETLJobStatus)
	assert.Equal(t, int64(5), job.ETLJobProcessed)
}

func TestRunnerRecoversFromPanic(t *testing.T) {
	store := newMemJobStore()
	r := &Runner{store: store, progressEvery: 10}
	jobID := startJob(store, 3)

	r.run(jobID, makeRows(3), func(row map[string]string) error {
		panic("loader meledak")
	})

	job, err := store.Get(jobID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusFailed, job.ETLJobStatus)
	require.NotNil(t, job.ETLJobError)
	assert.Contains(t, *job.ETLJobError, "panic")
}

func TestRunnerCancelOnlyWhenRunning(t *testing.T) {
	store := newMemJobStore()
	r := &Runner{store: store, progressEvery: 10}
	jobID := startJob(store, 0)

	// cancel saat running: sukses
	job, err := r.Cancel(jobID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCancelled, job.ETLJobStatus)

	// cancel kedua: job sudah terminal
	_, err = r.Cancel(jobID)
	assert.Error(t, err)

	// job selesai juga tidak bisa dibatalkan
	doneID := startJob(store, 0)
	require.NoError(t, store.Finish(doneID, model.JobStatusCompleted, nil))
	_, err = r.Cancel(doneID)
	assert.Error(t, err)
}
