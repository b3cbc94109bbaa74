package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/proplens/proplens/internal/report"
)

// JobStatus represents the state of one analysis job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusGenerating JobStatus = "generating"
	StatusParsing    JobStatus = "parsing"
	StatusCompleted  JobStatus = "completed"
	StatusPartial    JobStatus = "partial"
	StatusFailed     JobStatus = "failed"
)

// Job tracks one address analysis from enqueue to parsed document. The
// parsed document lives only on the job and is discarded when the store's
// TTL evicts it; there is no persistence layer.
type Job struct {
	mu sync.Mutex

	ID      string `json:"job_id"`
	Address string `json:"address"`

	Status JobStatus `json:"status"`

	SectionsTotal  int      `json:"sections_total"`
	SectionsFailed []string `json:"sections_failed,omitempty"`
	Errors         []string `json:"errors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	document *report.Document
}

// NewJob creates a queued job for an address.
func NewJob(address string) *Job {
	now := time.Now()
	return &Job{
		ID:            uuid.NewString(),
		Address:       address,
		Status:        StatusQueued,
		SectionsTotal: 5,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.UpdatedAt = time.Now()
}

// AddError records an error message.
func (j *Job) AddError(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Errors = append(j.Errors, msg)
	j.UpdatedAt = time.Now()
}

// SetResult records the parsed document and which sections were stubbed.
func (j *Job) SetResult(doc *report.Document, failedSections []string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.document = doc
	j.SectionsFailed = failedSections
	j.UpdatedAt = time.Now()
}

// Snapshot is a read-only, JSON-safe copy of job state, including the
// document once parsing finished.
type Snapshot struct {
	ID             string           `json:"job_id"`
	Address        string           `json:"address"`
	Status         JobStatus        `json:"status"`
	SectionsTotal  int              `json:"sections_total"`
	SectionsFailed []string         `json:"sections_failed,omitempty"`
	Errors         []string         `json:"errors,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	Document       *report.Document `json:"document,omitempty"`
}

// Snapshot returns a copy of the job state safe to serialize.
func (j *Job) Snapshot() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return Snapshot{
		ID:             j.ID,
		Address:        j.Address,
		Status:         j.Status,
		SectionsTotal:  j.SectionsTotal,
		SectionsFailed: j.SectionsFailed,
		Errors:         j.Errors,
		CreatedAt:      j.CreatedAt,
		Document:       j.document,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction. A new
// analysis supersedes old ones naturally: stale jobs age out.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes jobs whose last update is past the TTL.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		stale := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if stale {
			delete(s.jobs, id)
		}
	}
}
