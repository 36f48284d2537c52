package batch

import "github.com/google/uuid"

type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job is one file's trip through the converter. Jobs are created per
// matched directory entry and discarded with the run's summary.
type Job struct {
	ID           string
	InputPath    string
	OutputPath   string
	Status       JobStatus
	ErrorMessage string
}

func NewJob(inputPath string) *Job {
	return &Job{
		ID:        uuid.New().String(),
		InputPath: inputPath,
		Status:    StatusPending,
	}
}
