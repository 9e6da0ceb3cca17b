package interfaces

import (
	"context"

	"ard/internal/models"
)

type JobInterface interface {
	Run(ctx context.Context) (*models.RunResult, error)
	Status() models.JobStatus
	// Cancel aborts the in-flight run, whoever started it.
	Cancel()
}
