package models

import "time"

// JobStatus is a point-in-time view of the report job for the health endpoint.
type JobStatus struct {
	Running     bool      `json:"running"`
	Runs        int64     `json:"runs"`
	LastSuccess time.Time `json:"last_success"`
	LastError   string    `json:"last_error,omitempty"`
	LastErrorAt time.Time `json:"last_error_at"`
}
