package models

import "time"

type RunResult struct {
	PageID     string                `json:"page_id"`
	ImageURL   string                `json:"image_url"`
	Report     *RecentActivityReport `json:"report"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
}

func (r *RunResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
