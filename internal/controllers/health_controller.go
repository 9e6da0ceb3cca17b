package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"ard/internal/job/interfaces"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

type HealthController struct {
	job       interfaces.JobInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string     `json:"status"`
	Uptime        string     `json:"uptime"`
	UptimeSeconds float64    `json:"uptime_seconds"`
	Running       bool       `json:"running"`
	Runs          int64      `json:"runs"`
	LastSuccess   *time.Time `json:"last_success,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
	LastErrorAt   *time.Time `json:"last_error_at,omitempty"`
}

// Health reports "degraded" while the most recent run is a failure. The
// status code stays 200 either way.
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	st := hc.job.Status()
	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        statusOK,
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Running:       st.Running,
		Runs:          st.Runs,
		LastError:     st.LastError,
	}
	if !st.LastSuccess.IsZero() {
		resp.LastSuccess = &st.LastSuccess
	}
	if !st.LastErrorAt.IsZero() {
		resp.LastErrorAt = &st.LastErrorAt
		if st.LastErrorAt.After(st.LastSuccess) {
			resp.Status = statusDegraded
		}
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(job interfaces.JobInterface) *HealthController {
	return &HealthController{
		job:       job,
		startTime: time.Now(),
	}
}
