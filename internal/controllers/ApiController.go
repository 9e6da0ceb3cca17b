package controllers

import (
	"context"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"ard/internal/job"
	"ard/internal/job/interfaces"
	"ard/internal/providers"
	"ard/internal/structures"
)

type ApiController struct {
	logger  providers.Logger
	job     interfaces.JobInterface
	cache   providers.CacheProviderInterface
	timeout time.Duration
}

func NewApiController(logger providers.Logger, job interfaces.JobInterface, cache providers.CacheProviderInterface, conf *structures.Config) *ApiController {
	return &ApiController{
		logger:  logger,
		job:     job,
		cache:   cache,
		timeout: conf.Schedule.Timeout,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	gson, _ := json.Marshal(errorResponse{Error: msg})
	writeJSON(w, status, gson)
}

// GetReport serves the last successful run as cached by the job.
func (ac *ApiController) GetReport(w http.ResponseWriter, r *http.Request) {
	data, ok := ac.cache.Get(job.LastResultKey)
	if !ok {
		writeError(w, http.StatusNotFound, "no report has been published yet")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// TriggerRun runs the job synchronously. The run outlives a disconnected
// client and is bounded by schedule.timeout instead.
func (ac *ApiController) TriggerRun(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), ac.timeout)
	defer cancel()

	ac.logger.Infof(providers.TypeHTTP, "Manual run requested from %s", r.RemoteAddr)
	result, err := ac.job.Run(ctx)
	if err != nil {
		ac.logger.Errorf(providers.TypeHTTP, "Manual run failed: %s", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, gson)
}
