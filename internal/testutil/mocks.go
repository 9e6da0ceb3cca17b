package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ard/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Contains reports whether any record of the given level contains substr.
func (m *MockLogger) Contains(level, substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level && strings.Contains(e.Message(), substr) {
			return true
		}
	}
	return false
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu          sync.Mutex
	Runs        map[string]int
	Steps       []string
	LastSuccess time.Time
	Totals      [3]int
	CacheHits   int
	CacheMisses int
	Rejected    int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits(_ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses(_ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) IncCacheRejected(_ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejected++
}
func (m *MockMetrics) SetCacheEntryBytes(_ string, _ int) {}
func (m *MockMetrics) IncRunsTotal(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Runs == nil {
		m.Runs = make(map[string]int)
	}
	m.Runs[result]++
}
func (m *MockMetrics) ObserveRunDuration(_ time.Duration) {}
func (m *MockMetrics) ObserveStepDuration(step string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Steps = append(m.Steps, step)
}
func (m *MockMetrics) SetLastSuccess(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastSuccess = t
}
func (m *MockMetrics) SetReportTotals(total, days, zeroDays int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Totals = [3]int{total, days, zeroDays}
}

func (m *MockMetrics) RunCount(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Runs[result]
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
	// SetErr, when set, makes Set refuse every write.
	SetErr error
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = value
	return nil
}

// FakeContainer is an in-memory blob container with injectable failures.
type FakeContainer struct {
	mu          sync.Mutex
	BaseURL     string
	Present     bool
	Blobs       map[string][]byte
	Types       map[string]string
	CreateCalls int
	ExistsErr   error
	CreateErr   error
	UploadErr   error
}

func NewFakeContainer(baseURL string) *FakeContainer {
	return &FakeContainer{
		BaseURL: baseURL,
		Blobs:   make(map[string][]byte),
		Types:   make(map[string]string),
	}
}

func (f *FakeContainer) Exists(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ExistsErr != nil {
		return false, f.ExistsErr
	}
	return f.Present, nil
}

func (f *FakeContainer) Create(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.Present = true
	return nil
}

func (f *FakeContainer) Upload(_ context.Context, name string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UploadErr != nil {
		return f.UploadErr
	}
	f.Blobs[name] = append([]byte(nil), data...)
	f.Types[name] = contentType
	return nil
}

func (f *FakeContainer) URL() string {
	return f.BaseURL
}
