package providers

import "time"

// local test doubles; testutil imports providers, so it cannot be used here.

type testLogger struct{}

func (m *testLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *testLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *testLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Close()                                        {}

type testMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            map[string]int
	misses          map[string]int
	rejected        map[string]int
	entryBytes      map[string]int
}

func newTestMetrics() *testMetrics {
	return &testMetrics{
		hits:       map[string]int{},
		misses:     map[string]int{},
		rejected:   map[string]int{},
		entryBytes: map[string]int{},
	}
}

func (m *testMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *testMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *testMetrics) IncCacheHits(key string)                          { m.hits[key]++ }
func (m *testMetrics) IncCacheMisses(key string)                        { m.misses[key]++ }
func (m *testMetrics) IncCacheRejected(key string)                      { m.rejected[key]++ }
func (m *testMetrics) SetCacheEntryBytes(key string, size int)          { m.entryBytes[key] = size }
func (m *testMetrics) IncRunsTotal(_ string)                            {}
func (m *testMetrics) ObserveRunDuration(_ time.Duration)               {}
func (m *testMetrics) ObserveStepDuration(_ string, _ time.Duration)    {}
func (m *testMetrics) SetLastSuccess(_ time.Time)                       {}
func (m *testMetrics) SetReportTotals(_, _, _ int)                      {}
