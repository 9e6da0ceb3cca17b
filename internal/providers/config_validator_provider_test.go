package providers

import (
	"testing"
	"time"

	"ard/internal/structures"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		Schedule: structures.ScheduleConfig{
			Interval: 24 * time.Hour,
			Timeout:  5 * time.Minute,
		},
		WebServer: structures.Server{
			Enabled: true,
			Host:    "0.0.0.0",
			Port:    8080,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Http: structures.HttpClientConfig{Timeout: 30 * time.Second},
		Twitter: structures.TwitterConfig{
			BaseURL:  "https://api.twitter.com",
			Token:    "tw-token",
			UserName: "gopher",
		},
		Notion: structures.NotionConfig{
			BaseURL:      "https://api.notion.com",
			Version:      "2022-06-28",
			Token:        "secret_abc",
			ParentPageID: "parent-page",
			PageTitle:    "Twitter activity",
			PageIcon:     "🧵",
			PageCoverURL: "https://images.example.com/cover.jpg",
			RateLimit:    3,
		},
		Chart: structures.ChartConfig{
			BaseURL:    "https://quickchart.io",
			Width:      1000,
			Height:     300,
			BarColor:   "darkgreen",
			BarPattern: "diagonal-right-left",
		},
		Storage: structures.StorageConfig{
			AccountName: "account",
			AccountKey:  "a2V5",
			Container:   "charts",
		},
		Report: structures.ReportConfig{
			TimeZone:   "UTC",
			TimeFormat: "2.1.2006, 15:04:05",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_MissingSecrets(t *testing.T) {
	cases := map[string]func(c *structures.Config){
		"notion token":  func(c *structures.Config) { c.Notion.Token = "" },
		"parent page":   func(c *structures.Config) { c.Notion.ParentPageID = "" },
		"twitter token": func(c *structures.Config) { c.Twitter.Token = "" },
		"twitter user":  func(c *structures.Config) { c.Twitter.UserName = "" },
		"account name":  func(c *structures.Config) { c.Storage.AccountName = "" },
		"account key":   func(c *structures.Config) { c.Storage.AccountKey = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)
			assert.Error(t, NewCnfValidator(c).Validate())
		})
	}
}

func TestConfigValidator_LookbackOutOfRange(t *testing.T) {
	c := validConfig()
	c.Twitter.LookbackDays = 8
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_ScheduleAt(t *testing.T) {
	c := validConfig()
	c.Schedule.At = "04:30"
	assert.NoError(t, NewCnfValidator(c).Validate())

	c.Schedule.At = "4h30"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_ScheduleAtNeedsDailyInterval(t *testing.T) {
	c := validConfig()
	c.Schedule.Interval = time.Hour
	c.Schedule.At = "04:30"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_UnknownTimeZone(t *testing.T) {
	c := validConfig()
	c.Report.TimeZone = "Mars/Olympus_Mons"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_NotionRateLimit(t *testing.T) {
	c := validConfig()
	c.Notion.RateLimit = 0
	assert.NoError(t, NewCnfValidator(c).Validate())

	c.Notion.RateLimit = -1
	assert.Error(t, NewCnfValidator(c).Validate())
}
