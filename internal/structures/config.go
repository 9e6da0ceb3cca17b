package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host" validate:"required"`
	Port    int    `yaml:"port" validate:"required|uint|min:1"`
}

type ScheduleConfig struct {
	Interval   time.Duration `yaml:"interval" validate:"required|min:1"`
	At         string        `yaml:"at"`
	Timeout    time.Duration `yaml:"timeout" validate:"required|min:1"`
	RunOnStart bool          `yaml:"runOnStart"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type HttpClientConfig struct {
	Timeout time.Duration `yaml:"timeout" validate:"required|min:1"`
}

type TwitterConfig struct {
	BaseURL      string `yaml:"baseURL" validate:"required|fullUrl"`
	Token        string `yaml:"token" validate:"required"`
	UserName     string `yaml:"userName" validate:"required"`
	LookbackDays int    `yaml:"lookbackDays" validate:"int|min:0|max:7"`
}

type NotionConfig struct {
	BaseURL      string  `yaml:"baseURL" validate:"required|fullUrl"`
	Version      string  `yaml:"version" validate:"required"`
	Token        string  `yaml:"token" validate:"required"`
	ParentPageID string  `yaml:"parentPageId" validate:"required"`
	PageTitle    string  `yaml:"pageTitle" validate:"required"`
	PageIcon     string  `yaml:"pageIcon" validate:"required"`
	PageCoverURL string  `yaml:"pageCoverURL" validate:"required|fullUrl"`
	RateLimit    float64 `yaml:"rateLimit" validate:"min:0"`
}

type ChartConfig struct {
	BaseURL    string `yaml:"baseURL" validate:"required|fullUrl"`
	Width      int    `yaml:"width" validate:"required|uint|min:1"`
	Height     int    `yaml:"height" validate:"required|uint|min:1"`
	BarColor   string `yaml:"barColor" validate:"required"`
	BarPattern string `yaml:"barPattern" validate:"required"`
	Background string `yaml:"background"`
}

type StorageConfig struct {
	AccountName string `yaml:"accountName" validate:"required"`
	AccountKey  string `yaml:"accountKey" validate:"required"`
	ServiceURL  string `yaml:"serviceURL"`
	Container   string `yaml:"container" validate:"required"`
}

type ReportConfig struct {
	TimeZone   string `yaml:"timeZone" validate:"required"`
	TimeFormat string `yaml:"timeFormat" validate:"required"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Schedule  ScheduleConfig   `yaml:"schedule"`
	WebServer Server           `yaml:"webServer"`
	Logger    LoggerConfig     `yaml:"logger"`
	Cache     CacheConfig      `yaml:"cache"`
	Metrics   MetricsConfig    `yaml:"metrics"`
	Http      HttpClientConfig `yaml:"http"`
	Twitter   TwitterConfig    `yaml:"twitter"`
	Notion    NotionConfig     `yaml:"notion"`
	Chart     ChartConfig      `yaml:"chart"`
	Storage   StorageConfig    `yaml:"storage"`
	Report    ReportConfig     `yaml:"report"`
}
