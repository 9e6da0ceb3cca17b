package providers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ard/internal/structures"
)

var envBindings = map[string]string{
	"logger.level":        "ARD_LOG_LEVEL",
	"logger.dir":          "ARD_LOG_DIR",
	"schedule.interval":   "ARD_SCHEDULE_INTERVAL",
	"schedule.at":         "ARD_SCHEDULE_AT",
	"schedule.runOnStart": "ARD_RUN_ON_START",
	"webServer.port":      "ARD_PORT",
	"cache.enabled":       "ARD_CACHE_ENABLED",
	"metrics.enabled":     "ARD_METRICS_ENABLED",
	"notion.token":        "NOTION_API_TOKEN",
	"notion.parentPageId": "NOTION_PAGE_ID",
	"notion.pageTitle":    "NOTION_PAGE_TITLE",
	"twitter.token":       "TWITTER_USER_TOKEN",
	"twitter.userName":    "TWITTER_USER_NAME",
	"storage.accountName": "STORAGE_ACCOUNT_NAME",
	"storage.accountKey":  "STORAGE_ACCOUNT_KEY",
	"storage.container":   "STORAGE_CONTAINER",
	"report.timeZone":     "ARD_REPORT_TIMEZONE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("schedule.interval", 24*time.Hour)
	v.SetDefault("schedule.timeout", 5*time.Minute)
	v.SetDefault("webServer.enabled", true)
	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 8080)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 1)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("twitter.baseURL", "https://api.twitter.com")
	v.SetDefault("notion.baseURL", "https://api.notion.com")
	v.SetDefault("notion.version", "2022-06-28")
	v.SetDefault("notion.pageTitle", "Twitter activity")
	v.SetDefault("notion.pageIcon", "🧵")
	v.SetDefault("notion.pageCoverURL", "https://unsplash.com/photos/ImgYcloGOCU/download?force=true&w=2400")
	v.SetDefault("notion.rateLimit", 3)
	v.SetDefault("chart.baseURL", "https://quickchart.io")
	v.SetDefault("chart.width", 1000)
	v.SetDefault("chart.height", 300)
	v.SetDefault("chart.barColor", "darkgreen")
	v.SetDefault("chart.barPattern", "diagonal-right-left")
	v.SetDefault("chart.background", "white")
	v.SetDefault("storage.container", "charts")
	v.SetDefault("report.timeZone", "UTC")
	v.SetDefault("report.timeFormat", "2.1.2006, 15:04:05")
}

// NewConfigProvider merges defaults, an optional YAML file and the environment.
// A missing config file is not an error: the job can be configured from env alone.
func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	err := v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	conf.AppName = "ActivityReportDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	return &conf, nil
}
