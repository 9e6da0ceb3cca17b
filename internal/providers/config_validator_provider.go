package providers

import (
	"fmt"
	"time"

	"github.com/gookit/validate"

	"ard/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	if cv.conf.Schedule.At != "" {
		if _, err := time.Parse("15:04", cv.conf.Schedule.At); err != nil {
			return fmt.Errorf("schedule.at must be HH:MM: %w", err)
		}
		if cv.conf.Schedule.Interval < 24*time.Hour {
			return fmt.Errorf("schedule.at requires an interval of at least 24h, got %s", cv.conf.Schedule.Interval)
		}
	}

	// Zero disables request pacing.
	if cv.conf.Notion.RateLimit < 0 {
		return fmt.Errorf("notion.rateLimit must not be negative, got %v", cv.conf.Notion.RateLimit)
	}

	if _, err := time.LoadLocation(cv.conf.Report.TimeZone); err != nil {
		return fmt.Errorf("unknown report.timeZone %q: %w", cv.conf.Report.TimeZone, err)
	}

	return nil
}
