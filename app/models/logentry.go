package models

import (
	"github.com/go-playground/validator/v10"
)

const (
	LOG_LEVEL_INFO    = "info"
	LOG_LEVEL_ERROR   = "error"
	LOG_LEVEL_WARNING = "warning"
	LOG_LEVEL_DEBUG   = "debug"
)

// LogEntry is one record submitted to the backend log ingest by the
// in-page error reporter.
type LogEntry struct {
	Level   string                 `json:"level" validate:"required,oneof=info error warning debug"`
	Message string                 `json:"message" validate:"required"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (l *LogEntry) Validate() error {
	v := validator.New()

	return v.Struct(l)
}
