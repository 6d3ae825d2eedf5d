package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hibiken/asynq"
)

// GetEnvVariable reads an environment variable with a fallback default.
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// UnmarshalTask decodes an asynq task payload into dest.
func UnmarshalTask(t *asynq.Task, dest interface{}) error {
	if len(t.Payload()) == 0 {
		return nil
	}
	if err := json.Unmarshal(t.Payload(), dest); err != nil {
		return fmt.Errorf("unmarshal task %s payload: %w", t.Type(), err)
	}
	return nil
}

// NormalizePagination clamps page/limit query values to sane bounds.
// Pages start at 1; limit is capped at 100 rows.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
