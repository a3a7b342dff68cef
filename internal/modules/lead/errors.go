package lead

import "errors"

var (
	ErrNotConfigured = errors.New("telegram_not_configured")
)
