package domain

import "errors"

// Notice levels, used by the templates for styling
const (
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

const (
	MsgEmptyInput    = "Please enter a city name."
	MsgNetworkError  = "Network error. Please try again."
	MsgProviderError = "Unable to get weather."
)

// Notice is a single-display message shown after a redirect.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NoticeFor maps a lookup failure to the message the user sees.
// Errors outside the lookup taxonomy are reported as network errors.
func NoticeFor(err error) Notice {
	var provErr *ProviderError

	switch {
	case errors.Is(err, ErrEmptyInput):
		return Notice{Level: LevelWarning, Message: MsgEmptyInput}
	case errors.As(err, &provErr):
		msg := provErr.Message
		if msg == "" {
			msg = MsgProviderError
		}
		return Notice{Level: LevelDanger, Message: "Error: " + msg}
	default:
		return Notice{Level: LevelDanger, Message: MsgNetworkError}
	}
}
