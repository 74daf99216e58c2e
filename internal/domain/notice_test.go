package domain

import (
	"context"
	"fmt"
	"testing"
)

func TestNoticeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Notice
	}{
		{
			name:     "empty input",
			err:      ErrEmptyInput,
			expected: Notice{Level: LevelWarning, Message: "Please enter a city name."},
		},
		{
			name:     "network error",
			err:      &NetworkError{Err: context.DeadlineExceeded},
			expected: Notice{Level: LevelDanger, Message: "Network error. Please try again."},
		},
		{
			name:     "provider message",
			err:      &ProviderError{StatusCode: 404, Message: "city not found"},
			expected: Notice{Level: LevelDanger, Message: "Error: city not found"},
		},
		{
			name:     "provider without message",
			err:      &ProviderError{StatusCode: 500},
			expected: Notice{Level: LevelDanger, Message: "Error: Unable to get weather."},
		},
		{
			name:     "wrapped provider error",
			err:      fmt.Errorf("lookup: %w", &ProviderError{StatusCode: 401, Message: "Invalid API key"}),
			expected: Notice{Level: LevelDanger, Message: "Error: Invalid API key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoticeFor(tt.err); got != tt.expected {
				t.Errorf("NoticeFor(%v) = %+v, want %+v", tt.err, got, tt.expected)
			}
		})
	}
}
