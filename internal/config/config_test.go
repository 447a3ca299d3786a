package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIngestBudgetCoversAllAttemptsAndBackoff(t *testing.T) {
	g := GeminiConfig{
		RequestTimeout:    60 * time.Second,
		RetryMaxAttempts:  2,
		RetryInitialDelay: 2 * time.Second,
	}

	// Two full attempts plus one backoff sleep between them.
	assert.Equal(t, 122*time.Second, g.IngestBudget())
}

func TestIngestBudgetSingleAttemptHasNoBackoff(t *testing.T) {
	g := GeminiConfig{
		RequestTimeout:    60 * time.Second,
		RetryMaxAttempts:  1,
		RetryInitialDelay: 2 * time.Second,
	}

	assert.Equal(t, 60*time.Second, g.IngestBudget())
}

func TestIngestBudgetExponentialBackoff(t *testing.T) {
	g := GeminiConfig{
		RequestTimeout:    10 * time.Second,
		RetryMaxAttempts:  3,
		RetryInitialDelay: 2 * time.Second,
	}

	// 3 attempts of 10s plus sleeps of 2s and 4s.
	assert.Equal(t, 36*time.Second, g.IngestBudget())
}
