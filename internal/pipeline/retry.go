package pipeline

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/proplens/proplens/internal/genai"
)

// MaxRetries is how many times one section generation is attempted before
// the stub text is substituted.
const MaxRetries = 3

const (
	backoffBase = time.Second
	backoffCeil = 30 * time.Second
)

// IsRetryable checks if a generation error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *genai.RetryableError
	return errors.As(err, &retryErr)
}

// Backoff returns the wait before retry attempt n (0-indexed): exponential
// growth capped at backoffCeil, plus up to 50% jitter so concurrent section
// retries spread out instead of hammering the provider in lockstep.
func Backoff(attempt int) time.Duration {
	d := backoffBase << uint(attempt)
	if d > backoffCeil {
		d = backoffCeil
	}
	return d + rand.N(d/2)
}
