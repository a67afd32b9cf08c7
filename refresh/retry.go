// Copyright 2026 Namankura Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package refresh

import (
	"context"
	"log/slog"
	"time"
)

// RetryWithBackoff runs op up to maxAttempts times, doubling the delay
// after each failure. The refresh pipeline wraps embedding calls in it,
// since those fail transiently while a model server is loading or
// saturated. Returns the last failure once attempts are exhausted; a
// cancelled context wins over retrying.
func RetryWithBackoff(ctx context.Context, op func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	delay := baseDelay
	var failure error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		failure = op()
		if failure == nil {
			if attempt > 1 {
				slog.Debug("refresh step recovered", "attempt", attempt)
			}
			return nil
		}
		slog.Debug("refresh step failed", "attempt", attempt, "of", maxAttempts, "err", failure)

		if attempt == maxAttempts {
			break
		}

		wait := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			wait.Stop()
			return ctx.Err()
		case <-wait.C:
		}
		delay *= 2
	}

	return failure
}
