package models

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	retryAttempts uint = 5
	retryDelay         = 50 * time.Millisecond
)

// WithRetry runs fn until it succeeds, fails with an error other than
// ErrDatabaseBusy or the attempts are exhausted.
//
// fn must run in its own database transaction so that a failed
// attempt leaves no trace.
func WithRetry(ctx context.Context, fn func() error) error {
	return retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrDatabaseBusy)
		}),
		retry.OnRetry(func(attempt uint, err error) {
			log.Warn().Uint("attempt", attempt+1).Err(err).Msg("retrying database operation")
		}),
		retry.LastErrorOnly(true),
	)
}

// Post creates the transaction and updates the account balances.
func Post(ctx context.Context, db *gorm.DB, transaction *Transaction) error {
	return WithRetry(ctx, func() error {
		return db.WithContext(ctx).Create(transaction).Error
	})
}
