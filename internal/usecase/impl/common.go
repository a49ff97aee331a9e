// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"carmarket/config"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
)

const defaultMaxRetries = 3

// repoErrors maps repository sentinels onto the application error taxonomy.
var repoErrors = []struct {
	repoErr error
	appErr  *domainerrors.BaseError
}{
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrCarNotFound, domainerrors.ErrCarNotFound},
	{repository.ErrOfferNotFound, domainerrors.ErrOfferNotFound},
	{repository.ErrPurchaseNotFound, domainerrors.ErrPurchaseNotFound},
	{repository.ErrFavoriteNotFound, domainerrors.ErrFavoriteNotFound},
	{repository.ErrOfferVersionConflict, domainerrors.ErrConcurrentUpdate},
}

// translateRepoError converts repository sentinels into application errors and
// passes anything else through.
func translateRepoError(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range repoErrors {
		if errors.Is(err, m.repoErr) {
			return m.appErr
		}
	}

	return err
}

// findBuyer loads a user expected to be a buyer. Missing users and other roles
// both surface as ErrBuyerNotFound.
func findBuyer(ctx context.Context, users repository.UserRepository, id int64) (*entity.User, error) {
	user, err := users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrBuyerNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleBuyer {
		return nil, domainerrors.ErrBuyerNotFound
	}

	return user, nil
}

// findDealership loads a user expected to be a dealership.
func findDealership(ctx context.Context, users repository.UserRepository, id int64) (*entity.User, error) {
	user, err := users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrDealershipAbsent
	}
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleDealership {
		return nil, domainerrors.ErrDealershipAbsent
	}

	return user, nil
}

func forbidden(reason string) error {
	return domainerrors.ErrForbidden.WithDetails(reason)
}

// requireSelf allows the user identified by userID and administrators.
func requireSelf(principal entity.Principal, userID int64) error {
	if !principal.Is(userID) {
		return forbidden("caller may only act on their own records")
	}

	return nil
}

func maxRetries(cfg *config.Config) int {
	if cfg != nil && cfg.Purchase != nil && cfg.Purchase.MaxRetries > 0 {
		return cfg.Purchase.MaxRetries
	}

	return defaultMaxRetries
}

// versionedExecutor runs transactions that write version-checked offers and
// retries the whole transaction when it loses an optimistic-lock race.
type versionedExecutor struct {
	txManager  repository.TransactionManager
	maxRetries int
	metrics    service.MarketMetrics
}

// Execute returns ErrConcurrentUpdate once every attempt has conflicted.
func (x versionedExecutor) Execute(ctx context.Context, logger *slog.Logger, op string, fn func(repository.RepositoryFactory) error) error {
	for attempt := 1; ; attempt++ {
		err := x.txManager.Execute(ctx, fn)
		if !errors.Is(err, repository.ErrOfferVersionConflict) {
			return err
		}
		if x.metrics != nil {
			x.metrics.RecordOfferVersionConflict()
		}
		if attempt >= x.maxRetries {
			logger.Warn("Offer write kept conflicting, giving up",
				slog.String("operation", op),
				slog.Int("attempts", attempt),
			)

			return domainerrors.ErrConcurrentUpdate
		}
		logger.Debug("Offer version conflict, retrying",
			slog.String("operation", op),
			slog.Int("attempt", attempt),
		)
	}
}

// systemClock is the default time source of the services.
func systemClock() time.Time {
	return time.Now().UTC()
}
