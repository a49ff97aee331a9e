package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/ledger"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"

	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	carRepo      repository.CarRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
	now          func() time.Time
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	CarRepo      repository.CarRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewFavoriteService wires favorites, reviews and price-alert subscriptions.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		carRepo:      params.CarRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
		now:          systemClock,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *favoriteService) AddFavorite(ctx context.Context, principal entity.Principal, input *usecase.AddFavoriteInput) (*entity.FavoriteCar, error) {
	if err := requireSelf(principal, input.BuyerID); err != nil {
		return nil, err
	}

	buyer, err := findBuyer(ctx, srv.userRepo, input.BuyerID)
	if err != nil {
		return nil, err
	}
	car, err := srv.carRepo.FindByID(ctx, input.CarID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	_, err = srv.favoriteRepo.FindByBuyerAndCar(ctx, buyer.ID, car.ID)
	exists := err == nil
	if err != nil && !errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, err
	}

	now := srv.now()
	fav, err := ledger.NewFavorite(buyer, car, input.NotifyPriceChanges, exists, now)
	if err != nil {
		return nil, err
	}
	if input.Rating != nil || input.Comment != nil {
		if fav, err = ledger.ApplyReview(fav, input.Rating, input.Comment, now); err != nil {
			return nil, err
		}
	}

	// The unique (buyer, car) index still rejects a concurrent duplicate.
	if err := srv.favoriteRepo.Create(ctx, &fav); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Favorite added", slog.Int64("buyerID", buyer.ID), slog.Int64("carID", car.ID))

	return &fav, nil
}

func (srv *favoriteService) RemoveFavorite(ctx context.Context, principal entity.Principal, buyerID, carID int64) error {
	if err := requireSelf(principal, buyerID); err != nil {
		return err
	}

	fav, err := srv.favoriteRepo.FindByBuyerAndCar(ctx, buyerID, carID)
	if err != nil {
		return translateRepoError(err)
	}

	if err := srv.favoriteRepo.Delete(ctx, fav.ID); err != nil {
		return translateRepoError(err)
	}

	return nil
}

// UpdateFavoriteReview sets the rating and/or comment of a favorite.
func (srv *favoriteService) UpdateFavoriteReview(ctx context.Context, principal entity.Principal, favoriteID int64, input *usecase.UpdateReviewInput) (*entity.FavoriteCar, error) {
	return srv.mutate(ctx, principal, favoriteID, func(fav entity.FavoriteCar, now time.Time) (entity.FavoriteCar, error) {
		return ledger.ApplyReview(fav, input.Rating, input.Comment, now)
	})
}

func (srv *favoriteService) SetPriceNotification(ctx context.Context, principal entity.Principal, favoriteID int64, enabled bool) (*entity.FavoriteCar, error) {
	return srv.mutate(ctx, principal, favoriteID, func(fav entity.FavoriteCar, now time.Time) (entity.FavoriteCar, error) {
		fav.NotifyPriceChanges = enabled
		fav.UpdatedAt = now

		return fav, nil
	})
}

func (srv *favoriteService) TogglePriceNotification(ctx context.Context, principal entity.Principal, favoriteID int64) (*entity.FavoriteCar, error) {
	return srv.mutate(ctx, principal, favoriteID, func(fav entity.FavoriteCar, now time.Time) (entity.FavoriteCar, error) {
		fav.NotifyPriceChanges = !fav.NotifyPriceChanges
		fav.UpdatedAt = now

		return fav, nil
	})
}

func (srv *favoriteService) mutate(
	ctx context.Context,
	principal entity.Principal,
	favoriteID int64,
	apply func(entity.FavoriteCar, time.Time) (entity.FavoriteCar, error),
) (*entity.FavoriteCar, error) {
	current, err := srv.favoriteRepo.FindByID(ctx, favoriteID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	if err := requireSelf(principal, current.BuyerID); err != nil {
		return nil, err
	}

	next, err := apply(*current, srv.now())
	if err != nil {
		return nil, err
	}

	if err := srv.favoriteRepo.Update(ctx, &next); err != nil {
		return nil, translateRepoError(err)
	}

	return &next, nil
}

func (srv *favoriteService) ListFavoritesByBuyer(ctx context.Context, principal entity.Principal, buyerID int64, page entity.Page) ([]*entity.FavoriteCar, error) {
	if err := requireSelf(principal, buyerID); err != nil {
		return nil, err
	}

	return srv.favoriteRepo.ListByBuyer(ctx, buyerID, page.Normalize())
}

// GetCarReviewSummary aggregates the reviews of a car.
func (srv *favoriteService) GetCarReviewSummary(ctx context.Context, carID int64) (*entity.CarReviewSummary, error) {
	if _, err := srv.carRepo.FindByID(ctx, carID); err != nil {
		return nil, translateRepoError(err)
	}

	reviewed, err := srv.favoriteRepo.ListReviewedByCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	summary := entity.SummarizeReviews(carID, reviewed)

	return &summary, nil
}
