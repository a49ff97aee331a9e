package impl

import (
	"context"
	"log/slog"
	"time"

	"carmarket/config"
	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/ledger"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"

	"go.uber.org/fx"
)

type offerService struct {
	executor     versionedExecutor
	offerRepo    repository.OfferRepository
	favoriteRepo repository.FavoriteRepository
	carRepo      repository.CarRepository
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	metrics      service.MarketMetrics
	logger       *slog.Logger
	now          func() time.Time
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	Config       *config.Config
	TxManager    repository.TransactionManager
	OfferRepo    repository.OfferRepository
	FavoriteRepo repository.FavoriteRepository
	CarRepo      repository.CarRepository
	QRService    service.QRCodeService
	Publisher    service.EventPublisher
	Metrics      service.MarketMetrics
	Logger       *slog.Logger
}

// NewOfferService wires the offer book.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		executor: versionedExecutor{
			txManager:  params.TxManager,
			maxRetries: maxRetries(params.Config),
			metrics:    params.Metrics,
		},
		offerRepo:    params.OfferRepo,
		favoriteRepo: params.FavoriteRepo,
		carRepo:      params.CarRepo,
		qrService:    params.QRService,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          systemClock,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer lists a catalog car for a dealership.
func (srv *offerService) CreateOffer(ctx context.Context, principal entity.Principal, input *usecase.CreateOfferInput) (*entity.CarOffer, error) {
	if err := requireSelf(principal, input.DealershipID); err != nil {
		return nil, err
	}

	logger := srv.log(ctx).With(slog.Int64("carID", input.CarID), slog.Int64("dealershipID", input.DealershipID))

	var offer entity.CarOffer
	err := srv.executor.Execute(ctx, logger, "create_offer", func(factory repository.RepositoryFactory) error {
		offers := factory.NewOfferRepository()

		car, err := factory.NewCarRepository().FindByID(ctx, input.CarID)
		if err != nil {
			return translateRepoError(err)
		}
		dealership, err := findDealership(ctx, factory.NewUserRepository(), input.DealershipID)
		if err != nil {
			return err
		}

		pair, err := lockPair(ctx, offers, car.ID, dealership.ID, 0)
		if err != nil {
			return err
		}

		offer, err = ledger.NewOffer(car, dealership, input.Price, input.Notes, pair, srv.now())
		if err != nil {
			return err
		}

		return offers.Create(ctx, &offer)
	})
	if err != nil {
		logger.Info("Offer rejected", slog.Any("error", err))

		return nil, err
	}

	if srv.metrics != nil {
		srv.metrics.RecordOfferCreated()
	}
	logger.Info("Offer created", slog.Int64("offerID", offer.ID), slog.Float64("price", offer.Price))

	return &offer, nil
}

// UpdateOffer changes price or notes. Lowering the price alerts every buyer
// watching the car.
func (srv *offerService) UpdateOffer(ctx context.Context, principal entity.Principal, id int64, input *usecase.UpdateOfferInput) (*entity.CarOffer, error) {
	logger := srv.log(ctx).With(slog.Int64("offerID", id))

	var before, after entity.CarOffer
	err := srv.executor.Execute(ctx, logger, "update_offer", func(factory repository.RepositoryFactory) error {
		offers := factory.NewOfferRepository()

		current, err := offers.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err)
		}
		if !principal.Is(current.DealershipID) {
			return forbidden("offer belongs to another dealership")
		}

		before = *current
		after, err = ledger.UpdateOffer(*current, input.Price, input.Notes, srv.now())
		if err != nil {
			return err
		}

		return offers.UpdateWithVersion(ctx, &after)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Offer updated", slog.Float64("oldPrice", before.Price), slog.Float64("newPrice", after.Price))

	if after.Price < before.Price {
		srv.alertPriceDrop(ctx, &before, &after)
	}

	return &after, nil
}

// alertPriceDrop notifies subscribed buyers after the price change committed.
// Failures are logged and never fail the update.
func (srv *offerService) alertPriceDrop(ctx context.Context, before, after *entity.CarOffer) {
	logger := srv.log(ctx).With(slog.Int64("offerID", after.ID))

	watchers, err := srv.favoriteRepo.ListPriceWatchers(ctx, after.CarID)
	if err != nil {
		logger.Error("Failed to list price watchers", slog.Any("error", err))

		return
	}
	if len(watchers) == 0 {
		return
	}

	carName := ""
	if car, err := srv.carRepo.FindByID(ctx, after.CarID); err == nil {
		carName = car.FullName()
	}

	event := &service.PriceAlertEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		OfferID:      after.ID,
		CarID:        after.CarID,
		CarName:      carName,
		DealershipID: after.DealershipID,
		OldPrice:     before.Price,
		NewPrice:     after.Price,
		BuyerIDs:     watchers,
		OccurredAt:   after.UpdatedAt,
	}
	if srv.publisher != nil {
		if err := srv.publisher.PublishPriceAlert(ctx, event); err != nil {
			logger.Error("Failed to publish price alert", slog.Any("error", err))

			return
		}
	}
	if srv.metrics != nil {
		srv.metrics.RecordPriceAlert(len(watchers))
	}

	logger.Info("Price alert published", slog.Int("subscribers", len(watchers)))
}

// CloseOffer delists an offer that no purchase references.
func (srv *offerService) CloseOffer(ctx context.Context, principal entity.Principal, id int64) (*entity.CarOffer, error) {
	return srv.toggle(ctx, principal, id, "close_offer", func(_ repository.RepositoryFactory, offer entity.CarOffer, hasPurchase bool, now time.Time) (entity.CarOffer, error) {
		return ledger.CloseOffer(offer, hasPurchase, now)
	})
}

// ReopenOffer relists an offer the dealership closed.
func (srv *offerService) ReopenOffer(ctx context.Context, principal entity.Principal, id int64) (*entity.CarOffer, error) {
	return srv.toggle(ctx, principal, id, "reopen_offer", func(factory repository.RepositoryFactory, offer entity.CarOffer, hasPurchase bool, now time.Time) (entity.CarOffer, error) {
		pair, err := lockPair(ctx, factory.NewOfferRepository(), offer.CarID, offer.DealershipID, offer.ID)
		if err != nil {
			return offer, err
		}

		return ledger.ReopenOffer(offer, hasPurchase, pair, now)
	})
}

// lockPair takes the pair lock and reports the state of the pair's offers
// other than excludeID.
func lockPair(ctx context.Context, offers repository.OfferRepository, carID, dealershipID, excludeID int64) (ledger.PairState, error) {
	if err := offers.LockPair(ctx, carID, dealershipID); err != nil {
		return ledger.PairState{}, err
	}

	open, err := offers.ExistsOpen(ctx, carID, dealershipID, excludeID)
	if err != nil {
		return ledger.PairState{}, err
	}
	claimed, err := offers.ExistsClaimed(ctx, carID, dealershipID, excludeID)
	if err != nil {
		return ledger.PairState{}, err
	}

	return ledger.PairState{Open: open, Claimed: claimed}, nil
}

func (srv *offerService) toggle(
	ctx context.Context,
	principal entity.Principal,
	id int64,
	op string,
	apply func(repository.RepositoryFactory, entity.CarOffer, bool, time.Time) (entity.CarOffer, error),
) (*entity.CarOffer, error) {
	logger := srv.log(ctx).With(slog.Int64("offerID", id))

	var next entity.CarOffer
	err := srv.executor.Execute(ctx, logger, op, func(factory repository.RepositoryFactory) error {
		offers := factory.NewOfferRepository()

		current, err := offers.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err)
		}
		if !principal.Is(current.DealershipID) {
			return forbidden("offer belongs to another dealership")
		}

		hasPurchase, err := factory.NewPurchaseRepository().HasAnyForOffer(ctx, current.ID)
		if err != nil {
			return err
		}

		next, err = apply(factory, *current, hasPurchase, srv.now())
		if err != nil {
			return err
		}

		return offers.UpdateWithVersion(ctx, &next)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Offer availability changed", slog.String("operation", op), slog.Bool("available", next.Available))

	return &next, nil
}

// GetOffer returns one offer.
func (srv *offerService) GetOffer(ctx context.Context, id int64) (*entity.CarOffer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return offer, nil
}

// FindOfferByCarAndDealership prefers the open listing of the pair and falls
// back to its most recent one.
func (srv *offerService) FindOfferByCarAndDealership(ctx context.Context, carID, dealershipID int64) (*entity.CarOffer, error) {
	offer, err := srv.offerRepo.FindByCarAndDealership(ctx, carID, dealershipID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return offer, nil
}

func (srv *offerService) ListOffersByDealership(ctx context.Context, dealershipID int64, page entity.Page) ([]*entity.CarOffer, error) {
	return srv.offerRepo.ListByDealership(ctx, dealershipID, page.Normalize())
}

func (srv *offerService) ListAvailableOffers(ctx context.Context, page entity.Page) ([]*entity.CarOffer, error) {
	return srv.offerRepo.ListAvailable(ctx, page.Normalize())
}

// OfferQRCode renders the QR code of an existing offer.
func (srv *offerService) OfferQRCode(ctx context.Context, id int64) ([]byte, error) {
	if _, err := srv.GetOffer(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOfferQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate offer QR code")
	}

	return png, nil
}
