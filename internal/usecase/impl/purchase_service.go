package impl

import (
	"context"
	"log/slog"
	"time"

	"carmarket/config"
	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/ledger"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"
	"carmarket/internal/usecase"

	"go.uber.org/fx"
)

type purchaseService struct {
	executor        versionedExecutor
	purchaseRepo    repository.PurchaseRepository
	offerRepo       repository.OfferRepository
	carRepo         repository.CarRepository
	userRepo        repository.UserRepository
	publisher       service.EventPublisher
	metrics         service.MarketMetrics
	maxOpenPerBuyer int
	logger          *slog.Logger
	now             func() time.Time
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	Config       *config.Config
	TxManager    repository.TransactionManager
	PurchaseRepo repository.PurchaseRepository
	OfferRepo    repository.OfferRepository
	CarRepo      repository.CarRepository
	UserRepo     repository.UserRepository
	Publisher    service.EventPublisher
	Metrics      service.MarketMetrics
	Logger       *slog.Logger
}

// NewPurchaseService wires the purchase lifecycle.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	maxOpen := 0
	if params.Config != nil && params.Config.Purchase != nil {
		maxOpen = params.Config.Purchase.MaxOpenPerBuyer
	}

	return &purchaseService{
		executor: versionedExecutor{
			txManager:  params.TxManager,
			maxRetries: maxRetries(params.Config),
			metrics:    params.Metrics,
		},
		purchaseRepo:    params.PurchaseRepo,
		offerRepo:       params.OfferRepo,
		carRepo:         params.CarRepo,
		userRepo:        params.UserRepo,
		publisher:       params.Publisher,
		metrics:         params.Metrics,
		maxOpenPerBuyer: maxOpen,
		logger:          params.Logger,
		now:             systemClock,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePurchase opens a PENDING purchase. The offer stays available until the
// dealership confirms, but no second purchase can claim it meanwhile.
func (srv *purchaseService) CreatePurchase(ctx context.Context, principal entity.Principal, input *usecase.CreatePurchaseInput) (*entity.Purchase, error) {
	if err := requireSelf(principal, input.BuyerID); err != nil {
		return nil, err
	}

	logger := srv.log(ctx).With(slog.Int64("buyerID", input.BuyerID), slog.Int64("offerID", input.CarOfferID))

	var (
		created entity.Purchase
		offer   *entity.CarOffer
	)
	err := srv.executor.Execute(ctx, logger, "create_purchase", func(factory repository.RepositoryFactory) error {
		purchases := factory.NewPurchaseRepository()
		offers := factory.NewOfferRepository()

		buyer, err := findBuyer(ctx, factory.NewUserRepository(), input.BuyerID)
		if err != nil {
			return err
		}

		offer, err = offers.FindByID(ctx, input.CarOfferID)
		if err != nil {
			return translateRepoError(err)
		}

		if srv.maxOpenPerBuyer > 0 {
			open, err := purchases.CountOpenByBuyer(ctx, buyer.ID)
			if err != nil {
				return err
			}
			if open >= int64(srv.maxOpenPerBuyer) {
				return domainerrors.ErrPurchaseLimit
			}
		}

		hasActive, err := purchases.HasActiveForOffer(ctx, offer.ID, 0)
		if err != nil {
			return err
		}

		created, err = ledger.NewPurchase(buyer, *offer, hasActive, ledger.PurchaseDraft{
			BuyerID:       input.BuyerID,
			CarOfferID:    input.CarOfferID,
			FinalPrice:    input.FinalPrice,
			PaymentMethod: input.PaymentMethod,
			Observations:  input.Observations,
		}, srv.now())
		if err != nil {
			return err
		}

		// The version bump makes a concurrent claim on the same offer conflict.
		if err := offers.UpdateWithVersion(ctx, offer); err != nil {
			return err
		}

		return purchases.Create(ctx, &created)
	})
	if err != nil {
		logger.Info("Purchase rejected", slog.Any("error", err))

		return nil, err
	}

	logger.Info("Purchase created", slog.Int64("purchaseID", created.ID))
	srv.afterTransition(ctx, &created, offer, "")

	return &created, nil
}

// ConfirmPurchase accepts a PENDING purchase and marks the offer sold.
func (srv *purchaseService) ConfirmPurchase(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error) {
	return srv.transition(ctx, principal, id, "confirm_purchase", dealershipOnly,
		func(factory repository.RepositoryFactory, p entity.Purchase, offer entity.CarOffer, now time.Time) (entity.Purchase, *entity.CarOffer, error) {
			hasOther, err := factory.NewPurchaseRepository().HasActiveForOffer(ctx, offer.ID, p.ID)
			if err != nil {
				return p, nil, err
			}

			next, nextOffer, err := ledger.Confirm(p, offer, hasOther, now)
			if err != nil {
				return p, nil, err
			}

			return next, &nextOffer, nil
		})
}

// CancelPurchase cancels a non-terminal purchase and reopens the offer.
func (srv *purchaseService) CancelPurchase(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error) {
	return srv.transition(ctx, principal, id, "cancel_purchase", anyParty,
		func(_ repository.RepositoryFactory, p entity.Purchase, offer entity.CarOffer, now time.Time) (entity.Purchase, *entity.CarOffer, error) {
			next, nextOffer, err := ledger.Cancel(p, offer, now)
			if err != nil {
				return p, nil, err
			}

			return next, &nextOffer, nil
		})
}

// DeliverPurchase completes a CONFIRMED purchase.
func (srv *purchaseService) DeliverPurchase(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error) {
	return srv.transition(ctx, principal, id, "deliver_purchase", dealershipOnly,
		func(_ repository.RepositoryFactory, p entity.Purchase, _ entity.CarOffer, now time.Time) (entity.Purchase, *entity.CarOffer, error) {
			next, err := ledger.Deliver(p, now)

			return next, nil, err
		})
}

// RevertToPending is an administrative correction. It leaves offer
// availability untouched but still bumps the offer version.
func (srv *purchaseService) RevertToPending(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error) {
	return srv.transition(ctx, principal, id, "revert_purchase", adminOnly,
		func(factory repository.RepositoryFactory, p entity.Purchase, offer entity.CarOffer, now time.Time) (entity.Purchase, *entity.CarOffer, error) {
			hasOther := false
			if p.Status == entity.PurchaseStatusCancelled {
				var err error
				hasOther, err = factory.NewPurchaseRepository().HasActiveForOffer(ctx, offer.ID, p.ID)
				if err != nil {
					return p, nil, err
				}
			}

			next, err := ledger.RevertToPending(p, offer, hasOther, now)
			if err != nil {
				return p, nil, err
			}

			return next, &offer, nil
		})
}

// party decides who may drive a transition of a purchase on a given offer.
type party func(principal entity.Principal, p *entity.Purchase, offer *entity.CarOffer) bool

func anyParty(principal entity.Principal, p *entity.Purchase, offer *entity.CarOffer) bool {
	return principal.Is(p.BuyerID) || principal.Is(offer.DealershipID)
}

func dealershipOnly(principal entity.Principal, _ *entity.Purchase, offer *entity.CarOffer) bool {
	return principal.Is(offer.DealershipID)
}

func adminOnly(principal entity.Principal, _ *entity.Purchase, _ *entity.CarOffer) bool {
	return principal.IsAdmin()
}

// transitionFunc computes the next purchase and, when the offer must be
// written, the next offer.
type transitionFunc func(factory repository.RepositoryFactory, p entity.Purchase, offer entity.CarOffer, now time.Time) (entity.Purchase, *entity.CarOffer, error)

func (srv *purchaseService) transition(
	ctx context.Context,
	principal entity.Principal,
	id int64,
	op string,
	allowed party,
	apply transitionFunc,
) (*entity.Purchase, error) {
	logger := srv.log(ctx).With(slog.Int64("purchaseID", id), slog.String("operation", op))

	var (
		from  entity.PurchaseStatus
		next  entity.Purchase
		offer *entity.CarOffer
	)
	err := srv.executor.Execute(ctx, logger, op, func(factory repository.RepositoryFactory) error {
		purchases := factory.NewPurchaseRepository()
		offers := factory.NewOfferRepository()

		current, err := purchases.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err)
		}
		offer, err = offers.FindByID(ctx, current.CarOfferID)
		if err != nil {
			return translateRepoError(err)
		}
		if !allowed(principal, current, offer) {
			return forbidden("caller is not a party to this purchase")
		}

		from = current.Status
		var nextOffer *entity.CarOffer
		next, nextOffer, err = apply(factory, *current, *offer, srv.now())
		if err != nil {
			return err
		}

		if nextOffer != nil {
			if err := offers.UpdateWithVersion(ctx, nextOffer); err != nil {
				return err
			}
			offer = nextOffer
		}

		return purchases.UpdateStatus(ctx, &next)
	})
	if err != nil {
		logger.Info("Purchase transition rejected", slog.Any("error", err))

		return nil, err
	}

	logger.Info("Purchase transitioned",
		slog.String("from", from.String()),
		slog.String("to", next.Status.String()),
	)
	srv.afterTransition(ctx, &next, offer, from)

	return &next, nil
}

// afterTransition emits the committed status change. Publish failures are
// logged and never undo the transition.
func (srv *purchaseService) afterTransition(ctx context.Context, p *entity.Purchase, offer *entity.CarOffer, from entity.PurchaseStatus) {
	if srv.metrics != nil {
		srv.metrics.RecordPurchaseTransition(p.Status)
	}
	if srv.publisher == nil {
		return
	}

	event := &service.PurchaseStatusEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		PurchaseID:   p.ID,
		OfferID:      p.CarOfferID,
		BuyerID:      p.BuyerID,
		DealershipID: offer.DealershipID,
		FromStatus:   string(from),
		ToStatus:     p.Status.String(),
		OccurredAt:   p.UpdatedAt,
	}
	if err := srv.publisher.PublishPurchaseStatus(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish purchase status event",
			slog.Int64("purchaseID", p.ID),
			slog.Any("error", err),
		)
	}
}

// GetPurchase returns a purchase to its buyer, its dealership or an administrator.
func (srv *purchaseService) GetPurchase(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error) {
	p, _, err := srv.loadVisible(ctx, principal, id)

	return p, err
}

// GetPurchaseSummary resolves the names around a purchase.
func (srv *purchaseService) GetPurchaseSummary(ctx context.Context, principal entity.Principal, id int64) (*entity.PurchaseSummary, error) {
	p, offer, err := srv.loadVisible(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	car, err := srv.carRepo.FindByID(ctx, offer.CarID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	buyer, err := findBuyer(ctx, srv.userRepo, p.BuyerID)
	if err != nil {
		return nil, err
	}
	dealership, err := findDealership(ctx, srv.userRepo, offer.DealershipID)
	if err != nil {
		return nil, err
	}

	return entity.NewPurchaseSummary(p, car, buyer, dealership), nil
}

func (srv *purchaseService) loadVisible(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, *entity.CarOffer, error) {
	p, err := srv.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, translateRepoError(err)
	}
	offer, err := srv.offerRepo.FindByID(ctx, p.CarOfferID)
	if err != nil {
		return nil, nil, translateRepoError(err)
	}
	if !anyParty(principal, p, offer) {
		return nil, nil, forbidden("caller is not a party to this purchase")
	}

	return p, offer, nil
}

// ListPurchasesByBuyer lists a buyer's purchases, newest first.
func (srv *purchaseService) ListPurchasesByBuyer(ctx context.Context, principal entity.Principal, buyerID int64, page entity.Page) ([]*entity.Purchase, error) {
	if err := requireSelf(principal, buyerID); err != nil {
		return nil, err
	}

	return srv.purchaseRepo.ListByBuyer(ctx, buyerID, page.Normalize())
}

// ListPurchasesByDealership lists the purchases made on a dealership's offers.
func (srv *purchaseService) ListPurchasesByDealership(ctx context.Context, principal entity.Principal, dealershipID int64, page entity.Page) ([]*entity.Purchase, error) {
	if err := requireSelf(principal, dealershipID); err != nil {
		return nil, err
	}

	return srv.purchaseRepo.ListByDealership(ctx, dealershipID, page.Normalize())
}
