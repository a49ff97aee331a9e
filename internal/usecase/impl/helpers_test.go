package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"carmarket/config"
	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/service"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxOpenPerBuyer int) *config.Config {
	return &config.Config{
		Purchase: &config.PurchaseConfig{
			MaxOpenPerBuyer: maxOpenPerBuyer,
			MaxRetries:      3,
		},
	}
}

// marketFixture wires the ledger services over one in-memory store seeded
// with an admin, a dealership, two buyers, a car and an open offer.
type marketFixture struct {
	store     *memStore
	purchases *purchaseService
	offers    *offerService
	favorites *favoriteService
	catalog   *catalogService

	admin      entity.Principal
	dealer     entity.Principal
	buyer      entity.Principal
	otherBuyer entity.Principal

	carID   int64
	offerID int64
}

type fixtureOption func(*fixtureDeps)

type fixtureDeps struct {
	cfg       *config.Config
	publisher service.EventPublisher
	metrics   service.MarketMetrics
	qr        service.QRCodeService
}

func withConfig(cfg *config.Config) fixtureOption {
	return func(d *fixtureDeps) { d.cfg = cfg }
}

func withPublisher(p service.EventPublisher) fixtureOption {
	return func(d *fixtureDeps) { d.publisher = p }
}

func withMetrics(m service.MarketMetrics) fixtureOption {
	return func(d *fixtureDeps) { d.metrics = m }
}

func withQRCode(qr service.QRCodeService) fixtureOption {
	return func(d *fixtureDeps) { d.qr = qr }
}

func newMarketFixture(t *testing.T, opts ...fixtureOption) *marketFixture {
	t.Helper()

	deps := &fixtureDeps{cfg: newTestConfig(0)}
	for _, opt := range opts {
		opt(deps)
	}

	store := newMemStore()
	repos := store.direct()
	logger := newDiscardLogger()

	f := &marketFixture{
		store: store,
		purchases: NewPurchaseService(PurchaseServiceParams{
			Config:       deps.cfg,
			TxManager:    store,
			PurchaseRepo: repos.NewPurchaseRepository(),
			OfferRepo:    repos.NewOfferRepository(),
			CarRepo:      repos.NewCarRepository(),
			UserRepo:     repos.NewUserRepository(),
			Publisher:    deps.publisher,
			Metrics:      deps.metrics,
			Logger:       logger,
		}).(*purchaseService),
		offers: NewOfferService(OfferServiceParams{
			Config:       deps.cfg,
			TxManager:    store,
			OfferRepo:    repos.NewOfferRepository(),
			FavoriteRepo: repos.NewFavoriteRepository(),
			CarRepo:      repos.NewCarRepository(),
			QRService:    deps.qr,
			Publisher:    deps.publisher,
			Metrics:      deps.metrics,
			Logger:       logger,
		}).(*offerService),
		favorites: NewFavoriteService(FavoriteServiceParams{
			FavoriteRepo: repos.NewFavoriteRepository(),
			CarRepo:      repos.NewCarRepository(),
			UserRepo:     repos.NewUserRepository(),
			Logger:       logger,
		}).(*favoriteService),
		catalog: NewCatalogService(CatalogServiceParams{
			CarRepo: repos.NewCarRepository(),
			Logger:  logger,
		}).(*catalogService),
	}

	f.admin = f.seedUser(t, entity.RoleAdmin, "admin")
	f.dealer = f.seedUser(t, entity.RoleDealership, "dealer")
	f.buyer = f.seedUser(t, entity.RoleBuyer, "buyer")
	f.otherBuyer = f.seedUser(t, entity.RoleBuyer, "other")
	f.carID = f.seedCar(t, "AB123CD")
	f.offerID = f.seedOffer(t, f.carID, f.dealer.UserID, 20000)

	return f
}

func (f *marketFixture) seedUser(t *testing.T, role entity.Role, name string) entity.Principal {
	t.Helper()

	user := &entity.User{
		Email:     name + "@example.com",
		FirstName: name,
		LastName:  "Tester",
		Role:      role,
		Active:    true,
	}
	switch role {
	case entity.RoleBuyer:
		user.BuyerProfile = &entity.BuyerProfile{NationalID: "NID-" + name}
	case entity.RoleDealership:
		user.DealershipProfile = &entity.DealershipProfile{BusinessName: name + " Motors", TaxID: "TAX-" + name}
	}
	require.NoError(t, f.store.direct().NewUserRepository().Create(context.Background(), user))

	return entity.Principal{UserID: user.ID, Role: role}
}

func (f *marketFixture) seedCar(t *testing.T, plate string) int64 {
	t.Helper()

	car := &entity.Car{
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2020,
		Mileage:      15000,
		FuelType:     entity.FuelGasoline,
		Transmission: entity.TransmissionAutomatic,
		Plate:        plate,
		Available:    true,
	}
	require.NoError(t, f.store.direct().NewCarRepository().Create(context.Background(), car))

	return car.ID
}

func (f *marketFixture) seedOffer(t *testing.T, carID, dealershipID int64, price float64) int64 {
	t.Helper()

	offer := &entity.CarOffer{
		CarID:        carID,
		DealershipID: dealershipID,
		Price:        price,
		Available:    true,
	}
	require.NoError(t, f.store.direct().NewOfferRepository().Create(context.Background(), offer))

	return offer.ID
}

func (f *marketFixture) seedBuyers(t *testing.T, n int) []entity.Principal {
	t.Helper()

	buyers := make([]entity.Principal, n)
	for i := range buyers {
		buyers[i] = f.seedUser(t, entity.RoleBuyer, fmt.Sprintf("buyer%d", i))
	}

	return buyers
}

func (f *marketFixture) offer(t *testing.T) *entity.CarOffer {
	t.Helper()

	offer, err := f.store.direct().NewOfferRepository().FindByID(context.Background(), f.offerID)
	require.NoError(t, err)

	return offer
}

func (f *marketFixture) buy(t *testing.T, buyer entity.Principal) *entity.Purchase {
	t.Helper()

	p, err := f.purchases.CreatePurchase(context.Background(), buyer, purchaseInput(buyer.UserID, f.offerID))
	require.NoError(t, err)

	return p
}
