package impl

import (
	"context"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	mockSvc "carmarket/internal/mocks/service"
	"carmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestOfferService_CreateOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a second open offer for the same car", func(t *testing.T) {
		f := newMarketFixture(t)

		_, err := f.offers.CreateOffer(ctx, f.dealer, &usecase.CreateOfferInput{
			CarID: f.carID, DealershipID: f.dealer.UserID, Price: 18000,
		})
		assert.ErrorIs(t, err, domainerrors.ErrOfferAlreadyOpen)
	})

	t.Run("another dealership may list the same car", func(t *testing.T) {
		f := newMarketFixture(t)
		rival := f.seedUser(t, entity.RoleDealership, "rival")

		offer, err := f.offers.CreateOffer(ctx, rival, &usecase.CreateOfferInput{
			CarID: f.carID, DealershipID: rival.UserID, Price: 21000.456, Notes: ptr("  one owner  "),
		})
		require.NoError(t, err)
		assert.Equal(t, 21000.46, offer.Price)
		assert.True(t, offer.Available)
		assert.Equal(t, int64(1), offer.Version)
		require.NotNil(t, offer.Notes)
		assert.Equal(t, "one owner", *offer.Notes)
	})

	t.Run("rejects non-positive prices", func(t *testing.T) {
		f := newMarketFixture(t)
		car := f.seedCar(t, "CD456EF")

		for _, price := range []float64{0, -1} {
			_, err := f.offers.CreateOffer(ctx, f.dealer, &usecase.CreateOfferInput{
				CarID: car, DealershipID: f.dealer.UserID, Price: price,
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
		}
	})

	t.Run("buyers cannot list cars", func(t *testing.T) {
		f := newMarketFixture(t)

		_, err := f.offers.CreateOffer(ctx, f.buyer, &usecase.CreateOfferInput{
			CarID: f.carID, DealershipID: f.buyer.UserID, Price: 100,
		})
		assert.ErrorIs(t, err, domainerrors.ErrDealershipAbsent)

		_, err = f.offers.CreateOffer(ctx, f.buyer, &usecase.CreateOfferInput{
			CarID: f.carID, DealershipID: f.dealer.UserID, Price: 100,
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unavailable cars cannot be listed", func(t *testing.T) {
		f := newMarketFixture(t)
		car := f.seedCar(t, "GH789IJ")
		require.NoError(t, f.catalog.SetCarAvailability(ctx, f.admin, car, false))

		_, err := f.offers.CreateOffer(ctx, f.dealer, &usecase.CreateOfferInput{
			CarID: car, DealershipID: f.dealer.UserID, Price: 100,
		})
		assert.ErrorIs(t, err, domainerrors.ErrCarNotAvailable)
	})
}

func TestOfferService_UpdateOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("price drop alerts watchers", func(t *testing.T) {
		publisher := mockSvc.NewMockEventPublisher(t)
		metrics := mockSvc.NewMockMarketMetrics(t)
		f := newMarketFixture(t, withPublisher(publisher), withMetrics(metrics))

		_, err := f.favorites.AddFavorite(ctx, f.buyer, &usecase.AddFavoriteInput{
			BuyerID: f.buyer.UserID, CarID: f.carID, NotifyPriceChanges: true,
		})
		require.NoError(t, err)
		_, err = f.favorites.AddFavorite(ctx, f.otherBuyer, &usecase.AddFavoriteInput{
			BuyerID: f.otherBuyer.UserID, CarID: f.carID,
		})
		require.NoError(t, err)

		publisher.EXPECT().
			PublishPriceAlert(ctx, mock.MatchedBy(func(e *service.PriceAlertEvent) bool {
				return e.OldPrice == 20000 &&
					e.NewPrice == 18500 &&
					e.CarName == "Toyota Corolla 2020" &&
					assert.ObjectsAreEqual([]int64{f.buyer.UserID}, e.BuyerIDs)
			})).
			Return(nil).Once()
		metrics.EXPECT().RecordPriceAlert(1).Return().Once()

		updated, err := f.offers.UpdateOffer(ctx, f.dealer, f.offerID, &usecase.UpdateOfferInput{Price: ptr(18500.0)})
		require.NoError(t, err)
		assert.Equal(t, 18500.0, updated.Price)
		assert.Equal(t, int64(2), updated.Version)
	})

	t.Run("price increase stays quiet", func(t *testing.T) {
		publisher := mockSvc.NewMockEventPublisher(t)
		f := newMarketFixture(t, withPublisher(publisher))

		_, err := f.favorites.AddFavorite(ctx, f.buyer, &usecase.AddFavoriteInput{
			BuyerID: f.buyer.UserID, CarID: f.carID, NotifyPriceChanges: true,
		})
		require.NoError(t, err)

		_, err = f.offers.UpdateOffer(ctx, f.dealer, f.offerID, &usecase.UpdateOfferInput{Price: ptr(25000.0)})
		require.NoError(t, err)
	})

	t.Run("failed alert keeps the new price", func(t *testing.T) {
		publisher := mockSvc.NewMockEventPublisher(t)
		f := newMarketFixture(t, withPublisher(publisher))

		_, err := f.favorites.AddFavorite(ctx, f.buyer, &usecase.AddFavoriteInput{
			BuyerID: f.buyer.UserID, CarID: f.carID, NotifyPriceChanges: true,
		})
		require.NoError(t, err)
		publisher.EXPECT().PublishPriceAlert(ctx, mock.Anything).Return(errors.New("broker down")).Once()

		_, err = f.offers.UpdateOffer(ctx, f.dealer, f.offerID, &usecase.UpdateOfferInput{Price: ptr(100.0)})
		require.NoError(t, err)
		assert.Equal(t, 100.0, f.offer(t).Price)
	})

	t.Run("validates price and ownership", func(t *testing.T) {
		f := newMarketFixture(t)
		rival := f.seedUser(t, entity.RoleDealership, "rival")

		_, err := f.offers.UpdateOffer(ctx, f.dealer, f.offerID, &usecase.UpdateOfferInput{Price: ptr(0.0)})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice)

		_, err = f.offers.UpdateOffer(ctx, rival, f.offerID, &usecase.UpdateOfferInput{Notes: ptr("mine now")})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)

		_, err = f.offers.UpdateOffer(ctx, f.dealer, 9999, &usecase.UpdateOfferInput{})
		assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
	})
}

func TestOfferService_CloseAndReopen(t *testing.T) {
	ctx := context.Background()

	t.Run("toggles an unpurchased offer", func(t *testing.T) {
		f := newMarketFixture(t)

		closed, err := f.offers.CloseOffer(ctx, f.dealer, f.offerID)
		require.NoError(t, err)
		assert.False(t, closed.Available)

		_, err = f.purchases.CreatePurchase(ctx, f.buyer, purchaseInput(f.buyer.UserID, f.offerID))
		assert.ErrorIs(t, err, domainerrors.ErrOfferUnavailable)

		reopened, err := f.offers.ReopenOffer(ctx, f.dealer, f.offerID)
		require.NoError(t, err)
		assert.True(t, reopened.Available)
	})

	t.Run("refuses once any purchase exists", func(t *testing.T) {
		f := newMarketFixture(t)
		p := f.buy(t, f.buyer)

		_, err := f.offers.CloseOffer(ctx, f.dealer, f.offerID)
		assert.ErrorIs(t, err, domainerrors.ErrOfferHasPurchase)

		_, err = f.purchases.CancelPurchase(ctx, f.buyer, p.ID)
		require.NoError(t, err)

		_, err = f.offers.CloseOffer(ctx, f.dealer, f.offerID)
		assert.ErrorIs(t, err, domainerrors.ErrOfferHasPurchase)
	})

	t.Run("reopen refuses when the pair was relisted", func(t *testing.T) {
		f := newMarketFixture(t)

		_, err := f.offers.CloseOffer(ctx, f.dealer, f.offerID)
		require.NoError(t, err)
		_, err = f.offers.CreateOffer(ctx, f.dealer, &usecase.CreateOfferInput{
			CarID: f.carID, DealershipID: f.dealer.UserID, Price: 19000,
		})
		require.NoError(t, err)

		_, err = f.offers.ReopenOffer(ctx, f.dealer, f.offerID)
		assert.ErrorIs(t, err, domainerrors.ErrOfferAlreadyOpen)

		found, err := f.offers.FindOfferByCarAndDealership(ctx, f.carID, f.dealer.UserID)
		require.NoError(t, err)
		assert.True(t, found.Available)
		assert.NotEqual(t, f.offerID, found.ID)
	})
}

func TestOfferService_Listings(t *testing.T) {
	f := newMarketFixture(t)
	ctx := context.Background()

	car := f.seedCar(t, "KL012MN")
	second := f.seedOffer(t, car, f.dealer.UserID, 9000)
	_, err := f.offers.CloseOffer(ctx, f.dealer, f.offerID)
	require.NoError(t, err)

	available, err := f.offers.ListAvailableOffers(ctx, entity.Page{})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, second, available[0].ID)

	mine, err := f.offers.ListOffersByDealership(ctx, f.dealer.UserID, entity.Page{})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestOfferService_OfferQRCode(t *testing.T) {
	qr := mockSvc.NewMockQRCodeService(t)
	f := newMarketFixture(t, withQRCode(qr))
	ctx := context.Background()

	qr.EXPECT().GenerateOfferQR(f.offerID).Return([]byte("png"), nil).Once()

	png, err := f.offers.OfferQRCode(ctx, f.offerID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = f.offers.OfferQRCode(ctx, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}
