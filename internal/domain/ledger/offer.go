package ledger

import (
	"time"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
)

// PairState describes the other offers of a (car, dealership) pair.
type PairState struct {
	// Open is set when another offer of the pair is available.
	Open bool
	// Claimed is set when another offer of the pair is held by a non-cancelled
	// purchase. Such an offer becomes available again if that purchase is
	// cancelled, so the pair must not be listed twice meanwhile.
	Claimed bool
}

func (s PairState) check() error {
	if s.Open {
		return domainerrors.ErrOfferAlreadyOpen
	}
	if s.Claimed {
		return domainerrors.ErrOfferPairClaimed
	}

	return nil
}

// NewOffer builds an available listing of car by dealership.
func NewOffer(car *entity.Car, dealership *entity.User, price float64, notes *string, pair PairState, now time.Time) (entity.CarOffer, error) {
	if price <= 0 {
		return entity.CarOffer{}, domainerrors.ErrInvalidPrice
	}
	if car == nil {
		return entity.CarOffer{}, domainerrors.ErrCarNotFound
	}
	if dealership == nil || !dealership.IsDealership() {
		return entity.CarOffer{}, domainerrors.ErrDealershipAbsent
	}
	if !car.Available {
		return entity.CarOffer{}, domainerrors.ErrCarNotAvailable
	}
	if err := pair.check(); err != nil {
		return entity.CarOffer{}, err
	}

	return entity.CarOffer{
		CarID:        car.ID,
		DealershipID: dealership.ID,
		Price:        entity.RoundPrice(price),
		Notes:        normalizeText(notes),
		Available:    true,
		OfferedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateOffer applies a partial price/notes change. A nil argument leaves the
// field unchanged; an empty notes string clears the notes.
func UpdateOffer(offer entity.CarOffer, price *float64, notes *string, now time.Time) (entity.CarOffer, error) {
	if price != nil {
		if *price <= 0 {
			return offer, domainerrors.ErrInvalidPrice
		}
		offer.Price = entity.RoundPrice(*price)
	}
	if notes != nil {
		offer.Notes = normalizeText(notes)
	}
	offer.UpdatedAt = now

	return offer, nil
}

// CloseOffer delists an offer on the dealership's initiative. Once any purchase
// references the offer its availability follows the purchase lifecycle instead.
func CloseOffer(offer entity.CarOffer, hasPurchase bool, now time.Time) (entity.CarOffer, error) {
	if hasPurchase {
		return offer, domainerrors.ErrOfferHasPurchase
	}

	return MarkAsSold(offer, now), nil
}

// ReopenOffer relists a delisted offer. pair describes the pair's other offers.
func ReopenOffer(offer entity.CarOffer, hasPurchase bool, pair PairState, now time.Time) (entity.CarOffer, error) {
	if hasPurchase {
		return offer, domainerrors.ErrOfferHasPurchase
	}
	if err := pair.check(); err != nil {
		return offer, err
	}

	return MarkAsAvailable(offer, now), nil
}
