// Package ledger holds the marketplace rules as pure functions: the purchase
// state machine, offer availability, catalog validation and favorite reviews.
// Each function takes the current records and returns the next ones, leaving
// persistence and locking to the caller's transaction.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
)

// transitions lists every legal status change. RevertToPending is an
// administrative correction and is handled separately.
var transitions = map[entity.PurchaseStatus][]entity.PurchaseStatus{
	entity.PurchaseStatusPending:   {entity.PurchaseStatusConfirmed, entity.PurchaseStatusCancelled},
	entity.PurchaseStatusConfirmed: {entity.PurchaseStatusDelivered, entity.PurchaseStatusCancelled},
}

// CanTransition reports whether from → to is in the purchase transition table.
func CanTransition(from, to entity.PurchaseStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// PurchaseDraft carries the buyer-supplied fields of a new purchase.
type PurchaseDraft struct {
	BuyerID       int64
	CarOfferID    int64
	FinalPrice    float64
	PaymentMethod entity.PaymentMethod
	Observations  *string
}

// NewPurchase builds a PENDING purchase for the given offer. hasActivePurchase
// reports whether another non-cancelled purchase already references the offer.
// The offer's availability is left untouched.
func NewPurchase(buyer *entity.User, offer entity.CarOffer, hasActivePurchase bool, draft PurchaseDraft, now time.Time) (entity.Purchase, error) {
	if draft.FinalPrice < 0 {
		return entity.Purchase{}, domainerrors.ErrInvalidPrice.WithDetails("final price must not be negative")
	}
	if !draft.PaymentMethod.IsValid() {
		return entity.Purchase{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown payment method %q", draft.PaymentMethod))
	}
	if buyer == nil || buyer.Role != entity.RoleBuyer {
		return entity.Purchase{}, domainerrors.ErrBuyerNotFound
	}
	if !buyer.Active {
		return entity.Purchase{}, domainerrors.ErrBuyerNotFound.WithDetails("buyer account is inactive")
	}
	if !offer.Available || hasActivePurchase {
		return entity.Purchase{}, domainerrors.ErrOfferUnavailable
	}

	return entity.Purchase{
		BuyerID:       buyer.ID,
		CarOfferID:    offer.ID,
		FinalPrice:    entity.RoundPrice(draft.FinalPrice),
		Status:        entity.PurchaseStatusPending,
		PaymentMethod: draft.PaymentMethod,
		Observations:  normalizeText(draft.Observations),
		PurchasedAt:   now,
		UpdatedAt:     now,
	}, nil
}

// Confirm moves a PENDING purchase to CONFIRMED and marks its offer sold.
// The offer may already be unavailable when the purchase was reverted from
// CONFIRMED; hasOtherActivePurchase reports whether another non-cancelled
// purchase holds the offer.
func Confirm(p entity.Purchase, offer entity.CarOffer, hasOtherActivePurchase bool, now time.Time) (entity.Purchase, entity.CarOffer, error) {
	if err := checkTransition(p.Status, entity.PurchaseStatusConfirmed); err != nil {
		return p, offer, err
	}
	if hasOtherActivePurchase {
		return p, offer, domainerrors.ErrOfferUnavailable
	}

	p.Status = entity.PurchaseStatusConfirmed
	p.UpdatedAt = now

	return p, MarkAsSold(offer, now), nil
}

// Cancel moves a non-terminal purchase to CANCELLED and reopens its offer,
// whether or not the offer had been marked sold.
func Cancel(p entity.Purchase, offer entity.CarOffer, now time.Time) (entity.Purchase, entity.CarOffer, error) {
	if err := checkTransition(p.Status, entity.PurchaseStatusCancelled); err != nil {
		return p, offer, err
	}

	p.Status = entity.PurchaseStatusCancelled
	p.UpdatedAt = now

	return p, MarkAsAvailable(offer, now), nil
}

// Deliver moves a CONFIRMED purchase to DELIVERED. The offer stays unavailable.
func Deliver(p entity.Purchase, now time.Time) (entity.Purchase, error) {
	if err := checkTransition(p.Status, entity.PurchaseStatusDelivered); err != nil {
		return p, err
	}

	p.Status = entity.PurchaseStatusDelivered
	p.UpdatedAt = now

	return p, nil
}

// RevertToPending forces a CONFIRMED or CANCELLED purchase back to PENDING
// without touching offer availability. Reviving a cancelled purchase requires
// the offer to still be available and unclaimed by another purchase.
func RevertToPending(p entity.Purchase, offer entity.CarOffer, hasOtherActivePurchase bool, now time.Time) (entity.Purchase, error) {
	switch p.Status {
	case entity.PurchaseStatusConfirmed:
	case entity.PurchaseStatusCancelled:
		if !offer.Available || hasOtherActivePurchase {
			return p, domainerrors.ErrOfferUnavailable
		}
	default:
		return p, invalidTransition(p.Status, entity.PurchaseStatusPending)
	}

	p.Status = entity.PurchaseStatusPending
	p.UpdatedAt = now

	return p, nil
}

// MarkAsSold closes an offer.
func MarkAsSold(offer entity.CarOffer, now time.Time) entity.CarOffer {
	offer.Available = false
	offer.UpdatedAt = now

	return offer
}

// MarkAsAvailable reopens an offer.
func MarkAsAvailable(offer entity.CarOffer, now time.Time) entity.CarOffer {
	offer.Available = true
	offer.UpdatedAt = now

	return offer
}

func checkTransition(from, to entity.PurchaseStatus) error {
	if !CanTransition(from, to) {
		return invalidTransition(from, to)
	}

	return nil
}

func invalidTransition(from, to entity.PurchaseStatus) error {
	return domainerrors.ErrInvalidTransition.WithDetails(fmt.Sprintf("%s -> %s", from, to))
}

func normalizeText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
