package entity

import "time"

// PurchaseStatus is the lifecycle state of a Purchase.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusConfirmed PurchaseStatus = "CONFIRMED"
	PurchaseStatusDelivered PurchaseStatus = "DELIVERED"
	PurchaseStatusCancelled PurchaseStatus = "CANCELLED"
)

// String returns the string representation of the PurchaseStatus.
func (s PurchaseStatus) String() string {
	return string(s)
}

// IsValid checks if the PurchaseStatus is a valid value.
func (s PurchaseStatus) IsValid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusConfirmed, PurchaseStatusDelivered, PurchaseStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is legal from this state.
func (s PurchaseStatus) IsTerminal() bool {
	return s == PurchaseStatusDelivered || s == PurchaseStatusCancelled
}

// IsOpen reports whether the purchase still holds a claim on its buyer's quota.
func (s PurchaseStatus) IsOpen() bool {
	return s == PurchaseStatusPending || s == PurchaseStatusConfirmed
}

// PaymentMethod enumerates how a buyer settles a purchase.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentFinancing    PaymentMethod = "FINANCING"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentBankTransfer, PaymentFinancing:
		return true
	default:
		return false
	}
}

// Purchase binds one buyer to one car offer.
type Purchase struct {
	ID            int64          // Surrogate identifier.
	BuyerID       int64          // Purchasing buyer.
	CarOfferID    int64          // Purchased offer.
	FinalPrice    float64        // Agreed price, two decimals.
	Status        PurchaseStatus // Lifecycle state.
	PaymentMethod PaymentMethod  // Settlement method.
	Observations  *string        // Optional free-text notes.
	PurchasedAt   time.Time      // Creation timestamp.
	UpdatedAt     time.Time      // Timestamp of the last status change.
}

// PurchaseSummary is the human-readable projection of a purchase.
type PurchaseSummary struct {
	PurchaseID     int64          `json:"purchase_id"`
	CarFullName    string         `json:"car_full_name"`
	BuyerFullName  string         `json:"buyer_full_name"`
	DealershipName string         `json:"dealership_name"`
	FinalPrice     float64        `json:"final_price"`
	PurchasedAt    time.Time      `json:"purchased_at"`
	Status         PurchaseStatus `json:"status"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	Observations   *string        `json:"observations,omitempty"`
}

// NewPurchaseSummary assembles the summary of p from its related records.
func NewPurchaseSummary(p *Purchase, car *Car, buyer, dealership *User) *PurchaseSummary {
	return &PurchaseSummary{
		PurchaseID:     p.ID,
		CarFullName:    car.FullName(),
		BuyerFullName:  buyer.FullName(),
		DealershipName: dealership.DisplayName(),
		FinalPrice:     p.FinalPrice,
		PurchasedAt:    p.PurchasedAt,
		Status:         p.Status,
		PaymentMethod:  p.PaymentMethod,
		Observations:   p.Observations,
	}
}
