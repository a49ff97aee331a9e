package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurchaseStatus(t *testing.T) {
	assert.True(t, PurchaseStatusPending.IsOpen())
	assert.True(t, PurchaseStatusConfirmed.IsOpen())
	assert.False(t, PurchaseStatusCancelled.IsOpen())

	assert.True(t, PurchaseStatusDelivered.IsTerminal())
	assert.True(t, PurchaseStatusCancelled.IsTerminal())
	assert.False(t, PurchaseStatusPending.IsTerminal())

	assert.False(t, PurchaseStatus("SHIPPED").IsValid())
	assert.True(t, PaymentFinancing.IsValid())
	assert.False(t, PaymentMethod("CHEQUE").IsValid())
}

func TestValidRating(t *testing.T) {
	tests := []struct {
		rating int
		want   bool
	}{
		{-1, false},
		{0, true},
		{5, true},
		{10, true},
		{11, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRating(tt.rating), "rating %d", tt.rating)
	}
}

func TestFavoriteCar_IsReviewed(t *testing.T) {
	rating := 0
	blank := "  "
	comment := "smooth ride"

	assert.False(t, (&FavoriteCar{}).IsReviewed())
	assert.False(t, (&FavoriteCar{Comment: &blank}).IsReviewed())
	assert.True(t, (&FavoriteCar{Rating: &rating}).IsReviewed())
	assert.True(t, (&FavoriteCar{Comment: &comment}).IsReviewed())
}

func TestUser_DisplayName(t *testing.T) {
	buyer := &User{FirstName: "Ana", LastName: "Lopez", Role: RoleBuyer, Active: true}
	assert.Equal(t, "Ana Lopez", buyer.DisplayName())
	assert.True(t, buyer.IsBuyer())
	assert.False(t, buyer.IsDealership())

	dealer := &User{
		FirstName:         "Juan",
		Role:              RoleDealership,
		DealershipProfile: &DealershipProfile{BusinessName: "Autos Norte"},
	}
	assert.Equal(t, "Autos Norte", dealer.DisplayName())
	assert.False(t, dealer.IsDealership(), "inactive dealership")
}

func TestPrincipal_Is(t *testing.T) {
	assert.True(t, Principal{UserID: 7, Role: RoleBuyer}.Is(7))
	assert.False(t, Principal{UserID: 7, Role: RoleBuyer}.Is(8))
	assert.True(t, Principal{UserID: 1, Role: RoleAdmin}.Is(8))
}

func TestPage_Normalize(t *testing.T) {
	assert.Equal(t, Page{Limit: DefaultPageLimit}, Page{}.Normalize())
	assert.Equal(t, Page{Limit: MaxPageLimit, Offset: 0}, Page{Limit: 1000, Offset: -3}.Normalize())
	assert.Equal(t, Page{Limit: 10, Offset: 20}, Page{Limit: 10, Offset: 20}.Normalize())
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 10.01, RoundPrice(10.005000001))
	assert.Equal(t, 25000.0, RoundPrice(25000))
	assert.Equal(t, "Toyota Corolla 2020", (&Car{Brand: "Toyota", Model: "Corolla", Year: 2020}).FullName())
}

func TestSummarizeReviews(t *testing.T) {
	eight, four := 8, 4
	comment := "clean interior"
	blank := " "

	summary := SummarizeReviews(3, []*FavoriteCar{
		{ID: 1, Rating: &eight},
		{ID: 2, Comment: &comment},
		{ID: 3, Rating: &four, Comment: &comment},
		{ID: 4, Comment: &blank},
	})

	assert.Equal(t, int64(3), summary.CarID)
	assert.Equal(t, 2, summary.TotalReviews)
	assert.InDelta(t, 6.0, summary.AverageRating, 1e-9)
	assert.Len(t, summary.Reviews, 3)

	empty := SummarizeReviews(9, nil)
	assert.Zero(t, empty.TotalReviews)
	assert.Zero(t, empty.AverageRating)
	assert.NotNil(t, empty.Reviews)
}

func TestNewPurchaseSummary(t *testing.T) {
	note := "delivery on Friday"
	summary := NewPurchaseSummary(
		&Purchase{ID: 5, FinalPrice: 18500, Status: PurchaseStatusConfirmed, PaymentMethod: PaymentBankTransfer, Observations: &note},
		&Car{Brand: "Ford", Model: "Focus", Year: 2019},
		&User{FirstName: "Ana", LastName: "Lopez", Role: RoleBuyer},
		&User{FirstName: "Juan", Role: RoleDealership, DealershipProfile: &DealershipProfile{BusinessName: "Autos Norte"}},
	)

	assert.Equal(t, int64(5), summary.PurchaseID)
	assert.Equal(t, "Ford Focus 2019", summary.CarFullName)
	assert.Equal(t, "Ana Lopez", summary.BuyerFullName)
	assert.Equal(t, "Autos Norte", summary.DealershipName)
	assert.Equal(t, &note, summary.Observations)
}
