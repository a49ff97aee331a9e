package handler

import (
	"time"

	"carmarket/internal/domain/entity"
)

// UserResponse is the public projection of a user. Credentials and
// national or tax identifiers are never rendered.
type UserResponse struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Phone        string      `json:"phone"`
	Role         entity.Role `json:"role"`
	Active       bool        `json:"active"`
	RegisteredAt time.Time   `json:"registered_at"`
	Address      string      `json:"address,omitempty"`
	BusinessName string      `json:"business_name,omitempty"`
	City         string      `json:"city,omitempty"`
	Province     string      `json:"province,omitempty"`
	Description  string      `json:"description,omitempty"`
}

func toUserResponse(u *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Role:         u.Role,
		Active:       u.Active,
		RegisteredAt: u.RegisteredAt,
	}
	if u.BuyerProfile != nil {
		resp.Address = u.BuyerProfile.Address
	}
	if d := u.DealershipProfile; d != nil {
		resp.Address = d.Address
		resp.BusinessName = d.BusinessName
		resp.City = d.City
		resp.Province = d.Province
		resp.Description = d.Description
	}

	return resp
}

type CarResponse struct {
	ID           int64               `json:"id"`
	Brand        string              `json:"brand"`
	Model        string              `json:"model"`
	Year         int                 `json:"year"`
	Mileage      int                 `json:"mileage"`
	Color        string              `json:"color"`
	FuelType     entity.FuelType     `json:"fuel_type"`
	Transmission entity.Transmission `json:"transmission"`
	Plate        string              `json:"plate"`
	Description  *string             `json:"description,omitempty"`
	Images       []string            `json:"images"`
	Available    bool                `json:"available"`
	PublishedAt  time.Time           `json:"published_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func toCarResponse(car *entity.Car) *CarResponse {
	images := car.Images
	if images == nil {
		images = []string{}
	}

	return &CarResponse{
		ID:           car.ID,
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         car.Year,
		Mileage:      car.Mileage,
		Color:        car.Color,
		FuelType:     car.FuelType,
		Transmission: car.Transmission,
		Plate:        car.Plate,
		Description:  car.Description,
		Images:       images,
		Available:    car.Available,
		PublishedAt:  car.PublishedAt,
		UpdatedAt:    car.UpdatedAt,
	}
}

func toCarResponses(cars []*entity.Car) []*CarResponse {
	out := make([]*CarResponse, 0, len(cars))
	for _, car := range cars {
		out = append(out, toCarResponse(car))
	}

	return out
}

type OfferResponse struct {
	ID           int64     `json:"id"`
	CarID        int64     `json:"car_id"`
	DealershipID int64     `json:"dealership_id"`
	Price        float64   `json:"price"`
	Notes        *string   `json:"notes,omitempty"`
	Available    bool      `json:"available"`
	Version      int64     `json:"version"`
	OfferedAt    time.Time `json:"offered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toOfferResponse(o *entity.CarOffer) *OfferResponse {
	return &OfferResponse{
		ID:           o.ID,
		CarID:        o.CarID,
		DealershipID: o.DealershipID,
		Price:        o.Price,
		Notes:        o.Notes,
		Available:    o.Available,
		Version:      o.Version,
		OfferedAt:    o.OfferedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toOfferResponses(offers []*entity.CarOffer) []*OfferResponse {
	out := make([]*OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, toOfferResponse(o))
	}

	return out
}

type PurchaseResponse struct {
	ID            int64                 `json:"id"`
	BuyerID       int64                 `json:"buyer_id"`
	CarOfferID    int64                 `json:"car_offer_id"`
	FinalPrice    float64               `json:"final_price"`
	Status        entity.PurchaseStatus `json:"status"`
	PaymentMethod entity.PaymentMethod  `json:"payment_method"`
	Observations  *string               `json:"observations,omitempty"`
	PurchasedAt   time.Time             `json:"purchased_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func toPurchaseResponse(p *entity.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		ID:            p.ID,
		BuyerID:       p.BuyerID,
		CarOfferID:    p.CarOfferID,
		FinalPrice:    p.FinalPrice,
		Status:        p.Status,
		PaymentMethod: p.PaymentMethod,
		Observations:  p.Observations,
		PurchasedAt:   p.PurchasedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPurchaseResponses(purchases []*entity.Purchase) []*PurchaseResponse {
	out := make([]*PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}

	return out
}

type FavoriteResponse struct {
	ID                 int64     `json:"id"`
	BuyerID            int64     `json:"buyer_id"`
	CarID              int64     `json:"car_id"`
	Rating             *int      `json:"rating,omitempty"`
	Comment            *string   `json:"comment,omitempty"`
	NotifyPriceChanges bool      `json:"notify_price_changes"`
	AddedAt            time.Time `json:"added_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toFavoriteResponse(f *entity.FavoriteCar) *FavoriteResponse {
	return &FavoriteResponse{
		ID:                 f.ID,
		BuyerID:            f.BuyerID,
		CarID:              f.CarID,
		Rating:             f.Rating,
		Comment:            f.Comment,
		NotifyPriceChanges: f.NotifyPriceChanges,
		AddedAt:            f.AddedAt,
		UpdatedAt:          f.UpdatedAt,
	}
}

func toFavoriteResponses(favorites []*entity.FavoriteCar) []*FavoriteResponse {
	out := make([]*FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, toFavoriteResponse(f))
	}

	return out
}

type ReviewSummaryResponse struct {
	CarID         int64               `json:"car_id"`
	TotalReviews  int                 `json:"total_reviews"`
	AverageRating float64             `json:"average_rating"`
	Reviews       []*FavoriteResponse `json:"reviews"`
}

func toReviewSummaryResponse(s *entity.CarReviewSummary) *ReviewSummaryResponse {
	return &ReviewSummaryResponse{
		CarID:         s.CarID,
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		Reviews:       toFavoriteResponses(s.Reviews),
	}
}
