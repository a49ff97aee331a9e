package postgres

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
// Every write after creation goes through the version column.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

func (repo *offerRepository) FindByID(ctx context.Context, id int64) (*entity.CarOffer, error) {
	var offerM model.CarOfferModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find car offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// FindByCarAndDealership returns the open offer of the pair, or its most recent one.
func (repo *offerRepository) FindByCarAndDealership(ctx context.Context, carID, dealershipID int64) (*entity.CarOffer, error) {
	var offerM model.CarOfferModel

	if err := repo.db.WithContext(ctx).
		Where("car_id = ? AND dealership_id = ?", carID, dealershipID).
		Order("available DESC, offered_at DESC, id DESC").
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find car offer by car and dealership")
	}

	return toOfferDomain(&offerM), nil
}

func (repo *offerRepository) ExistsOpen(ctx context.Context, carID, dealershipID, excludeID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CarOfferModel{}).
		Where("car_id = ? AND dealership_id = ? AND available = ? AND id <> ?", carID, dealershipID, true, excludeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check open offers")
	}

	return count > 0, nil
}

func (repo *offerRepository) ExistsClaimed(ctx context.Context, carID, dealershipID, excludeID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CarOfferModel{}).
		Joins("JOIN purchases ON purchases.car_offer_id = car_offers.id").
		Where("car_offers.car_id = ? AND car_offers.dealership_id = ? AND car_offers.id <> ?", carID, dealershipID, excludeID).
		Where("purchases.status <> ?", entity.PurchaseStatusCancelled.String()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check claimed offers")
	}

	return count > 0, nil
}

// LockPair takes a transaction-scoped advisory lock keyed by the pair. Outside a
// transaction the lock is released immediately.
func (repo *offerRepository) LockPair(ctx context.Context, carID, dealershipID int64) error {
	key := carID<<32 ^ dealershipID
	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", key).Error; err != nil {
		return errors.Wrap(err, "failed to lock car offer pair")
	}

	return nil
}

func (repo *offerRepository) ListByDealership(ctx context.Context, dealershipID int64, page entity.Page) ([]*entity.CarOffer, error) {
	return repo.list(ctx, repo.db.Where("dealership_id = ?", dealershipID), page)
}

func (repo *offerRepository) ListAvailable(ctx context.Context, page entity.Page) ([]*entity.CarOffer, error) {
	return repo.list(ctx, repo.db.Where("available = ?", true), page)
}

func (repo *offerRepository) list(ctx context.Context, scope *gorm.DB, page entity.Page) ([]*entity.CarOffer, error) {
	page = page.Normalize()

	var offerModels []*model.CarOfferModel
	if err := scope.WithContext(ctx).
		Order("offered_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list car offers")
	}

	offers := make([]*entity.CarOffer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// Create inserts the offer at version 1.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.CarOffer) error {
	offer.Version = 1
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		return translateOfferWriteError(err, "failed to create car offer")
	}
	offer.ID = offerM.ID

	return nil
}

// UpdateWithVersion writes the offer only if its stored version still equals
// offer.Version, then advances offer.Version.
func (repo *offerRepository) UpdateWithVersion(ctx context.Context, offer *entity.CarOffer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CarOfferModel{}).
		Where("id = ? AND version = ?", offer.ID, offer.Version).
		Updates(map[string]any{
			"price":      offer.Price,
			"notes":      offer.Notes,
			"available":  offer.Available,
			"version":    offer.Version + 1,
			"updated_at": offer.UpdatedAt,
		})
	if result.Error != nil {
		return translateOfferWriteError(result.Error, "failed to update car offer")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, offer.ID); err != nil {
			return err
		}

		return repository.ErrOfferVersionConflict
	}

	offer.Version++

	return nil
}

func translateOfferWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("offer references an unknown car or dealership")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidPrice
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toOfferDomain(data *model.CarOfferModel) *entity.CarOffer {
	if data == nil {
		return nil
	}

	return &entity.CarOffer{
		ID:           data.ID,
		CarID:        data.CarID,
		DealershipID: data.DealershipID,
		Price:        data.Price,
		Notes:        data.Notes,
		Available:    data.Available,
		Version:      data.Version,
		OfferedAt:    data.OfferedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromOfferDomain(data *entity.CarOffer) *model.CarOfferModel {
	if data == nil {
		return nil
	}

	return &model.CarOfferModel{
		ID:           data.ID,
		CarID:        data.CarID,
		DealershipID: data.DealershipID,
		Price:        data.Price,
		Notes:        data.Notes,
		Available:    data.Available,
		Version:      data.Version,
		OfferedAt:    data.OfferedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
