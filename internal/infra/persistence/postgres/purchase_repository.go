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

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

func (repo *purchaseRepository) FindByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by id")
	}

	return toPurchaseDomain(&purchaseM), nil
}

func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err, constraintActivePurchase):
			return domainerrors.ErrOfferUnavailable
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("purchase references an unknown buyer or offer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}
	purchase.ID = purchaseM.ID

	return nil
}

func (repo *purchaseRepository) UpdateStatus(ctx context.Context, purchase *entity.Purchase) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ?", purchase.ID).
		Updates(map[string]any{
			"status":     purchase.Status.String(),
			"updated_at": purchase.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error, constraintActivePurchase) {
			return domainerrors.ErrOfferUnavailable
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update purchase status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPurchaseNotFound
	}

	return nil
}

func (repo *purchaseRepository) HasActiveForOffer(ctx context.Context, offerID, excludeID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("car_offer_id = ? AND status <> ? AND id <> ?", offerID, entity.PurchaseStatusCancelled.String(), excludeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check active purchases")
	}

	return count > 0, nil
}

func (repo *purchaseRepository) HasAnyForOffer(ctx context.Context, offerID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("car_offer_id = ?", offerID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check purchases")
	}

	return count > 0, nil
}

func (repo *purchaseRepository) CountOpenByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("buyer_id = ? AND status IN ?", buyerID, []string{
			entity.PurchaseStatusPending.String(),
			entity.PurchaseStatusConfirmed.String(),
		}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count open purchases")
	}

	return count, nil
}

func (repo *purchaseRepository) ListByBuyer(ctx context.Context, buyerID int64, page entity.Page) ([]*entity.Purchase, error) {
	return repo.list(ctx, repo.db.Where("buyer_id = ?", buyerID), page)
}

func (repo *purchaseRepository) ListByDealership(ctx context.Context, dealershipID int64, page entity.Page) ([]*entity.Purchase, error) {
	scope := repo.db.Where("car_offer_id IN (?)",
		repo.db.Model(&model.CarOfferModel{}).Select("id").Where("dealership_id = ?", dealershipID),
	)

	return repo.list(ctx, scope, page)
}

func (repo *purchaseRepository) list(ctx context.Context, scope *gorm.DB, page entity.Page) ([]*entity.Purchase, error) {
	page = page.Normalize()

	var purchaseModels []*model.PurchaseModel
	if err := scope.WithContext(ctx).
		Order("purchased_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// --- Mapper Functions ---

func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:            data.ID,
		BuyerID:       data.BuyerID,
		CarOfferID:    data.CarOfferID,
		FinalPrice:    data.FinalPrice,
		Status:        entity.PurchaseStatus(data.Status),
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		Observations:  data.Observations,
		PurchasedAt:   data.PurchasedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:            data.ID,
		BuyerID:       data.BuyerID,
		CarOfferID:    data.CarOfferID,
		FinalPrice:    data.FinalPrice,
		Status:        data.Status.String(),
		PaymentMethod: string(data.PaymentMethod),
		Observations:  data.Observations,
		PurchasedAt:   data.PurchasedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
