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

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

func (repo *favoriteRepository) FindByID(ctx context.Context, id int64) (*entity.FavoriteCar, error) {
	return repo.findOne(ctx, repo.db.Where("id = ?", id))
}

func (repo *favoriteRepository) FindByBuyerAndCar(ctx context.Context, buyerID, carID int64) (*entity.FavoriteCar, error) {
	return repo.findOne(ctx, repo.db.Where("buyer_id = ? AND car_id = ?", buyerID, carID))
}

func (repo *favoriteRepository) findOne(ctx context.Context, scope *gorm.DB) (*entity.FavoriteCar, error) {
	var favoriteM model.FavoriteCarModel

	if err := scope.WithContext(ctx).First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteDomain(&favoriteM), nil
}

func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.FavoriteCar) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err, constraintFavoriteBuyerCar):
			return domainerrors.ErrFavoriteAlreadyExists
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("favorite references an unknown buyer or car")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}
	favorite.ID = favoriteM.ID

	return nil
}

// Update saves the review and the price-alert flag.
func (repo *favoriteRepository) Update(ctx context.Context, favorite *entity.FavoriteCar) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FavoriteCarModel{}).
		Where("id = ?", favorite.ID).
		Updates(map[string]any{
			"rating":               favorite.Rating,
			"comment":              favorite.Comment,
			"notify_price_changes": favorite.NotifyPriceChanges,
			"updated_at":           favorite.UpdatedAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func (repo *favoriteRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FavoriteCarModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func (repo *favoriteRepository) ListByBuyer(ctx context.Context, buyerID int64, page entity.Page) ([]*entity.FavoriteCar, error) {
	page = page.Normalize()

	var favoriteModels []*model.FavoriteCarModel
	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("added_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return toFavoriteDomains(favoriteModels), nil
}

// ListReviewedByCar returns the favorites of a car carrying a rating or comment.
func (repo *favoriteRepository) ListReviewedByCar(ctx context.Context, carID int64) ([]*entity.FavoriteCar, error) {
	var favoriteModels []*model.FavoriteCarModel
	if err := repo.db.WithContext(ctx).
		Where("car_id = ? AND (rating IS NOT NULL OR comment IS NOT NULL)", carID).
		Order("updated_at DESC, id DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return toFavoriteDomains(favoriteModels), nil
}

// ListPriceWatchers returns the buyers subscribed to price alerts for a car.
func (repo *favoriteRepository) ListPriceWatchers(ctx context.Context, carID int64) ([]int64, error) {
	buyerIDs := []int64{}
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteCarModel{}).
		Where("car_id = ? AND notify_price_changes = ?", carID, true).
		Order("buyer_id").
		Pluck("buyer_id", &buyerIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list price watchers")
	}

	return buyerIDs, nil
}

// --- Mapper Functions ---

func toFavoriteDomains(models []*model.FavoriteCarModel) []*entity.FavoriteCar {
	favorites := make([]*entity.FavoriteCar, 0, len(models))
	for _, favoriteM := range models {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites
}

func toFavoriteDomain(data *model.FavoriteCarModel) *entity.FavoriteCar {
	if data == nil {
		return nil
	}

	return &entity.FavoriteCar{
		ID:                 data.ID,
		BuyerID:            data.BuyerID,
		CarID:              data.CarID,
		Rating:             data.Rating,
		Comment:            data.Comment,
		NotifyPriceChanges: data.NotifyPriceChanges,
		AddedAt:            data.AddedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromFavoriteDomain(data *entity.FavoriteCar) *model.FavoriteCarModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteCarModel{
		ID:                 data.ID,
		BuyerID:            data.BuyerID,
		CarID:              data.CarID,
		Rating:             data.Rating,
		Comment:            data.Comment,
		NotifyPriceChanges: data.NotifyPriceChanges,
		AddedAt:            data.AddedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
