// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by ID, preloading the role profile.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("BuyerProfile").
		Preload("DealershipProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email, ignoring case.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("BuyerProfile").
		Preload("DealershipProfile").
		Where("LOWER(email) = LOWER(?)", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BuyerProfileModel{}).
		Where("national_id = ?", nationalID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check national id")
	}

	return count > 0, nil
}

func (repo *userRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DealershipProfileModel{}).
		Where("tax_id = ?", taxID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check tax id")
	}

	return count > 0, nil
}

// Create persists a new user together with its role profile.
// GORM inserts the user row first and then the associated profile row.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err, constraintUsersEmail):
			return domainerrors.ErrUserAlreadyExists
		case isUniqueConstraintViolation(err, constraintBuyerNationalID),
			isUniqueConstraintViolation(err, constraintDealershipTaxID):
			return domainerrors.ErrIdentityInUse
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	if user.BuyerProfile != nil {
		user.BuyerProfile.UserID = userM.ID
	}
	if user.DealershipProfile != nil {
		user.DealershipProfile.UserID = userM.ID
	}

	return nil
}

// SetActive flips the soft-retirement flag of a user.
func (repo *userRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Phone:        data.Phone,
		Role:         entity.Role(data.Role),
		Active:       data.Active,
		RegisteredAt: data.RegisteredAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if p := data.BuyerProfile; p != nil {
		user.BuyerProfile = &entity.BuyerProfile{
			UserID:     p.UserID,
			NationalID: p.NationalID,
			Address:    p.Address,
		}
	}
	if p := data.DealershipProfile; p != nil {
		user.DealershipProfile = &entity.DealershipProfile{
			UserID:       p.UserID,
			BusinessName: p.BusinessName,
			TaxID:        p.TaxID,
			Address:      p.Address,
			City:         p.City,
			Province:     p.Province,
			Description:  p.Description,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Phone:        data.Phone,
		Role:         data.Role.String(),
		Active:       data.Active,
		RegisteredAt: data.RegisteredAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if p := data.BuyerProfile; p != nil {
		userM.BuyerProfile = &model.BuyerProfileModel{
			UserID:     p.UserID,
			NationalID: p.NationalID,
			Address:    p.Address,
		}
	}
	if p := data.DealershipProfile; p != nil {
		userM.DealershipProfile = &model.DealershipProfileModel{
			UserID:       p.UserID,
			BusinessName: p.BusinessName,
			TaxID:        p.TaxID,
			Address:      p.Address,
			City:         p.City,
			Province:     p.Province,
			Description:  p.Description,
		}
	}

	return userM
}
