package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          systemClock,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBuyer creates a buyer account with its profile.
func (srv *userService) RegisterBuyer(ctx context.Context, input *usecase.RegisterBuyerInput) (*entity.User, error) {
	nationalID := strings.TrimSpace(input.NationalID)
	if nationalID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("national id is required")
	}

	return srv.register(ctx, &input.AccountInput, entity.RoleBuyer, func(user *entity.User) {
		user.BuyerProfile = &entity.BuyerProfile{
			NationalID: nationalID,
			Address:    strings.TrimSpace(input.Address),
		}
	}, func(users repository.UserRepository) (bool, error) {
		return users.ExistsByNationalID(ctx, nationalID)
	})
}

// RegisterDealership creates a dealership account with its profile.
func (srv *userService) RegisterDealership(ctx context.Context, input *usecase.RegisterDealershipInput) (*entity.User, error) {
	taxID := strings.TrimSpace(input.TaxID)
	businessName := strings.TrimSpace(input.BusinessName)
	if taxID == "" || businessName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("business name and tax id are required")
	}

	return srv.register(ctx, &input.AccountInput, entity.RoleDealership, func(user *entity.User) {
		user.DealershipProfile = &entity.DealershipProfile{
			BusinessName: businessName,
			TaxID:        taxID,
			Address:      strings.TrimSpace(input.Address),
			City:         strings.TrimSpace(input.City),
			Province:     strings.TrimSpace(input.Province),
			Description:  strings.TrimSpace(input.Description),
		}
	}, func(users repository.UserRepository) (bool, error) {
		return users.ExistsByTaxID(ctx, taxID)
	})
}

// RegisterAdmin creates another administrator.
func (srv *userService) RegisterAdmin(ctx context.Context, principal entity.Principal, input *usecase.AccountInput) (*entity.User, error) {
	if !principal.IsAdmin() {
		return nil, forbidden("only administrators may create administrators")
	}

	return srv.register(ctx, input, entity.RoleAdmin, nil, nil)
}

// EnsureAdmin creates the bootstrap administrator unless its email is taken.
func (srv *userService) EnsureAdmin(ctx context.Context, input *usecase.AccountInput) error {
	_, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up bootstrap admin")
	}

	admin, err := srv.register(ctx, input, entity.RoleAdmin, nil, nil)
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Bootstrap administrator created", slog.Int64("userID", admin.ID))

	return nil
}

func (srv *userService) register(
	ctx context.Context,
	input *usecase.AccountInput,
	role entity.Role,
	attachProfile func(*entity.User),
	identityTaken func(repository.UserRepository) (bool, error),
) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || strings.TrimSpace(input.FirstName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and first name are required")
	}

	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        strings.TrimSpace(input.Phone),
		Role:         role,
		Active:       true,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
	if attachProfile != nil {
		attachProfile(user)
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		users := factory.NewUserRepository()

		_, err := users.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		if identityTaken != nil {
			taken, err := identityTaken(users)
			if err != nil {
				return errors.Wrap(err, "failed to check identity")
			}
			if taken {
				return domainerrors.ErrIdentityInUse
			}
		}

		return users.Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("role", role), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Int64("userID", user.ID))

	return user, nil
}

// Login verifies the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domainerrors.ErrUserInactive
	}

	token, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

// GetUser returns an account to its owner or an administrator.
func (srv *userService) GetUser(ctx context.Context, principal entity.Principal, id int64) (*entity.User, error) {
	if err := requireSelf(principal, id); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return user, nil
}

// SetUserActive retires or reactivates an account.
func (srv *userService) SetUserActive(ctx context.Context, principal entity.Principal, id int64, active bool) error {
	if !principal.IsAdmin() {
		return forbidden("only administrators may change account status")
	}
	if principal.UserID == id && !active {
		return domainerrors.ErrValidationFailed.WithDetails("administrators cannot deactivate themselves")
	}

	if err := srv.userRepo.SetActive(ctx, id, active); err != nil {
		return translateRepoError(err)
	}

	srv.log(ctx).Info("User status changed", slog.Int64("userID", id), slog.Bool("active", active))

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
