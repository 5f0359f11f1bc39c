// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/repository"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
	logs "autoparts/internal/infra/log"
	"autoparts/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns an operation-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account. Email and phone must both be unused.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	phone := entity.NormalizePhone(strings.TrimSpace(input.Phone))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
		Name:         strings.TrimSpace(input.Name),
		Role:         entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := srv.ensureUnused(ctx, userRepo, email, phone); err != nil {
			return err
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return newUser, nil
}

func (srv *userService) ensureUnused(ctx context.Context, userRepo repository.UserRepository, email, phone string) error {
	emailTaken, err := userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if emailTaken {
		return domainerrors.ErrUserAlreadyExists.WithDetails("email")
	}

	phoneTaken, err := userRepo.ExistsByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if phoneTaken {
		return domainerrors.ErrUserAlreadyExists.WithDetails("phone")
	}

	return nil
}

// Authenticate resolves identifier as an email when it contains '@', otherwise as a phone number.
// Unknown accounts and wrong passwords fail identically.
func (srv *userService) Authenticate(ctx context.Context, identifier, password string) (*entity.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("identifier and password are required")
	}

	var (
		user *entity.User
		err  error
	)
	if entity.LooksLikeEmail(identifier) {
		user, err = srv.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = srv.userRepo.FindByPhone(ctx, entity.NormalizePhone(identifier))
	}
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Warn("Login for unknown account")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.Int64("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	if srv.hasher.NeedsRehash(user.PasswordHash) {
		srv.rehash(ctx, user, password)
	}

	if err := srv.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		// Not worth failing a correct login over.
		srv.log(ctx).Warn("Failed to stamp last login", slog.Int64("userID", user.ID), slog.Any("error", err))
	}

	return user, nil
}

// rehash replaces a credential left by an older store. A failure leaves the old value usable.
func (srv *userService) rehash(ctx context.Context, user *entity.User, password string) {
	hashedPassword, err := srv.hasher.Hash(password)
	if err == nil {
		err = srv.userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.Int64("userID", user.ID), slog.Any("error", err))

		return
	}

	user.PasswordHash = hashedPassword
	srv.log(ctx).Info("Password rehashed", slog.Int64("userID", user.ID))
}

func (srv *userService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) error {
	return srv.updateProfile(ctx, input, nil)
}

// UpdateProfileWithPassword also replaces the credential.
func (srv *userService) UpdateProfileWithPassword(ctx context.Context, input *usecase.UpdateProfileInput, password string) error {
	if password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash new password")
	}

	return srv.updateProfile(ctx, input, &hashedPassword)
}

func (srv *userService) updateProfile(ctx context.Context, input *usecase.UpdateProfileInput, passwordHash *string) error {
	if err := validateInput(input); err != nil {
		return err
	}

	user := &entity.User{
		ID:    input.UserID,
		Email: strings.TrimSpace(input.Email),
		Phone: entity.NormalizePhone(strings.TrimSpace(input.Phone)),
		Name:  strings.TrimSpace(input.Name),
	}

	if err := srv.userRepo.UpdateProfile(ctx, user, passwordHash); err != nil {
		return errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Int64("userID", user.ID), slog.Bool("passwordChanged", passwordHash != nil))

	return nil
}

func (srv *userService) CheckPassword(ctx context.Context, userID int64, password string) (bool, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to load user")
	}

	return srv.hasher.Check(password, user.PasswordHash), nil
}

func (srv *userService) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}
