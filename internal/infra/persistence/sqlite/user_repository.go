package sqlite

import (
	"context"
	"time"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/repository"
	"autoparts/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(ctx, "phone = ?", phone)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		return nil, translateError(err, domainerrors.ErrUserNotFound, nil, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", email)
}

func (repo *userRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return repo.exists(ctx, "phone = ?", phone)
}

func (repo *userRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, translateError(err, nil, nil, "failed to check user existence")
	}

	return count > 0, nil
}

// Create persists a new user and writes the generated ID back into user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if !userM.CreatedAt.Valid {
		userM.CreatedAt = model.NewTimestamp(time.Now())
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateError(err, nil, domainerrors.ErrUserAlreadyExists, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt.Time

	return nil
}

// UpdateProfile replaces the contact fields and, when passwordHash is set, the credential.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User, passwordHash *string) error {
	updates := map[string]any{
		"email": user.Email,
		"phone": user.Phone,
		"name":  user.Name,
	}
	if passwordHash != nil {
		updates["password"] = *passwordHash
	}

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error, nil, domainerrors.ErrUserAlreadyExists, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound.WrapMessage("failed to update user")
	}
	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}

	return nil
}

func (repo *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if result.Error != nil {
		return translateError(result.Error, nil, nil, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound.WrapMessage("failed to update password")
	}

	return nil
}

func (repo *userRepository) TouchLastLogin(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("last_login_at", model.NewTimestamp(time.Now()))
	if result.Error != nil {
		return translateError(result.Error, nil, nil, "failed to stamp last login")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound.WrapMessage("failed to stamp last login")
	}

	return nil
}

func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err, nil, nil, "failed to count users")
	}

	return count, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: data.Password,
		Name:         data.Name,
		Role:         entity.Role(data.Role),
		Address:      data.Address,
		AvatarURL:    data.AvatarURL,
		CreatedAt:    data.CreatedAt.Time,
		LastLoginAt:  data.LastLoginAt.Ptr(),
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Phone:     data.Phone,
		Password:  data.PasswordHash,
		Name:      data.Name,
		Role:      string(data.Role),
		Address:   data.Address,
		AvatarURL: data.AvatarURL,
	}
	if !data.CreatedAt.IsZero() {
		userM.CreatedAt = model.NewTimestamp(data.CreatedAt)
	}
	if data.LastLoginAt != nil {
		userM.LastLoginAt = model.NewTimestamp(*data.LastLoginAt)
	}

	return userM
}
