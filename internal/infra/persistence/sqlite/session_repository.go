package sqlite

import (
	"context"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/repository"
	"autoparts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Save overwrites the single session row.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slot"}}, UpdateAll: true}).
		Create(sessionM).Error
	if err != nil {
		return translateError(err, nil, nil, "failed to save session")
	}

	return nil
}

func (repo *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("slot = ? AND logged_in = ?", model.SessionSlot, true).
		First(&sessionM).Error
	if err != nil {
		return nil, translateError(err, domainerrors.ErrNoSession, nil, "failed to load session")
	}

	return toSessionDomain(&sessionM), nil
}

// Clear drops all session state.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.SessionModel{}).Error
	if err != nil {
		return translateError(err, nil, nil, "failed to clear session")
	}

	return nil
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	snapshot := data.UserJSON.Data()
	// The scalar columns back up a snapshot that could not be read.
	if snapshot.ID == 0 {
		snapshot = model.SessionUserJSON{
			ID:    data.UserID,
			Email: data.Email,
			Phone: data.Phone,
			Name:  data.Name,
			Role:  data.Role,
		}
	}

	id, err := uuid.Parse(data.SessionID)
	if err != nil {
		id = uuid.Nil
	}

	return &entity.Session{
		ID:       id,
		LoggedIn: data.LoggedIn,
		User: entity.SessionUser{
			ID:    snapshot.ID,
			Email: snapshot.Email,
			Phone: snapshot.Phone,
			Name:  snapshot.Name,
			Role:  entity.Role(snapshot.Role),
		},
		CreatedAt: data.CreatedAt.Time,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	snapshot := model.SessionUserJSON{
		ID:    data.User.ID,
		Email: data.User.Email,
		Phone: data.User.Phone,
		Name:  data.User.Name,
		Role:  string(data.User.Role),
	}

	return &model.SessionModel{
		Slot:      model.SessionSlot,
		SessionID: data.ID.String(),
		LoggedIn:  data.LoggedIn,
		UserJSON:  datatypes.NewJSONType(snapshot),
		UserID:    snapshot.ID,
		Email:     snapshot.Email,
		Phone:     snapshot.Phone,
		Name:      snapshot.Name,
		Role:      snapshot.Role,
		CreatedAt: model.NewTimestamp(data.CreatedAt),
	}
}
