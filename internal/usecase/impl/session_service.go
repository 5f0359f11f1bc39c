package impl

import (
	"context"
	"log/slog"
	"time"

	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/repository"
	"autoparts/internal/errors"
	logs "autoparts/internal/infra/log"
	"autoparts/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userUsecase usecase.UserUsecase
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
	now         func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserUsecase usecase.UserUsecase
	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userUsecase: params.UserUsecase,
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// Login snapshots the user into a new session. The previous session, if any, is replaced.
func (srv *sessionService) Login(ctx context.Context, identifier, password string) (*entity.Session, error) {
	user, err := srv.userUsecase.Authenticate(ctx, identifier, password)
	if err != nil {
		return nil, err
	}

	session := entity.NewSession(user, srv.now())
	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	srv.log(ctx).Info("User logged in",
		slog.Int64("userID", user.ID),
		slog.String("role", user.Role.String()),
		slog.String("sessionID", session.ID.String()),
	)

	return session, nil
}

func (srv *sessionService) Current(ctx context.Context) (*entity.Session, error) {
	session, err := srv.sessionRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	srv.log(ctx).Info("User logged out")

	return nil
}
