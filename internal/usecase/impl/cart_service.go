package impl

import (
	"context"
	"log/slog"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/repository"
	"autoparts/internal/errors"
	logs "autoparts/internal/infra/log"
	"autoparts/internal/usecase"

	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem puts quantity more of the product into the cart.
func (srv *cartService) AddItem(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewProductRepository().FindByID(ctx, productID); err != nil {
			return err
		}

		return repoFactory.NewCartRepository().AddItem(ctx, owner, productID, quantity)
	})
	if err != nil {
		return errors.Wrap(err, "failed to add to cart")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("owner", owner.String()),
		slog.Int64("productID", productID),
		slog.Int("quantity", quantity),
	)

	return nil
}

// SetQuantity stores a positive quantity or removes the line. Removing a line that is already gone succeeds.
func (srv *cartService) SetQuantity(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) error {
	if quantity <= 0 {
		err := srv.Remove(ctx, owner, productID)
		if errors.Is(err, domainerrors.ErrCartLineNotFound) {
			return nil
		}

		return err
	}

	rows, err := srv.cartRepo.SetQuantity(ctx, owner, productID, quantity)
	if err != nil {
		return errors.Wrap(err, "failed to set cart quantity")
	}
	if rows == 0 {
		return domainerrors.ErrCartLineNotFound.WrapMessage("failed to set cart quantity")
	}

	return nil
}

func (srv *cartService) Remove(ctx context.Context, owner entity.CartOwner, productID int64) error {
	rows, err := srv.cartRepo.Remove(ctx, owner, productID)
	if err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}
	if rows == 0 {
		return domainerrors.ErrCartLineNotFound.WrapMessage("failed to remove cart item")
	}

	return nil
}

func (srv *cartService) List(ctx context.Context, owner entity.CartOwner) (*usecase.CartOutput, error) {
	lines, err := srv.cartRepo.List(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	var count int64
	for _, line := range lines {
		count += int64(line.Quantity)
	}

	return &usecase.CartOutput{
		Lines: lines,
		Total: entity.CartTotal(lines),
		Count: count,
	}, nil
}

func (srv *cartService) Count(ctx context.Context, owner entity.CartOwner) (int64, error) {
	count, err := srv.cartRepo.Count(ctx, owner)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count cart")
	}

	return count, nil
}

func (srv *cartService) Clear(ctx context.Context, owner entity.CartOwner) error {
	if _, err := srv.cartRepo.Clear(ctx, owner); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func (srv *cartService) MergeLocalCart(ctx context.Context, session *entity.Session) error {
	if err := requireSession(session); err != nil {
		return err
	}

	target := session.CartOwner()
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCartRepository().Merge(ctx, entity.LocalCartOwner, target)
	})
	if err != nil {
		return errors.Wrap(err, "failed to merge local cart")
	}

	srv.log(ctx).Info("Local cart merged", slog.String("owner", target.String()))

	return nil
}
