package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/platform/logger"
)

type CartRepository interface {
	ItemsBySession(ctx context.Context, sessionID string) ([]*model.CartItem, error)
	Add(ctx context.Context, params model.AddCartItemParams) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (*model.CartItem, error)
	Remove(ctx context.Context, id string) error
	ClearSession(ctx context.Context, sessionID string) error
}

type ProductProvider interface {
	ByID(ctx context.Context, id string) (*model.Product, error)
}

type service struct {
	repo     CartRepository
	products ProductProvider
}

func NewCartService(repo CartRepository, products ProductProvider) *service {
	return &service{repo: repo, products: products}
}

// Lines returns the session's cart items joined with their products.
// A dangling product reference yields a line with a nil product, not an
// error.
func (s *service) Lines(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	const op = "cart.service.Lines"
	log := logger.With(logger.String("session_id", sessionID))

	if strings.TrimSpace(sessionID) == "" {
		log.Error(ctx, "validation: empty session id")
		return nil, errors.Join(model.ErrValidation, errors.New("session id must be non-empty"))
	}

	items, err := s.repo.ItemsBySession(ctx, sessionID)
	if err != nil {
		log.Error(ctx, "repository items by session", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lines := make([]model.CartLine, 0, len(items))
	for _, item := range items {
		line := model.CartLine{CartItem: *item}

		product, err := s.products.ByID(ctx, item.ProductID)
		switch {
		case err == nil:
			line.Product = product
		case errors.Is(err, model.ErrProductNotFound):
			log.Warn(ctx, "cart references missing product",
				logger.String("product_id", item.ProductID),
			)
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}

func (s *service) Add(ctx context.Context, params model.AddCartItemParams) (*model.CartItem, error) {
	const op = "cart.service.Add"

	if strings.TrimSpace(params.SessionID) == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("session id must be non-empty"))
	}
	if strings.TrimSpace(params.ProductID) == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("product id must be non-empty"))
	}
	if params.Quantity < 1 {
		params.Quantity = 1
	}

	item, err := s.repo.Add(ctx, params)
	if err != nil {
		logger.Error(ctx, "repository add to cart", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// UpdateQuantity forwards the quantity as-is; zero and negative values
// are stored unchanged.
func (s *service) UpdateQuantity(ctx context.Context, id string, quantity int) (*model.CartItem, error) {
	const op = "cart.service.UpdateQuantity"

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("cart item id must be non-empty"))
	}

	item, err := s.repo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		if !errors.Is(err, model.ErrCartItemNotFound) {
			logger.Error(ctx, "repository update cart item", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	const op = "cart.service.Remove"

	id = strings.TrimSpace(id)
	if id == "" {
		return errors.Join(model.ErrValidation, errors.New("cart item id must be non-empty"))
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		if !errors.Is(err, model.ErrCartItemNotFound) {
			logger.Error(ctx, "repository remove from cart", logger.ErrorF(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	const op = "cart.service.Clear"

	if strings.TrimSpace(sessionID) == "" {
		return errors.Join(model.ErrValidation, errors.New("session id must be non-empty"))
	}

	if err := s.repo.ClearSession(ctx, sessionID); err != nil {
		logger.Error(ctx, "repository clear cart", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
