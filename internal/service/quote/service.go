package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/platform/logger"
)

type QuoteRepository interface {
	Create(ctx context.Context, params model.CreateQuoteRequestParams) (*model.QuoteRequest, error)
	All(ctx context.Context) ([]*model.QuoteRequest, error)
}

type service struct {
	repo QuoteRepository
}

func NewQuoteService(repo QuoteRepository) *service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params model.CreateQuoteRequestParams) (*model.QuoteRequest, error) {
	const op = "quote.service.Create"

	if err := validateParams(params); err != nil {
		logger.Error(ctx, "validation: quote request", logger.ErrorF(err))
		return nil, err
	}

	quote, err := s.repo.Create(ctx, params)
	if err != nil {
		logger.Error(ctx, "repository create quote request", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "quote request submitted",
		logger.String("quote_id", quote.ID),
		logger.String("vehicle_type", quote.VehicleType),
		logger.Int("quantity", quote.Quantity),
	)
	return quote, nil
}

func (s *service) List(ctx context.Context) ([]*model.QuoteRequest, error) {
	const op = "quote.service.List"

	quotes, err := s.repo.All(ctx)
	if err != nil {
		logger.Error(ctx, "repository list quote requests", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return quotes, nil
}

func validateParams(params model.CreateQuoteRequestParams) error {
	switch {
	case strings.TrimSpace(params.Name) == "":
		return errors.Join(model.ErrValidation, errors.New("name must be non-empty"))
	case strings.TrimSpace(params.Email) == "":
		return errors.Join(model.ErrValidation, errors.New("email must be non-empty"))
	case strings.TrimSpace(params.Phone) == "":
		return errors.Join(model.ErrValidation, errors.New("phone must be non-empty"))
	case strings.TrimSpace(params.VehicleType) == "":
		return errors.Join(model.ErrValidation, errors.New("vehicle type must be non-empty"))
	case strings.TrimSpace(params.BatteryNeeds) == "":
		return errors.Join(model.ErrValidation, errors.New("battery needs must be non-empty"))
	case params.Quantity < 1:
		return errors.Join(model.ErrValidation, errors.New("quantity must be at least 1"))
	}
	return nil
}
