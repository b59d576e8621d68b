package service

import (
	"context"
	"errors"

	reservationerrors "hoteldash/internal/reservations/errors"
	"hoteldash/internal/reservations/repository"
	"hoteldash/internal/reservations/validator"
	apperrors "hoteldash/pkg/errors"
	"hoteldash/pkg/logger"
	"hoteldash/pkg/model"
)

type DashboardService interface {
	Options() model.FilterOptions
	DefaultSelection() model.Selection
	Dashboard(ctx context.Context, sel model.Selection) (*model.Dashboard, error)
	Reservations(ctx context.Context, sel model.Selection, limit int, offset int64) ([]model.Reservation, int64, error)
	Frequency(ctx context.Context, sel model.Selection, attribute string) ([]model.CategoryCount, error)
}

type dashboardService struct {
	store     repository.ReservationStore
	engine    *Engine
	validator *validator.ChartValidator
	log       *logger.Logger
}

func NewDashboardService(
	store repository.ReservationStore,
	engine *Engine,
	validator *validator.ChartValidator,
	log *logger.Logger,
) DashboardService {
	return &dashboardService{
		store:     store,
		engine:    engine,
		validator: validator,
		log:       log,
	}
}

func (s *dashboardService) Options() model.FilterOptions {
	return s.store.Options()
}

// DefaultSelection allows every value of every attribute, which is what the
// sidebar starts with.
func (s *dashboardService) DefaultSelection() model.Selection {
	return model.SelectAll(s.store.Options())
}

func (s *dashboardService) Dashboard(ctx context.Context, sel model.Selection) (*model.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Timeout("Dashboard computation cancelled")
	}

	filtered := s.engine.ApplyFilter(s.store, sel)

	segments, err := FrequencyByCategory(filtered, model.AttrMarketSegmentType)
	if err != nil {
		return nil, apperrors.Internal("Failed to count market segments", err)
	}
	meals, err := FrequencyByCategory(filtered, model.AttrTypeOfMealPlan)
	if err != nil {
		return nil, apperrors.Internal("Failed to count meal plans", err)
	}

	return &model.Dashboard{
		Rows:           len(filtered),
		KPIs:           ComputeKPIs(filtered),
		RoomTypes:      AggregateByRoomType(filtered),
		MarketSegments: segments,
		MealPlans:      meals,
	}, nil
}

func (s *dashboardService) Reservations(ctx context.Context, sel model.Selection, limit int, offset int64) ([]model.Reservation, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, apperrors.Timeout("Reservation listing cancelled")
	}

	filtered := s.engine.ApplyFilter(s.store, sel)
	total := int64(len(filtered))
	if offset >= total {
		return []model.Reservation{}, total, nil
	}
	end := min(offset+int64(limit), total)
	return filtered[offset:end], total, nil
}

func (s *dashboardService) Frequency(ctx context.Context, sel model.Selection, attribute string) ([]model.CategoryCount, error) {
	if err := s.validator.ValidateChart(&validator.ChartRequest{Attribute: attribute}); err != nil {
		s.log.Warn("Chart request validation failed", "attribute", attribute, "error", err)
		return nil, apperrors.Validation("Chart request validation failed", map[string]any{
			"error": err.Error(),
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Timeout("Chart computation cancelled")
	}

	counts, err := FrequencyByCategory(s.engine.ApplyFilter(s.store, sel), model.Attribute(attribute))
	if errors.Is(err, reservationerrors.ErrUnknownAttribute) {
		return nil, apperrors.NotFound("chart")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to build chart", err)
	}
	return counts, nil
}
