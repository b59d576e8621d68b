package service

import (
	"cmp"
	"fmt"
	"slices"

	reservationerrors "hoteldash/internal/reservations/errors"
	"hoteldash/internal/reservations/repository"
	"hoteldash/pkg/logger"
	"hoteldash/pkg/model"
)

// Engine narrows the dataset to a selection and aggregates the result.
// It holds no state besides its options.
type Engine struct {
	fallback bool
	log      *logger.Logger
}

type EngineOption func(*Engine)

// WithEmptyResultFallback controls whether a selection matching nothing
// yields the whole dataset (the default) or an empty result.
func WithEmptyResultFallback(enabled bool) EngineOption {
	return func(e *Engine) {
		e.fallback = enabled
	}
}

func NewEngine(log *logger.Logger, opts ...EngineOption) *Engine {
	e := &Engine{fallback: true, log: log}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ApplyFilter keeps the reservations whose five filterable attributes are
// all allowed by sel, in store order. When nothing matches and fallback is
// on, the entire store is returned instead, so "no matches" looks exactly
// like "no filter".
func (e *Engine) ApplyFilter(store repository.ReservationStore, sel model.Selection) []model.Reservation {
	filtered := []model.Reservation{}
	for r := range store.All() {
		if sel.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	if len(filtered) < 1 && e.fallback {
		e.log.Debug("Selection matched no reservations, falling back to full dataset", "rows", store.Len())
		return store.Records()
	}
	return filtered
}

// ComputeKPIs sums the headline columns. Each total is truncated toward
// zero after summing.
func ComputeKPIs(filtered []model.Reservation) model.KPIs {
	var adults, children, requests int64
	var price float64
	for _, r := range filtered {
		adults += int64(r.NoOfAdults)
		children += int64(r.NoOfChildren)
		requests += int64(r.NoOfSpecialRequests)
		price += r.AvgPricePerRoom
	}
	return model.KPIs{
		TotalAdults:          adults,
		TotalChildren:        children,
		TotalAvgRoomPrice:    int64(price),
		TotalSpecialRequests: requests,
	}
}

// AggregateByRoomType sums avg_price_per_room per room type and orders the
// groups by ascending total. Equal totals keep first-seen order.
func AggregateByRoomType(filtered []model.Reservation) []model.RoomTypeTotal {
	index := make(map[string]int)
	groups := []model.RoomTypeTotal{}
	for _, r := range filtered {
		i, ok := index[r.RoomTypeReserved]
		if !ok {
			i = len(groups)
			index[r.RoomTypeReserved] = i
			groups = append(groups, model.RoomTypeTotal{RoomType: r.RoomTypeReserved})
		}
		groups[i].TotalPrice += r.AvgPricePerRoom
	}

	slices.SortStableFunc(groups, func(a, b model.RoomTypeTotal) int {
		return cmp.Compare(a.TotalPrice, b.TotalPrice)
	})
	return groups
}

// FrequencyByCategory counts each distinct value of attr, listing values in
// the order they first appear in filtered.
func FrequencyByCategory(filtered []model.Reservation, attr model.Attribute) ([]model.CategoryCount, error) {
	if !attr.IsFilterable() {
		return nil, fmt.Errorf("%w: %q", reservationerrors.ErrUnknownAttribute, attr)
	}

	index := make(map[string]int)
	counts := []model.CategoryCount{}
	for _, r := range filtered {
		v := r.Value(attr)
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, model.CategoryCount{Value: v})
		}
		counts[i].Count++
	}
	return counts, nil
}
