package repository

import (
	"context"
	"iter"
	"slices"

	apperrors "hoteldash/pkg/errors"
	"hoteldash/pkg/logger"
	"hoteldash/pkg/model"
)

// Loader reads the full reservation dataset once.
type Loader interface {
	Load(ctx context.Context) ([]model.Reservation, error)
	Source() string
}

// ReservationStore is the read-only view of the dataset that the dashboard
// queries. Implementations must keep load order.
type ReservationStore interface {
	All() iter.Seq[model.Reservation]
	Records() []model.Reservation
	Len() int
	DistinctValues(attr model.Attribute) []string
	Options() model.FilterOptions
}

// Store keeps the reservations in load order. Nothing mutates it after
// NewStore returns, so it is safe to share between requests.
type Store struct {
	records []model.Reservation
	options model.FilterOptions
}

func NewStore(records []model.Reservation) *Store {
	s := &Store{
		records: slices.Clone(records),
		options: make(model.FilterOptions, len(model.FilterAttributes)),
	}
	for _, attr := range model.FilterAttributes {
		s.options[attr] = firstSeen(s.records, attr)
	}
	return s
}

// Open loads the dataset through loader and wraps any failure as a
// DATA_UNAVAILABLE application error.
func Open(ctx context.Context, loader Loader, log *logger.Logger) (*Store, error) {
	records, err := loader.Load(ctx)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeDataUnavailable) {
			return nil, err
		}
		return nil, apperrors.DataUnavailable(loader.Source(), err)
	}

	store := NewStore(records)
	if store.Len() == 0 {
		log.Warn("Reservation dataset is empty", "source", loader.Source())
	}
	log.Info("Reservation dataset loaded",
		"source", loader.Source(),
		"rows", store.Len(),
		"room_types", len(store.options[model.AttrRoomTypeReserved]),
	)
	return store, nil
}

func (s *Store) All() iter.Seq[model.Reservation] {
	return func(yield func(model.Reservation) bool) {
		for _, r := range s.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of the dataset in load order.
func (s *Store) Records() []model.Reservation {
	return slices.Clone(s.records)
}

func (s *Store) Len() int {
	return len(s.records)
}

// DistinctValues returns the values of attr in the order they first appear
// in the dataset. Unknown attributes yield nil.
func (s *Store) DistinctValues(attr model.Attribute) []string {
	return slices.Clone(s.options[attr])
}

// Options returns the distinct values of every filterable attribute.
func (s *Store) Options() model.FilterOptions {
	out := make(model.FilterOptions, len(s.options))
	for attr, values := range s.options {
		out[attr] = slices.Clone(values)
	}
	return out
}

func firstSeen(records []model.Reservation, attr model.Attribute) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		v := r.Value(attr)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
