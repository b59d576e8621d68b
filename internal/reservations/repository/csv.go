package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	reservationerrors "hoteldash/internal/reservations/errors"
	apperrors "hoteldash/pkg/errors"
	"hoteldash/pkg/model"
)

var utf8BOM = []byte("\xef\xbb\xbf")

type CSVLoader struct {
	path string
}

func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

func (l *CSVLoader) Source() string {
	return l.path
}

func (l *CSVLoader) Load(ctx context.Context) ([]model.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, apperrors.DataUnavailable(l.path, err)
	}

	records, err := DecodeCSV(data)
	if err != nil {
		return nil, apperrors.DataUnavailable(l.path, err)
	}
	return records, nil
}

// DecodeCSV parses a reservations CSV. The header must name every required
// column; extra columns are ignored.
func DecodeCSV(data []byte) ([]model.Reservation, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, reservationerrors.ErrNoHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", reservationerrors.ErrMissingColumns, strings.Join(missing, ", "))
	}

	records := []model.Reservation{}
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return records, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = struct{}{}
	}

	var missing []string
	for _, col := range model.RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
