package http

import (
	"net/http"
	"strconv"

	"hoteldash/pkg/config"
	apperrors "hoteldash/pkg/errors"
)

// ExtractLimitOffset reads table pagination from the query string. maxLimit
// caps the page size.
func ExtractLimitOffset(r *http.Request, maxLimit int) (int, int64, error) {
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}

	var offset int64 = 0
	if s := query.Get("offset"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid offset parameter: " + s)
		}
		offset = v
	}

	limit = config.NormalizePaginationLimit(limit, maxLimit)
	offset = config.NormalizeOffset(offset)

	return limit, offset, nil
}
