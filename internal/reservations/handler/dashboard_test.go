package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldash/internal/reservations/repository"
	"hoteldash/internal/reservations/service"
	"hoteldash/internal/reservations/validator"
	apperrors "hoteldash/pkg/errors"
	httputil "hoteldash/pkg/http"
	"hoteldash/pkg/logger"
	"hoteldash/pkg/model"
)

func testRows() []model.Reservation {
	return []model.Reservation{
		{BookingID: "A1", BookingStatus: "Canceled", ArrivalYear: 2017, MarketSegmentType: "Online", TypeOfMealPlan: "Meal Plan 1", RoomTypeReserved: "Room_Type 1", NoOfAdults: 2, AvgPricePerRoom: 100.5},
		{BookingID: "A2", BookingStatus: "Not_Canceled", ArrivalYear: 2018, MarketSegmentType: "Offline", TypeOfMealPlan: "Not Selected", RoomTypeReserved: "Room_Type 4", NoOfAdults: 1, NoOfChildren: 2, AvgPricePerRoom: 200, NoOfSpecialRequests: 1},
		{BookingID: "A3", BookingStatus: "Not_Canceled", ArrivalYear: 2018, MarketSegmentType: "Online", TypeOfMealPlan: "Meal Plan 1", RoomTypeReserved: "Room_Type 1", NoOfAdults: 3, AvgPricePerRoom: 50.25, NoOfSpecialRequests: 2},
	}
}

func newTestRouter(t *testing.T, maxTableRows int) *httprouter.Router {
	t.Helper()
	log := logger.Discard()
	store := repository.NewStore(testRows())
	svc := service.NewDashboardService(store, service.NewEngine(log), validator.NewChartValidator(log), log)

	router := httprouter.New()
	NewDashboardHandler(svc, log, maxTableRows).RegisterRoutes(router)
	NewPageHandler(svc, log, maxTableRows).RegisterRoutes(router)
	NewHealthHandler(stubPinger{}, store.Len(), log).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestParseSelection(t *testing.T) {
	defaults := model.FilterOptions{
		model.AttrBookingStatus:     {"Canceled", "Not_Canceled"},
		model.AttrArrivalYear:       {"2017", "2018"},
		model.AttrMarketSegmentType: {"Online"},
		model.AttrTypeOfMealPlan:    {"Meal Plan 1"},
		model.AttrRoomTypeReserved:  {"Room_Type 1"},
	}

	tests := []struct {
		name  string
		query url.Values
		check func(t *testing.T, sel model.Selection)
	}{
		{
			name:  "absent parameters take defaults",
			query: url.Values{},
			check: func(t *testing.T, sel model.Selection) {
				assert.Equal(t, 2, sel.Len(model.AttrBookingStatus))
				assert.True(t, sel.Allows(model.AttrArrivalYear, "2018"))
			},
		},
		{
			name:  "comma separated and repeated values",
			query: url.Values{"arrival_year": {"2017, 2019", "2017"}},
			check: func(t *testing.T, sel model.Selection) {
				assert.Equal(t, 2, sel.Len(model.AttrArrivalYear))
				assert.True(t, sel.Allows(model.AttrArrivalYear, "2019"))
				assert.False(t, sel.Allows(model.AttrArrivalYear, "2018"))
			},
		},
		{
			name:  "blank parameter allows nothing",
			query: url.Values{"booking_status": {""}},
			check: func(t *testing.T, sel model.Selection) {
				assert.Equal(t, 0, sel.Len(model.AttrBookingStatus))
			},
		},
		{
			name:  "values are split on commas",
			query: url.Values{"market_segment_type": {"Online,Offline"}},
			check: func(t *testing.T, sel model.Selection) {
				assert.False(t, sel.Allows(model.AttrMarketSegmentType, "Online,Offline"))
				assert.True(t, sel.Allows(model.AttrMarketSegmentType, "Online"))
				assert.True(t, sel.Allows(model.AttrMarketSegmentType, "Offline"))
			},
		},
		{
			name:  "hidden blank input plus selections",
			query: url.Values{"type_of_meal_plan": {"", "Meal Plan 2"}},
			check: func(t *testing.T, sel model.Selection) {
				assert.Equal(t, 1, sel.Len(model.AttrTypeOfMealPlan))
				assert.True(t, sel.Allows(model.AttrTypeOfMealPlan, "Meal Plan 2"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, parseSelection(tt.query, defaults))
		})
	}
}

func TestFilters(t *testing.T) {
	w := serve(newTestRouter(t, 100), "/api/v1/filters")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []filterOption `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Data, len(model.FilterAttributes))
	assert.Equal(t, model.AttrBookingStatus, resp.Data[0].Attribute)
	assert.Equal(t, []string{"Canceled", "Not_Canceled"}, resp.Data[0].Values)
}

func TestDashboardEndpoint(t *testing.T) {
	router := newTestRouter(t, 100)

	tests := []struct {
		name     string
		target   string
		wantRows int
		wantKPIs model.KPIs
	}{
		{
			name:     "default selection",
			target:   "/api/v1/dashboard",
			wantRows: 3,
			wantKPIs: model.KPIs{TotalAdults: 6, TotalChildren: 2, TotalAvgRoomPrice: 350, TotalSpecialRequests: 3},
		},
		{
			name:     "filtered by year",
			target:   "/api/v1/dashboard?arrival_year=2018",
			wantRows: 2,
			wantKPIs: model.KPIs{TotalAdults: 4, TotalChildren: 2, TotalAvgRoomPrice: 250, TotalSpecialRequests: 3},
		},
		{
			name:     "no match falls back to all rows",
			target:   "/api/v1/dashboard?booking_status=",
			wantRows: 3,
			wantKPIs: model.KPIs{TotalAdults: 6, TotalChildren: 2, TotalAvgRoomPrice: 350, TotalSpecialRequests: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Data model.Dashboard `json:"data"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantRows, resp.Data.Rows)
			assert.Equal(t, tt.wantKPIs, resp.Data.KPIs)
		})
	}
}

func TestReservationsEndpoint(t *testing.T) {
	router := newTestRouter(t, 2)

	w := serve(router, "/api/v1/reservations?limit=50")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []model.Reservation `json:"data"`
		TotalCount int64               `json:"total_count"`
		Limit      int                 `json:"limit"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Equal(t, 2, resp.Limit, "limit is capped at the configured maximum")
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "A1", resp.Data[0].BookingID)

	w = serve(router, "/api/v1/reservations?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChartEndpoint(t *testing.T) {
	router := newTestRouter(t, 100)

	w := serve(router, "/api/v1/charts/market_segment_type")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.CategoryCount `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []model.CategoryCount{{Value: "Online", Count: 2}, {Value: "Offline", Count: 1}}, resp.Data)

	w = serve(router, "/api/v1/charts/lead_time")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPage(t *testing.T) {
	router := newTestRouter(t, 2)

	w := serve(router, "/?room_type_reserved=Room_Type+1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, pageTitle)
	assert.Contains(t, body, "US $ 150")
	assert.Contains(t, body, "Total average price by room type")
	assert.Contains(t, body, "<td>A3</td>")
	assert.NotContains(t, body, "<td>A2</td>")
	assert.Contains(t, body, "filter by room type reserved (1 of 2 selected)")
	assert.Contains(t, body, "filter by booking status (2 of 2 selected)")
}

func TestPage_Truncated(t *testing.T) {
	w := serve(newTestRouter(t, 2), "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Showing 2 of 3 rows.")
}

func TestHealth(t *testing.T) {
	w := serve(newTestRouter(t, 100), "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, HealthResponse{Status: "ok", Rows: 3}, resp)
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus int
		wantCode   string
	}{
		{name: "no database", pinger: stubPinger{}, wantStatus: http.StatusOK},
		{name: "database down", pinger: stubPinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantCode: apperrors.CodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := httprouter.New()
			NewHealthHandler(tt.pinger, 3, logger.Discard()).RegisterRoutes(router)

			w := serve(router, "/ready")
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode == "" {
				var resp HealthResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, HealthResponse{Status: "ready", Rows: 3}, resp)
				return
			}

			var resp httputil.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, "MongoDB is temporarily unavailable", resp.Error)
		})
	}
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 0.0, barWidth(5, 0))
	assert.Equal(t, 0.0, barWidth(0, 10))
	assert.Equal(t, 50.0, barWidth(5, 10))
	assert.Equal(t, 100.0, barWidth(10, 10))
}
