package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"hoteldash/internal/reservations/service"
	httputil "hoteldash/pkg/http"
	"hoteldash/pkg/logger"
	"hoteldash/pkg/model"
)

type DashboardHandler struct {
	service      service.DashboardService
	log          *logger.Logger
	maxTableRows int
}

func NewDashboardHandler(service service.DashboardService, log *logger.Logger, maxTableRows int) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		log:          log,
		maxTableRows: maxTableRows,
	}
}

type filterOption struct {
	Attribute model.Attribute `json:"attribute"`
	Label     string          `json:"label"`
	Values    []string        `json:"values"`
}

// Filters lists the sidebar options. Selecting all of them is the default
// view.
func (h *DashboardHandler) Filters(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	options := h.service.Options()
	out := make([]filterOption, 0, len(model.FilterAttributes))
	for _, attr := range model.FilterAttributes {
		out = append(out, filterOption{
			Attribute: attr,
			Label:     attr.Label(),
			Values:    options[attr],
		})
	}

	if err := httputil.WriteSuccess(w, out); err != nil {
		h.log.Error("failed to write success response", "handler", "Filters", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sel := parseSelection(r.URL.Query(), h.service.Options())

	dashboard, err := h.service.Dashboard(r.Context(), sel)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Dashboard", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, dashboard); err != nil {
		h.log.Error("failed to write success response", "handler", "Dashboard", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) Reservations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r, h.maxTableRows)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Reservations", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	sel := parseSelection(r.URL.Query(), h.service.Options())
	rows, total, err := h.service.Reservations(r.Context(), sel, limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Reservations", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, rows, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "Reservations", "operation", "WritePaginated", "error", err)
	}
}

func (h *DashboardHandler) Chart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sel := parseSelection(r.URL.Query(), h.service.Options())

	counts, err := h.service.Frequency(r.Context(), sel, ps.ByName("attribute"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Chart", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, counts); err != nil {
		h.log.Error("failed to write success response", "handler", "Chart", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/filters", h.Filters)
	router.GET("/api/v1/dashboard", h.Dashboard)
	router.GET("/api/v1/reservations", h.Reservations)
	router.GET("/api/v1/charts/:attribute", h.Chart)
}
