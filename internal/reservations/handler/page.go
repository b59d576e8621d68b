package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"hoteldash/internal/reservations/service"
	apperrors "hoteldash/pkg/errors"
	httputil "hoteldash/pkg/http"
	"hoteldash/pkg/logger"
	"hoteldash/pkg/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

const pageTitle = "HOTEL RESERVATION DASHBOARD"

type PageHandler struct {
	service      service.DashboardService
	log          *logger.Logger
	maxTableRows int
}

func NewPageHandler(service service.DashboardService, log *logger.Logger, maxTableRows int) *PageHandler {
	return &PageHandler{
		service:      service,
		log:          log,
		maxTableRows: maxTableRows,
	}
}

type optionView struct {
	Value    string
	Selected bool
}

type filterView struct {
	Attribute model.Attribute
	Label     string
	Options   []optionView
	Selected  int
}

type barView struct {
	Label string
	Value string
	Width float64
}

type chartView struct {
	Title string
	Bars  []barView
}

type pageView struct {
	Title     string
	Filters   []filterView
	KPIs      model.KPIs
	Charts    []chartView
	Rows      []model.Reservation
	TotalRows int
	Truncated bool
}

// Page renders the whole dashboard for the selection in the query string.
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	options := h.service.Options()
	sel := parseSelection(r.URL.Query(), options)

	dashboard, err := h.service.Dashboard(r.Context(), sel)
	if err != nil {
		h.writeError(w, err)
		return
	}
	rows, total, err := h.service.Reservations(r.Context(), sel, h.maxTableRows, 0)
	if err != nil {
		h.writeError(w, err)
		return
	}

	view := pageView{
		Title:     pageTitle,
		Filters:   filterViews(options, sel),
		KPIs:      dashboard.KPIs,
		Rows:      rows,
		TotalRows: int(total),
		Truncated: int64(len(rows)) < total,
		Charts: []chartView{
			{Title: "Total average price by room type", Bars: roomTypeBars(dashboard.RoomTypes)},
			{Title: "Prefered market segment used of reservation", Bars: countBars(dashboard.MarketSegments)},
			{Title: "Prefered meal by number of reservation", Bars: countBars(dashboard.MealPlans)},
		},
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		h.writeError(w, apperrors.Internal("Failed to render dashboard", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Error("failed to write dashboard page", "handler", "Page", "error", err)
	}
}

func (h *PageHandler) writeError(w http.ResponseWriter, err error) {
	h.log.Error("Failed to build dashboard page", "error", err)
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", "Page", "operation", "WriteError", "error", writeErr)
	}
}

func (h *PageHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Page)
}

func filterViews(options model.FilterOptions, sel model.Selection) []filterView {
	out := make([]filterView, 0, len(model.FilterAttributes))
	for _, attr := range model.FilterAttributes {
		fv := filterView{Attribute: attr, Label: attr.Label(), Selected: sel.Len(attr)}
		for _, v := range options[attr] {
			fv.Options = append(fv.Options, optionView{Value: v, Selected: sel.Allows(attr, v)})
		}
		out = append(out, fv)
	}
	return out
}

func roomTypeBars(totals []model.RoomTypeTotal) []barView {
	var peak float64
	for _, t := range totals {
		peak = max(peak, t.TotalPrice)
	}
	bars := make([]barView, 0, len(totals))
	for _, t := range totals {
		bars = append(bars, barView{
			Label: t.RoomType,
			Value: strconv.FormatFloat(t.TotalPrice, 'f', 2, 64),
			Width: barWidth(t.TotalPrice, peak),
		})
	}
	return bars
}

func countBars(counts []model.CategoryCount) []barView {
	var peak int
	for _, c := range counts {
		peak = max(peak, c.Count)
	}
	bars := make([]barView, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, barView{
			Label: c.Value,
			Value: strconv.Itoa(c.Count),
			Width: barWidth(float64(c.Count), float64(peak)),
		})
	}
	return bars
}

func barWidth(v, peak float64) float64 {
	if peak <= 0 || v <= 0 {
		return 0
	}
	return v / peak * 100
}
