package corridor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/remesahq/remesa/internal/corridor"
	"github.com/remesahq/remesa/internal/http/httperr"
	"github.com/remesahq/remesa/internal/remittance"
)

type Handler struct {
	corridors   *corridor.Service
	remittances *remittance.Service
}

func NewHandler(corridors *corridor.Service, remittances *remittance.Service) *Handler {
	return &Handler{corridors: corridors, remittances: remittances}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.replace)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/remittances", h.listRemittances)
}

type corridorRequest struct {
	Name               string          `json:"name"`
	Code               string          `json:"code"`
	OriginCountry      string          `json:"origin_country"`
	DestinationCountry string          `json:"destination_country"`
	BaseFeePercentage  decimal.Decimal `json:"base_fee_percentage"`
	IsActive           *bool           `json:"is_active,omitempty"`
}

func (req corridorRequest) toCreateParams() corridor.CreateParams {
	params := corridor.CreateParams{
		Name:               req.Name,
		Code:               req.Code,
		OriginCountry:      req.OriginCountry,
		DestinationCountry: req.DestinationCountry,
		BaseFeePercentage:  req.BaseFeePercentage,
		IsActive:           true,
	}

	if req.IsActive != nil {
		params.IsActive = *req.IsActive
	}

	return params
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req corridorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.corridors.Create(r.Context(), req.toCreateParams())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := corridor.ListFilter{}

	if s := r.URL.Query().Get("is_active"); s != "" {
		active, err := strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "invalid is_active", http.StatusBadRequest)
			return
		}

		filter.IsActive = &active
	}

	corridors, err := h.corridors.List(r.Context(), filter)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(corridors))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	c, err := h.corridors.Get(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req corridorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.corridors.Replace(r.Context(), id, req.toCreateParams())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(c))
}

type updateCorridorRequest struct {
	Name               *string          `json:"name,omitempty"`
	Code               *string          `json:"code,omitempty"`
	OriginCountry      *string          `json:"origin_country,omitempty"`
	DestinationCountry *string          `json:"destination_country,omitempty"`
	BaseFeePercentage  *decimal.Decimal `json:"base_fee_percentage,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req updateCorridorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.corridors.Update(r.Context(), id, corridor.UpdateParams{
		Name:               req.Name,
		Code:               req.Code,
		OriginCountry:      req.OriginCountry,
		DestinationCountry: req.DestinationCountry,
		BaseFeePercentage:  req.BaseFeePercentage,
		IsActive:           req.IsActive,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.corridors.Delete(r.Context(), id); err != nil {
		httperr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRemittances(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	page, perPage, ok := parsePaging(w, r)
	if !ok {
		return
	}

	c, err := h.corridors.Get(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	result, err := h.remittances.ListByCorridor(r.Context(), id, page, perPage)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRemittancesResponse(c, result))
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

// parsePaging reads page/per_page, leaving range checks to the service.
// Absent params fall back to the first page of ten.
func parsePaging(w http.ResponseWriter, r *http.Request) (page, perPage int, ok bool) {
	page, perPage = 1, 10

	if s := r.URL.Query().Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return 0, 0, false
		}

		page = n
	}

	if s := r.URL.Query().Get("per_page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid per_page", http.StatusBadRequest)
			return 0, 0, false
		}

		perPage = n
	}

	return page, perPage, true
}
