package remittance

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/remesahq/remesa/internal/apperror"
	"github.com/remesahq/remesa/internal/http/httperr"
	"github.com/remesahq/remesa/internal/remittance"
)

type Handler struct {
	svc *remittance.Service
}

func NewHandler(svc *remittance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/search", h.search)
	r.Get("/stats", h.stats)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.replace)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type remittanceRequest struct {
	SenderName    string          `json:"sender_name"`
	RecipientName string          `json:"recipient_name"`
	CorridorID    int             `json:"corridor_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	ExchangeRate  decimal.Decimal `json:"exchange_rate"`
	PaymentMethod string          `json:"payment_method"`
	IsExpress     bool            `json:"is_express"`
}

func (req remittanceRequest) toCreateParams() remittance.CreateParams {
	return remittance.CreateParams{
		SenderName:    req.SenderName,
		RecipientName: req.RecipientName,
		CorridorID:    req.CorridorID,
		Amount:        req.Amount,
		Currency:      remittance.Currency(req.Currency),
		ExchangeRate:  req.ExchangeRate,
		PaymentMethod: remittance.PaymentMethod(req.PaymentMethod),
		IsExpress:     req.IsExpress,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req remittanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rem, err := h.svc.Create(r.Context(), req.toCreateParams())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(rem))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	page, perPage, ok := parsePaging(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	result, err := h.svc.List(r.Context(), remittance.ListOptions{
		Filter:  filter,
		SortBy:  remittance.SortField(q.Get("sort_by")),
		Order:   remittance.SortOrder(q.Get("order")),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(result))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	page, perPage, ok := parsePaging(w, r)
	if !ok {
		return
	}

	query := r.URL.Query().Get("q")

	result, err := h.svc.Search(r.Context(), query, page, perPage)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSearchResponse(query, result))
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	rem, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(rem))
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req remittanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rem, err := h.svc.Replace(r.Context(), id, req.toCreateParams())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(rem))
}

type updateRemittanceRequest struct {
	SenderName    *string          `json:"sender_name,omitempty"`
	RecipientName *string          `json:"recipient_name,omitempty"`
	CorridorID    *int             `json:"corridor_id,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	ExchangeRate  *decimal.Decimal `json:"exchange_rate,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Status        *string          `json:"status,omitempty"`
	IsExpress     *bool            `json:"is_express,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req updateRemittanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := remittance.UpdateParams{
		SenderName:    req.SenderName,
		RecipientName: req.RecipientName,
		CorridorID:    req.CorridorID,
		Amount:        req.Amount,
		ExchangeRate:  req.ExchangeRate,
		IsExpress:     req.IsExpress,
	}

	if req.Currency != nil {
		c := remittance.Currency(*req.Currency)
		params.Currency = &c
	}

	if req.PaymentMethod != nil {
		pm := remittance.PaymentMethod(*req.PaymentMethod)
		params.PaymentMethod = &pm
	}

	if req.Status != nil {
		st := remittance.Status(*req.Status)
		params.Status = &st
	}

	rem, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(rem))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		httperr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ParseFilter reads the shared listing filter params. The CSV export reuses
// it so downloads accept exactly what the list endpoint accepts.
func ParseFilter(q url.Values) (remittance.ListFilter, error) {
	var filter remittance.ListFilter

	if s := q.Get("search"); s != "" {
		filter.Search = &s
	}

	if s := q.Get("corridor_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			return filter, apperror.Validationf("invalid corridor_id '%s'", s)
		}

		filter.CorridorID = &id
	}

	if s := q.Get("min_amount"); s != "" {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return filter, apperror.Validationf("invalid min_amount '%s'", s)
		}

		filter.MinAmount = &v
	}

	if s := q.Get("max_amount"); s != "" {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return filter, apperror.Validationf("invalid max_amount '%s'", s)
		}

		filter.MaxAmount = &v
	}

	if s := q.Get("status"); s != "" {
		status, err := remittance.ParseStatus(s)
		if err != nil {
			return filter, err
		}

		filter.Status = &status
	}

	if s := q.Get("currency"); s != "" {
		currency, err := remittance.ParseCurrency(s)
		if err != nil {
			return filter, err
		}

		filter.Currency = &currency
	}

	if s := q.Get("payment_method"); s != "" {
		method, err := remittance.ParsePaymentMethod(s)
		if err != nil {
			return filter, err
		}

		filter.PaymentMethod = &method
	}

	if s := q.Get("is_express"); s != "" {
		express, err := strconv.ParseBool(s)
		if err != nil {
			return filter, apperror.Validationf("invalid is_express '%s'", s)
		}

		filter.IsExpress = &express
	}

	return filter, nil
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

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
