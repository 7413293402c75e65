package importcsv

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/remesahq/remesa/internal/apperror"
	"github.com/remesahq/remesa/internal/corridor"
	"github.com/remesahq/remesa/internal/http/httperr"
	"github.com/remesahq/remesa/internal/importer"
	"github.com/remesahq/remesa/internal/remittance"
)

// maxUploadSize bounds the multipart form held in memory.
const maxUploadSize = 10 << 20

type Handler struct {
	parser      *importer.Parser
	corridors   *corridor.Service
	remittances *remittance.Service
}

func NewHandler(parser *importer.Parser, corridors *corridor.Service, remittances *remittance.Service) *Handler {
	return &Handler{
		parser:      parser,
		corridors:   corridors,
		remittances: remittances,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/csv", h.importCSV)
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.parser.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := h.resolveRows(r.Context(), rows)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	created, err := h.remittances.CreateBatch(r.Context(), params)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toImportResponse(created))
}

// resolveRows swaps corridor codes for IDs against the live corridor list.
func (h *Handler) resolveRows(ctx context.Context, rows []importer.Row) ([]remittance.CreateParams, error) {
	corridors, err := h.corridors.List(ctx, corridor.ListFilter{})
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]int, len(corridors))
	for _, c := range corridors {
		byCode[c.Code] = c.ID
	}

	params := make([]remittance.CreateParams, 0, len(rows))

	for i, row := range rows {
		id, ok := byCode[row.CorridorCode]
		if !ok {
			return nil, apperror.Validationf("row %d: unknown corridor code '%s'", i+1, row.CorridorCode)
		}

		params = append(params, remittance.CreateParams{
			SenderName:    row.SenderName,
			RecipientName: row.RecipientName,
			CorridorID:    id,
			Amount:        row.Amount,
			Currency:      row.Currency,
			ExchangeRate:  row.ExchangeRate,
			PaymentMethod: row.PaymentMethod,
			IsExpress:     row.IsExpress,
		})
	}

	return params, nil
}

type remittanceResponse struct {
	ID            int                      `json:"id"`
	ReferenceCode string                   `json:"reference_code"`
	SenderName    string                   `json:"sender_name"`
	RecipientName string                   `json:"recipient_name"`
	CorridorID    int                      `json:"corridor_id"`
	Amount        float64                  `json:"amount"`
	Currency      remittance.Currency      `json:"currency"`
	Fee           float64                  `json:"fee"`
	PaymentMethod remittance.PaymentMethod `json:"payment_method"`
	Status        remittance.Status        `json:"status"`
	IsExpress     bool                     `json:"is_express"`
	CreatedAt     time.Time                `json:"created_at"`
}

type importResponse struct {
	Imported    int                  `json:"imported"`
	Remittances []remittanceResponse `json:"remittances"`
}

func toImportResponse(items []*remittance.Remittance) importResponse {
	responses := make([]remittanceResponse, 0, len(items))
	for _, r := range items {
		responses = append(responses, remittanceResponse{
			ID:            r.ID,
			ReferenceCode: r.ReferenceCode,
			SenderName:    r.SenderName,
			RecipientName: r.RecipientName,
			CorridorID:    r.CorridorID,
			Amount:        r.Amount.InexactFloat64(),
			Currency:      r.Currency,
			Fee:           r.Fee.InexactFloat64(),
			PaymentMethod: r.PaymentMethod,
			Status:        r.Status,
			IsExpress:     r.IsExpress,
			CreatedAt:     r.CreatedAt,
		})
	}

	return importResponse{
		Imported:    len(items),
		Remittances: responses,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
