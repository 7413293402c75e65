package corridor

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/remesahq/remesa/internal/corridor"
	"github.com/remesahq/remesa/internal/remittance"
)

type corridorResponse struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Code               string    `json:"code"`
	OriginCountry      string    `json:"origin_country"`
	DestinationCountry string    `json:"destination_country"`
	BaseFeePercentage  float64   `json:"base_fee_percentage"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

func toResponse(c *corridor.Corridor) corridorResponse {
	return corridorResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Code:               c.Code,
		OriginCountry:      c.OriginCountry,
		DestinationCountry: c.DestinationCountry,
		BaseFeePercentage:  c.BaseFeePercentage.InexactFloat64(),
		IsActive:           c.IsActive,
		CreatedAt:          c.CreatedAt,
	}
}

func toResponseList(corridors []*corridor.Corridor) []corridorResponse {
	resp := make([]corridorResponse, len(corridors))
	for i, c := range corridors {
		resp[i] = toResponse(c)
	}

	return resp
}

// remittanceItem is the sub-listing row. The corridor is the envelope here,
// so items carry only the foreign key.
type remittanceItem struct {
	ID            int                      `json:"id"`
	ReferenceCode string                   `json:"reference_code"`
	SenderName    string                   `json:"sender_name"`
	RecipientName string                   `json:"recipient_name"`
	CorridorID    int                      `json:"corridor_id"`
	Amount        float64                  `json:"amount"`
	Currency      remittance.Currency      `json:"currency"`
	ExchangeRate  float64                  `json:"exchange_rate"`
	Fee           float64                  `json:"fee"`
	PaymentMethod remittance.PaymentMethod `json:"payment_method"`
	Status        remittance.Status        `json:"status"`
	IsExpress     bool                     `json:"is_express"`
	CreatedAt     time.Time                `json:"created_at"`
}

type corridorRemittancesResponse struct {
	Corridor corridorResponse `json:"corridor"`
	Items    []remittanceItem `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	Pages    int              `json:"pages"`
	HasNext  bool             `json:"has_next"`
	HasPrev  bool             `json:"has_prev"`
}

func toRemittancesResponse(c *corridor.Corridor, page *remittance.Page) corridorRemittancesResponse {
	items := make([]remittanceItem, len(page.Items))
	for i, r := range page.Items {
		items[i] = remittanceItem{
			ID:            r.ID,
			ReferenceCode: r.ReferenceCode,
			SenderName:    r.SenderName,
			RecipientName: r.RecipientName,
			CorridorID:    r.CorridorID,
			Amount:        r.Amount.InexactFloat64(),
			Currency:      r.Currency,
			ExchangeRate:  r.ExchangeRate.InexactFloat64(),
			Fee:           r.Fee.InexactFloat64(),
			PaymentMethod: r.PaymentMethod,
			Status:        r.Status,
			IsExpress:     r.IsExpress,
			CreatedAt:     r.CreatedAt,
		}
	}

	return corridorRemittancesResponse{
		Corridor: toResponse(c),
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
		Pages:    page.Pages,
		HasNext:  page.HasNext,
		HasPrev:  page.HasPrev,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
