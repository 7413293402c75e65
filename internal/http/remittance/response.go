package remittance

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/remesahq/remesa/internal/remittance"
)

type remittanceResponse struct {
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
	Corridor      *corridorResponse        `json:"corridor"`
	CreatedAt     time.Time                `json:"created_at"`
}

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

func toResponse(r *remittance.Remittance) remittanceResponse {
	resp := remittanceResponse{
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

	if r.Corridor != nil {
		resp.Corridor = &corridorResponse{
			ID:                 r.Corridor.ID,
			Name:               r.Corridor.Name,
			Code:               r.Corridor.Code,
			OriginCountry:      r.Corridor.OriginCountry,
			DestinationCountry: r.Corridor.DestinationCountry,
			BaseFeePercentage:  r.Corridor.BaseFeePercentage.InexactFloat64(),
			IsActive:           r.Corridor.IsActive,
			CreatedAt:          r.Corridor.CreatedAt,
		}
	}

	return resp
}

func toResponseList(items []*remittance.Remittance) []remittanceResponse {
	resp := make([]remittanceResponse, len(items))
	for i, r := range items {
		resp[i] = toResponse(r)
	}

	return resp
}

type listResponse struct {
	Items   []remittanceResponse `json:"items"`
	Total   int                  `json:"total"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"per_page"`
	Pages   int                  `json:"pages"`
	HasNext bool                 `json:"has_next"`
	HasPrev bool                 `json:"has_prev"`
}

func toListResponse(page *remittance.Page) listResponse {
	return listResponse{
		Items:   toResponseList(page.Items),
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
		Pages:   page.Pages,
		HasNext: page.HasNext,
		HasPrev: page.HasPrev,
	}
}

type searchResponse struct {
	Query   string               `json:"query"`
	Items   []remittanceResponse `json:"items"`
	Total   int                  `json:"total"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"per_page"`
	Pages   int                  `json:"pages"`
	HasNext bool                 `json:"has_next"`
	HasPrev bool                 `json:"has_prev"`
}

func toSearchResponse(query string, page *remittance.Page) searchResponse {
	return searchResponse{
		Query:   query,
		Items:   toResponseList(page.Items),
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
		Pages:   page.Pages,
		HasNext: page.HasNext,
		HasPrev: page.HasPrev,
	}
}

type statsSummaryResponse struct {
	TotalRemittances   int     `json:"total_remittances"`
	TotalAmount        float64 `json:"total_amount"`
	AverageAmount      float64 `json:"average_amount"`
	TotalFeesCollected float64 `json:"total_fees_collected"`
	ActiveCorridors    int     `json:"active_corridors"`
}

type corridorStatsResponse struct {
	CorridorID       int                       `json:"corridor_id"`
	CorridorName     string                    `json:"corridor_name"`
	IsActive         bool                      `json:"is_active"`
	TotalRemittances int                       `json:"total_remittances"`
	TotalAmount      float64                   `json:"total_amount"`
	AverageAmount    float64                   `json:"average_amount"`
	TotalFees        float64                   `json:"total_fees"`
	ByStatus         map[remittance.Status]int `json:"by_status"`
}

type statsResponse struct {
	Summary    statsSummaryResponse             `json:"summary"`
	ByCorridor map[string]corridorStatsResponse `json:"by_corridor"`
}

func toStatsResponse(stats *remittance.Stats) statsResponse {
	byCorridor := make(map[string]corridorStatsResponse, len(stats.ByCorridor))
	for code, cs := range stats.ByCorridor {
		byCorridor[code] = corridorStatsResponse{
			CorridorID:       cs.CorridorID,
			CorridorName:     cs.CorridorName,
			IsActive:         cs.IsActive,
			TotalRemittances: cs.TotalRemittances,
			TotalAmount:      cs.TotalAmount.InexactFloat64(),
			AverageAmount:    cs.AverageAmount.InexactFloat64(),
			TotalFees:        cs.TotalFees.InexactFloat64(),
			ByStatus:         cs.ByStatus,
		}
	}

	return statsResponse{
		Summary: statsSummaryResponse{
			TotalRemittances:   stats.Summary.TotalRemittances,
			TotalAmount:        stats.Summary.TotalAmount.InexactFloat64(),
			AverageAmount:      stats.Summary.AverageAmount.InexactFloat64(),
			TotalFeesCollected: stats.Summary.TotalFeesCollected.InexactFloat64(),
			ActiveCorridors:    stats.Summary.ActiveCorridors,
		},
		ByCorridor: byCorridor,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
