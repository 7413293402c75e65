// Package export renders filtered remittances as CSV for download.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/remesahq/remesa/internal/remittance"
)

var header = []string{
	"reference_code",
	"sender_name",
	"recipient_name",
	"corridor_code",
	"amount",
	"currency",
	"exchange_rate",
	"fee",
	"payment_method",
	"status",
	"is_express",
	"created_at",
}

type Service struct {
	remittances *remittance.Service
}

func NewService(remittances *remittance.Service) *Service {
	return &Service{remittances: remittances}
}

// Filename names a download after the day it was generated.
func Filename(now time.Time) string {
	return fmt.Sprintf("remittances-%s.csv", now.Format("20060102"))
}

// WriteCSV streams every remittance matching the filter, in ID order.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, filter remittance.ListFilter) error {
	items, err := s.remittances.ListAll(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing remittances: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range items {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("writing remittance %d: %w", r.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func record(r *remittance.Remittance) []string {
	code := ""
	if r.Corridor != nil {
		code = r.Corridor.Code
	}

	return []string{
		r.ReferenceCode,
		r.SenderName,
		r.RecipientName,
		code,
		r.Amount.StringFixed(2),
		string(r.Currency),
		r.ExchangeRate.String(),
		r.Fee.StringFixed(2),
		string(r.PaymentMethod),
		string(r.Status),
		strconv.FormatBool(r.IsExpress),
		r.CreatedAt.Format(time.RFC3339),
	}
}
