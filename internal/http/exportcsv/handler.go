package exportcsv

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/remesahq/remesa/internal/export"
	"github.com/remesahq/remesa/internal/http/httperr"
	remittancehttp "github.com/remesahq/remesa/internal/http/remittance"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/csv", h.exportCSV)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := remittancehttp.ParseFilter(r.URL.Query())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	// Render in memory so a late failure still produces a clean error
	// response instead of a truncated download.
	var buf bytes.Buffer
	if err := h.svc.WriteCSV(r.Context(), &buf, filter); err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(time.Now())))

	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write csv response", "error", err)
	}
}
