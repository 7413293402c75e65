package view

import (
	"context"
	"fmt"
	"time"
)

const apiTimeout = 10 * time.Second

// FormatMoney formats a monetary value with two decimal places.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ApiCtx returns a context with a standard timeout for API calls.
func ApiCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), apiTimeout)
}
