package remittance

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/remesahq/remesa/internal/apperror"
	"github.com/remesahq/remesa/internal/corridor"
)

// Currency is the currency the sender pays in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(s); c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return c, nil
	}

	return "", apperror.Validationf("invalid currency '%s'", s)
}

// PaymentMethod is how the sender funds the transfer.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCash         PaymentMethod = "cash"
	PaymentMobileWallet PaymentMethod = "mobile_wallet"
	PaymentDebitCard    PaymentMethod = "debit_card"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentBankTransfer, PaymentCash, PaymentMobileWallet, PaymentDebitCard:
		return m, nil
	}

	return "", apperror.Validationf("invalid payment method '%s'", s)
}

// Status represents the lifecycle state of a remittance.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusFailed     Status = "failed"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled, StatusFailed:
		return st, nil
	}

	return "", apperror.Validationf("invalid status '%s'", s)
}

// CanTransitionTo reports whether a status change is allowed. Repeating the
// current status is a no-op and always allowed; completed, cancelled and
// failed are terminal.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}

	switch s {
	case StatusPending:
		return target == StatusProcessing || target == StatusCompleted ||
			target == StatusCancelled || target == StatusFailed
	case StatusProcessing:
		return target == StatusCompleted || target == StatusCancelled || target == StatusFailed
	}

	return false
}

// Deletable reports whether a remittance in this status may be removed.
func (s Status) Deletable() bool {
	return s == StatusPending || s == StatusCancelled
}

// Remittance represents one money transfer flowing through a corridor.
type Remittance struct {
	ID            int
	ReferenceCode string
	SenderName    string
	RecipientName string
	CorridorID    int
	Amount        decimal.Decimal
	Currency      Currency
	ExchangeRate  decimal.Decimal
	Fee           decimal.Decimal
	PaymentMethod PaymentMethod
	Status        Status
	IsExpress     bool
	Corridor      *corridor.Corridor // Attached by the store on reads
	CreatedAt     time.Time
}

// ReferenceCode builds the public identifier assigned at creation:
// "REM-" + creation date + ID zero-padded to three digits. Wider IDs keep
// all their digits. The code never changes afterwards.
func ReferenceCode(id int, createdAt time.Time) string {
	return fmt.Sprintf("REM-%s-%03d", createdAt.Format("20060102"), id)
}

var maxAmount = decimal.NewFromInt(10000)

func validateParty(field, name string) error {
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return apperror.Validationf("%s must be between 2 and 100 characters", field)
	}

	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(maxAmount) {
		return apperror.Validationf("amount must be greater than 0 and at most 10000")
	}

	return nil
}

func validateExchangeRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return apperror.Validationf("exchange_rate must be greater than 0")
	}

	return nil
}
