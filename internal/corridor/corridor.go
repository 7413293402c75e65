package corridor

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/remesahq/remesa/internal/apperror"
)

// Corridor represents a money-transfer corridor between two countries.
type Corridor struct {
	ID                 int
	Name               string
	Code               string
	OriginCountry      string
	DestinationCountry string
	BaseFeePercentage  decimal.Decimal
	IsActive           bool
	CreatedAt          time.Time
}

// Codes are uppercase country pairs, e.g. "US-MX".
var codePattern = regexp.MustCompile(`^[A-Z]{2}-[A-Z]{2}$`)

var maxBaseFee = decimal.NewFromInt(15)

func validateName(name string) error {
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return apperror.Validationf("name must be between 2 and 100 characters")
	}

	return nil
}

func validateCode(code string) error {
	if !codePattern.MatchString(code) {
		return apperror.Validationf("code must match the format XX-YY")
	}

	return nil
}

func validateCountry(field, value string) error {
	if n := utf8.RuneCountInString(value); n < 2 || n > 50 {
		return apperror.Validationf("%s must be between 2 and 50 characters", field)
	}

	return nil
}

func validateBaseFee(pct decimal.Decimal) error {
	if !pct.IsPositive() || pct.GreaterThan(maxBaseFee) {
		return apperror.Validationf("base_fee_percentage must be greater than 0 and at most 15")
	}

	return nil
}
