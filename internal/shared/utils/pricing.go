package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter renders minor-unit amounts in one currency and locale.
type PriceFormatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewPriceFormatter parses an ISO 4217 code and a BCP 47 locale.
func NewPriceFormatter(code, locale string) (*PriceFormatter, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &PriceFormatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

func (f *PriceFormatter) Currency() string {
	return f.unit.String()
}

// Format renders an amount given in cents, e.g. 2999 as "R$ 29,99" for BRL in pt-BR.
func (f *PriceFormatter) Format(cents int64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(float64(cents) / 100)))
}
