package kernel

import (
	"errors"

	"sauna/internal/pkg/errs"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ErrMoneyFormatterIsNotConstructed = errors.New("MoneyFormatter must be created via NewMoneyFormatter")

// MoneyFormatter renders Money as localized currency text. Digit grouping and
// separators follow the locale; the number of fraction digits follows the currency.
type MoneyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
	scale   int
}

// NewMoneyFormatter builds a formatter for a BCP 47 locale (e.g. "en-US") and an
// ISO 4217 currency code (e.g. "USD"). An empty symbol falls back to the ISO code.
func NewMoneyFormatter(locale, currencyCode, symbol string) (MoneyFormatter, error) {
	tag, tagErr := language.Parse(locale)
	if tagErr != nil {
		tagErr = errs.NewValueIsInvalidErrorWithCause("locale", tagErr)
	}
	unit, unitErr := currency.ParseISO(currencyCode)
	if unitErr != nil {
		unitErr = errs.NewValueIsInvalidErrorWithCause("currency", unitErr)
	}
	if err := errors.Join(tagErr, unitErr); err != nil {
		return MoneyFormatter{}, err
	}

	if symbol == "" {
		symbol = unit.String() + " "
	}
	scale, _ := currency.Standard.Rounding(unit)

	return MoneyFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
		symbol:  symbol,
		scale:   scale,
	}, nil
}

// MustMoneyFormatter panics when NewMoneyFormatter fails.
func MustMoneyFormatter(locale, currencyCode, symbol string) MoneyFormatter {
	f, err := NewMoneyFormatter(locale, currencyCode, symbol)
	if err != nil {
		panic(err)
	}
	return f
}

func (f MoneyFormatter) Validate() error {
	if f.printer == nil {
		return ErrMoneyFormatterIsNotConstructed
	}
	return nil
}

// Currency returns the ISO currency unit amounts are rendered in.
func (f MoneyFormatter) Currency() currency.Unit {
	return f.unit
}

// Format renders m, e.g. "$1,234.50" for en-US / USD.
func (f MoneyFormatter) Format(m Money) string {
	rounded := m.amount.Round(int32(f.scale))
	return f.symbol + f.printer.Sprintf("%v", number.Decimal(rounded.InexactFloat64(), number.Scale(f.scale)))
}
