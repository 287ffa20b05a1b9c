// Package currency renders monetary amounts as whole currency units.
package currency

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultCode   = "USD"
	DefaultLocale = "en-US"
)

// Formatter renders amounts without minor units, e.g. $34,450.
type Formatter struct {
	unit   currency.Unit
	tag    language.Tag
	symbol string
}

func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	// Symbols are the CLDR ones for the locale, e.g. "$" for USD in en-US
	// and "CHF" for Swiss francs. Letter symbols get a separating space.
	symbol := message.NewPrinter(tag).Sprint(currency.Symbol(unit))
	if last, _ := utf8.DecodeLastRuneInString(symbol); unicode.IsLetter(last) {
		symbol += " "
	}

	return &Formatter{unit: unit, tag: tag, symbol: symbol}, nil
}

// Default returns the US dollar formatter.
func Default() *Formatter {
	f, _ := NewFormatter(DefaultCode, DefaultLocale)
	return f
}

func (f *Formatter) Code() string {
	return f.unit.String()
}

// Format rounds half away from zero and groups digits per the locale.
func (f *Formatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	rounded := math.Round(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
	}

	// a printer per call keeps Format free of shared state
	p := message.NewPrinter(f.tag)
	return sign + f.symbol + p.Sprintf("%.0f", math.Abs(rounded))
}
