package model

import (
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyZone groups countries that share a benefit valuation column.
type CurrencyZone string

const (
	ZoneAUS CurrencyZone = "AUS"
	ZoneEUR CurrencyZone = "EUR"
)

// ZoneFor maps a country to its currency zone. Australia is AUS; every other
// country shares the EUR zone.
func ZoneFor(c Country) CurrencyZone {
	if c == CountryAustralia {
		return ZoneAUS
	}
	return ZoneEUR
}

// Unit returns the ISO 4217 unit for the zone.
func (z CurrencyZone) Unit() currency.Unit {
	if z == ZoneAUS {
		return currency.AUD
	}
	return currency.EUR
}

// Symbol returns the display prefix used in tables and export rows.
func (z CurrencyZone) Symbol() string {
	if z == ZoneAUS {
		return "A$"
	}
	return "€"
}

// FormatMoney renders an amount as symbol + two-decimal value without digit
// grouping, e.g. "A$-1234.50". This is the export row format.
func FormatMoney(z CurrencyZone, amount float64) string {
	return z.Symbol() + strconv.FormatFloat(amount, 'f', 2, 64)
}

var displayPrinter = message.NewPrinter(language.English)

// DisplayMoney renders an amount with digit grouping for terminal output.
func DisplayMoney(z CurrencyZone, amount float64) string {
	return z.Symbol() + displayPrinter.Sprintf("%.2f", amount)
}
