// Package format centraliza el formateo de montos y fechas para la factura.
// Es determinista: mismo input + mismo locale → mismo output siempre.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults del servicio (la factura de referencia es en-US / USD).
const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)

// Fechas de entrada aceptadas: ISO corta (la que manda el editor JSON) y RFC3339.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

var cien = decimal.NewFromInt(100)

// Currency formatea un monto como moneda con separador de miles y SIEMPRE
// dos decimales: Currency(1234.5, "en-US", "USD") → "$1,234.50".
func Currency(amount decimal.Decimal, locale, code string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("format: locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("format: moneda %q: %w", code, err)
	}
	p := message.NewPrinter(tag)
	sym := p.Sprint(currency.Symbol(unit))
	num := p.Sprintf("%v", number.Decimal(amount.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return sym + num, nil
}

// Amount formatea el número sin símbolo de moneda, con separador de miles y
// dos decimales fijos: Amount(1234.5, "en-US") → "1,234.50".
func Amount(amount decimal.Decimal, locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("format: locale %q: %w", locale, err)
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(amount.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2))), nil
}

// AmountParts separa un monto en parte entera agrupada y fracción de dos
// dígitos para la regla de presentación "entero + fracción en superíndice".
// AmountParts(1234.5, "en-US") → ("1,234", "50"). Las partes se derivan del
// decimal, no de recortar la cadena formateada: recortar bytes asume
// separador decimal de un byte y fracción al final, y eso no se cumple en
// cualquier locale que acepte el servicio.
func AmountParts(amount decimal.Decimal, locale string) (intPart, fracPart string, err error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", "", fmt.Errorf("format: locale %q: %w", locale, err)
	}
	p := message.NewPrinter(tag)
	rounded := amount.Round(2)
	whole := rounded.Truncate(0)
	intPart = p.Sprintf("%v", number.Decimal(whole.InexactFloat64(),
		number.MaxFractionDigits(0)))
	fracPart = fmt.Sprintf("%02d", rounded.Sub(whole).Abs().Mul(cien).IntPart())
	return intPart, fracPart, nil
}

// Symbol devuelve el símbolo de la moneda en el locale dado: ("en-US","USD")
// → "$".
func Symbol(locale, code string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("format: locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("format: moneda %q: %w", code, err)
	}
	return message.NewPrinter(tag).Sprint(currency.Symbol(unit)), nil
}

// Date convierte una fecha ISO a forma larga en inglés:
// "2025-05-14" → "May 14, 2025".
//
// Una fecha no parseable es un error explícito: jamás se emite texto basura
// tipo "Invalid Date" dentro del artefacto.
func Date(value string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("January 2, 2006"), nil
		}
	}
	return "", fmt.Errorf("format: fecha no parseable %q (se espera yyyy-mm-dd)", value)
}
