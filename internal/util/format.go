package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var esPrinter = message.NewPrinter(language.EuropeanSpanish)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishDays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// FormatCurrency renders an amount the way the UI shows money: es-ES
// digit grouping with two decimals and a trailing euro sign.
func FormatCurrency(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return esPrinter.Sprintf("%v €",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatDate renders a YYYY-MM-DD date as a long es-ES date,
// e.g. "05 de marzo de 2025".
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FormatMonthYear renders a YYYY-MM key as "marzo de 2025".
func FormatMonthYear(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return fmt.Sprintf("%s de %d", spanishMonths[t.Month()-1], t.Year())
}

// DayName returns the es-ES weekday name for a date.
func DayName(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return spanishDays[int(t.Weekday())]
}
