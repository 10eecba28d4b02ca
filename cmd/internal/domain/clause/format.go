package clause

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Money formats v as Brazilian currency with exactly two decimals,
// e.g. "R$ 12.000,00".
func Money(v decimal.Decimal) string {
	sign := ""
	if v.Round(2).IsNegative() {
		sign = "-"
	}
	whole, cents, _ := strings.Cut(v.Abs().StringFixed(2), ".")
	return "R$ " + sign + thousands(whole) + "," + cents
}

// thousands groups a string of digits with dots. Values past int64 are grouped
// by hand since the printer only formats machine integers.
func thousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprint(number.Decimal(n))
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Date formats t as dd/mm/yyyy.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// LongDate formats t as "14 de outubro de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}

var units = [...]string{
	"", "PRIMEIRA", "SEGUNDA", "TERCEIRA", "QUARTA",
	"QUINTA", "SEXTA", "SÉTIMA", "OITAVA", "NONA",
}

var tens = [...]string{"", "DÉCIMA", "VIGÉSIMA", "TRIGÉSIMA"}

// Ordinal spells n as the feminine Portuguese ordinal used to number clauses
// ("PRIMEIRA", "DÉCIMA SEGUNDA"). Numbers outside 1..39 come back as digits.
func Ordinal(n int) string {
	if n < 1 || n >= 40 {
		return fmt.Sprintf("%dª", n)
	}
	t, u := n/10, n%10
	switch {
	case t == 0:
		return units[u]
	case u == 0:
		return tens[t]
	default:
		return tens[t] + " " + units[u]
	}
}

var (
	cardinalUnits = [...]string{
		"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
		"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
	}
	cardinalTens = [...]string{
		"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
	}
	cardinalHundreds = [...]string{
		"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos",
		"seiscentos", "setecentos", "oitocentos", "novecentos",
	}
)

// Cardinal spells n in Portuguese ("trinta", "cento e vinte"). Feminine forms
// agree with nouns such as "vias". Numbers outside 0..999 come back as digits.
func Cardinal(n int, feminine bool) string {
	if n < 0 || n > 999 {
		return strconv.Itoa(n)
	}
	if n == 100 {
		return "cem"
	}

	var parts []string
	if h := n / 100; h > 0 {
		word := cardinalHundreds[h]
		if feminine && h > 1 {
			word = strings.TrimSuffix(word, "os") + "as"
		}
		parts = append(parts, word)
	}
	rest := n % 100
	switch {
	case rest >= 20:
		parts = append(parts, cardinalTens[rest/10])
		if rest%10 > 0 {
			parts = append(parts, unitWord(rest%10, feminine))
		}
	case rest > 0 || n == 0:
		parts = append(parts, unitWord(rest, feminine))
	}
	return strings.Join(parts, " e ")
}

func unitWord(n int, feminine bool) string {
	if feminine {
		switch n {
		case 1:
			return "uma"
		case 2:
			return "duas"
		}
	}
	return cardinalUnits[n]
}

// Count writes n the way contracts quote quantities: "30 (trinta)".
func Count(n int) string {
	return fmt.Sprintf("%d (%s)", n, Cardinal(n, false))
}

func countFeminine(n int) string {
	return fmt.Sprintf("%d (%s)", n, Cardinal(n, true))
}

// Percent writes n as "2% (dois por cento)".
func Percent(n int) string {
	return fmt.Sprintf("%d%% (%s por cento)", n, Cardinal(n, false))
}

// or returns v trimmed, or fallback when v is blank.
func or(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

// join lists values as "a, b e c".
func join(values []string) string {
	var clean []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			clean = append(clean, v)
		}
	}
	switch len(clean) {
	case 0:
		return ""
	case 1:
		return clean[0]
	default:
		return strings.Join(clean[:len(clean)-1], ", ") + " e " + clean[len(clean)-1]
	}
}
