package document

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GeneratedDocument is a rendered contract ready to be served or uploaded.
type GeneratedDocument struct {
	Bytes    []byte
	Filename string
	Pages    int
}

// Filename builds "Contrato_<numero>_<cliente>.pdf". Accents are dropped and
// every run of other characters collapses to a single underscore.
func Filename(number, client string) string {
	parts := []string{"Contrato"}
	if n := slug(number); n != "" {
		parts = append(parts, n)
	}
	if c := slug(client); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, "_") + ".pdf"
}

// ObjectKey is where a rendered contract is stored:
// "contratos/<numero>/<filename>".
func ObjectKey(number, filename string) string {
	n := slug(number)
	if n == "" {
		n = "sem_numero"
	}
	return "contratos/" + n + "/" + filename
}

func slug(s string) string {
	// Transformers carry state, so the chain is built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	gap := false
	for _, r := range plain {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if gap && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			gap = false
			continue
		}
		gap = true
	}
	return b.String()
}
