package supplies

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Categorías canónicas fijas (deben coincidir con el catálogo de inventario).
const (
	CategoryTapones  = "TAPONES CONICOS NATURALES O NEGROS"
	CategoryCorcho   = "CORCHO CON TAPA NATURAL O NEGRA"
	CategoryCueritos = "CUERITOS NEGROS O NATURALES"
	CategoryCintillo = "CINTILLO"
	CategorySellos   = "SELLOS TERMICOS"
	CategorySticker  = "STICKER PARA CAJA"
	CategoryCodigo   = "CODIGO DE BARRAS PARA CAJAS"
	CategoryBolsas   = "BOLSAS DE PAPEL"
)

// presentationRe extrae el primer token de presentación (ej. "750ML", "1 L").
// Si el nombre contiene dos tokens, gana el primero; limitación conocida.
var presentationRe = regexp.MustCompile(`\d+\s*(ML|L)`)

var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize pasa un nombre de insumo a mayúsculas sin acentos ni espacios extremos,
// la forma sobre la que evalúan las reglas (así TAPÓN y TAPON son equivalentes).
func Normalize(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(strings.TrimSpace(folded))
}

// presentationToken devuelve el token de presentación a usar: el hint explícito
// es autoritativo; si falta, se extrae por regex del propio nombre normalizado.
func presentationToken(normalizedName, hint string) string {
	if h := Normalize(hint); h != "" {
		return strings.ReplaceAll(h, " ", "")
	}
	return strings.ReplaceAll(presentationRe.FindString(normalizedName), " ", "")
}

// Classify mapea un nombre libre de insumo a su categoría canónica de inventario.
// Evalúa reglas de subcadena en orden fijo; la primera que aplica gana. Devuelve
// ok=false cuando ninguna regla aplica o cuando una regla que requiere token de
// presentación no lo encuentra.
func Classify(name, presentationHint string) (string, bool) {
	n := Normalize(name)
	if n == "" {
		return "", false
	}

	switch {
	case strings.Contains(n, "BOTELLA") && strings.Contains(n, "CAJA"):
		tok := presentationToken(n, presentationHint)
		if tok == "" {
			return "", false
		}
		return "BOTELLA " + tok + " Y CAJA", true

	case strings.Contains(n, "TAPON") && strings.Contains(n, "CONICO"):
		return CategoryTapones, true

	case strings.Contains(n, "CORCHO") && strings.Contains(n, "TAPA"):
		return CategoryCorcho, true

	case strings.Contains(n, "CUERITO"):
		return CategoryCueritos, true

	case strings.Contains(n, "CINTILLO"):
		return CategoryCintillo, true

	case strings.Contains(n, "SELLO") && strings.Contains(n, "TERMI"):
		return CategorySellos, true

	case strings.Contains(n, "ETIQUETA") && strings.Contains(n, "FRENTE"):
		return labelCategory(n, presentationHint, "ETIQUETA FRENTE ")

	case strings.Contains(n, "ETIQUETA") && strings.Contains(n, "TRASERA"):
		return labelCategory(n, presentationHint, "ETIQUETA TRASERA ")

	case strings.Contains(n, "STICKER") && strings.Contains(n, "CAJA"):
		return CategorySticker, true

	case strings.Contains(n, "CODIGO") && strings.Contains(n, "BARRA"):
		return CategoryCodigo, true

	case strings.Contains(n, "BOLSA") && strings.Contains(n, "PAPEL"):
		return CategoryBolsas, true
	}
	return "", false
}

// labelCategory arma la categoría de etiquetas: prefijo + sufijo de tipo + token.
// El sufijo EXPORTACIÓN conserva el acento del catálogo canónico.
func labelCategory(normalizedName, hint, prefix string) (string, bool) {
	tok := presentationToken(normalizedName, hint)
	if tok == "" {
		return "", false
	}
	suffix := "NACIONAL"
	if strings.Contains(normalizedName, "EXPORTACION") {
		suffix = "EXPORTACIÓN"
	}
	return prefix + suffix + " " + tok, true
}
