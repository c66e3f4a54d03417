package supplies_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envasadora/insumos-api/internal/domain/supplies"
)

var lotCodeRe = regexp.MustCompile(`^REC-[A-Z]{1,3}-\d{13}-[A-Z0-9]{3}$`)

func TestNewLotCode_Formato(t *testing.T) {
	code := supplies.NewLotCode("CINTILLO")
	assert.Regexp(t, lotCodeRe, code)
	assert.True(t, strings.HasPrefix(code, "REC-CIN-"), "prefijo con las primeras 3 letras de la categoría")
}

func TestNewLotCode_PrefijoSinEspaciosNiAcentos(t *testing.T) {
	code := supplies.NewLotCode("ETIQUETA FRENTE EXPORTACIÓN 750ML")
	assert.True(t, strings.HasPrefix(code, "REC-ETI-"), "ignora espacios y dígitos, pliega acentos")
}

func TestNewLotCode_CategoriaVacia(t *testing.T) {
	code := supplies.NewLotCode("")
	assert.True(t, strings.HasPrefix(code, "REC-XXX-"))
}

// Dos códigos seguidos prácticamente nunca coinciden (timestamp + aleatorio).
func TestNewLotCode_VariaEntreLlamadas(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[supplies.NewLotCode("CINTILLO")] = true
	}
	require.Greater(t, len(seen), 1)
}
