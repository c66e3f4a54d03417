package supplies

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// NewLotCode genera un código de lote para registros creados por la recuperación
// de inventario faltante: "REC-" + primeras 3 letras de la categoría sin espacios
// + timestamp unix en milisegundos + 3 caracteres aleatorios base36 en mayúsculas.
// Único con alta probabilidad; la unicidad no se garantiza ni se re-verifica.
func NewLotCode(categoryName string) string {
	return fmt.Sprintf("REC-%s-%d-%s", categoryPrefix(categoryName), time.Now().UnixMilli(), randBase36(3))
}

func categoryPrefix(categoryName string) string {
	var b strings.Builder
	for _, r := range Normalize(categoryName) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			if b.Len() >= 3 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "XXX"
	}
	return b.String()
}

func randBase36(n int) string {
	max := int64(1)
	for i := 0; i < n; i++ {
		max *= 36
	}
	s := strings.ToUpper(strconv.FormatInt(rand.Int63n(max), 36))
	for len(s) < n {
		s = "0" + s
	}
	return s
}
