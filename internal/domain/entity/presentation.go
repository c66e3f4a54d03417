package entity

import "time"

// Presentation es una presentación de botella (volumen), ej. "750ML", "1L".
type Presentation struct {
	ID        string
	Volume    string
	CreatedAt time.Time
}
