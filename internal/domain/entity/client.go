package entity

import "time"

// Client es un cliente de la embotelladora (dueño de marca).
type Client struct {
	ID        string
	Name      string
	Contact   string
	Phone     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
