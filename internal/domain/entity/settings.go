package entity

import "time"

// UserSettings preferencias por usuario. ValuationMethod ("FIFO" | "WAC")
// aplica a las ventas futuras; las ya registradas conservan el método con el
// que se estamparon.
type UserSettings struct {
	UserID          string
	ValuationMethod string
	UpdatedAt       time.Time
}
