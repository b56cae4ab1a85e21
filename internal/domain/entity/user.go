package entity

import "time"

// User operario o supervisor con acceso al dashboard. No hay roles:
// la única distinción es tener sesión o no.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
