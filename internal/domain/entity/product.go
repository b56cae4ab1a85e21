package entity

import "time"

// Product representa un producto o componente del catálogo de planta.
// Es dato de referencia: el núcleo lo lee pero nunca lo muta; el stock
// se deriva siempre del libro de movimientos (StockLedgerEntry).
type Product struct {
	ID        string
	Name      string
	SKU       string // código único
	CreatedAt time.Time
}
