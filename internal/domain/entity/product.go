package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de la farmacia.
// Stock nunca queda negativo: las ventas lo validan antes de descontar.
type Product struct {
	ID         int64
	Category   string
	Name       string // columna "product" en la tabla
	Laboratory string
	BuyPrice   decimal.Decimal
	SellPrice  decimal.Decimal
	Stock      int
	ExpireDate time.Time
	AlertDate  time.Time
}
