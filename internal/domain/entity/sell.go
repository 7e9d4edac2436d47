package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sell representa una venta registrada. Inmutable una vez creada:
// nunca se actualiza ni se borra. ProductName es snapshot del nombre
// al momento de la venta y TotalPrice = SellPrice × Quantity en ese momento.
type Sell struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    int
	TotalPrice  decimal.Decimal
	Date        time.Time // reloj del servidor al insertar
}
