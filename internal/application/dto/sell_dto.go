package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSellRequest entrada para registrar una venta.
type CreateSellRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// SellResponse salida de una venta registrada.
type SellResponse struct {
	ProductID   int64           `json:"product_id"`
	Quantity    int             `json:"quantity"`
	SellID      int64           `json:"sell_id"`
	Date        time.Time       `json:"date"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	ProductName string          `json:"product"`
}

// SellReportItem fila del reporte de ventas por fecha.
type SellReportItem struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Date        time.Time       `json:"date"`
}
