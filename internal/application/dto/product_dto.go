package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o actualizar un producto (payload completo).
type ProductRequest struct {
	Category   string          `json:"category"`
	Name       string          `json:"product"`
	Laboratory string          `json:"laboratory"`
	BuyPrice   decimal.Decimal `json:"buy_price"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	Stock      int             `json:"stock"`
	ExpireDate Date            `json:"expire_date"`
	AlertDate  Date            `json:"alert_date"`
}

// ProductResponse salida de un producto: el payload con el ID generado.
type ProductResponse struct {
	ProductID  int64           `json:"product_id"`
	Category   string          `json:"category"`
	Name       string          `json:"product"`
	Laboratory string          `json:"laboratory"`
	BuyPrice   decimal.Decimal `json:"buy_price"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	Stock      int             `json:"stock"`
	ExpireDate Date            `json:"expire_date"`
	AlertDate  Date            `json:"alert_date"`
}
