package repository

import (
	"time"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// SellRepository define el puerto de persistencia para Sell (DIP).
// Las ventas son inmutables: solo alta y consulta.
type SellRepository interface {
	// Create persiste la venta y asigna ID y Date generados por la base.
	Create(sell *entity.Sell) error
	// ListByDate devuelve las ventas cuya fecha (solo componente de día) es date,
	// ordenadas por ID ascendente.
	ListByDate(date time.Time) ([]*entity.Sell, error)
}
