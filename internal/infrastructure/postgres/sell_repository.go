package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.SellRepository = (*SellRepo)(nil)

// SellRepo implementación del puerto SellRepository sobre PostgreSQL (usable con pool o tx).
type SellRepo struct {
	q Querier
}

// NewSellRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSellRepository(q Querier) *SellRepo {
	return &SellRepo{q: q}
}

// Create persiste la venta con el reloj del servidor de base de datos (NOW())
// y asigna ID y Date generados.
func (r *SellRepo) Create(sell *entity.Sell) error {
	query := `
		INSERT INTO sells (product_id, date, quantity, total_price, product)
		VALUES ($1, NOW(), $2, $3, $4)
		RETURNING id, date`
	err := r.q.QueryRow(context.Background(), query,
		sell.ProductID, sell.Quantity, sell.TotalPrice, sell.ProductName,
	).Scan(&sell.ID, &sell.Date)
	if err != nil {
		return fmt.Errorf("insert sell: %w", err)
	}
	return nil
}

// ListByDate devuelve las ventas cuyo timestamp cae en la fecha dada
// (solo componente de día), ordenadas por ID ascendente.
func (r *SellRepo) ListByDate(date time.Time) ([]*entity.Sell, error) {
	query := `
		SELECT s.id, s.product_id, s.product, s.quantity, s.total_price, s.date
		FROM sells s
		WHERE s.date::date = $1::date
		ORDER BY s.id`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list sells by date: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sell
	for rows.Next() {
		var s entity.Sell
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.TotalPrice, &s.Date); err != nil {
			return nil, fmt.Errorf("scan sell: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
