package sales

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta de la venta y el
// descuento de stock se confirman juntos o no se confirman.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		sellRepo repository.SellRepository,
	) error) error
}
