package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// CreateSellUseCase registra una venta de forma transaccional: valida
// existencia y stock con bloqueo de fila (SELECT FOR UPDATE), calcula el
// total, inserta la venta y descuenta el stock, con Commit o Rollback.
type CreateSellUseCase struct {
	txRunner TxRunner
}

// NewCreateSellUseCase construye el caso de uso.
func NewCreateSellUseCase(txRunner TxRunner) *CreateSellUseCase {
	return &CreateSellUseCase{txRunner: txRunner}
}

// CreateSell ejecuta la venta. Errores posibles:
//   - domain.ErrInvalidInput si quantity <= 0
//   - domain.ErrNotFound si el producto no existe
//   - *domain.StockError si quantity supera el stock disponible
//
// El insert en sells y el descuento de stock ocurren en la misma
// transacción: o ambos quedan confirmados o ninguno.
func (uc *CreateSellUseCase) CreateSell(ctx context.Context, in dto.CreateSellRequest) (*dto.SellResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out dto.SellResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		sellRepo repository.SellRepository,
	) error {
		// Bloquea la fila del producto: dos ventas concurrentes del mismo
		// producto se serializan y el stock no puede quedar negativo.
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > product.Stock {
			return &domain.StockError{Available: product.Stock, Requested: in.Quantity}
		}

		// Total al precio de venta vigente; quantity == stock es válido (deja stock en cero).
		total := product.SellPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))

		sell := &entity.Sell{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
			TotalPrice:  total,
		}
		if err := sellRepo.Create(sell); err != nil {
			return err
		}
		if err := productRepo.DecrementStock(product.ID, in.Quantity); err != nil {
			return err
		}

		out = dto.SellResponse{
			ProductID:   product.ID,
			Quantity:    in.Quantity,
			SellID:      sell.ID,
			Date:        sell.Date,
			TotalPrice:  total,
			ProductName: product.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
