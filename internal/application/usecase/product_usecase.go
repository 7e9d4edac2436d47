package usecase

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD de productos. Las lecturas van directo
// al pool; las mutaciones corren dentro del TxRunner.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	txRunner    TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, txRunner: txRunner}
}

// List devuelve todos los productos en el orden que entrega la base.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Create inserta el producto dentro de una transacción y devuelve el payload con el ID generado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product := fromProductRequest(in)
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, _ repository.SellRepository) error {
		return productRepo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update reemplaza el producto completo. Devuelve nil si el ID no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product := fromProductRequest(in)
	product.ID = id
	var found bool
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, _ repository.SellRepository) error {
		var err error
		found, err = productRepo.Update(product)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina el producto. Devuelve false si el ID no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, _ repository.SellRepository) error {
		var err error
		found, err = productRepo.Delete(id)
		return err
	})
	return found, err
}

func fromProductRequest(in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		Category:   in.Category,
		Name:       in.Name,
		Laboratory: in.Laboratory,
		BuyPrice:   in.BuyPrice,
		SellPrice:  in.SellPrice,
		Stock:      in.Stock,
		ExpireDate: in.ExpireDate.Time,
		AlertDate:  in.AlertDate.Time,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID:  p.ID,
		Category:   p.Category,
		Name:       p.Name,
		Laboratory: p.Laboratory,
		BuyPrice:   p.BuyPrice,
		SellPrice:  p.SellPrice,
		Stock:      p.Stock,
		ExpireDate: dto.NewDate(p.ExpireDate),
		AlertDate:  dto.NewDate(p.AlertDate),
	}
}
