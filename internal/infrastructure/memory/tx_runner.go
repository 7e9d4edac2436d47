package memory

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/application/sales"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// Verificación en compilación de los puertos de aplicación.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner emula la semántica transaccional sobre los repos en memoria:
// toma un snapshot antes de ejecutar fn y lo restaura si fn falla, de modo
// que un fallo a mitad de la venta no deja efectos parciales observables.
type TxRunner struct {
	Products *ProductRepo
	Sells    *SellRepo
}

// NewTxRunner construye el runner sobre los repos dados.
func NewTxRunner(products *ProductRepo, sells *SellRepo) *TxRunner {
	return &TxRunner{Products: products, Sells: sells}
}

// Run ejecuta fn; si devuelve error, restaura el estado previo (rollback).
func (r *TxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	sellRepo repository.SellRepository,
) error) error {
	productSnap := r.Products.snapshot()
	sellSnap, nextID := r.Sells.snapshot()

	if err := fn(r.Products, r.Sells); err != nil {
		r.Products.restore(productSnap)
		r.Sells.restore(sellSnap, nextID)
		return err
	}
	return nil
}
