package repository

import "github.com/jhoicas/farmacia-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna el ID generado por la base.
	Create(product *entity.Product) error
	// GetByID devuelve nil (sin error) si el producto no existe.
	GetByID(id int64) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una transacción.
	GetByIDForUpdate(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// Update devuelve false si ninguna fila coincidió con el ID.
	Update(product *entity.Product) (bool, error)
	// Delete devuelve false si ninguna fila coincidió con el ID.
	Delete(id int64) (bool, error)
	// DecrementStock resta quantity del stock del producto.
	DecrementStock(id int64, quantity int) error
}
