// Package memory contiene implementaciones en memoria de los puertos de
// persistencia. Se usan en tests y para desarrollo sin base de datos.
package memory

import (
	"sort"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

// NewProductRepo construye el repositorio vacío.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: map[int64]*entity.Product{}, nextID: 1}
}

// Seed inserta un producto con el ID ya asignado (para tests).
func (r *ProductRepo) Seed(p *entity.Product) {
	cp := *p
	r.products[cp.ID] = &cp
	if cp.ID >= r.nextID {
		r.nextID = cp.ID + 1
	}
}

// Create asigna el siguiente ID y guarda el producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	product.ID = r.nextID
	r.nextID++
	cp := *product
	r.products[cp.ID] = &cp
	return nil
}

// GetByID devuelve una copia del producto, o nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// GetByIDForUpdate en memoria equivale a GetByID (no hay concurrencia que serializar).
func (r *ProductRepo) GetByIDForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

// List devuelve todos los productos ordenados por ID.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update reemplaza el producto. Devuelve false si el ID no existe.
func (r *ProductRepo) Update(product *entity.Product) (bool, error) {
	if _, ok := r.products[product.ID]; !ok {
		return false, nil
	}
	cp := *product
	r.products[cp.ID] = &cp
	return true, nil
}

// Delete elimina el producto. Devuelve false si el ID no existe.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

// DecrementStock resta quantity del stock del producto.
func (r *ProductRepo) DecrementStock(id int64, quantity int) error {
	if p, ok := r.products[id]; ok {
		p.Stock -= quantity
	}
	return nil
}

func (r *ProductRepo) snapshot() map[int64]*entity.Product {
	snap := make(map[int64]*entity.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		snap[id] = &cp
	}
	return snap
}

func (r *ProductRepo) restore(snap map[int64]*entity.Product) {
	r.products = snap
}
