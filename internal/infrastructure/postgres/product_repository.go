package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `product_id, category, product, laboratory, buy_price, sell_price, stock, expire_date, alert_date`

// Create persiste un nuevo producto y asigna el product_id generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (category, product, laboratory, buy_price, sell_price, stock, expire_date, alert_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING product_id`
	err := r.q.QueryRow(context.Background(), query,
		product.Category, product.Name, product.Laboratory,
		product.BuyPrice, product.SellPrice, product.Stock,
		product.ExpireDate, product.AlertDate,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate obtiene un producto bloqueando la fila (SELECT FOR UPDATE).
// Dos ventas concurrentes sobre el mismo producto se serializan aquí.
func (r *ProductRepo) GetByIDForUpdate(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Category, &p.Name, &p.Laboratory,
		&p.BuyPrice, &p.SellPrice, &p.Stock, &p.ExpireDate, &p.AlertDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos en el orden que entrega la base.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Category, &p.Name, &p.Laboratory,
			&p.BuyPrice, &p.SellPrice, &p.Stock, &p.ExpireDate, &p.AlertDate); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update reemplaza el producto completo. Devuelve false si el ID no existe.
func (r *ProductRepo) Update(product *entity.Product) (bool, error) {
	query := `
		UPDATE products SET category = $2, product = $3, laboratory = $4, buy_price = $5,
			sell_price = $6, stock = $7, expire_date = $8, alert_date = $9
		WHERE product_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Category, product.Name, product.Laboratory,
		product.BuyPrice, product.SellPrice, product.Stock,
		product.ExpireDate, product.AlertDate,
	)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto por ID. Devuelve false si el ID no existe.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DecrementStock resta quantity del stock del producto.
func (r *ProductRepo) DecrementStock(id int64, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $1 WHERE product_id = $2`,
		quantity, id,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}
