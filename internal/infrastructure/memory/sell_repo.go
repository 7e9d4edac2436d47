package memory

import (
	"errors"
	"time"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.SellRepository = (*SellRepo)(nil)

// SellRepo implementación en memoria de SellRepository.
// Now es inyectable para fijar el reloj en tests.
type SellRepo struct {
	sells  []*entity.Sell
	nextID int64

	Now        func() time.Time
	FailCreate error // si no es nil, Create falla con este error (para tests de rollback)
}

// NewSellRepo construye el repositorio vacío con reloj real.
func NewSellRepo() *SellRepo {
	return &SellRepo{nextID: 1, Now: time.Now}
}

// Create asigna ID y fecha del reloj y guarda la venta.
func (r *SellRepo) Create(sell *entity.Sell) error {
	if r.FailCreate != nil {
		return r.FailCreate
	}
	sell.ID = r.nextID
	r.nextID++
	sell.Date = r.Now()
	cp := *sell
	r.sells = append(r.sells, &cp)
	return nil
}

// ListByDate devuelve las ventas cuyo componente de día coincide con date,
// en orden de inserción (equivale a ID ascendente).
func (r *SellRepo) ListByDate(date time.Time) ([]*entity.Sell, error) {
	y, m, d := date.Date()
	var out []*entity.Sell
	for _, s := range r.sells {
		sy, sm, sd := s.Date.Date()
		if sy == y && sm == m && sd == d {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// All devuelve todas las ventas (para aserciones en tests).
func (r *SellRepo) All() []*entity.Sell {
	out := make([]*entity.Sell, 0, len(r.sells))
	for _, s := range r.sells {
		cp := *s
		out = append(out, &cp)
	}
	return out
}

func (r *SellRepo) snapshot() ([]*entity.Sell, int64) {
	snap := make([]*entity.Sell, len(r.sells))
	copy(snap, r.sells)
	return snap, r.nextID
}

func (r *SellRepo) restore(snap []*entity.Sell, nextID int64) {
	r.sells = snap
	r.nextID = nextID
}

// ErrForcedFailure error de ejemplo para simular fallos de storage en tests.
var ErrForcedFailure = errors.New("fallo de storage simulado")
