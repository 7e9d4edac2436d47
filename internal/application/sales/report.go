package sales

import (
	"time"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// SellReportUseCase consulta de ventas por fecha de calendario.
// Lectura pura: va directo al pool, sin transacción.
type SellReportUseCase struct {
	sellRepo repository.SellRepository
}

// NewSellReportUseCase construye el caso de uso.
func NewSellReportUseCase(sellRepo repository.SellRepository) *SellReportUseCase {
	return &SellReportUseCase{sellRepo: sellRepo}
}

// ListByDate devuelve las ventas del día indicado ("YYYY-MM-DD"),
// ordenadas por ID ascendente. Lista vacía (no nil) si no hay ventas.
func (uc *SellReportUseCase) ListByDate(date string) ([]dto.SellReportItem, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	sells, err := uc.sellRepo.ListByDate(day)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SellReportItem, 0, len(sells))
	for _, s := range sells {
		out = append(out, dto.SellReportItem{
			ID:          s.ID,
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			TotalPrice:  s.TotalPrice,
			Date:        s.Date,
		})
	}
	return out, nil
}
