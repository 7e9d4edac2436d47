package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/sales"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
)

// seedSellAt registra una venta con el reloj fijado en ts.
func seedSellAt(t *testing.T, repo *memory.SellRepo, ts time.Time) *entity.Sell {
	t.Helper()
	repo.Now = func() time.Time { return ts }
	sell := &entity.Sell{
		ProductID:   1,
		ProductName: "Ibuprofeno 400mg",
		Quantity:    1,
		TotalPrice:  decimal.RequireFromString("3.20"),
	}
	require.NoError(t, repo.Create(sell))
	return sell
}

// El reporte devuelve solo las ventas cuyo componente de día coincide,
// ordenadas por ID ascendente: ventas a las 09:00 y 23:00 del día 5 entran,
// la de las 00:01 del día 6 no.
func TestSellReport_FiltraPorDiaYOrdenaPorID(t *testing.T) {
	repo := memory.NewSellRepo()
	uc := sales.NewSellReportUseCase(repo)

	first := seedSellAt(t, repo, time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC))
	second := seedSellAt(t, repo, time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC))
	seedSellAt(t, repo, time.Date(2024, 1, 6, 0, 1, 0, 0, time.UTC))

	out, err := uc.ListByDate("2024-01-05")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, first.ID, out[0].ID)
	assert.Equal(t, second.ID, out[1].ID)

	out, err = uc.ListByDate("2024-01-06")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].ID)
}

// Día sin ventas: lista vacía, no nil (el JSON debe ser [] y no null).
func TestSellReport_DiaSinVentas_ListaVacia(t *testing.T) {
	repo := memory.NewSellRepo()
	uc := sales.NewSellReportUseCase(repo)

	out, err := uc.ListByDate("2030-12-31")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// Formato de fecha inválido: ErrInvalidInput.
func TestSellReport_FechaInvalida(t *testing.T) {
	uc := sales.NewSellReportUseCase(memory.NewSellRepo())

	for _, bad := range []string{"05-01-2024", "2024/01/05", "ayer", ""} {
		_, err := uc.ListByDate(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha %q debe rechazarse", bad)
	}
}
