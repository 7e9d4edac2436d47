package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/domain"
)

// El mensaje nombra disponible y solicitado tal cual lo espera el cliente.
func TestStockError_Mensaje(t *testing.T) {
	err := &domain.StockError{Available: 5, Requested: 10}
	assert.Equal(t, "Not enough stock. Available: 5, Requested: 10", err.Error())
}

func TestIsStockError_DetectaErroresEnvueltos(t *testing.T) {
	inner := &domain.StockError{Available: 2, Requested: 3}
	wrapped := fmt.Errorf("crear venta: %w", inner)

	se, ok := domain.IsStockError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 2, se.Available)
	assert.Equal(t, 3, se.Requested)

	_, ok = domain.IsStockError(domain.ErrNotFound)
	assert.False(t, ok)
}
