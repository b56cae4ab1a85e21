package manufacturing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Manufactura-api/internal/domain/manufacturing"
)

// Escenario de referencia: cambios [+100, -30, +10, -5] → stock actual 75.
func TestCurrentStock_SumaDeCambios(t *testing.T) {
	changes := []decimal.Decimal{d(100), d(-30), d(10), d(-5)}
	assert.True(t, manufacturing.CurrentStock(changes).Equal(d(75)))
}

func TestCurrentStock_SinEntradas(t *testing.T) {
	assert.True(t, manufacturing.CurrentStock(nil).IsZero())
}

// Idempotencia: dos llamadas sin escrituras intermedias dan el mismo valor.
func TestCurrentStock_Idempotente(t *testing.T) {
	changes := []decimal.Decimal{d(7), d(-3)}
	first := manufacturing.CurrentStock(changes)
	second := manufacturing.CurrentStock(changes)
	assert.True(t, first.Equal(second))
}

// saldo[i] == saldo[i-1] + cambio[i], con saldo[0] == cambio[0].
func TestRunningBalance_SumaPrefija(t *testing.T) {
	changes := []decimal.Decimal{d(100), d(-30), d(10), d(-5)}

	balances := manufacturing.RunningBalance(changes)

	require.Len(t, balances, 4)
	assert.True(t, balances[0].Equal(changes[0]))
	for i := 1; i < len(balances); i++ {
		expected := balances[i-1].Add(changes[i])
		assert.True(t, balances[i].Equal(expected), "saldo corrido en posición %d", i)
	}
	assert.True(t, balances[3].Equal(d(75)))
}

func TestRunningBalance_Vacio(t *testing.T) {
	assert.Empty(t, manufacturing.RunningBalance(nil))
}
