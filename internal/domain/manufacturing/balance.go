package manufacturing

import "github.com/shopspring/decimal"

// LowStockThreshold unidades por debajo de las cuales un producto cuenta
// como alerta de stock en el dashboard y en la vista del libro.
const LowStockThreshold = 10

// CurrentStock suma los cambios de cantidad de un producto. Es el único
// invariante real del libro: stock_actual = Σ quantity_change.
func CurrentStock(changes []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, c := range changes {
		total = total.Add(c)
	}
	return total
}

// RunningBalance calcula el saldo corrido (suma prefija) sobre los cambios
// de un único producto ordenados ascendente por fecha. El saldo corrido
// entre productos mezclados no tiene significado y no se ofrece.
func RunningBalance(changes []decimal.Decimal) []decimal.Decimal {
	balances := make([]decimal.Decimal, len(changes))
	acc := decimal.Zero
	for i, c := range changes {
		acc = acc.Add(c)
		balances[i] = acc
	}
	return balances
}
