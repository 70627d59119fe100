package valuation

import "github.com/shopspring/decimal"

// Batch vista mínima de un lote para el cálculo FIFO: id, unidades restantes
// y costo unitario fijado en la recepción.
type Batch struct {
	ID                string
	QuantityRemaining int64
	UnitCost          decimal.Decimal
}

// BatchUpdate nueva cantidad restante a aplicar sobre un lote tras un consumo.
type BatchUpdate struct {
	ID                string
	QuantityRemaining int64
}

// UpdateWeightedAverage calcula el nuevo costo promedio ponderado tras una compra.
// NuevoCosto = (CantActual * CostoActual + CostoTotalCompra) / (CantActual + CantComprada)
//
// Si oldQty+newQty <= 0 devuelve 0: es un piso deliberado contra la división
// por cero, no un error; cantidades negativas son inválidas y el llamador debe
// rechazarlas antes (contrato aritmético puro, sin validación interna).
func UpdateWeightedAverage(oldQty int64, oldAvgCost decimal.Decimal, newQty int64, totalPurchaseCost decimal.Decimal) decimal.Decimal {
	updatedQty := oldQty + newQty
	if updatedQty <= 0 {
		return decimal.Zero
	}
	oldTotalValue := decimal.NewFromInt(oldQty).Mul(oldAvgCost)
	return oldTotalValue.Add(totalPurchaseCost).Div(decimal.NewFromInt(updatedQty))
}

// ComputeFIFOCost consume lotes en el orden recibido (más antiguo primero)
// hasta satisfacer quantityToSell. Devuelve el costo total consumido y la
// cantidad restante resultante de CADA lote tocado, incluidos los que quedan
// en cero; los no tocados no aparecen en updates.
//
// Si la suma disponible es menor que quantityToSell, consume todo lo que hay
// y devuelve el costo parcial SIN fallar: esta función solo calcula costos y
// es deliberadamente agnóstica a la insuficiencia de stock. El coordinador de
// ventas valida la suficiencia antes de invocarla.
func ComputeFIFOCost(quantityToSell int64, batches []Batch) (decimal.Decimal, []BatchUpdate) {
	remaining := quantityToSell
	totalCost := decimal.Zero
	var updates []BatchUpdate

	for _, batch := range batches {
		if remaining <= 0 {
			break
		}
		take := remaining
		if batch.QuantityRemaining < take {
			take = batch.QuantityRemaining
		}
		totalCost = totalCost.Add(decimal.NewFromInt(take).Mul(batch.UnitCost))
		remaining -= take

		updates = append(updates, BatchUpdate{
			ID:                batch.ID,
			QuantityRemaining: batch.QuantityRemaining - take,
		})
	}

	return totalCost, updates
}
