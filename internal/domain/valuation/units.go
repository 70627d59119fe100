package valuation

// UnitType unidad en la que el usuario expresó una compra o venta.
type UnitType string

const (
	// UnitBase cantidad expresada directamente en unidades base (ej. piezas).
	UnitBase UnitType = "base"
	// UnitPackage cantidad expresada en unidades de empaque (ej. cartones).
	UnitPackage UnitType = "package"
)

// IsValid indica si el tipo de unidad es uno de los soportados.
func (u UnitType) IsValid() bool {
	return u == UnitBase || u == UnitPackage
}

// ToBaseUnits resuelve una cantidad a unidades base según el tipo de unidad.
// Para UnitPackage multiplica por el factor de conversión del artículo
// (unitsPerPackage; 1 si no está configurado). Para UnitBase la cantidad pasa
// sin cambios. Pura, sin casos de fallo: la validación del tipo es del llamador.
func ToBaseUnits(unitType UnitType, unitQuantity, unitsPerPackage int64) int64 {
	if unitType == UnitPackage {
		if unitsPerPackage < 1 {
			unitsPerPackage = 1
		}
		return unitQuantity * unitsPerPackage
	}
	return unitQuantity
}
