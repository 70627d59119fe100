// Package valuation implementa la valoración de costos de inventario
// (servicio de dominio puro): costo promedio ponderado (WAC), consumo de
// lotes FIFO y conversión de unidades de empaque a unidades base.
// Sin I/O; todas las funciones son deterministas.
package valuation

// Method política de valoración de costos activa para un usuario.
type Method string

const (
	// MethodFIFO First-In-First-Out: el costo de una venta se toma de los
	// lotes de compra más antiguos aún no consumidos.
	MethodFIFO Method = "FIFO"
	// MethodWAC Weighted Average Cost: costo único promedio recalculado en
	// cada compra.
	MethodWAC Method = "WAC"
)

// DefaultMethod política por defecto cuando el usuario no ha configurado una.
const DefaultMethod = MethodFIFO

// IsValid indica si el método es uno de los soportados.
func (m Method) IsValid() bool {
	return m == MethodFIFO || m == MethodWAC
}

// String devuelve la representación en texto del método.
func (m Method) String() string { return string(m) }
