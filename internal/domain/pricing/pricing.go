// Package pricing implementa las reglas de precio del negocio (servicio de dominio):
// precios con IVA incluido, recálculo de IVA por transacción y descuentos.
package pricing

import "github.com/shopspring/decimal"

// IVADefecto es el IVA estándar con el que se almacenan los precios del catálogo.
var IVADefecto = decimal.NewFromFloat(21.0)

var cien = decimal.NewFromInt(100)

// ConIVA aplica un porcentaje de IVA a un precio base y redondea a 2 decimales.
// Es el valor que se persiste; el precio sin impuesto no se conserva.
func ConIVA(base, ivaPct decimal.Decimal) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(1).Add(ivaPct.Div(cien))).Round(2)
}

// SinIVADefecto recupera la base imponible de un precio almacenado con el IVA
// estándar incluido. No se redondea: el redondeo ocurre al reaplicar impuestos.
func SinIVADefecto(precioConIVA decimal.Decimal) decimal.Decimal {
	return precioConIVA.Div(decimal.NewFromInt(1).Add(IVADefecto.Div(cien)))
}

// PrecioUnitarioVenta calcula el precio unitario que se persiste en una venta
// con IVA propio, sin mutar el precio de catálogo: se quita el IVA estándar
// almacenado y se aplica el IVA de la transacción, a 2 decimales. El descuento
// no entra aquí: el unitario guardado es previo al descuento y solo el total
// lo refleja.
func PrecioUnitarioVenta(precioVenta, ivaPct decimal.Decimal) decimal.Decimal {
	base := SinIVADefecto(precioVenta)
	return base.Mul(decimal.NewFromInt(1).Add(ivaPct.Div(cien))).Round(2)
}

// AplicarDescuento rebaja un precio en un porcentaje, redondeando a 2 decimales.
func AplicarDescuento(precio, descuentoPct decimal.Decimal) decimal.Decimal {
	return precio.Mul(decimal.NewFromInt(1).Sub(descuentoPct.Div(cien))).Round(2)
}

// TotalVenta multiplica el precio unitario por la cantidad, a 2 decimales.
func TotalVenta(precioUnitario decimal.Decimal, cantidad int) decimal.Decimal {
	return precioUnitario.Mul(decimal.NewFromInt(int64(cantidad))).Round(2)
}

// NormalizarDescuento devuelve el descuento si está en 0..100; fuera de rango
// se ignora y la venta se registra sin descuento.
func NormalizarDescuento(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) || d.GreaterThan(cien) {
		return decimal.Zero
	}
	return d
}

// NormalizarIVA devuelve el IVA si está en 0..100; fuera de rango cae al IVA estándar.
func NormalizarIVA(iva decimal.Decimal) decimal.Decimal {
	if iva.LessThan(decimal.Zero) || iva.GreaterThan(cien) {
		return IVADefecto
	}
	return iva
}

// PorcentajeValido indica si un porcentaje está dentro de 0..100.
func PorcentajeValido(p decimal.Decimal) bool {
	return !p.LessThan(decimal.Zero) && !p.GreaterThan(cien)
}
