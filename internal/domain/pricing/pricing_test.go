package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/suminitec/suministros-api/internal/domain/pricing"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Caso de referencia: precio almacenado 121.00 (base 100 al 21%), venta al 10%
// sin descuento → unitario 110.00.
func TestPrecioUnitarioVenta_RecalculaIVA(t *testing.T) {
	unit := pricing.PrecioUnitarioVenta(dec("121.00"), dec("10"))
	assert.True(t, dec("110.00").Equal(unit), "esperaba 110.00, obtuve %s", unit)
}

// Con el IVA estándar el precio no debe cambiar.
func TestPrecioUnitarioVenta_IVAEstandarEsIdentidad(t *testing.T) {
	unit := pricing.PrecioUnitarioVenta(dec("121.00"), dec("21"))
	assert.True(t, dec("121.00").Equal(unit))
}

// El descuento se aplica sobre el precio ya con IVA, con redondeo a 2 decimales.
func TestAplicarDescuento(t *testing.T) {
	assert.True(t, dec("60.50").Equal(pricing.AplicarDescuento(dec("121.00"), dec("50"))))

	// 110.00 con 33% de descuento: 73.70 tras redondear
	conDescuento := pricing.AplicarDescuento(dec("110.00"), dec("33"))
	assert.True(t, dec("73.70").Equal(conDescuento), "obtuve %s", conDescuento)
}

func TestTotalVenta_MultiplicaYRedondea(t *testing.T) {
	total := pricing.TotalVenta(dec("110.00"), 3)
	assert.True(t, dec("330.00").Equal(total))
}

func TestConIVA_AplicaImpuestoAlAlta(t *testing.T) {
	assert.True(t, dec("121.00").Equal(pricing.ConIVA(dec("100"), dec("21"))))
	assert.True(t, dec("12.10").Equal(pricing.ConIVA(dec("10"), dec("21"))))
}

// Descuentos fuera de 0..100 se ignoran; IVA fuera de rango cae al estándar.
func TestNormalizacionDePorcentajes(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(pricing.NormalizarDescuento(dec("-5"))))
	assert.True(t, decimal.Zero.Equal(pricing.NormalizarDescuento(dec("101"))))
	assert.True(t, dec("15").Equal(pricing.NormalizarDescuento(dec("15"))))

	assert.True(t, pricing.IVADefecto.Equal(pricing.NormalizarIVA(dec("-1"))))
	assert.True(t, pricing.IVADefecto.Equal(pricing.NormalizarIVA(dec("120"))))
	assert.True(t, dec("4").Equal(pricing.NormalizarIVA(dec("4"))))
}

func TestPorcentajeValido(t *testing.T) {
	assert.True(t, pricing.PorcentajeValido(decimal.Zero))
	assert.True(t, pricing.PorcentajeValido(dec("100")))
	assert.False(t, pricing.PorcentajeValido(dec("-0.01")))
	assert.False(t, pricing.PorcentajeValido(dec("100.01")))
}
