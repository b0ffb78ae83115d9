package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/application/usecase"
	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
)

func TestProveedorCrear(t *testing.T) {
	repo := newFakeProveedorRepo()
	uc := usecase.NewProveedorUseCase(repo)

	out, err := uc.Crear(dto.CreateProveedorRequest{
		NombreEmpresa: "Componentes Ruiz SL",
		CIF:           "B12345678",
		Descuento:     dec("15"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Descuento.Equal(dec("15")))
}

func TestProveedorCrear_CIFDuplicado(t *testing.T) {
	repo := newFakeProveedorRepo(&entity.Proveedor{ID: "prov-1", NombreEmpresa: "Ruiz", CIF: "B12345678"})
	uc := usecase.NewProveedorUseCase(repo)

	_, err := uc.Crear(dto.CreateProveedorRequest{NombreEmpresa: "Otro", CIF: "B12345678"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProveedorCrear_DescuentoFueraDeRango(t *testing.T) {
	uc := usecase.NewProveedorUseCase(newFakeProveedorRepo())

	for _, descuento := range []string{"-1", "101"} {
		_, err := uc.Crear(dto.CreateProveedorRequest{
			NombreEmpresa: "Ruiz",
			CIF:           "B12345678",
			Descuento:     dec(descuento),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProveedorActualizar_CIFDeOtroEsDuplicado(t *testing.T) {
	repo := newFakeProveedorRepo(
		&entity.Proveedor{ID: "prov-1", NombreEmpresa: "Ruiz", CIF: "B11111111"},
		&entity.Proveedor{ID: "prov-2", NombreEmpresa: "García", CIF: "B22222222"},
	)
	uc := usecase.NewProveedorUseCase(repo)

	_, err := uc.Actualizar("prov-1", dto.UpdateProveedorRequest{
		NombreEmpresa: "Ruiz",
		CIF:           "B22222222",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Conservar el propio CIF no es conflicto.
	_, err = uc.Actualizar("prov-1", dto.UpdateProveedorRequest{
		NombreEmpresa: "Ruiz e hijos",
		CIF:           "B11111111",
	})
	assert.NoError(t, err)
}

func TestProveedorEliminar_BloqueadoConProductos(t *testing.T) {
	repo := newFakeProveedorRepo(&entity.Proveedor{ID: "prov-1", NombreEmpresa: "Ruiz", CIF: "B11111111"})
	repo.productos["prov-1"] = 3
	uc := usecase.NewProveedorUseCase(repo)

	assert.ErrorIs(t, uc.Eliminar("prov-1"), domain.ErrProveedorConProductos)

	repo.productos["prov-1"] = 0
	assert.NoError(t, uc.Eliminar("prov-1"))
}

func TestProveedorEliminar_Inexistente(t *testing.T) {
	uc := usecase.NewProveedorUseCase(newFakeProveedorRepo())
	assert.ErrorIs(t, uc.Eliminar("no-existe"), domain.ErrNotFound)
}
