package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/pricing"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// ProveedorUseCase CRUD de proveedores. El descuento del proveedor es el que
// luego puede aplicarse a las ventas de sus productos.
type ProveedorUseCase struct {
	proveedorRepo repository.ProveedorRepository
}

func NewProveedorUseCase(proveedorRepo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{proveedorRepo: proveedorRepo}
}

// Crear registra un proveedor. El CIF es único; el descuento debe estar en 0..100.
func (uc *ProveedorUseCase) Crear(in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.NombreEmpresa == "" || in.CIF == "" {
		return nil, domain.ErrInvalidInput
	}
	if !pricing.PorcentajeValido(in.Descuento) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.proveedorRepo.GetByCIF(in.CIF)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	proveedor := &entity.Proveedor{
		ID:            uuid.New().String(),
		NombreEmpresa: in.NombreEmpresa,
		CIF:           in.CIF,
		Telefono:      in.Telefono,
		Direccion:     in.Direccion,
		Descuento:     in.Descuento,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.proveedorRepo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// Actualizar reemplaza los datos del proveedor. Cambiar el CIF al de otro
// proveedor sigue siendo duplicado.
func (uc *ProveedorUseCase) Actualizar(id string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.NombreEmpresa == "" || in.CIF == "" {
		return nil, domain.ErrInvalidInput
	}
	if !pricing.PorcentajeValido(in.Descuento) {
		return nil, domain.ErrInvalidInput
	}
	proveedor, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	if in.CIF != proveedor.CIF {
		otro, err := uc.proveedorRepo.GetByCIF(in.CIF)
		if err != nil {
			return nil, err
		}
		if otro != nil {
			return nil, domain.ErrDuplicate
		}
	}

	proveedor.NombreEmpresa = in.NombreEmpresa
	proveedor.CIF = in.CIF
	proveedor.Telefono = in.Telefono
	proveedor.Direccion = in.Direccion
	proveedor.Descuento = in.Descuento
	if err := uc.proveedorRepo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// Eliminar borra un proveedor solo si no tiene productos asociados.
func (uc *ProveedorUseCase) Eliminar(id string) error {
	proveedor, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return domain.ErrNotFound
	}
	n, err := uc.proveedorRepo.CountProductos(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrProveedorConProductos
	}
	return uc.proveedorRepo.Delete(id)
}

// GetByID obtiene un proveedor.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	return toProveedorResponse(proveedor), nil
}

// Listar lista todos los proveedores.
func (uc *ProveedorUseCase) Listar() ([]dto.ProveedorResponse, error) {
	proveedores, err := uc.proveedorRepo.List()
	if err != nil {
		return nil, err
	}
	resultado := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		resultado = append(resultado, *toProveedorResponse(p))
	}
	return resultado, nil
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:            p.ID,
		NombreEmpresa: p.NombreEmpresa,
		CIF:           p.CIF,
		Telefono:      p.Telefono,
		Direccion:     p.Direccion,
		Descuento:     p.Descuento,
	}
}
