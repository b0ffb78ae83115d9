package reservas

import (
	"context"

	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// reservas: decremento de stock y alta del pedido se confirman o deshacen juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}

// Solicitante identifica al que invoca una operación. El rol viaja explícito:
// la autorización se decide aquí, no en estado global de sesión.
type Solicitante struct {
	UsuarioID string
	Rol       string
}
