package ports

import (
	"context"
	"time"

	"github.com/jhoicas/consulta-cnpj/internal/domain/entity"
)

// RegistrationCardGenerator es el puerto de salida para el comprovante de inscrição
// (ficha cadastral del CNPJ en PDF). El caso de uso no conoce la librería de PDF.
type RegistrationCardGenerator interface {
	GenerateRegistrationCard(
		ctx context.Context,
		company *entity.Company,
		partners []*entity.Partner,
		issuedAt time.Time,
	) ([]byte, error)
}
