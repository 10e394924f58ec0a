package repository

import (
	"context"

	"github.com/jhoicas/consulta-cnpj/internal/domain/entity"
)

// CNPJRepository define el puerto de consulta de empresas y socios por CNPJ (DIP).
// La implementación vive en infrastructure.
type CNPJRepository interface {
	// GetCompany devuelve (nil, nil) si no existe el establecimiento.
	// Devuelve domain.ErrInvalidCNPJ antes de consultar si el CNPJ no es válido.
	GetCompany(ctx context.Context, cnpj string) (*entity.Company, error)
	// GetPartners devuelve el número de filas y los socios en el orden del almacén.
	GetPartners(ctx context.Context, cnpj string) (int, []*entity.Partner, error)
}
