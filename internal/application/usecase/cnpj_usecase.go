package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/consulta-cnpj/internal/application/dto"
	"github.com/jhoicas/consulta-cnpj/internal/application/ports"
	"github.com/jhoicas/consulta-cnpj/internal/domain"
	"github.com/jhoicas/consulta-cnpj/internal/domain/entity"
	"github.com/jhoicas/consulta-cnpj/internal/domain/repository"
	"github.com/jhoicas/consulta-cnpj/pkg/cnpj"
)

// CNPJUseCase casos de uso de consulta del CNPJ sobre el repositorio de solo lectura.
type CNPJUseCase struct {
	repo     repository.CNPJRepository
	cards    ports.RegistrationCardGenerator
	maxBatch int
	now      func() time.Time
}

// NewCNPJUseCase construye el caso de uso. maxBatch <= 0 deja el lote sin tope propio.
func NewCNPJUseCase(repo repository.CNPJRepository, cards ports.RegistrationCardGenerator, maxBatch int) *CNPJUseCase {
	return &CNPJUseCase{repo: repo, cards: cards, maxBatch: maxBatch, now: time.Now}
}

// GetCompany obtiene el establecimiento; (nil, nil) si no existe.
func (uc *CNPJUseCase) GetCompany(ctx context.Context, raw string) (*entity.Company, error) {
	return uc.repo.GetCompany(ctx, raw)
}

// GetPartners obtiene el cuadro de sócios de la empresa del CNPJ.
func (uc *CNPJUseCase) GetPartners(ctx context.Context, raw string) (*dto.PartnerListResponse, error) {
	total, partners, err := uc.repo.GetPartners(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &dto.PartnerListResponse{Total: total, Items: partners}, nil
}

// BatchLookup consulta varios CNPJ de forma secuencial. Los inválidos no se consultan;
// los repetidos (mismos 14 dígitos) se consultan una sola vez. Un error en un CNPJ no
// aborta el lote, salvo la cancelación del contexto.
func (uc *CNPJUseCase) BatchLookup(ctx context.Context, in dto.BatchLookupRequest) (*dto.BatchLookupResponse, error) {
	if len(in.CNPJs) == 0 {
		return nil, fmt.Errorf("%w: lista de CNPJ vacía", domain.ErrInvalidInput)
	}
	if uc.maxBatch > 0 && len(in.CNPJs) > uc.maxBatch {
		return nil, fmt.Errorf("%w: máximo %d CNPJ por lote, recibidos %d", domain.ErrInvalidInput, uc.maxBatch, len(in.CNPJs))
	}

	start := uc.now()
	out := &dto.BatchLookupResponse{
		Total:   len(in.CNPJs),
		Results: make(map[string]*entity.Company),
		Errors:  make(map[string]string),
	}
	seen := make(map[string]bool, len(in.CNPJs))

	for _, raw := range in.CNPJs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !cnpj.IsValid(raw) {
			out.InvalidCNPJs = append(out.InvalidCNPJs, raw)
			continue
		}
		digits := cnpj.OnlyDigits(raw)
		if seen[digits] {
			continue
		}
		seen[digits] = true

		company, err := uc.repo.GetCompany(ctx, digits)
		switch {
		case err != nil:
			out.Errors[digits] = err.Error()
			out.ErrorCount++
		case company == nil:
			out.NotFound = append(out.NotFound, digits)
			out.NotFoundCount++
		default:
			out.Results[digits] = company
			out.SuccessCount++
		}
	}

	out.Timestamp = uc.now()
	out.ExecutionTime = out.Timestamp.Sub(start).Round(time.Millisecond).String()
	return out, nil
}

// RegistrationCard genera el comprovante de inscrição en PDF. Devuelve domain.ErrNotFound
// si el CNPJ es válido pero no está en la base.
func (uc *CNPJUseCase) RegistrationCard(ctx context.Context, raw string) ([]byte, string, error) {
	company, err := uc.repo.GetCompany(ctx, raw)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	_, partners, err := uc.repo.GetPartners(ctx, raw)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.cards.GenerateRegistrationCard(ctx, company, partners, uc.now())
	if err != nil {
		return nil, "", err
	}
	return pdf, "comprovante-" + company.CNPJCompletoApenasNumeros + ".pdf", nil
}
