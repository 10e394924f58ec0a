package dto

import (
	"time"

	"github.com/jhoicas/consulta-cnpj/internal/domain/entity"
)

// PartnerListResponse cuadro de sócios (QSA) de un CNPJ.
type PartnerListResponse struct {
	Total int               `json:"total"`
	Items []*entity.Partner `json:"items"`
}

// BatchLookupRequest consulta en lote. El tope real lo fija BATCH_MAX_SIZE.
type BatchLookupRequest struct {
	CNPJs []string `json:"cnpjs" validate:"required,min=1,max=1000,dive,required"`
}

// BatchLookupResponse resultado de una consulta en lote. Las claves de Results y
// Errors son los 14 dígitos del CNPJ.
type BatchLookupResponse struct {
	Total         int                        `json:"total"`
	SuccessCount  int                        `json:"success_count"`
	NotFoundCount int                        `json:"not_found_count"`
	ErrorCount    int                        `json:"error_count"`
	InvalidCNPJs  []string                   `json:"invalid_cnpjs,omitempty"`
	NotFound      []string                   `json:"not_found,omitempty"`
	Results       map[string]*entity.Company `json:"results"`
	Errors        map[string]string          `json:"errors,omitempty"`
	ExecutionTime string                     `json:"execution_time"`
	Timestamp     time.Time                  `json:"timestamp"`
}

// TokenResponse token de acceso emitido por cnpjctl token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
