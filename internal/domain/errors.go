package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidCNPJ  = errors.New("CNPJ inválido")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrSchemaDrift  = errors.New("el esquema de la consulta no coincide con el contrato de columnas")
)
