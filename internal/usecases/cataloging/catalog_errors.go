package cataloging

import (
	"fmt"

	"github.com/pkg/errors"
)

// Erros específicos para o contexto de catálogo
var (
	// Erros de validação
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidPeriodKey = errors.New("invalid period key")
	ErrInvalidRecord    = errors.New("invalid period record")
	ErrInvalidPolicy    = errors.New("invalid validation policy")

	// Erros de busca
	ErrDropNotFound    = errors.New("drop not found")
	ErrProductNotFound = errors.New("product not found")

	// Erros de armazenamento
	ErrStoreOperation = errors.New("record store operation error")
	ErrGenerateID     = errors.New("error generating ID")
)

// CatalogError é um erro com contexto adicional para o catálogo
type CatalogError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
