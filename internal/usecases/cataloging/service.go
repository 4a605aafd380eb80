package cataloging

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/vfg2006/drop-analytics-api/infrastructure/repository"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
	"github.com/vfg2006/drop-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/drop-analytics-api/pkg/log"
	"github.com/vfg2006/drop-analytics-api/pkg/utils"
)

type Cataloger interface {
	CreateDrop(ctx context.Context, request *domain.CreateDropRequest) (*domain.Drop, error)
	AddProduct(ctx context.Context, dropID string, request *domain.CreateProductRequest) (*domain.Product, error)
	UpsertPeriodRecord(ctx context.Context, dropID, productID, period string, patch domain.PeriodRecordPatch) (domain.PeriodRecord, error)
	UpsertExpenses(ctx context.Context, period string, expenses domain.ExpensePeriod) error
	ListDrops(ctx context.Context) []*domain.Drop
	ListExpenses(ctx context.Context) map[string]domain.ExpensePeriod
	Snapshot(ctx context.Context) *domain.Snapshot
}

// Recomputer é notificado depois de cada alteração no record store
type Recomputer interface {
	Recompute(ctx context.Context) *domain.AnalysisResult
}

type Service struct {
	recordStore repository.RecordStore
	recomputer  Recomputer
	policy      ValidationPolicy
	validate    *validator.Validate
	generateID  func() (string, error)
}

func NewService(recordStore repository.RecordStore, recomputer Recomputer, policy ValidationPolicy) Cataloger {
	return &Service{
		recordStore: recordStore,
		recomputer:  recomputer,
		policy:      policy,
		validate:    validator.New(),
		generateID:  utils.GenerateID,
	}
}

func (s *Service) CreateDrop(ctx context.Context, request *domain.CreateDropRequest) (*domain.Drop, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, err
	}

	dropID, err := s.generateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar ID do drop")
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o drop")
	}

	drop := &domain.Drop{
		ID:         dropID,
		Name:       strings.TrimSpace(request.Name),
		LaunchDate: request.LaunchDate,
		Status:     domain.DropStatusActive,
		Products:   make([]*domain.Product, 0),
	}

	if err := s.recordStore.SaveDrop(drop); err != nil {
		return nil, s.storeError(ctx, err, "Falha ao salvar drop")
	}

	log.ForContext(ctx).Infof("Drop %s (%s) criado", drop.Name, drop.ID)
	s.recompute(ctx)

	return drop, nil
}

func (s *Service) AddProduct(ctx context.Context, dropID string, request *domain.CreateProductRequest) (*domain.Product, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, err
	}

	drop, err := s.recordStore.GetDrop(dropID)
	if err != nil {
		return nil, s.storeError(ctx, err, "Falha ao buscar drop")
	}
	if drop == nil {
		return nil, NewCatalogError(ErrDropNotFound, apiErrors.ErrDropNotFound, fmt.Sprintf("Drop %s não encontrado", dropID))
	}

	productID, err := s.generateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar ID do produto")
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o produto")
	}

	product := &domain.Product{
		ID:           productID,
		Name:         strings.TrimSpace(request.Name),
		SKU:          strings.TrimSpace(request.SKU),
		Price:        request.Price,
		COGS:         request.COGS,
		InitialStock: request.InitialStock,
		MonthlyData:  make(map[string]domain.PeriodRecord),
	}

	if err := s.recordStore.SaveProduct(dropID, product); err != nil {
		return nil, s.storeError(ctx, err, "Falha ao salvar produto")
	}

	log.ForContext(ctx).Infof("Produto %s adicionado ao drop %s", product.SKU, dropID)
	s.recompute(ctx)

	return product, nil
}

// UpsertPeriodRecord mescla os campos informados ao registro do período e aplica a política de validação
// sobre o resultado. Devolve o registro efetivamente gravado.
func (s *Service) UpsertPeriodRecord(ctx context.Context, dropID, productID, period string, patch domain.PeriodRecordPatch) (domain.PeriodRecord, error) {
	logger := log.ForContext(ctx)

	if _, err := domain.ParsePeriod(period); err != nil {
		return domain.PeriodRecord{}, NewCatalogError(ErrInvalidPeriodKey, apiErrors.ErrInvalidFormat, err.Error())
	}

	adjusted := false
	stored, err := s.recordStore.UpdatePeriodRecord(dropID, productID, period, func(current domain.PeriodRecord) (domain.PeriodRecord, error) {
		merged := patch.ApplyTo(current)
		record, err := s.policy.Apply(merged)
		if err != nil {
			return current, err
		}
		adjusted = record != merged
		return record, nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRecord) {
			logger.WithError(err).Warnf("Registro de %s/%s em %s rejeitado", dropID, productID, period)
			return domain.PeriodRecord{}, NewCatalogError(ErrInvalidRecord, apiErrors.ErrInvalidRecord, err.Error())
		}
		return domain.PeriodRecord{}, s.storeError(ctx, err, "Falha ao gravar registro do período")
	}

	if adjusted {
		logger.Warnf("Registro de %s/%s em %s ajustado pela política %s", dropID, productID, period, s.policy)
	}

	s.recompute(ctx)

	return stored, nil
}

func (s *Service) UpsertExpenses(ctx context.Context, period string, expenses domain.ExpensePeriod) error {
	if _, err := domain.ParsePeriod(period); err != nil {
		return NewCatalogError(ErrInvalidPeriodKey, apiErrors.ErrInvalidFormat, err.Error())
	}

	if err := s.recordStore.UpsertExpenses(period, expenses); err != nil {
		return s.storeError(ctx, err, "Falha ao gravar despesas do período")
	}

	s.recompute(ctx)

	return nil
}

func (s *Service) ListDrops(ctx context.Context) []*domain.Drop {
	return s.recordStore.Snapshot().Drops
}

func (s *Service) ListExpenses(ctx context.Context) map[string]domain.ExpensePeriod {
	return s.recordStore.Snapshot().Expenses
}

func (s *Service) Snapshot(ctx context.Context) *domain.Snapshot {
	return s.recordStore.Snapshot()
}

func (s *Service) recompute(ctx context.Context) {
	if s.recomputer == nil {
		return
	}
	s.recomputer.Recompute(ctx)
}

func (s *Service) validateRequest(request any) error {
	err := s.validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}

	return NewCatalogError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "Campos inválidos: "+strings.Join(fields, ", "))
}

// storeError traduz os erros do record store para erros de catálogo
func (s *Service) storeError(ctx context.Context, err error, details string) error {
	switch {
	case errors.Is(err, repository.ErrDropNotFound):
		return NewCatalogError(ErrDropNotFound, apiErrors.ErrDropNotFound, err.Error())
	case errors.Is(err, repository.ErrProductNotFound):
		return NewCatalogError(ErrProductNotFound, apiErrors.ErrProductNotFound, err.Error())
	default:
		log.ForContext(ctx).WithError(err).Error(details)
		return NewCatalogError(errors.Wrap(ErrStoreOperation, err.Error()), apiErrors.ErrStoreOperation, details)
	}
}
