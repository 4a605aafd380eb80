// Package repository contém o record store que guarda drops, produtos e despesas
package repository

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

var (
	ErrDropNotFound    = errors.New("drop não encontrado")
	ErrProductNotFound = errors.New("produto não encontrado")
)

// PeriodRecordUpdate recebe o registro atual do período (zerado quando não existe) e devolve o que deve ser gravado.
// Um erro cancela a gravação.
type PeriodRecordUpdate func(current domain.PeriodRecord) (domain.PeriodRecord, error)

// RecordStore guarda a árvore Drop -> Product -> PeriodRecord e as despesas por período.
// Leituras sempre devolvem cópias; quem consome nunca altera o estado interno.
type RecordStore interface {
	Snapshot() *domain.Snapshot
	Version() uint64
	GetDrop(dropID string) (*domain.Drop, error)
	SaveDrop(drop *domain.Drop) error
	SaveProduct(dropID string, product *domain.Product) error
	UpdatePeriodRecord(dropID, productID, period string, update PeriodRecordUpdate) (domain.PeriodRecord, error)
	UpsertExpenses(period string, expenses domain.ExpensePeriod) error
	Load(snapshot *domain.Snapshot)
}

type recordStore struct {
	mu       sync.RWMutex
	version  uint64
	drops    []*domain.Drop
	expenses map[string]domain.ExpensePeriod
}

func NewRecordStore() RecordStore {
	return &recordStore{
		drops:    make([]*domain.Drop, 0),
		expenses: make(map[string]domain.ExpensePeriod),
	}
}

func (s *recordStore) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := &domain.Snapshot{
		Version:  s.version,
		Drops:    s.drops,
		Expenses: s.expenses,
	}

	return snapshot.Clone()
}

func (s *recordStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Load substitui todo o conteúdo do store pelo snapshot informado
func (s *recordStore) Load(snapshot *domain.Snapshot) {
	clone := snapshot.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.drops = clone.Drops
	s.expenses = clone.Expenses
	s.version++
}

func (s *recordStore) GetDrop(dropID string) (*domain.Drop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drop := s.findDrop(dropID)
	if drop == nil {
		return nil, nil
	}

	return drop.Clone(), nil
}

// SaveDrop insere o drop ou substitui o existente com o mesmo ID
func (s *recordStore) SaveDrop(drop *domain.Drop) error {
	if drop == nil || drop.ID == "" {
		return fmt.Errorf("drop sem ID não pode ser salvo")
	}

	clone := drop.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.drops {
		if existing.ID == clone.ID {
			s.drops[i] = clone
			s.version++
			return nil
		}
	}

	s.drops = append(s.drops, clone)
	s.version++
	return nil
}

// SaveProduct adiciona o produto ao drop ou substitui o existente com o mesmo ID
func (s *recordStore) SaveProduct(dropID string, product *domain.Product) error {
	if product == nil || product.ID == "" {
		return fmt.Errorf("produto sem ID não pode ser salvo")
	}

	clone := product.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	drop := s.findDrop(dropID)
	if drop == nil {
		return fmt.Errorf("%w: %s", ErrDropNotFound, dropID)
	}

	for i, existing := range drop.Products {
		if existing.ID == clone.ID {
			drop.Products[i] = clone
			s.version++
			return nil
		}
	}

	drop.Products = append(drop.Products, clone)
	s.version++
	return nil
}

// UpdatePeriodRecord aplica update sobre o registro atual sem soltar o lock entre a leitura e a escrita
func (s *recordStore) UpdatePeriodRecord(dropID, productID, period string, update PeriodRecordUpdate) (domain.PeriodRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := s.findDrop(dropID)
	if drop == nil {
		return domain.PeriodRecord{}, fmt.Errorf("%w: %s", ErrDropNotFound, dropID)
	}

	product := drop.FindProduct(productID)
	if product == nil {
		return domain.PeriodRecord{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	current := product.MonthlyData[period]
	record, err := update(current)
	if err != nil {
		return current, err
	}

	if product.MonthlyData == nil {
		product.MonthlyData = make(map[string]domain.PeriodRecord)
	}
	product.MonthlyData[period] = record
	s.version++

	return record, nil
}

func (s *recordStore) UpsertExpenses(period string, expenses domain.ExpensePeriod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses[period] = expenses
	s.version++

	return nil
}

func (s *recordStore) findDrop(dropID string) *domain.Drop {
	for _, drop := range s.drops {
		if drop.ID == dropID {
			return drop
		}
	}
	return nil
}
