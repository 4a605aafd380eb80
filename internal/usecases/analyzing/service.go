package analyzing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/drop-analytics-api/infrastructure/repository"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
	"github.com/vfg2006/drop-analytics-api/pkg/log"
)

var ErrInvalidScenario = errors.New("cenário de desconto inválido")

type Analyzer interface {
	Latest(ctx context.Context) *domain.AnalysisResult
	Recompute(ctx context.Context) *domain.AnalysisResult
	DiscountImpact(ctx context.Context, scenario *domain.DiscountScenario) (*domain.DiscountImpact, error)
	Recommendations(ctx context.Context) []*domain.Recommendation
}

// Service mantém o último resultado calculado e só recalcula quando a versão do store muda
type Service struct {
	recordStore repository.RecordStore

	mu     sync.Mutex
	latest *domain.AnalysisResult
}

func NewService(recordStore repository.RecordStore) Analyzer {
	return &Service{
		recordStore: recordStore,
	}
}

func (s *Service) Latest(ctx context.Context) *domain.AnalysisResult {
	s.mu.Lock()
	latest := s.latest
	s.mu.Unlock()

	if latest != nil && latest.SnapshotVersion == s.recordStore.Version() {
		return latest
	}

	return s.Recompute(ctx)
}

// Recompute calcula a análise sobre um snapshot consistente e substitui o resultado anterior de uma vez
func (s *Service) Recompute(ctx context.Context) *domain.AnalysisResult {
	logger := log.ForContext(ctx)
	start := time.Now()

	snapshot := s.recordStore.Snapshot()
	result := Compute(snapshot.Drops, snapshot.Expenses)
	result.SnapshotVersion = snapshot.Version

	s.mu.Lock()
	// Um recálculo concorrente sobre snapshot mais novo não pode ser sobrescrito
	if s.latest == nil || s.latest.SnapshotVersion <= result.SnapshotVersion {
		s.latest = result
	}
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"snapshot_version": snapshot.Version,
		"duration_ms":      time.Since(start).Milliseconds(),
	}).Debugf("Análise recalculada: %d drops, %d períodos, %d alertas de reposição",
		len(snapshot.Drops), len(result.MonthlyData), len(result.RestockAlerts))

	return result
}

func (s *Service) DiscountImpact(ctx context.Context, scenario *domain.DiscountScenario) (*domain.DiscountImpact, error) {
	snapshot := s.recordStore.Snapshot()

	impact := ComputeDiscountImpact(scenario, snapshot.Drops)
	if impact == nil {
		log.ForContext(ctx).Warn("Simulação de desconto ignorada: cenário sem drop, sem desconto ou drop inexistente")
		return nil, ErrInvalidScenario
	}

	return impact, nil
}

func (s *Service) Recommendations(ctx context.Context) []*domain.Recommendation {
	return ComputeRecommendations(s.Latest(ctx))
}
