// Package scheduler contém os jobs agendados sobre os dados de vendas
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/drop-analytics-api/internal/config"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/drop-analytics-api/pkg/log"
)

var ErrReportAlreadyRunning = errors.New("relatório de análise já está em execução")

type AnalysisReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReportDigest é o resumo registrado a cada execução do relatório
type ReportDigest struct {
	GeneratedAt     time.Time                `json:"generated_at"`
	SnapshotVersion uint64                   `json:"snapshot_version"`
	TotalRevenue    float64                  `json:"total_revenue"`
	NetProfit       float64                  `json:"net_profit"`
	NetMargin       float64                  `json:"net_margin"`
	InventoryValue  float64                  `json:"inventory_value"`
	DeadStockValue  float64                  `json:"dead_stock_value"`
	RestockAlerts   int                      `json:"restock_alerts"`
	Priorities      map[string]int           `json:"priorities"`
	Highlights      []*domain.Recommendation `json:"highlights"`
}

type AnalysisReportService struct {
	scheduler          *gocron.Scheduler
	analyzer           analyzing.Analyzer
	config             AnalysisReportConfig
	running            bool
	mutex              sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastDigest         *ReportDigest
}

func NewAnalysisReportService(analyzer analyzing.Analyzer, cfg *config.Config) *AnalysisReportService {
	reportConfig := AnalysisReportConfig{
		CronSchedule: cfg.AnalysisReport.CronSchedule, // Default: segunda-feira às 7h
		Enabled:      cfg.AnalysisReport.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
	}).Info("Configuração do agendador do relatório de análise carregada")

	return &AnalysisReportService{
		scheduler: gocron.NewScheduler(time.Local),
		analyzer:  analyzer,
		config:    reportConfig,
	}
}

func (s *AnalysisReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do relatório de análise desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório de análise")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.GenerateReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao gerar relatório de análise")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de análise: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório de análise")
		s.scheduler.Stop()
	}()

	return nil
}

// GenerateReport recalcula a análise e registra o resumo com as recomendações mais urgentes
func (s *AnalysisReportService) GenerateReport(ctx context.Context) (*ReportDigest, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		return nil, ErrReportAlreadyRunning
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastRunCompletedAt = time.Now()
		s.mutex.Unlock()
	}()

	logger := log.ForContext(ctx).WithField("job", CronJobAnalysisReport)
	logger.Info("Iniciando relatório de análise")

	result := s.analyzer.Recompute(ctx)
	recommendations := analyzing.ComputeRecommendations(result)

	digest := &ReportDigest{
		GeneratedAt:     time.Now(),
		SnapshotVersion: result.SnapshotVersion,
		TotalRevenue:    result.TotalRevenue,
		NetProfit:       result.NetProfit,
		NetMargin:       result.NetMargin,
		InventoryValue:  result.CurrentInventoryValue,
		DeadStockValue:  result.DeadStockValue,
		RestockAlerts:   len(result.RestockAlerts),
		Priorities:      make(map[string]int),
		Highlights:      make([]*domain.Recommendation, 0),
	}

	for _, rec := range recommendations {
		digest.Priorities[string(rec.Priority)]++

		switch rec.Priority {
		case domain.PriorityCritical:
			logger.Warnf("[%s] %s: %s", rec.Priority, rec.Title, rec.Action)
			digest.Highlights = append(digest.Highlights, rec)
		case domain.PriorityHigh:
			logger.Infof("[%s] %s: %s", rec.Priority, rec.Title, rec.Action)
			digest.Highlights = append(digest.Highlights, rec)
		}
	}

	logger.Infof("Relatório de análise concluído: receita %.2f, lucro líquido %.2f, %d alertas de reposição, %d recomendações",
		digest.TotalRevenue, digest.NetProfit, digest.RestockAlerts, len(recommendations))

	s.mutex.Lock()
	s.lastDigest = digest
	s.mutex.Unlock()

	return digest, nil
}

// TriggerManualSync inicia manualmente o relatório de análise
func (s *AnalysisReportService) TriggerManualSync() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Relatório de análise já em andamento, ignorando solicitação manual")
		return
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando relatório de análise manual")
	go func() {
		if _, err := s.GenerateReport(context.Background()); err != nil {
			logrus.WithError(err).Warn("Relatório de análise manual não executado")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *AnalysisReportService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_digest":           s.lastDigest,
	}
}
