package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/drop-analytics-api/infrastructure/repository"
	"github.com/vfg2006/drop-analytics-api/internal/api"
	"github.com/vfg2006/drop-analytics-api/internal/config"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
	"github.com/vfg2006/drop-analytics-api/internal/scheduler"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/cataloging"
	"github.com/vfg2006/drop-analytics-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	policy, err := cataloging.ParseValidationPolicy(cfg.Records.ValidationPolicy)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("Política de validação de registros: %s", policy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recordStore := repository.NewRecordStore()
	if cfg.Records.SeedSampleData {
		recordStore.Load(domain.SampleSnapshot())
		logrus.Info("Dados de exemplo carregados no record store")
	}

	analyzer := analyzing.NewService(recordStore)
	cataloger := cataloging.NewService(recordStore, analyzer, policy)

	// Primeira análise calculada antes de aceitar requisições
	analyzer.Recompute(ctx)

	analysisReportService := scheduler.NewAnalysisReportService(analyzer, cfg)
	if err := analysisReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório de análise")
	} else {
		logrus.Info("Agendador do relatório de análise iniciado com sucesso")
	}

	server, err := api.New(cfg, cataloger, analyzer, analysisReportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite encontrar o .env ao rodar com go run a partir de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do código")
	}
}
