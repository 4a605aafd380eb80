package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/drop-analytics-api/internal/scheduler"
	"github.com/vfg2006/drop-analytics-api/pkg/apiErrors"
)

// RunCronJob executa manualmente um job agendado
func RunCronJob(jobs scheduler.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == scheduler.CronJobAll {
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		} else {
			job, ok := jobs[cronType]
			if !ok {
				accepted := append(jobs.Names(), scheduler.CronJobAll)
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					fmt.Sprintf("Tipo de cron job inválido. Valores aceitos: %s", strings.Join(accepted, ", ")), nil)
				return
			}
			job.TriggerManualSync()
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(jobs scheduler.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(jobs))
		for name, job := range jobs {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
