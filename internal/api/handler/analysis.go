package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/drop-analytics-api/internal/domain"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/drop-analytics-api/pkg/apiErrors"
)

func GetAnalysis(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Latest(r.Context()))
	})
}

func GetRecommendations(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Recommendations(r.Context()))
	})
}

func SimulateDiscount(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var scenario domain.DiscountScenario
		if !decodeBody(w, r, &scenario) {
			return
		}

		impact, err := service.DiscountImpact(r.Context(), &scenario)
		if err != nil {
			if errors.Is(err, analyzing.ErrInvalidScenario) {
				apiErrors.WriteError(w, apiErrors.ErrScenarioInvalid, "Informe um drop existente e um desconto diferente de zero", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao simular desconto", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, impact)
	})
}
