package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/cataloging"
)

func ListExpenses(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ListExpenses(r.Context()))
	})
}

func UpsertExpenses(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		var expenses domain.ExpensePeriod
		if !decodeBody(w, r, &expenses) {
			return
		}

		if err := service.UpsertExpenses(r.Context(), period, expenses); err != nil {
			writeCatalogError(w, r, err, "Erro ao gravar despesas")
			return
		}

		writeJSON(w, r, http.StatusOK, expenses)
	})
}
