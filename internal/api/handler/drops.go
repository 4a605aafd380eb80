package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/cataloging"
)

func ListDrops(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ListDrops(r.Context()))
	})
}

func CreateDrop(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateDropRequest
		if !decodeBody(w, r, &request) {
			return
		}

		drop, err := service.CreateDrop(r.Context(), &request)
		if err != nil {
			writeCatalogError(w, r, err, "Erro ao criar drop")
			return
		}

		writeJSON(w, r, http.StatusCreated, drop)
	})
}

func AddProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dropID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.CreateProductRequest
		if !decodeBody(w, r, &request) {
			return
		}

		product, err := service.AddProduct(r.Context(), dropID, &request)
		if err != nil {
			writeCatalogError(w, r, err, "Erro ao adicionar produto")
			return
		}

		writeJSON(w, r, http.StatusCreated, product)
	})
}

// UpsertPeriodRecord grava as vendas de um produto em um período (yyyy-mm).
// Campos ausentes no corpo mantêm o valor já gravado.
func UpsertPeriodRecord(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		var patch domain.PeriodRecordPatch
		if !decodeBody(w, r, &patch) {
			return
		}

		stored, err := service.UpsertPeriodRecord(
			r.Context(),
			params.ByName("id"),
			params.ByName("product_id"),
			params.ByName("period"),
			patch,
		)
		if err != nil {
			writeCatalogError(w, r, err, "Erro ao gravar registro do período")
			return
		}

		writeJSON(w, r, http.StatusOK, stored)
	})
}
