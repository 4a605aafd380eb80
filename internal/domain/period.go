package domain

import (
	"fmt"
	"time"
)

const PeriodLayout = "2006-01"

// ParsePeriod valida uma chave de período no formato yyyy-mm
func ParsePeriod(period string) (time.Time, error) {
	date, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q, use o formato yyyy-mm: %w", period, err)
	}
	return date, nil
}

// PeriodLabel retorna o rótulo curto usado nos gráficos (ex: "Nov 24")
func PeriodLabel(period string) string {
	date, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return period
	}
	return date.Format("Jan 06")
}
