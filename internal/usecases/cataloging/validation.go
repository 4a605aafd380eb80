package cataloging

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

// ValidationPolicy define o que fazer com registros inconsistentes (ex: mais devoluções que vendas)
type ValidationPolicy string

const (
	// PolicyLenient aceita o registro como veio; os cálculos podem ficar negativos
	PolicyLenient ValidationPolicy = "lenient"
	// PolicyClamp ajusta os campos para o intervalo válido
	PolicyClamp ValidationPolicy = "clamp"
	// PolicyReject recusa o registro
	PolicyReject ValidationPolicy = "reject"
)

func ParseValidationPolicy(value string) (ValidationPolicy, error) {
	switch policy := ValidationPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case "":
		return PolicyLenient, nil
	case PolicyLenient, PolicyClamp, PolicyReject:
		return policy, nil
	default:
		return "", errors.Wrapf(ErrInvalidPolicy, "valor %q, use lenient, clamp ou reject", value)
	}
}

// Apply aplica a política ao registro e devolve a versão que deve ser gravada
func (p ValidationPolicy) Apply(record domain.PeriodRecord) (domain.PeriodRecord, error) {
	switch p {
	case PolicyClamp:
		return clampRecord(record), nil
	case PolicyReject:
		if problems := recordProblems(record); len(problems) > 0 {
			return record, errors.Wrap(ErrInvalidRecord, strings.Join(problems, "; "))
		}
		return record, nil
	default:
		return record, nil
	}
}

func recordProblems(record domain.PeriodRecord) []string {
	problems := make([]string, 0)

	if record.Sold < 0 || record.Returned < 0 || record.SoldWithDiscount < 0 || record.NewCustomers < 0 {
		problems = append(problems, "quantidades não podem ser negativas")
	}
	if record.Returned > record.Sold {
		problems = append(problems, fmt.Sprintf("devoluções (%d) maiores que vendas (%d)", record.Returned, record.Sold))
	}
	if record.SoldWithDiscount > record.NetSold() {
		problems = append(problems, fmt.Sprintf("vendas com desconto (%d) maiores que vendas líquidas (%d)", record.SoldWithDiscount, record.NetSold()))
	}
	if record.DiscountPercent < 0 || record.DiscountPercent > 100 {
		problems = append(problems, fmt.Sprintf("desconto de %.2f%% fora do intervalo 0-100", record.DiscountPercent))
	}

	return problems
}

// clampRecord garante regularUnits >= 0: devoluções até o vendido e desconto até o vendido líquido
func clampRecord(record domain.PeriodRecord) domain.PeriodRecord {
	record.Sold = max(record.Sold, 0)
	record.NewCustomers = max(record.NewCustomers, 0)
	record.Returned = min(max(record.Returned, 0), record.Sold)
	record.SoldWithDiscount = min(max(record.SoldWithDiscount, 0), record.NetSold())
	record.DiscountPercent = min(max(record.DiscountPercent, 0), 100)
	return record
}
