package main

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/drop-analytics-api/pkg/utils"
)

func newInputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "input",
		Usage:   "Arquivo JSON com drops e despesas (usa os dados de exemplo quando vazio)",
		EnvVars: []string{"REPORT_INPUT"},
	}
}

// inputPath procura --input do comando para a aplicação, já que a flag existe nos dois níveis
func inputPath(c *cli.Context) string {
	for _, ctx := range c.Lineage() {
		if path := ctx.String("input"); path != "" {
			return path
		}
	}
	return ""
}

// loadSnapshot lê o snapshot do arquivo informado ou devolve os dados de exemplo
func loadSnapshot(c *cli.Context) (*domain.Snapshot, error) {
	path := inputPath(c)
	if path == "" {
		return domain.SampleSnapshot(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	snapshot := &domain.Snapshot{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao decodificar %s: %w", path, err)
	}

	return snapshot, nil
}

func printJSON(c *cli.Context, value any) error {
	out, err := utils.PrettyJSON(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}

func runAnalysis(c *cli.Context) error {
	snapshot, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	return printJSON(c, analyzing.Compute(snapshot.Drops, snapshot.Expenses))
}

// runSummary imprime apenas os indicadores principais, arredondados
func runSummary(c *cli.Context) error {
	snapshot, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	result := analyzing.Compute(snapshot.Drops, snapshot.Expenses)

	return printJSON(c, map[string]any{
		"total_revenue":   utils.RoundWithTwoDecimalPlace(result.TotalRevenue),
		"net_profit":      utils.RoundWithTwoDecimalPlace(result.NetProfit),
		"net_margin":      utils.RoundWithTwoDecimalPlace(result.NetMargin),
		"return_rate":     utils.RoundWithTwoDecimalPlace(result.ReturnRate),
		"overall_roas":    utils.RoundWithTwoDecimalPlace(result.OverallROAS),
		"overall_cac":     utils.RoundWithTwoDecimalPlace(result.OverallCAC),
		"inventory_units": result.CurrentInventoryUnits,
		"inventory_value": utils.RoundWithTwoDecimalPlace(result.CurrentInventoryValue),
		"restock_alerts":  len(result.RestockAlerts),
	})
}

func runRecommendations(c *cli.Context) error {
	snapshot, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	result := analyzing.Compute(snapshot.Drops, snapshot.Expenses)
	return printJSON(c, analyzing.ComputeRecommendations(result))
}

func runDiscount(c *cli.Context) error {
	snapshot, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	scenario := &domain.DiscountScenario{
		DropID:                c.String("drop"),
		DiscountPercent:       c.Float64("discount"),
		ExpectedSalesIncrease: c.Float64("lift"),
	}
	if products := c.String("products"); products != "" {
		scenario.ProductIDs = strings.Split(products, ",")
	}

	impact := analyzing.ComputeDiscountImpact(scenario, snapshot.Drops)
	if impact == nil {
		return cli.Exit("cenário inválido: informe um drop existente e um desconto diferente de zero", 2)
	}

	return printJSON(c, impact)
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "report",
		Usage: "Executa a análise de vendas dos drops e imprime o resultado em JSON",
		Flags: []cli.Flag{
			newInputFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:   "analysis",
				Usage:  "Resultado completo da análise",
				Flags:  []cli.Flag{newInputFlag()},
				Action: runAnalysis,
			},
			{
				Name:   "summary",
				Usage:  "Indicadores principais arredondados",
				Flags:  []cli.Flag{newInputFlag()},
				Action: runSummary,
			},
			{
				Name:   "recommendations",
				Usage:  "Recomendações ordenadas por prioridade",
				Flags:  []cli.Flag{newInputFlag()},
				Action: runRecommendations,
			},
			{
				Name:  "discount",
				Usage: "Simula um desconto sobre o estoque restante de um drop",
				Flags: []cli.Flag{
					newInputFlag(),
					&cli.StringFlag{
						Name:     "drop",
						Usage:    "ID do drop",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "discount",
						Usage: "Percentual de desconto (0-100)",
						Value: 30,
					},
					&cli.Float64Flag{
						Name:  "lift",
						Usage: "Aumento esperado nas vendas em percentual",
						Value: 50,
					},
					&cli.StringFlag{
						Name:  "products",
						Usage: "IDs de produtos separados por vírgula (todos quando vazio)",
					},
				},
				Action: runDiscount,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
