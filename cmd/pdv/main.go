// The pdv command is the interactive single-till surface: it assembles the
// current sale, finalizes it into the ledger, and produces the daily
// spreadsheet report and chart page on demand.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pdv/internal/charts"
	"pdv/internal/cli"
	"pdv/internal/core"
	"pdv/internal/export"
	"pdv/internal/reports"
	"pdv/internal/till"
)

const usage = `Comandos:
  add <produto> <quantidade> <preço>   adiciona um produto à venda
  items                                lista os itens da venda atual
  total                                mostra o valor total da venda
  finalize                             finaliza a venda e registra no caixa
  reset                                descarta a venda atual
  report [AAAA-MM-DD]                  gera o relatório em planilha (padrão: hoje)
  charts [AAAA-MM-DD]                  gera a página de gráficos (padrão: hoje)
  help                                 mostra esta ajuda
  quit                                 encerra`

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	store := cli.InitLedger(logger, cfg.SQLiteDBPath)
	defer store.Close()

	session := till.NewSession(store)
	engine := reports.NewEngine(store)
	exporter := export.NewExcelWriter(cfg.ReportDir)
	renderer := charts.NewRenderer(cfg.ChartDir)

	logger.Info("Sistema de PDV ready", "db", cfg.SQLiteDBPath)
	fmt.Println("Sistema de PDV")
	fmt.Println(usage)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "add":
			handleAdd(session, fields[1:])
		case "items":
			handleItems(session)
		case "total":
			fmt.Printf("Valor Total: %s\n", session.Total().BRL())
		case "finalize":
			handleFinalize(ctx, session)
		case "reset":
			session.Cancel()
			fmt.Println("Venda atual descartada.")
		case "report":
			handleReport(ctx, engine, exporter, fields[1:])
		case "charts":
			handleCharts(ctx, engine, renderer, cfg.TrendDays, fields[1:])
		case "help":
			fmt.Println(usage)
		case "quit", "exit":
			return
		default:
			fmt.Printf("Comando desconhecido: %s (use 'help')\n", fields[0])
		}
	}
}

func handleAdd(session *till.Session, args []string) {
	if len(args) < 3 {
		fmt.Println("Uso: add <produto> <quantidade> <preço>")
		return
	}
	// Product names may contain spaces; quantity and price are the last
	// two arguments.
	product := strings.Join(args[:len(args)-2], " ")
	quantity, err := strconv.ParseInt(args[len(args)-2], 10, 64)
	if err != nil {
		fmt.Println("Erro: quantidade deve ser um número inteiro positivo.")
		return
	}
	cents, err := core.ParseDecimalToCents(args[len(args)-1])
	if err != nil {
		fmt.Println("Erro: preço deve ser um valor decimal não negativo.")
		return
	}
	if err := session.AddItem(product, quantity, core.Money{Cents: cents}); err != nil {
		fmt.Printf("Erro: %v\n", err)
		return
	}
	fmt.Printf("Valor Total: %s\n", session.Total().BRL())
}

func handleItems(session *till.Session) {
	items := session.Items()
	if len(items) == 0 {
		fmt.Println("Nenhum item na venda atual.")
		return
	}
	for _, li := range items {
		fmt.Printf("  %s - %s x %d = %s\n",
			li.Product, li.UnitPrice.BRL(), li.Quantity, li.LineTotal().BRL())
	}
	fmt.Printf("Valor Total: %s\n", session.Total().BRL())
}

func handleFinalize(ctx context.Context, session *till.Session) {
	conf, err := session.Finalize(ctx)
	if err != nil {
		fmt.Printf("Erro ao finalizar a venda: %v\n", err)
		fmt.Println("Os itens foram mantidos; tente novamente.")
		return
	}
	if conf.Empty() {
		fmt.Println("Nenhum item na venda atual.")
		return
	}
	fmt.Println("Venda Finalizada. Produtos Vendidos:")
	for _, line := range conf.Lines {
		fmt.Printf("  %s - %s x %d\n", line.Product, line.UnitPrice.BRL(), line.Quantity)
	}
	fmt.Printf("Valor Total da Compra: %s\n", conf.Total.BRL())
}

func parseDayArg(args []string) (core.Date, error) {
	if len(args) == 0 {
		return core.Today(), nil
	}
	return core.ParseDate(args[0])
}

func handleReport(ctx context.Context, engine *reports.Engine, exporter *export.ExcelWriter, args []string) {
	day, err := parseDayArg(args)
	if err != nil {
		fmt.Printf("Erro: %v\n", err)
		return
	}
	report, err := engine.BuildDailyReport(ctx, day)
	if errors.Is(err, reports.ErrNoSales) {
		fmt.Printf("Não há vendas registradas para %s.\n", day)
		return
	}
	if err != nil {
		fmt.Printf("Erro ao gerar o relatório: %v\n", err)
		return
	}
	path, err := exporter.Write(report)
	if err != nil {
		fmt.Printf("Erro ao gravar a planilha: %v\n", err)
		return
	}
	fmt.Printf("Relatório gerado com sucesso: %s\n", path)
}

func handleCharts(ctx context.Context, engine *reports.Engine, renderer *charts.Renderer, trendDays int, args []string) {
	day, err := parseDayArg(args)
	if err != nil {
		fmt.Printf("Erro: %v\n", err)
		return
	}
	series, err := engine.BuildChartSeries(ctx, day, trendDays)
	if err != nil {
		fmt.Printf("Erro ao gerar os gráficos: %v\n", err)
		return
	}
	path, err := renderer.Render(series, day)
	if err != nil {
		fmt.Printf("Erro ao gravar os gráficos: %v\n", err)
		return
	}
	fmt.Printf("Gráficos gerados com sucesso: %s\n", path)
}
