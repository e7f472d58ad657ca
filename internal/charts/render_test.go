package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pdv/internal/core"
)

func TestRenderWritesChartPage(t *testing.T) {
	day := core.NewDate(2025, time.March, 9)
	series := core.ChartSeries{
		ProductsToday: []core.ProductTotal{
			{Product: "Coffee", Quantity: 3, Amount: core.Money{Cents: 1350}},
		},
		DailyRevenue: []core.DailyTotal{
			{Day: day, Amount: core.Money{Cents: 1350}},
			{Day: core.NewDate(2025, time.March, 8), Amount: core.Money{Cents: 900}},
		},
		MonthlyRevenue: []core.MonthTotal{
			{Month: "2025-03", Amount: core.Money{Cents: 2250}},
		},
	}

	dir := t.TempDir()
	path, err := NewRenderer(dir).Render(series, day)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if filepath.Base(path) != "graficos_vendas_2025-03-09.html" {
		t.Fatalf("unexpected path %q", path)
	}

	html, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	for _, want := range []string{
		"Produtos Vendidos no Dia",
		"Valor Total das Vendas por Dia",
		"Valor Total das Vendas no Mês",
		"Coffee",
		"2025-03",
	} {
		if !strings.Contains(string(html), want) {
			t.Fatalf("page missing %q", want)
		}
	}
}
