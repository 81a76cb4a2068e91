package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"tickerlab/internal/catalog"
	"tickerlab/internal/store"
)

// Layout percentages. Static configuration, not computed from content.
const (
	topPct  = 50
	midPct  = 30
	leftPct = 70
)

// trendSeries is the fixed illustrative series the chart panel plots. It is
// not derived from the catalog.
var trendSeries = []float64{100, 102.5, 105, 103, 107, 106, 110}

// frame is an immutable snapshot of everything one render needs. Rendering
// is a pure function of the frame: no side effects, no loads.
type frame struct {
	width, height int
	showHelp      bool
	busy          bool

	accounts []store.AccountSummary
	trades   []store.TradeRecord
	stocks   []catalog.StockInfo

	selected int
	search   string
	output   string
}

func (f frame) render() string {
	if f.showHelp {
		return renderHelp(f.width, f.height)
	}

	topH := f.height * topPct / 100
	midH := f.height * midPct / 100
	botH := f.height - topH - midH

	chartW := f.width * leftPct / 100
	tradesW := f.width - chartW
	listW := f.width * leftPct / 100
	searchW := f.width - listW

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		panel("Stock Chart", renderChart(chartW-4, topH-4), chartW, topH),
		panel("Live Trades", renderTrades(f.trades), tradesW, topH),
	)
	mid := panel("Account Summary", renderAccounts(f.accounts), f.width, midH)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		panel("ML List", renderCatalog(f.stocks, f.selected), listW, botH),
		panel("Search", renderSearch(f.search, f.output, f.busy), searchW, botH),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, mid, bottom)
}

// panel draws a bordered box of the given outer size with a styled title as
// its first line. Content taller than the box is truncated.
func panel(title, body string, w, h int) string {
	if w < 4 || h < 3 {
		return ""
	}
	inner := titleStyle.Render(title) + "\n" + body
	return panelStyle.
		Width(w - 2).
		Height(h - 2).
		MaxWidth(w).
		MaxHeight(h).
		Render(inner)
}

// renderChart plots the fixed trend series as a braille line chart.
func renderChart(w, h int) string {
	if w < 12 || h < 4 {
		return ""
	}

	yMin, yMax := trendSeries[0], trendSeries[0]
	for _, v := range trendSeries {
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}

	lc := linechart.New(w, h,
		0, float64(len(trendSeries)-1),
		yMin-2, yMax+2,
		linechart.WithXYSteps(6, 4),
	)
	for i := 0; i < len(trendSeries)-1; i++ {
		lc.DrawBrailleLineWithStyle(
			canvas.Float64Point{X: float64(i), Y: trendSeries[i]},
			canvas.Float64Point{X: float64(i + 1), Y: trendSeries[i+1]},
			chartStyle,
		)
	}
	lc.DrawXYAxisAndLabel()
	return lc.View()
}

func renderTrades(trades []store.TradeRecord) string {
	if len(trades) == 0 {
		return dimStyle.Render("(no trades)")
	}
	lines := make([]string, 0, len(trades))
	for _, t := range trades {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			t.Name,
			changeStyled(formatSigned(t.Transaction), t.Transaction),
			formatAmount(t.NewBalance)))
	}
	return strings.Join(lines, "\n")
}

func renderAccounts(accounts []store.AccountSummary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Initial", "Current", "Change", "% Change"})
	for _, acc := range accounts {
		t.AppendRow(table.Row{
			acc.Name,
			formatAmount(acc.InitialAmount),
			formatAmount(acc.CurrentAmount),
			formatSigned(acc.Change),
			formatPct(acc.PercentageChange),
		})
	}
	return t.Render()
}

// renderCatalog lists the cached tickers with a marker glyph on the
// selected row. An out-of-range selection simply draws no marker.
func renderCatalog(stocks []catalog.StockInfo, selected int) string {
	if len(stocks) == 0 {
		return dimStyle.Render("(no cached series)")
	}
	lines := make([]string, 0, len(stocks))
	for i, s := range stocks {
		marker := " "
		if i == selected {
			marker = ">"
		}
		line := fmt.Sprintf("%s %s  %s  %s (%s)",
			marker, s.Ticker,
			formatAmount(s.Price),
			formatSigned(s.Change),
			formatPct(s.PctChange))
		if i == selected {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderSearch(search, output string, busy bool) string {
	var b strings.Builder
	b.WriteString("Search Ticker: ")
	b.WriteString(search)
	b.WriteString("\n\n")
	if busy {
		b.WriteString(busyStyle.Render("working..."))
		b.WriteString("\n")
	}
	b.WriteString(output)
	return b.String()
}
