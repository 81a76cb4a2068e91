// Package ui holds the dashboard session: the interaction-mode state
// machine, the tick-driven refresh loop, and the pure layout renderer.
package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tickerlab/internal/catalog"
	"tickerlab/internal/config"
	"tickerlab/internal/script"
	"tickerlab/internal/store"
)

// Mode is the session's interaction mode. Exactly one mode is active;
// every dispatch site switches exhaustively over it.
type Mode int

const (
	ModeList Mode = iota
	ModeSearch
)

// Messages.
type tickMsg time.Time

// actionDoneMsg delivers a finished script action's formatted outcome back
// into the update loop. The output message is only ever updated here, so
// it changes atomically on completion.
type actionDoneMsg struct {
	output  string
	refresh bool // re-scan the catalog (a download may have added a series)
}

// Model is the bubbletea model for the dashboard session. It is the only
// mutable session state and is touched exclusively by Update.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger
	runner *script.Runner

	mode     Mode
	selected int
	search   textinput.Model
	output   string
	showHelp bool
	busy     bool

	accounts []store.AccountSummary
	trades   []store.TradeRecord
	stocks   []catalog.StockInfo

	width, height int
	ready         bool
}

// NewModel creates the session model. Accounts are loaded once at startup
// by the caller (so a load failure there is diagnosable); the catalog and
// trade ledger are refreshed every tick.
func NewModel(cfg *config.Config, accounts []store.AccountSummary, runner *script.Runner, logger *slog.Logger) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 12

	m := Model{
		cfg:      cfg,
		logger:   logger,
		runner:   runner,
		search:   ti,
		accounts: accounts,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	interval := time.Duration(m.cfg.UI.PollIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh rebuilds the ticker catalog from the cache directory and reloads
// the trade ledger. Per-tick ledger failures degrade silently to an empty
// ledger; only the startup account load is diagnosed.
func (m *Model) refresh() {
	m.stocks = catalog.Scan(m.cfg.Storage.CacheDir)
	trades, err := store.LoadTrades(m.cfg.Storage.TradesFile)
	if err != nil {
		trades = nil
	}
	m.trades = trades
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.refresh()
		return m, m.tickCmd()

	case actionDoneMsg:
		m.busy = false
		m.output = msg.output
		if msg.refresh {
			m.refresh()
		}
		return m, nil
	}
	return m, nil
}

// handleKey dispatches one key press. The instructions overlay never gates
// dispatch: it is purely a rendering concern.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "h":
		m.showHelp = !m.showHelp
		return m, nil

	case "s":
		m.mode = ModeSearch
		m.search.Reset()
		return m, m.search.Focus()

	case "esc":
		m.mode = ModeList
		m.search.Reset()
		m.search.Blur()
		return m, nil

	case "up", "down":
		if m.mode != ModeList || len(m.stocks) == 0 {
			return m, nil
		}
		if msg.String() == "down" {
			m.selected = (m.selected + 1) % len(m.stocks)
		} else if m.selected == 0 {
			m.selected = len(m.stocks) - 1
		} else {
			m.selected--
		}
		return m, nil

	case "enter":
		return m.handleEnter()

	default:
		// Free text and backspace edit the search buffer in Search mode
		// and are ignored in List mode.
		if m.mode == ModeSearch {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// handleEnter triggers the mode's script action. The invocation runs off
// the main tick as a command; the session is marked busy until completion
// and further triggers are rejected, so no two invocations ever overlap.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.busy {
		m.logger.Debug("action rejected, session busy")
		return m, nil
	}

	switch m.mode {
	case ModeSearch:
		ticker := strings.ToUpper(strings.TrimSpace(m.search.Value()))
		if ticker == "" {
			return m, nil
		}
		m.mode = ModeList
		m.search.Reset()
		m.search.Blur()
		m.busy = true
		runner := m.runner
		return m, func() tea.Msg {
			out := runner.Download(ticker)
			return actionDoneMsg{output: formatDownload(ticker, out), refresh: true}
		}

	case ModeList:
		if m.selected >= len(m.stocks) {
			return m, nil
		}
		ticker := m.stocks[m.selected].Ticker
		seriesPath := filepath.Join(m.cfg.Storage.CacheDir, ticker+".csv")
		m.busy = true
		runner := m.runner
		return m, func() tea.Msg {
			// The model runs even when preprocessing failed. The operator
			// sees the outcome of whichever action ran last; the runner
			// logs the preprocess outcome.
			runner.Preprocess(seriesPath)
			out := runner.Predict()
			return actionDoneMsg{output: formatPredict(ticker, out)}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	f := frame{
		width:    m.width,
		height:   m.height,
		showHelp: m.showHelp,
		busy:     m.busy,
		accounts: m.accounts,
		trades:   m.trades,
		stocks:   m.stocks,
		selected: m.selected,
		search:   m.searchLine(),
		output:   m.output,
	}
	return f.render()
}

// searchLine renders the search buffer: with a cursor while editing, as
// plain text otherwise.
func (m Model) searchLine() string {
	if m.mode == ModeSearch {
		return m.search.View()
	}
	return m.search.Value()
}

// ---------------------------------------------------------------------------
// Outcome formatting
// ---------------------------------------------------------------------------

func formatDownload(ticker string, out script.Outcome) string {
	switch out.Status {
	case script.StatusSuccess:
		return fmt.Sprintf("Downloaded data for %s", ticker)
	case script.StatusScriptFailure:
		return fmt.Sprintf("Download error: %s", out.Detail)
	default:
		return fmt.Sprintf("Failed to run download script: %s", out.Detail)
	}
}

func formatPredict(ticker string, out script.Outcome) string {
	switch out.Status {
	case script.StatusSuccess:
		return fmt.Sprintf("ML Prediction for %s: %s", ticker, out.Detail)
	case script.StatusScriptFailure:
		return fmt.Sprintf("Model error: %s", out.Detail)
	default:
		return fmt.Sprintf("Failed to run model script: %s", out.Detail)
	}
}
