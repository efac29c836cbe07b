package tui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/mvelders/baedeker/internal/core/config"
	"github.com/mvelders/baedeker/internal/core/styles"
	"github.com/mvelders/baedeker/internal/guide"
	"github.com/mvelders/baedeker/internal/tui/overlay"
)

// overlayTickInterval drives deferred dialog hides and stack
// reconciliation while a dialog session is in progress.
const overlayTickInterval = 50 * time.Millisecond

const chromeHeight = 2 // title bar + status bar

type overlayTickMsg time.Time

type assistantReplyMsg struct {
	reply string
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg   *config.Config
	guide *guide.Guide
	log   zerolog.Logger

	width  int
	height int
	ready  bool

	vp      *viewport.Model
	scroll  *viewportScroll
	history *pageHistory
	stack   *overlay.Manager
	bridge  *overlay.Bridge
	spinner spinner.Model

	packing   *PackingDialog
	weather   *WeatherDialog
	activity  *ActivityDialog
	assistant *AssistantDialog
	help      *HelpDialog

	cursor   int
	ticking  bool
	quitting bool
}

// New creates the TUI model for the loaded guide.
func New(cfg *config.Config, g *guide.Guide, logger zerolog.Logger) Model {
	vp := viewport.New()

	m := Model{
		cfg:       cfg,
		guide:     g,
		log:       logger,
		vp:        &vp,
		history:   newPageHistory("guide"),
		packing:   NewPackingDialog(),
		weather:   NewWeatherDialog(),
		activity:  NewActivityDialog(),
		assistant: NewAssistantDialog(),
		help:      NewHelpDialog(),
	}
	m.scroll = &viewportScroll{vp: m.vp}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.ListSelectedStyle
	m.spinner = s

	registry := overlay.NewRegistry()
	registry.Register(handlePacking, m.packing)
	registry.Register(handleWeather, m.weather)
	registry.Register(handleActivity, m.activity)
	registry.Register(handleAssistant, m.assistant)
	registry.Register(handleHelp, m.help)

	m.stack = overlay.NewManager(registry, m.scroll, cfg.DialogHideDelay(), logger)
	m.bridge = overlay.NewBridge(m.stack, m.history, logger)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case overlayTickMsg:
		return m.handleOverlayTick()
	case assistantReplyMsg:
		return m.handleAssistantReply(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.vp.SetWidth(msg.Width)
	m.vp.SetHeight(max(msg.Height-chromeHeight, 1))
	m.ready = true
	m.refreshList()
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.bridge.HandleEscape() {
			return m.ensureOverlayTick()
		}
		return m, nil
	case "backspace":
		if m.bridge.HandleBack() {
			return m.ensureOverlayTick()
		}
		m.history.Pop()
		return m, nil
	}

	// An open dialog owns the keyboard; page keys never reach a frozen
	// page.
	if top := m.stack.Top(); top != nil {
		return m.routeDialogKey(top, msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.guide.Activities)-1 {
			m.cursor++
			m.refreshList()
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.refreshList()
		}
		return m, nil
	case "enter":
		return m.openActivity()
	case "p":
		return m.openDialog(handlePacking, func() error {
			if len(m.packing.Items()) == 0 {
				m.packing.SetItems(guide.DefaultPackingList())
			}
			return nil
		})
	case "w":
		return m.openDialog(handleWeather, func() error {
			m.weather.SetForecast(m.guide.City, guide.Forecast(m.guide.City))
			return nil
		})
	case "c":
		return m.openDialog(handleAssistant, func() error {
			m.assistant.Greet(guide.AssistantReply(m.guide.City, ""))
			return nil
		})
	case "?":
		return m.openDialog(handleHelp, nil)
	}
	return m, nil
}

// routeDialogKey forwards a key press to the top dialog. The assistant's
// enter key is intercepted so the reply runs as a command with the
// loading guard held.
func (m Model) routeDialogKey(top *overlay.Entry, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if top.Handle == handleAssistant && msg.String() == "enter" {
		prompt, ok := m.assistant.Submit()
		if !ok {
			return m, nil
		}
		m.stack.Guard().Show(handleAssistant)
		return m, askAssistant(m.guide.City, prompt)
	}
	if h, ok := top.Surface.(dialogKeyHandler); ok {
		cmd, handled := h.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	if m.bridge.HandleClick(msg.X, msg.Y, m.width, m.height) {
		return m.ensureOverlayTick()
	}
	return m, nil
}

func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.scroll.Locked() {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		m.vp.ScrollUp(1)
	case tea.MouseWheelDown:
		m.vp.ScrollDown(1)
	}
	return m, nil
}

func (m Model) handleOverlayTick() (tea.Model, tea.Cmd) {
	m.ticking = false
	m.stack.Tick(overlayTickInterval)
	if !m.stack.Idle() {
		return m.ensureOverlayTick()
	}
	return m, nil
}

func (m Model) handleAssistantReply(msg assistantReplyMsg) (tea.Model, tea.Cmd) {
	m.stack.Guard().Hide(handleAssistant)
	m.assistant.AddReply(msg.reply)
	return m, nil
}

// openDialog pushes a dialog onto the stack. Open failures are logged
// and otherwise ignored; an already-open dialog simply stays where it
// is on the stack.
func (m Model) openDialog(handle string, populate overlay.PopulateFunc) (tea.Model, tea.Cmd) {
	if _, err := m.stack.Open(handle, populate); err != nil {
		m.log.Warn().Err(err).Str("handle", handle).Msg("dialog open rejected")
		return m, nil
	}
	return m.ensureOverlayTick()
}

func (m Model) openActivity() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.guide.Activities) {
		return m, nil
	}
	a := m.guide.Activities[m.cursor]
	return m.openDialog(handleActivity, func() error {
		return m.activity.SetActivity(a, m.width, m.height)
	})
}

// ensureOverlayTick keeps exactly one tick loop running while the stack
// has work to do.
func (m Model) ensureOverlayTick() (tea.Model, tea.Cmd) {
	if m.ticking || m.stack.Idle() {
		return m, nil
	}
	m.ticking = true
	return m, scheduleOverlayTick()
}

func scheduleOverlayTick() tea.Cmd {
	return tea.Tick(overlayTickInterval, func(t time.Time) tea.Msg {
		return overlayTickMsg(t)
	})
}

func askAssistant(city, prompt string) tea.Cmd {
	return func() tea.Msg {
		return assistantReplyMsg{reply: guide.AssistantReply(city, prompt)}
	}
}

// refreshList rebuilds the viewport content and keeps the selected
// activity in view.
func (m *Model) refreshList() {
	content, lines := m.listContent()
	m.vp.SetContent(content)
	if len(lines) == 0 || m.cursor >= len(lines) {
		return
	}
	cursorLine := lines[m.cursor]
	if cursorLine < m.vp.YOffset() {
		m.vp.SetYOffset(cursorLine)
	} else if visible := m.vp.VisibleLineCount(); cursorLine >= m.vp.YOffset()+visible {
		m.vp.SetYOffset(cursorLine - visible + 1)
	}
}

// listContent renders the activity list grouped by category and returns
// the line number each activity starts on.
func (m *Model) listContent() (string, []int) {
	if len(m.guide.Activities) == 0 {
		return styles.ListSummaryStyle.Render("No activities found. Add markdown files to the content directory."), nil
	}

	var b strings.Builder
	lines := make([]int, len(m.guide.Activities))
	line := 0
	lastCategory := ""

	for i, a := range m.guide.Activities {
		if a.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
				line++
			}
			header := styles.CategoryStyle.
				Foreground(styles.ColorForString(a.Category)).
				Render(strings.ToUpper(a.Category))
			b.WriteString(header + "\n")
			line++
			lastCategory = a.Category
		}

		marker := "  "
		titleStyle := styles.ListNormalStyle
		if i == m.cursor {
			marker = "> "
			titleStyle = styles.ListSelectedStyle
		}
		lines[i] = line
		b.WriteString(marker + titleStyle.Render(a.Title) + "\n")
		line++
		b.WriteString("    " + styles.ListSummaryStyle.Render(a.Summary) + "\n")
		line++
	}
	return strings.TrimRight(b.String(), "\n"), lines
}
