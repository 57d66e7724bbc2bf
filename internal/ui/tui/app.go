package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenResult
)

type action int

const (
	actionBiggestStore action = iota
	actionHighestPaid
	actionHeadcount
	actionSecurityPreview
	actionPayrollPreview
	actionApply
	actionInit
	actionQuit
)

func (a action) String() string {
	switch a {
	case actionBiggestStore:
		return "Biggest store"
	case actionHighestPaid:
		return "Highest paid"
	case actionHeadcount:
		return "Headcount"
	case actionSecurityPreview:
		return "Security staffing"
	case actionPayrollPreview:
		return "Payroll"
	case actionApply:
		return "Apply policies"
	case actionInit:
		return "Init workspace"
	case actionQuit:
		return "Quit"
	default:
		return "unknown"
	}
}

type menuItem struct {
	action action
	desc   string
}

func (m menuItem) Title() string       { return m.action.String() }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.action.String() }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr    screen
	menu   list.Model
	active action
	body   string
	busy   bool
	toast  string

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := []list.Item{
		menuItem{actionBiggestStore, "Largest store by area"},
		menuItem{actionHighestPaid, "Employees earning the top salary"},
		menuItem{actionHeadcount, "Store employees plus guards"},
		menuItem{actionSecurityPreview, "Preview guard hiring (nothing saved)"},
		menuItem{actionPayrollPreview, "Preview raises and cuts (nothing saved)"},
		menuItem{actionApply, "Run both policies and save a report"},
		menuItem{actionInit, "Create mallctl.yaml and a sample mall here"},
		menuItem{actionQuit, "Exit mallctl"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "mallctl"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		log:   log,
		scr:   screenHome,
		menu:  l,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		m.toast = "Workspace ready at " + msg.root
		return m, nil

	case queryDoneMsg:
		return m.showQuery(msg), nil

	case policyDoneMsg:
		return m.showPolicy(msg), nil

	case tea.KeyMsg:
		if m.menu.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			return m.home(), nil
		case "esc", "b":
			if m.scr != screenHome {
				return m.home(), nil
			}
		case "enter":
			if m.scr == screenHome && !m.busy {
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				return m.open(it.action)
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

// open starts the command behind a menu action.
func (m model) open(a action) (model, tea.Cmd) {
	m.toast = ""

	switch a {
	case actionQuit:
		return m, tea.Quit
	case actionInit:
		root := m.workspaceRoot
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				m.toast = "Cannot resolve working directory"
				return m, nil
			}
			root = wd
		}
		m.busy = true
		return m, cmdInitWorkspace(m.deps, root)
	}

	if !m.workspaceFound {
		m.toast = "No workspace found (choose Init workspace)"
		return m, nil
	}

	m.busy = true
	m.active = a
	m.log.Info("tui.open", "action", a.String(), "workspace", m.workspaceRoot)

	switch a {
	case actionBiggestStore, actionHighestPaid, actionHeadcount:
		return m, cmdRunQueries(m.workspaceRoot, a, m.log)
	default:
		return m, cmdApplyPolicies(m.workspaceRoot, a, m.log)
	}
}

func (m model) showQuery(msg queryDoneMsg) model {
	m.busy = false
	if msg.err != nil {
		m.toast = userMessage(msg.err)
		return m.home()
	}

	m.scr = screenResult
	m.active = msg.action
	switch msg.action {
	case actionBiggestStore:
		m.body = renderBiggestStore(msg.report)
	case actionHighestPaid:
		m.body = renderHighestPaid(msg.report)
	default:
		m.body = renderHeadcount(msg.report)
	}
	return m
}

func (m model) showPolicy(msg policyDoneMsg) model {
	m.busy = false
	if msg.err != nil {
		m.toast = userMessage(msg.err)
		if msg.id == "" && msg.report.ID == "" {
			return m.home()
		}
	}

	m.scr = screenResult
	m.active = msg.action
	m.body = renderPolicyReport(msg.report, msg.id)
	return m
}

func (m model) home() model {
	m.scr = screenHome
	m.body = ""
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("mallctl") + "\n" +
		m.theme.Subtitle.Render("Mall staffing and payroll") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Card.Render("⚠ No workspace found.\n\nChoose Init workspace to create one here.")
	}

	status := ""
	if m.busy {
		status = "\n" + m.theme.Help.Render("working…")
	}
	if m.toast != "" {
		status = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.menu.View()) + status + "\n" + help)

	case screenResult:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n%s",
				m.theme.Title.Render(m.active.String()),
				m.body,
				m.theme.Help.Render("esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + card + status)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
