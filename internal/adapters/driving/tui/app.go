package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

// pickerWidth is the fixed width of the template list column.
const pickerWidth = 34

// templateItem adapts a TemplateInfo for the bubbles list component.
type templateItem struct {
	info domain.TemplateInfo
}

func (i templateItem) Title() string       { return i.info.Name }
func (i templateItem) Description() string { return i.info.Description }
func (i templateItem) FilterValue() string { return string(i.info.ID) }

// profileLoadedMsg carries the analysed profile into the update loop.
type profileLoadedMsg struct {
	profile *domain.RepositoryProfile
}

// errMsg carries a failure into the update loop.
type errMsg struct {
	err error
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	ref     domain.RepoRef
	profile *domain.RepositoryProfile

	styles  *Styles
	list    list.Model
	preview viewport.Model
	err     error
	loading bool
	width   int
	height  int
	ready   bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application for the given repository.
func NewApp(ports *Ports, ref domain.RepoRef) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	catalog := domain.TemplateCatalog()
	items := make([]list.Item, len(catalog))
	for i, info := range catalog {
		items[i] = templateItem{info: info}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, pickerWidth, 0)
	l.Title = "Templates"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		ref:     ref,
		styles:  DefaultStyles(),
		list:    l,
		preview: viewport.New(0, 0),
		loading: true,
	}, nil
}

// WithContext sets the context used for profile analysis.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init starts the profile fetch.
func (a *App) Init() tea.Cmd {
	return a.loadProfile()
}

// loadProfile analyses the repository in the background.
func (a *App) loadProfile() tea.Cmd {
	return func() tea.Msg {
		profile, err := a.ports.Profiler.Analyze(a.ctx, a.ref)
		if err != nil {
			return errMsg{err: err}
		}
		return profileLoadedMsg{profile: profile}
	}
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		a.ready = true
		return a, nil

	case profileLoadedMsg:
		a.profile = msg.profile
		a.loading = false
		a.err = nil
		a.renderPreview()
		return a, nil

	case errMsg:
		a.err = msg.err
		a.loading = false
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "r":
			a.loading = true
			return a, a.loadProfile()
		}
	}

	var cmds []tea.Cmd

	var listCmd tea.Cmd
	before := a.list.Index()
	a.list, listCmd = a.list.Update(msg)
	cmds = append(cmds, listCmd)

	if a.list.Index() != before {
		a.renderPreview()
	}

	var previewCmd tea.Cmd
	a.preview, previewCmd = a.preview.Update(msg)
	cmds = append(cmds, previewCmd)

	return a, tea.Batch(cmds...)
}

// resize recomputes component dimensions from the terminal size.
func (a *App) resize() {
	contentHeight := a.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}

	a.list.SetSize(pickerWidth, contentHeight)

	previewWidth := a.width - pickerWidth - 6
	if previewWidth < 20 {
		previewWidth = 20
	}
	a.preview.Width = previewWidth
	a.preview.Height = contentHeight
}

// renderPreview regenerates the document for the selected template.
func (a *App) renderPreview() {
	if a.profile == nil {
		return
	}

	item, ok := a.list.SelectedItem().(templateItem)
	if !ok {
		return
	}

	document, err := a.ports.Generator.Generate(item.info.ID, a.profile)
	if err != nil {
		a.err = err
		return
	}

	a.err = nil
	a.preview.SetContent(document)
	a.preview.GotoTop()
}

// SelectedTemplate returns the currently highlighted template.
func (a *App) SelectedTemplate() domain.Template {
	if item, ok := a.list.SelectedItem().(templateItem); ok {
		return item.info.ID
	}
	return domain.TemplateStandard
}

// View renders the application.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	title := a.styles.Title.Render("readmegen") +
		a.styles.Muted.Render("  "+a.ref.String())

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.styles.Picker.Render(a.list.View()),
		a.styles.Preview.Render(a.preview.View()),
	)

	status := a.statusLine()

	return strings.Join([]string{title, body, status}, "\n")
}

// statusLine renders the bottom bar: errors win, then loading, then help.
func (a *App) statusLine() string {
	switch {
	case a.err != nil:
		return a.styles.Error.Render("error: " + a.err.Error())
	case a.loading:
		return a.styles.StatusBar.Render("Analysing " + a.ref.String() + "...")
	default:
		return a.styles.StatusBar.Render("↑/↓ select template · pgup/pgdn scroll preview · r refresh · q quit")
	}
}
