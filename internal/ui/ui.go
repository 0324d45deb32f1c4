package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"tagnote/internal/config"
	"tagnote/internal/controller"
	"tagnote/internal/importer"
	"tagnote/internal/notes"
	"tagnote/internal/storage"
	"tagnote/internal/view"
)

const defaultWidth = 80

type editorFinishedMsg struct {
	err error
}

type Model struct {
	ctrl   *controller.Controller
	repo   storage.Repository
	cfg    config.Config
	logger *slog.Logger
	help   help.Model
	width  int
	// clip writes to the system clipboard.
	clip func(string) error
	// err is a save failure on the way out; Run returns it.
	err error
}

func Run(repo storage.Repository, cfg config.Config, logger *slog.Logger, list []notes.Note) error {
	program := tea.NewProgram(New(repo, cfg, logger, list), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

func New(repo storage.Repository, cfg config.Config, logger *slog.Logger, list []notes.Note) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctrl := controller.New(notes.NewStore(list), controller.NewKeyMap(cfg.Keys))
	ctrl.SetStatus(fmt.Sprintf("Press '%s' to add, '%s' to import from %s.", cfg.Keys.Add, cfg.Keys.Import, cfg.Editor))
	return Model{
		ctrl:   ctrl,
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		help:   help.New(),
		width:  defaultWidth,
		clip:   clipboard.WriteAll,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.ctrl.Handle(msg))
	case editorFinishedMsg:
		m.finishImport(msg.err)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) apply(eff controller.Effect) (tea.Model, tea.Cmd) {
	switch eff {
	case controller.EffectQuit:
		return m.saveAndQuit()
	case controller.EffectImport:
		return m, m.startImport()
	case controller.EffectYank:
		m.yank()
	}
	return m, nil
}

func (m Model) saveAndQuit() (tea.Model, tea.Cmd) {
	list := m.ctrl.Store().Notes()
	if err := m.repo.Save(list); err != nil {
		m.logger.Error("save failed", slog.String("error", err.Error()))
		m.err = fmt.Errorf("save notes: %w", err)
		return m, tea.Quit
	}
	m.logger.Info("notes saved", slog.Int("count", len(list)))
	return m, tea.Quit
}

func (m Model) startImport() tea.Cmd {
	path := m.cfg.ScratchPath
	if err := importer.Prepare(path); err != nil {
		m.ctrl.SetStatus(fmt.Sprintf("import failed: %v", err))
		return nil
	}
	cmd, err := importer.Command(m.cfg.Editor, path)
	if err != nil {
		m.ctrl.SetStatus(fmt.Sprintf("import failed: %v", err))
		return nil
	}
	m.logger.Debug("launching editor", slog.String("editor", m.cfg.Editor), slog.String("path", path))
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m Model) finishImport(editorErr error) {
	if editorErr != nil {
		m.logger.Warn("editor failed", slog.String("editor", m.cfg.Editor), slog.String("error", editorErr.Error()))
		m.ctrl.SetStatus(fmt.Sprintf("editor failed: %v", editorErr))
		return
	}
	n, err := importer.ReadFirstLine(m.cfg.ScratchPath)
	if errors.Is(err, importer.ErrNoInput) {
		m.ctrl.SetStatus("Nothing imported")
		return
	}
	if err != nil {
		m.logger.Warn("import failed", slog.String("error", err.Error()))
		m.ctrl.SetStatus(fmt.Sprintf("import failed: %v", err))
		return
	}
	m.ctrl.Import(n)
	m.logger.Info("note imported", slog.String("tag", n.Tag))
}

func (m Model) yank() {
	n, ok := m.ctrl.Store().Selected()
	if !ok {
		return
	}
	if err := m.clip(n.String()); err != nil {
		m.ctrl.SetStatus(fmt.Sprintf("copy failed: %v", err))
		return
	}
	m.ctrl.SetStatus("Copied to clipboard")
}

func (m Model) View() string {
	f := view.Project(m.ctrl)
	keys := m.ctrl.Keys()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(listStyle.Width(m.innerWidth()).Render(m.renderRows(f)))
	b.WriteString("\n")

	if f.Popup != nil {
		b.WriteString(m.renderPopup(f.Popup))
		b.WriteString("\n")
	}

	status := f.Status
	if f.Mode == controller.ModeDeletePending {
		status = pendingStyle.Render(status)
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	switch {
	case f.Mode.Typing():
		b.WriteString(m.help.ShortHelpView(keys.InputHelp()))
	case f.Mode.Editing():
		b.WriteString(m.help.ShortHelpView(keys.EditHelp()))
	default:
		b.WriteString(m.help.View(keys))
	}
	return b.String()
}

func (m Model) innerWidth() int {
	return max(m.width-4, 10)
}

func (m Model) renderRows(f view.Frame) string {
	if f.Empty() {
		return mutedStyle.Render(fmt.Sprintf("No notes yet. Press '%s' to add one.", m.cfg.Keys.Add))
	}
	limit := m.innerWidth() - 2
	lines := make([]string, 0, len(f.Rows))
	for _, r := range f.Rows {
		prefix := fmt.Sprintf("%d: ", r.Index)
		tag := runewidth.Truncate(r.Tag, limit/3, "…")
		rest := limit - runewidth.StringWidth(prefix) - runewidth.StringWidth(tag) - 3
		body := runewidth.Truncate(r.Body, max(rest, 1), "…")

		line := prefix + tagStyle.Render(tag) + " - " + body
		if r.Selected {
			line = selectedStyle.Render(prefix) + tagStyle.Bold(true).Render(tag) + selectedStyle.Render(" - "+body)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPopup(p *view.Popup) string {
	width := m.innerWidth()
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(renderField(p.Tag, width))
	b.WriteString("\n")
	b.WriteString(renderField(p.Body, width))
	return b.String()
}

func renderField(f view.Field, width int) string {
	style := fieldStyle
	text := f.Text
	switch {
	case f.Editing:
		style = fieldEditingStyle
		text = withCursor(f.Before, f.After)
	case f.Focused:
		style = fieldFocusStyle
	}
	return mutedStyle.Render(f.Label) + "\n" + style.Width(width).Render(text)
}

// withCursor draws a block cursor over the first rune of after, or past the
// end when after is empty.
func withCursor(before, after string) string {
	at := " "
	if r, size := utf8.DecodeRuneInString(after); size > 0 {
		at = string(r)
		after = after[size:]
	}
	return before + cursorStyle.Render(at) + after
}
