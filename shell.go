// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-shellwords"
)

// Lines of command output kept under the tree.
const shellLogSize = 6

// Styles holds all the styling for the shell
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	palette := GetPalette()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(palette.Focus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(palette.Border),
		Title: lipgloss.NewStyle().
			Foreground(palette.Key).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(palette.Root).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(palette.Success),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true),
	}
}

type shellLine struct {
	text   string
	failed bool
}

// statusMsg carries the outcome of an asynchronous command back to Update.
type statusMsg shellLine

// ShellModel is the Bubble Tea model of the interactive shell.
type ShellModel struct {
	ws       *Workspace
	renderer *Renderer
	order    Order

	input    textinput.Model
	treeView viewport.Model
	helpView viewport.Model
	showHelp bool

	log    []shellLine
	styles *Styles

	width  int
	height int
	ready  bool
}

func NewShellModel(ws *Workspace, renderer *Renderer) ShellModel {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "insert 5 3 8 ... (F1 for help)"
	ti.Prompt = "avl> "
	ti.PromptStyle = styles.InputPrompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	treeView := viewport.New(0, 0)
	helpView := viewport.New(0, 0)

	helpText := shellHelpMarkdown
	if r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	); err == nil {
		if rendered, err := r.Render(shellHelpMarkdown); err == nil {
			helpText = rendered
		}
	}
	helpView.SetContent(helpText)

	m := ShellModel{
		ws:       ws,
		renderer: renderer,
		order:    OrderIn,
		input:    ti,
		treeView: treeView,
		helpView: helpView,
		styles:   styles,
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		case "ctrl+y":
			return m, copyToClipboard(m.ws.InOrder())
		case "pgup", "pgdown":
			var cmd tea.Cmd
			if m.showHelp {
				m.helpView, cmd = m.helpView.Update(msg)
			} else {
				m.treeView, cmd = m.treeView.Update(msg)
			}
			return m, cmd
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			m.run(line)
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case statusMsg:
		m.appendLog(shellLine(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m *ShellModel) run(line string) {
	if line == "" {
		return
	}
	out, err := m.execute(line)
	if out != "" {
		m.appendLog(shellLine{text: out})
	}
	if err != nil {
		m.appendLog(shellLine{text: err.Error(), failed: true})
	}
	m.refreshTree()
}

// execute runs one shell command against the workspace and returns what to
// print. A partially applied command returns both output and an error.
func (m *ShellModel) execute(line string) (string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("cannot parse %q: %w", line, err)
	}
	if len(words) == 0 {
		return "", nil
	}

	name, args := strings.ToLower(words[0]), words[1:]
	switch name {
	case "insert", "add", "i":
		if len(args) == 0 {
			return "", errors.New("usage: insert K...")
		}
		return m.applyAll("inserted", args, m.ws.Insert)

	case "delete", "del", "rm", "d":
		if len(args) == 0 {
			return "", errors.New("usage: delete K...")
		}
		return m.applyAll("deleted", args, m.ws.Delete)

	case "contains", "has":
		if len(args) != 1 {
			return "", errors.New("usage: contains K")
		}
		found, err := m.ws.Contains(args[0])
		if err != nil {
			return "", err
		}
		if found {
			return fmt.Sprintf("%s is present", args[0]), nil
		}
		return fmt.Sprintf("%s is absent", args[0]), nil

	case "depth":
		if len(args) != 1 {
			return "", errors.New("usage: depth K")
		}
		depth, ok, err := m.ws.Depth(args[0])
		if err != nil {
			return "", err
		}
		if !ok {
			return fmt.Sprintf("%s not found", args[0]), nil
		}
		return fmt.Sprintf("depth of %s: %d", args[0], depth), nil

	case "height":
		switch len(args) {
		case 0:
			return fmt.Sprintf("tree height: %d", m.ws.Stats().Height), nil
		case 1:
			height, ok, err := m.ws.HeightOf(args[0])
			if err != nil {
				return "", err
			}
			if !ok {
				return fmt.Sprintf("%s not found", args[0]), nil
			}
			return fmt.Sprintf("height of %s: %d", args[0], height), nil
		}
		return "", errors.New("usage: height [K]")

	case "min", "max":
		get := m.ws.Min
		if name == "max" {
			get = m.ws.Max
		}
		key, ok := get()
		if !ok {
			return "tree is empty", nil
		}
		return fmt.Sprintf("%s: %s", name, key), nil

	case "order":
		if len(args) != 1 {
			return "", errors.New("usage: order in|pre|post|level")
		}
		order, err := ParseOrder(args[0])
		if err != nil {
			return "", err
		}
		m.order = order
		return fmt.Sprintf("showing %s-order traversal", order), nil

	case "stats":
		return formatStats(m.ws), nil

	case "check", "validate":
		if err := m.ws.Validate(); err != nil {
			return "", err
		}
		return "all invariants hold", nil

	case "clear":
		m.ws.Clear()
		return "cleared", nil

	case "help":
		m.showHelp = true
		return "", nil
	}

	return "", fmt.Errorf("unknown command %q (F1 for help)", name)
}

func (m *ShellModel) applyAll(verb string, keys []string, apply func(string) (bool, error)) (string, error) {
	var (
		changed int
		errs    []error
	)
	for _, key := range keys {
		ok, err := apply(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			changed++
		}
	}
	return fmt.Sprintf("%s %d of %d", verb, changed, len(keys)), errors.Join(errs...)
}

func (m *ShellModel) appendLog(line shellLine) {
	m.log = append(m.log, line)
	if len(m.log) > shellLogSize {
		m.log = m.log[len(m.log)-shellLogSize:]
	}
}

func (m *ShellModel) refreshTree() {
	m.treeView.SetContent(m.renderer.Render(m.ws))
}

func (m *ShellModel) updateLayout() {
	// title, traversal, stats, log, input and key help plus the pane border
	chrome := 1 + 1 + 1 + shellLogSize + 1 + 1 + 2
	paneHeight := max(m.height-chrome, 3)
	paneWidth := max(m.width-2, 10)

	m.treeView.Width, m.treeView.Height = paneWidth, paneHeight
	m.helpView.Width, m.helpView.Height = paneWidth, paneHeight
	m.input.Width = max(paneWidth-len(m.input.Prompt), 10)
}

// View renders the shell
func (m ShellModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render("avlkit shell")

	var pane string
	if m.showHelp {
		pane = m.styles.BorderFocused.Render(m.helpView.View())
	} else {
		pane = m.styles.BorderBlurred.Render(m.treeView.View())
	}

	clip := lipgloss.NewStyle().MaxWidth(max(m.width, 10))
	traversal := clip.Render(fmt.Sprintf("%s-order: %s", m.order, strings.Join(m.ws.Traverse(m.order), " ")))
	stats := clip.Render(formatStats(m.ws))

	logLines := make([]string, shellLogSize)
	offset := shellLogSize - len(m.log)
	for i, line := range m.log {
		style := m.styles.SuccessMessage
		if line.failed {
			style = m.styles.ErrorMessage
		}
		logLines[offset+i] = clip.Render(style.Render(line.text))
	}

	keys := []string{
		m.styles.HelpKey.Render("enter") + " " + m.styles.HelpDesc.Render("run"),
		m.styles.HelpKey.Render("ctrl+y") + " " + m.styles.HelpDesc.Render("copy in-order"),
		m.styles.HelpKey.Render("f1") + " " + m.styles.HelpDesc.Render("help"),
		m.styles.HelpKey.Render("esc") + " " + m.styles.HelpDesc.Render("quit"),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		pane,
		traversal,
		stats,
		strings.Join(logLines, "\n"),
		m.input.View(),
		strings.Join(keys, "  "),
	)
}

func formatStats(ws *Workspace) string {
	stats := ws.Stats()
	return fmt.Sprintf("size %d · height %d · rotations left %d right %d",
		stats.Len, stats.Height, stats.LeftRotations, stats.RightRotations)
}

// copyToClipboard copies the keys as one space-separated line.
func copyToClipboard(keys []string) tea.Cmd {
	text := strings.Join(keys, " ")
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{text: fmt.Sprintf("copy failed: %v", err), failed: true}
		}
		return statusMsg{text: fmt.Sprintf("copied %d keys to clipboard", len(keys))}
	}
}

// RunShell starts the interactive shell and blocks until it exits.
func RunShell(ws *Workspace, renderer *Renderer) error {
	p := tea.NewProgram(NewShellModel(ws, renderer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
