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

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the styling of the shell
type Styles struct {
	Border       lipgloss.Style
	Title        lipgloss.Style
	Prompt       lipgloss.Style
	Echo         lipgloss.Style
	ErrorMessage lipgloss.Style
	StatusBar    lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Echo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// ShellModel is the Bubble Tea state of the interactive shell
type ShellModel struct {
	session *Session

	input      textinput.Model
	transcript viewport.Model
	lines      []string

	history    []string
	historyPos int

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	ready  bool
	width  int
	height int
}

func NewShellModel(session *Session) ShellModel {
	ti := textinput.New()
	ti.Placeholder = "add apple banana, then ls (help for more)"
	ti.Prompt = "ordset> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return ShellModel{
		session:         session,
		input:           ti,
		transcript:      viewport.New(0, 0),
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
}

func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if m.run(line) {
				return m, tea.Quit
			}
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// run executes one command line and appends the result to the transcript.
// It reports whether the shell should exit.
func (m *ShellModel) run(line string) bool {
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	m.lines = append(m.lines, m.styles.Echo.Render(m.input.Prompt+line))

	out, err := m.session.Exec(line)
	switch {
	case errors.Is(err, ErrQuit):
		return true
	case err != nil:
		if out.Text != "" {
			m.lines = append(m.lines, out.Text)
		}
		m.lines = append(m.lines, m.styles.ErrorMessage.Render("error: "+err.Error()))
	case out.Markdown && m.glamourRenderer != nil:
		rendered, rerr := m.glamourRenderer.Render(out.Text)
		if rerr != nil {
			rendered = out.Text
		}
		m.lines = append(m.lines, strings.TrimRight(rendered, "\n"))
	case out.Text != "":
		m.lines = append(m.lines, out.Text)
	}

	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
	return false
}

// recall steps through previously entered commands.
func (m *ShellModel) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	m.historyPos = max(0, min(len(m.history), m.historyPos+step))
	if m.historyPos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.historyPos])
	m.input.CursorEnd()
}

func (m *ShellModel) updateLayout() {
	m.input.Width = m.width - len(m.input.Prompt) - 6
	m.transcript.Width = m.width - 4
	m.transcript.Height = m.height - 8
}

func (m ShellModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	title := m.styles.Title.Render(fmt.Sprintf("ordset shell %s", version))

	body := m.styles.Border.
		Width(m.width - 2).
		Height(m.height - 6).
		Render(m.transcript.View())

	input := m.styles.Border.
		Width(m.width - 2).
		Render(m.input.View())

	status := m.styles.StatusBar.Render(fmt.Sprintf(
		"%d values · height %d · enter run · ↑/↓ history · pgup/pgdown scroll · esc quit",
		m.session.set.Len(), m.session.set.Height()))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, input, status)
}

// runShell starts the interactive shell on the terminal
func runShell(session *Session) error {
	program := tea.NewProgram(
		NewShellModel(session),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
