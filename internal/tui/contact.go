// Package tui renders the contact form in a terminal.
package tui

import (
	"context"
	"strings"

	"drizzle/internal/contact"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa"))
	requiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a")).MarginTop(1)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#e4e4e7")).Background(lipgloss.Color("#3f3f46"))
	activeButton  = buttonStyle.Background(lipgloss.Color("#2563eb"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52525b")).MarginTop(1)
)

type focusIndex int

const (
	focusEmail focusIndex = iota
	focusMessage
	focusButton
	focusCount
)

// sentMsg carries a finished delivery back onto the update loop.
type sentMsg struct {
	reply contact.Reply
	err   error
}

// Model is the bubbletea model wrapping a contact.Form.
type Model struct {
	form   *contact.Form
	sender contact.Sender
	ctx    context.Context

	email   textinput.Model
	message textarea.Model
	spinner spinner.Model
	focus   focusIndex
}

// New builds a terminal form that delivers through sender. Deliveries use ctx
// as their parent context.
func New(ctx context.Context, form *contact.Form, sender contact.Sender) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 48
	email.SetValue(form.Value(contact.FieldEmail))

	message := textarea.New()
	message.Placeholder = "Say hello..."
	message.ShowLineNumbers = false
	message.SetWidth(50)
	message.SetHeight(6)
	message.SetValue(form.Value(contact.FieldMessage))

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		form:    form,
		sender:  sender,
		ctx:     ctx,
		email:   email,
		message: message,
		spinner: sp,
	}
	m.applyFocus()
	return m
}

// Form exposes the underlying form state.
func (m Model) Form() *contact.Form { return m.form }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 72 {
			w = 72
		}
		if w > 10 {
			m.email.Width = w - 2
			m.message.SetWidth(w)
		}
		return m, nil
	case sentMsg:
		m.form.Resolve(msg.reply, msg.err)
		if m.form.Editable() {
			m.focus = focusButton
			return m, m.applyFocus()
		}
		return m, nil
	case spinner.TickMsg:
		if m.form.State() != contact.StateSending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+s":
		return m.submit()
	}
	if !m.form.Editable() {
		return m, nil
	}
	switch msg.String() {
	case "tab":
		m.focus = (m.focus + 1) % focusCount
		return m, m.applyFocus()
	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m, m.applyFocus()
	case "enter":
		switch m.focus {
		case focusButton:
			return m.submit()
		case focusEmail:
			m.focus = focusMessage
			return m, m.applyFocus()
		}
	}
	return m.forward(msg)
}

// forward hands msg to the focused input and mirrors its value into the form.
// When the form refuses the edit the input is reset to the stored value.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
		if err := m.form.UpdateField(contact.FieldEmail, m.email.Value()); err != nil {
			m.email.SetValue(m.form.Value(contact.FieldEmail))
			return m, nil
		}
	case focusMessage:
		m.message, cmd = m.message.Update(msg)
		if err := m.form.UpdateField(contact.FieldMessage, m.message.Value()); err != nil {
			m.message.SetValue(m.form.Value(contact.FieldMessage))
			return m, nil
		}
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	sub, err := m.form.Begin()
	if err != nil {
		return m, nil
	}
	m.email.Blur()
	m.message.Blur()
	return m, tea.Batch(m.spinner.Tick, deliver(m.ctx, m.sender, sub))
}

func deliver(ctx context.Context, sender contact.Sender, sub contact.Submission) tea.Cmd {
	return func() tea.Msg {
		reply, err := sender.Send(ctx, sub)
		return sentMsg{reply: reply, err: err}
	}
}

func (m *Model) applyFocus() tea.Cmd {
	m.email.Blur()
	m.message.Blur()
	switch m.focus {
	case focusEmail:
		return m.email.Focus()
	case focusMessage:
		return m.message.Focus()
	}
	return nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Your Email ") + requiredStyle.Render("*") + "\n")
	b.WriteString(m.email.View() + "\n\n")
	b.WriteString(labelStyle.Render("Message ") + requiredStyle.Render("*") + "\n")
	b.WriteString(m.message.View() + "\n")

	if status := m.form.Status(); status != "" {
		b.WriteString(statusStyle.Render(status) + "\n")
	}

	switch m.form.State() {
	case contact.StateUnsent:
		style := buttonStyle
		if m.focus == focusButton {
			style = activeButton
		}
		b.WriteString("\n" + style.Render("Send Message") + "\n")
		b.WriteString(mutedStyle.Render("tab: next field • ctrl+s: send • esc: quit"))
	case contact.StateSending:
		b.WriteString("\n" + buttonStyle.Render(m.spinner.View()+" Sending...") + "\n")
	case contact.StateSent:
		b.WriteString(mutedStyle.Render("esc: quit"))
	}
	return b.String() + "\n"
}
