package tui

import (
	"context"
	"errors"
	"testing"

	"drizzle/internal/contact"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	reply contact.Reply
	err   error
	calls int
}

func (s *stubSender) Send(context.Context, contact.Submission) (contact.Reply, error) {
	s.calls++
	return s.reply, s.err
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and every command batched under it, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findSent(t *testing.T, msgs []tea.Msg) sentMsg {
	t.Helper()
	for _, msg := range msgs {
		if sent, ok := msg.(sentMsg); ok {
			return sent
		}
	}
	t.Fatal("no delivery result among commands")
	return sentMsg{}
}

func fill(t *testing.T, m Model, email, message string) Model {
	t.Helper()
	m, _ = press(t, m, typeText(email), tea.KeyMsg{Type: tea.KeyTab}, typeText(message))
	return m
}

func TestTypingUpdatesForm(t *testing.T) {
	form := &contact.Form{}
	m := fill(t, New(context.Background(), form, &stubSender{}), "a@b.co", "hello")

	assert.Equal(t, "a@b.co", form.Value(contact.FieldEmail))
	assert.Equal(t, "hello", form.Value(contact.FieldMessage))
	assert.Contains(t, m.View(), "Send Message")
}

func TestInvalidSubmitShowsStatus(t *testing.T) {
	sender := &stubSender{}
	m := fill(t, New(context.Background(), &contact.Form{}, sender), "bob", "hi")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Equal(t, contact.StateUnsent, m.Form().State())
	assert.Contains(t, m.View(), contact.MessageInvalid)
	assert.Zero(t, sender.calls)
}

func TestSuccessfulSubmitLocksForm(t *testing.T) {
	sender := &stubSender{reply: contact.Reply{OK: true}}
	m := fill(t, New(context.Background(), &contact.Form{}, sender), "a@b.co", "hello")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, contact.StateSending, m.Form().State())
	assert.Contains(t, m.View(), "Sending...")

	m, _ = press(t, m, typeText("zzz"))
	assert.Equal(t, "hello", m.Form().Value(contact.FieldMessage), "input must be ignored while sending")

	_, again := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, again, "no second delivery while one is in flight")

	m, _ = press(t, m, findSent(t, drain(cmd)))
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, contact.StateSent, m.Form().State())
	view := m.View()
	assert.Contains(t, view, contact.MessageThanks)
	assert.NotContains(t, view, "Send Message")
}

func TestLockedFormRevertsInput(t *testing.T) {
	form := &contact.Form{}
	m := fill(t, New(context.Background(), form, &stubSender{}), "a@b.co", "hello")
	_, err := form.Begin()
	require.NoError(t, err)

	next, cmd := m.forward(typeText("zzz"))
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, "hello", form.Value(contact.FieldMessage))
	assert.Equal(t, "hello", m.message.Value(), "input must show the stored value")
}

func TestFailedSubmitReenablesInput(t *testing.T) {
	sender := &stubSender{err: &contact.ResponseError{StatusCode: 400, Message: "Form not found"}}
	m := fill(t, New(context.Background(), &contact.Form{}, sender), "a@b.co", "hello")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = press(t, m, findSent(t, drain(cmd)))
	assert.Equal(t, contact.StateUnsent, m.Form().State())
	assert.Contains(t, m.View(), "Form not found")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, typeText("!"))
	assert.Equal(t, "hello!", m.Form().Value(contact.FieldMessage))
}

func TestSilentNetworkFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("connection reset")}
	m := fill(t, New(context.Background(), &contact.Form{}, sender), "a@b.co", "hello")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = press(t, m, findSent(t, drain(cmd)))
	assert.Equal(t, contact.StateUnsent, m.Form().State())
	assert.Empty(t, m.Form().Status())
}

func TestEscapeQuits(t *testing.T) {
	_, cmd := press(t, New(context.Background(), &contact.Form{}, &stubSender{}), tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
