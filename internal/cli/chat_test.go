package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ecoscan/internal/coach"
)

type recordingSession struct {
	sent    []string
	actions []coach.QuickAction
	opened  int
}

func (s *recordingSession) IsOpen() bool { return s.opened > 0 }

func (s *recordingSession) Open() { s.opened++ }

func (s *recordingSession) Send(_ context.Context, text string) {
	s.sent = append(s.sent, text)
}

func (s *recordingSession) HandleQuickAction(_ context.Context, a coach.QuickAction) error {
	s.actions = append(s.actions, a)
	return nil
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func TestRunChat(t *testing.T) {
	session := &recordingSession{}
	in := strings.NewReader("where do batteries go?\n\n/2\n/tip\n/9\n/nope\nexit\nnever read\n")
	var out bytes.Buffer

	require.NoError(t, RunChat(context.Background(), session, in, &out))

	assert.Equal(t, 1, session.opened)
	assert.Equal(t, []string{"where do batteries go?"}, session.sent)
	assert.Equal(t, []coach.QuickAction{coach.ActionCO2, coach.ActionTip}, session.actions)

	text := stripANSI(out.String())
	assert.Contains(t, text, "quick action must be between 1 and 4")
	assert.Contains(t, text, `unknown quick action "nope"`)
}

func TestRunChatEndsAtEOF(t *testing.T) {
	session := &recordingSession{}

	require.NoError(t, RunChat(context.Background(), session, strings.NewReader("hello"), &bytes.Buffer{}))
	assert.Equal(t, []string{"hello"}, session.sent)
}

func TestRunChatKeepsOpenSession(t *testing.T) {
	session := &recordingSession{opened: 1}

	require.NoError(t, RunChat(context.Background(), session, strings.NewReader("exit\n"), &bytes.Buffer{}))
	assert.Equal(t, 1, session.opened)
}

func TestRunChatHelp(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, RunChat(context.Background(), &recordingSession{}, strings.NewReader("/help\n"), &out))

	text := stripANSI(out.String())
	for _, a := range coach.QuickActions() {
		assert.Contains(t, text, a.Label())
	}
}
