package viewmodel

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Veraticus/ecoscan/internal/model"
)

// CoachView represents the coach overlay.
type CoachView struct {
	QuickPrompt     string
	Messages        []ChatBubble
	QuickActions    []QuickActionView
	Open            bool
	LauncherVisible bool
	Typing          bool
	SendEnabled     bool
}

// ChatBubble is one rendered message. Lines holds the text already split
// on newlines.
type ChatBubble struct {
	Role  model.Role
	Lines []string
}

// QuickActionView is one quick-action button.
type QuickActionView struct {
	Key   string
	Label string
}

// NewChatBubble turns message text into display lines. Reply text is
// untrusted, so terminal control sequences are removed before it reaches
// the screen.
func NewChatBubble(role model.Role, text string) ChatBubble {
	clean := ansi.Strip(text)
	clean = strings.ReplaceAll(clean, "\r\n", "\n")
	clean = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r >= 0x20 && r != 0x7f {
			return r
		}
		return -1
	}, clean)
	return ChatBubble{Role: role, Lines: strings.Split(clean, "\n")}
}

// Text joins the bubble's lines.
func (b ChatBubble) Text() string {
	return strings.Join(b.Lines, "\n")
}

// HasQuickActions returns true if quick actions are on offer.
func (cv CoachView) HasQuickActions() bool {
	return len(cv.QuickActions) > 0
}
