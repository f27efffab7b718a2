package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Veraticus/ecoscan/internal/coach"
)

// ChatSession is the part of the coach session the chat loop drives.
type ChatSession interface {
	IsOpen() bool
	Open()
	Send(ctx context.Context, text string)
	HandleQuickAction(ctx context.Context, action coach.QuickAction) error
}

// RunChat reads lines from in and forwards them to session until EOF,
// "exit", or ctx is canceled. A line "/N" or "/name" runs a quick action.
func RunChat(ctx context.Context, session ChatSession, in io.Reader, w io.Writer) error {
	reader := NewNonBlockingReader(in)
	if !session.IsOpen() {
		session.Open()
	}

	for {
		line, err := reader.Prompt(ctx, w, "you")
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, ErrInputCancelled):
			_, _ = fmt.Fprintln(w)
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit":
			return nil
		case line == "/help":
			printChatHelp(w)
		case strings.HasPrefix(line, "/"):
			action, parseErr := parseQuickAction(strings.TrimPrefix(line, "/"))
			if parseErr != nil {
				_, _ = fmt.Fprintln(w, FormatWarning(parseErr.Error()))
				continue
			}
			if err := session.HandleQuickAction(ctx, action); err != nil && ctx.Err() == nil {
				_, _ = fmt.Fprintln(w, FormatError(err.Error()))
			}
		default:
			session.Send(ctx, line)
		}
	}
}

// parseQuickAction accepts either the 1-based position or the action key.
func parseQuickAction(s string) (coach.QuickAction, error) {
	actions := coach.QuickActions()
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(actions) {
			return "", fmt.Errorf("quick action must be between 1 and %d", len(actions))
		}
		return actions[n-1], nil
	}
	return coach.ParseQuickAction(s)
}

func printChatHelp(w io.Writer) {
	var b strings.Builder
	b.WriteString(SubtleStyle.Render("Type a question, or use a quick action:") + "\n")
	for i, a := range coach.QuickActions() {
		fmt.Fprintf(&b, "  /%d  /%-9s %s\n", i+1, string(a), a.Label())
	}
	b.WriteString("  exit       leave the chat\n")
	_, _ = fmt.Fprint(w, b.String())
}
