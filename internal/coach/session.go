package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/ecoscan/internal/common"
	"github.com/Veraticus/ecoscan/internal/model"
)

// Defaults for the session.
const (
	DefaultHistoryWindow = 5
	DefaultLatency       = time.Second
)

// View receives render calls from the session.
type View interface {
	// SetOpen shows or hides the overlay; the launcher is visible only
	// while the overlay is closed.
	SetOpen(open bool)
	AppendMessage(role model.Role, text string)
	ShowQuickActions(prompt string, actions []QuickAction)
	ShowTypingIndicator()
	RemoveTypingIndicator()
	SetSendEnabled(enabled bool)
}

// Backend is the subset of the backend client the coach needs.
type Backend interface {
	Chat(ctx context.Context, req model.ChatRequest) (string, error)
	Stats(ctx context.Context) (model.Stats, error)
}

// Config holds session settings.
type Config struct {
	Scheduler     common.Scheduler
	Pick          func(n int) int
	Latency       time.Duration
	HistoryWindow int
}

// Session is the single coach instance. It exclusively owns the transcript
// and the current scan context.
type Session struct {
	backend    Backend
	view       View
	scanCtx    *model.ClassificationResult
	cfg        Config
	transcript []model.CoachMessage
	mu         sync.Mutex
	open       bool
	welcomed   bool
}

// NewSession creates a closed session with an empty transcript.
func NewSession(backend Backend, view View, cfg Config) *Session {
	if cfg.Scheduler == nil {
		cfg.Scheduler = common.RealScheduler{}
	}
	if cfg.Latency <= 0 {
		cfg.Latency = DefaultLatency
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	return &Session{
		backend: backend,
		view:    view,
		cfg:     cfg,
	}
}

// Window returns a copy of the last n messages. It never returns nil.
func Window(messages []model.CoachMessage, n int) []model.CoachMessage {
	if n < 0 {
		n = 0
	}
	start := len(messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]model.CoachMessage, len(messages)-start)
	copy(out, messages[start:])
	return out
}

// IsOpen reports whether the overlay is showing.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Transcript returns a copy of the full transcript.
func (s *Session) Transcript() []model.CoachMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CoachMessage(nil), s.transcript...)
}

// ScanContext returns the latest scan, if any.
func (s *Session) ScanContext() (model.ClassificationResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanCtx == nil {
		return model.ClassificationResult{}, false
	}
	return *s.scanCtx, true
}

// Toggle opens a closed overlay and closes an open one.
func (s *Session) Toggle() {
	if s.IsOpen() {
		s.Close()
		return
	}
	s.Open()
}

// Open shows the overlay. The very first open emits the welcome message,
// which is never added to the transcript.
func (s *Session) Open() {
	s.mu.Lock()
	s.open = true
	welcome := !s.welcomed
	s.welcomed = true
	s.mu.Unlock()

	s.view.SetOpen(true)
	if welcome {
		s.view.AppendMessage(model.RoleBot, WelcomeMessage)
	}
}

// Close hides the overlay.
func (s *Session) Close() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()

	s.view.SetOpen(false)
}

// TriggerAfterScan replaces the scan context, opens the overlay, greets the
// user about the scan and offers the quick actions.
func (s *Session) TriggerAfterScan(result model.ClassificationResult) {
	s.mu.Lock()
	scan := result
	s.scanCtx = &scan
	s.mu.Unlock()

	s.Open()
	s.addBotMessage(Greeting(result))
	s.view.ShowQuickActions(QuickActionsPrompt, QuickActions())
}

// HandleQuickAction echoes the action as a user message and resolves it.
func (s *Session) HandleQuickAction(ctx context.Context, action QuickAction) error {
	switch action {
	case ActionDisposal:
		s.addUserMessage(action.Prompt())
		return s.disposalInstructions(ctx)
	case ActionCO2:
		s.addUserMessage(action.Prompt())
		return s.respondLocally(ctx, CO2ImpactMessage)
	case ActionTip:
		s.addUserMessage(action.Prompt())
		return s.respondLocally(ctx, RandomTip(s.cfg.Pick))
	case ActionImpact:
		s.addUserMessage(action.Prompt())
		s.impactStats(ctx)
		return nil
	default:
		return fmt.Errorf("unknown quick action %q", action)
	}
}

// Send forwards free text to the chat backend with the scan context and
// the trailing transcript window. Failures become a scripted apology.
func (s *Session) Send(ctx context.Context, text string) {
	message := strings.TrimSpace(text)
	if message == "" {
		return
	}

	s.addUserMessage(message)
	s.view.SetSendEnabled(false)
	defer s.view.SetSendEnabled(true)
	s.view.ShowTypingIndicator()

	s.mu.Lock()
	req := model.ChatRequest{
		Message: message,
		Context: s.scanCtx,
		History: Window(s.transcript, s.cfg.HistoryWindow),
	}
	s.mu.Unlock()

	reply, err := s.backend.Chat(ctx, req)
	s.view.RemoveTypingIndicator()
	if err != nil {
		common.LogError(err, "Chat error", common.Fields{"history": len(req.History)})
		s.addBotMessage(ConnectionErrorText)
		return
	}
	s.addBotMessage(reply)
}

func (s *Session) disposalInstructions(ctx context.Context) error {
	scan, ok := s.ScanContext()
	if !ok {
		s.addBotMessage(ScanFirstMessage)
		return nil
	}
	return s.respondLocally(ctx, DisposalMessage(scan))
}

// respondLocally paces a canned reply behind the typing indicator. No real
// work happens during the pause.
func (s *Session) respondLocally(ctx context.Context, reply string) error {
	s.view.ShowTypingIndicator()
	err := common.Pause(ctx, s.cfg.Scheduler, s.cfg.Latency)
	s.view.RemoveTypingIndicator()
	if err != nil {
		return err
	}
	s.addBotMessage(reply)
	return nil
}

func (s *Session) impactStats(ctx context.Context) {
	s.view.ShowTypingIndicator()
	stats, err := s.backend.Stats(ctx)
	s.view.RemoveTypingIndicator()
	if err != nil {
		common.LogError(err, "Impact stats error", nil)
		s.addBotMessage(StatsErrorText)
		return
	}
	s.addBotMessage(ImpactMessage(stats))
}

func (s *Session) addUserMessage(text string) {
	s.view.AppendMessage(model.RoleUser, text)
	s.mu.Lock()
	s.transcript = append(s.transcript, model.CoachMessage{Role: model.RoleUser, Content: text})
	s.mu.Unlock()
}

func (s *Session) addBotMessage(text string) {
	s.view.AppendMessage(model.RoleBot, text)
	s.mu.Lock()
	s.transcript = append(s.transcript, model.CoachMessage{Role: model.RoleBot, Content: text})
	n := len(s.transcript)
	s.mu.Unlock()
	slog.Debug("Coach replied", "transcript_len", n)
}
