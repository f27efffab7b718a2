package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/testutil"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Chat(ctx context.Context, req model.ChatRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) Stats(ctx context.Context) (model.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Stats), args.Error(1)
}

type recordingView struct {
	events   []string
	messages []model.CoachMessage
	actions  []QuickAction
	mu       sync.Mutex
	open     bool
	typing   bool
	send     bool
}

func (v *recordingView) record(event string) {
	v.events = append(v.events, event)
}

func (v *recordingView) SetOpen(open bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open = open
	v.record(fmt.Sprintf("open:%t", open))
}

func (v *recordingView) AppendMessage(role model.Role, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages = append(v.messages, model.CoachMessage{Role: role, Content: text})
	v.record("message:" + string(role))
}

func (v *recordingView) ShowQuickActions(prompt string, actions []QuickAction) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.actions = actions
	v.record("quick:" + prompt)
}

func (v *recordingView) ShowTypingIndicator() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.typing = true
	v.record("typing")
}

func (v *recordingView) RemoveTypingIndicator() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.typing = false
	v.record("typing:done")
}

func (v *recordingView) SetSendEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.send = enabled
	v.record(fmt.Sprintf("send:%t", enabled))
}

func (v *recordingView) lastMessage() model.CoachMessage {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.messages) == 0 {
		return model.CoachMessage{}
	}
	return v.messages[len(v.messages)-1]
}

func newTestSession(backend Backend) (*Session, *recordingView) {
	view := &recordingView{}
	s := NewSession(backend, view, Config{
		Scheduler: testutil.NewImmediateScheduler(),
		Pick:      func(int) int { return 0 },
	})
	return s, view
}

func messages(n int) []model.CoachMessage {
	out := make([]model.CoachMessage, n)
	for i := range out {
		out[i] = model.CoachMessage{Role: model.RoleUser, Content: fmt.Sprintf("m%d", i)}
	}
	return out
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		wantLen   int
		wantFirst string
	}{
		{name: "empty transcript", total: 0, wantLen: 0},
		{name: "exactly five", total: 5, wantLen: 5, wantFirst: "m0"},
		{name: "fifty entries", total: 50, wantLen: 5, wantFirst: "m45"},
		{name: "fewer than window", total: 3, wantLen: 3, wantFirst: "m0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(messages(tt.total), DefaultHistoryWindow)
			require.NotNil(t, got)
			require.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0].Content)
			}
		})
	}
}

func TestWindowReturnsCopy(t *testing.T) {
	src := messages(6)
	got := Window(src, 5)
	got[0].Content = "changed"
	assert.Equal(t, "m1", src[1].Content)
}

func TestOpenWelcomesOnce(t *testing.T) {
	s, view := newTestSession(&mockBackend{})

	s.Open()
	s.Close()
	s.Toggle()

	assert.True(t, s.IsOpen())
	require.Len(t, view.messages, 1)
	assert.Equal(t, WelcomeMessage, view.messages[0].Content)
	assert.Empty(t, s.Transcript(), "welcome message is not part of the transcript")

	s.Toggle()
	assert.False(t, s.IsOpen())
	assert.False(t, view.open)
}

func TestTriggerAfterScan(t *testing.T) {
	s, view := newTestSession(&mockBackend{})
	result := testutil.NewResult("plastic", 92).Recyclable(true).Build()

	s.TriggerAfterScan(result)

	assert.True(t, view.open)
	transcript := s.Transcript()
	require.Len(t, transcript, 1)
	greeting := transcript[0].Content
	assert.Equal(t, model.RoleBot, transcript[0].Role)
	assert.Contains(t, greeting, "PLASTIC")
	assert.Contains(t, greeting, "92%")
	assert.Contains(t, greeting, "recyclable")
	assert.Equal(t, QuickActions(), view.actions)
	assert.Len(t, view.actions, 4)

	scan, ok := s.ScanContext()
	require.True(t, ok)
	assert.Equal(t, "plastic", scan.Label)
}

func TestTriggerAfterScanReplacesContext(t *testing.T) {
	s, _ := newTestSession(&mockBackend{})

	s.TriggerAfterScan(testutil.NewResult("plastic", 90).Build())
	s.TriggerAfterScan(testutil.NewResult("glass", 80).Build())

	scan, ok := s.ScanContext()
	require.True(t, ok)
	assert.Equal(t, "glass", scan.Label)
	assert.Len(t, s.Transcript(), 2)
}

func TestGreetingRecyclability(t *testing.T) {
	unknown := Greeting(testutil.NewResult("metal", 50).Build())
	assert.NotContains(t, unknown, "recyclable")

	negative := Greeting(testutil.NewResult("trash", 70).Recyclable(false).Build())
	assert.Contains(t, negative, "isn't recyclable")
	assert.Contains(t, negative, "70%")
}

func TestDisposalWithoutContext(t *testing.T) {
	backend := &mockBackend{}
	s, view := newTestSession(backend)

	require.NoError(t, s.HandleQuickAction(context.Background(), ActionDisposal))

	transcript := s.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, ActionDisposal.Prompt(), transcript[0].Content)
	assert.Equal(t, ScanFirstMessage, transcript[1].Content)
	assert.NotContains(t, view.events, "typing")
	backend.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "Stats", mock.Anything)
}

func TestLocalQuickActions(t *testing.T) {
	tests := []struct {
		name   string
		action QuickAction
		want   string
	}{
		{name: "disposal", action: ActionDisposal, want: model.CategoryPlastic.DisposalGuide()},
		{name: "co2", action: ActionCO2, want: CO2ImpactMessage},
		{name: "tip", action: ActionTip, want: Tips()[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mockBackend{}
			s, view := newTestSession(backend)
			s.TriggerAfterScan(testutil.NewResult("plastic", 90).Build())

			require.NoError(t, s.HandleQuickAction(context.Background(), tt.action))

			reply := view.lastMessage()
			assert.Equal(t, model.RoleBot, reply.Role)
			assert.Contains(t, reply.Content, tt.want)
			assert.False(t, view.typing)
			assert.Contains(t, view.events, "typing")
			backend.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
		})
	}
}

func TestLocalQuickActionWaitsForLatency(t *testing.T) {
	view := &recordingView{}
	scheduler := testutil.NewManualScheduler()
	s := NewSession(&mockBackend{}, view, Config{Scheduler: scheduler, Pick: func(int) int { return 0 }})

	done := make(chan error, 1)
	go func() { done <- s.HandleQuickAction(context.Background(), ActionCO2) }()

	require.Eventually(t, func() bool { return len(scheduler.Pending()) == 1 }, timeout, tick)
	assert.Equal(t, DefaultLatency, scheduler.Pending()[0].Delay)
	scheduler.FireAll()
	require.NoError(t, <-done)
	assert.Equal(t, CO2ImpactMessage, view.lastMessage().Content)
}

func TestLocalQuickActionCanceled(t *testing.T) {
	view := &recordingView{}
	s := NewSession(&mockBackend{}, view, Config{Scheduler: testutil.NewManualScheduler()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.HandleQuickAction(ctx, ActionCO2)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, view.typing)
	assert.Len(t, s.Transcript(), 1)
}

func TestImpactQuickAction(t *testing.T) {
	t.Run("stats available", func(t *testing.T) {
		backend := &mockBackend{}
		backend.On("Stats", mock.Anything).Return(model.Stats{Total: 40}, nil).Once()
		s, view := newTestSession(backend)

		require.NoError(t, s.HandleQuickAction(context.Background(), ActionImpact))

		reply := view.lastMessage().Content
		assert.Contains(t, reply, "Total scans: 40")
		assert.Contains(t, reply, "Trees saved: 2")
		assert.Contains(t, reply, "Water saved: 100L")
		backend.AssertExpectations(t)
	})

	t.Run("stats failure", func(t *testing.T) {
		backend := &mockBackend{}
		backend.On("Stats", mock.Anything).Return(model.Stats{}, errors.New("boom")).Once()
		s, view := newTestSession(backend)

		require.NoError(t, s.HandleQuickAction(context.Background(), ActionImpact))

		assert.Equal(t, StatsErrorText, view.lastMessage().Content)
		assert.False(t, view.typing)
	})
}

func TestUnknownQuickAction(t *testing.T) {
	s, _ := newTestSession(&mockBackend{})
	err := s.HandleQuickAction(context.Background(), QuickAction("dance"))
	require.Error(t, err)
	assert.Empty(t, s.Transcript())
}

func TestSend(t *testing.T) {
	backend := &mockBackend{}
	s, view := newTestSession(backend)
	result := testutil.NewResult("glass", 81).Build()
	s.TriggerAfterScan(result)

	backend.On("Chat", mock.Anything, mock.MatchedBy(func(req model.ChatRequest) bool {
		return req.Message == "Can I recycle jars?" &&
			req.Context != nil && req.Context.Label == "glass" &&
			len(req.History) == 2 &&
			req.History[1].Content == "Can I recycle jars?"
	})).Return("Yes, rinse them first.", nil).Once()

	s.Send(context.Background(), "  Can I recycle jars?  ")

	backend.AssertExpectations(t)
	transcript := s.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, model.CoachMessage{Role: model.RoleBot, Content: "Yes, rinse them first."}, transcript[2])
	assert.True(t, view.send)
	assert.False(t, view.typing)
	assert.Contains(t, view.events, "send:false")
}

func TestSendForwardsOnlyTrailingWindow(t *testing.T) {
	backend := &mockBackend{}
	var got model.ChatRequest
	backend.On("Chat", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(model.ChatRequest) }).
		Return("ok", nil)
	s, _ := newTestSession(backend)

	for i := 0; i < 10; i++ {
		s.Send(context.Background(), fmt.Sprintf("question %d", i))
	}

	require.Len(t, got.History, DefaultHistoryWindow)
	assert.Equal(t, "question 9", got.History[4].Content)
	assert.Nil(t, got.Context)
	assert.Len(t, s.Transcript(), 20)
}

func TestSendFailure(t *testing.T) {
	backend := &mockBackend{}
	backend.On("Chat", mock.Anything, mock.Anything).Return("", errors.New("connection refused")).Once()
	s, view := newTestSession(backend)

	s.Send(context.Background(), "hello")

	assert.Equal(t, ConnectionErrorText, view.lastMessage().Content)
	assert.True(t, view.send)
	assert.False(t, view.typing)
}

func TestSendIgnoresBlankInput(t *testing.T) {
	backend := &mockBackend{}
	s, view := newTestSession(backend)

	s.Send(context.Background(), "   \n\t")

	assert.Empty(t, s.Transcript())
	assert.Empty(t, view.events)
	backend.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
}

func TestFormatHTML(t *testing.T) {
	got := FormatHTML("<b>hi</b>\nthere & more")
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;<br>there &amp; more", got)
	assert.False(t, strings.Contains(got, "\n"))
}

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)
