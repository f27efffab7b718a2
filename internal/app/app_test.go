package app

import (
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ecoscan/internal/backend"
	"github.com/Veraticus/ecoscan/internal/coach"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/scan"
	"github.com/Veraticus/ecoscan/internal/testutil"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// nopScanView ignores scan rendering except for the result.
type nopScanView struct {
	result *viewmodel.ResultView
	mu     sync.Mutex
}

func (v *nopScanView) ShowWarning(string)                                {}
func (v *nopScanView) ShowError(string)                                  {}
func (v *nopScanView) ShowPreview(viewmodel.PreviewView)                 {}
func (v *nopScanView) HideResults()                                      {}
func (v *nopScanView) SetLoading(bool)                                   {}
func (v *nopScanView) SetClassifyEnabled(bool)                           {}
func (v *nopScanView) UpdateStatsBar(viewmodel.StatsBarView)             {}
func (v *nopScanView) ShowAchievementNotice(viewmodel.AchievementNotice) {}
func (v *nopScanView) DismissAchievementNotice()                         {}
func (v *nopScanView) ResetUpload()                                      {}
func (v *nopScanView) RenderStatsDetail(viewmodel.StatsDetailView)       {}
func (v *nopScanView) RenderHistory(viewmodel.HistoryView)               {}
func (v *nopScanView) RenderAchievements(viewmodel.AchievementBoard)     {}

func (v *nopScanView) RenderResult(r viewmodel.ResultView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.result = &r
}

type chatLog struct {
	messages []model.CoachMessage
	mu       sync.Mutex
	open     bool
}

func (c *chatLog) SetOpen(open bool)                            { c.open = open }
func (c *chatLog) ShowQuickActions(string, []coach.QuickAction) {}
func (c *chatLog) ShowTypingIndicator()                         {}
func (c *chatLog) RemoveTypingIndicator()                       {}
func (c *chatLog) SetSendEnabled(bool)                          {}
func (c *chatLog) AppendMessage(role model.Role, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, model.CoachMessage{Role: role, Content: text})
}

type fakeServer struct {
	chats []model.ChatRequest
	mu    sync.Mutex
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case backend.PathPredict:
		_, _ = io.WriteString(w, `{"label": "plastic", "confidence": 92, "recyclable": true,
			"recyclable_confidence": 90, "recyclability_reason": "PET", "eco_score": 85,
			"all_predictions": {"plastic": 92, "metal": 6, "glass": 2},
			"new_achievements": [], "stats": {"total": 1, "this_week": 1, "achievements_count": 0, "by_category": {"plastic": 1}}}`)
	case backend.PathChat:
		var req model.ChatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.chats = append(f.chats, req)
		f.mu.Unlock()
		_, _ = io.WriteString(w, `{"response": "Rinse it and put it in the blue bin."}`)
	case backend.PathStats:
		_, _ = io.WriteString(w, `{"total": 1, "this_week": 1, "achievements_count": 0, "by_category": {"plastic": 1}}`)
	case backend.PathHistory, backend.PathAchievements:
		_, _ = io.WriteString(w, `[]`)
	default:
		http.NotFound(w, r)
	}
}

func writePNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bottle.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 4))))
	require.NoError(t, f.Close())
	return path
}

func TestScanHandsOffToCoach(t *testing.T) {
	server := &fakeServer{}
	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	client, err := backend.New(ts.URL, backend.WithTimeout(5*time.Second))
	require.NoError(t, err)

	scheduler := testutil.NewManualScheduler()
	scanView := &nopScanView{}
	chat := &chatLog{}
	a := New(client, scanView, chat, Config{
		Scheduler: scheduler,
		Pick:      func(int) int { return 0 },
	})
	ctx := context.Background()

	require.NoError(t, a.Start(ctx))
	require.NoError(t, a.Scan.SelectPath(writePNG(t)))
	require.NoError(t, a.Scan.Classify(ctx))
	require.NotNil(t, scanView.result)
	assert.Equal(t, scan.StateResulted, a.Scan.State())

	_, ok := a.Coach.ScanContext()
	require.False(t, ok, "coach receives the scan only after the handoff delay")

	pending := scheduler.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, scan.DefaultHandoffDelay, pending[0].Delay)
	scheduler.FireAll()

	assert.True(t, a.Coach.IsOpen())
	scanCtx, ok := a.Coach.ScanContext()
	require.True(t, ok)
	assert.Equal(t, "plastic", scanCtx.Label)

	a.Coach.Send(ctx, "Where does it go?")

	require.Len(t, server.chats, 1)
	sent := server.chats[0]
	assert.Equal(t, "Where does it go?", sent.Message)
	require.NotNil(t, sent.Context)
	assert.Equal(t, "plastic", sent.Context.Label)
	assert.Len(t, sent.History, 2)
	assert.Equal(t, "Rinse it and put it in the blue bin.", chat.messages[len(chat.messages)-1].Content)

	a.Reset()
	assert.Equal(t, scan.StateIdle, a.Scan.State())
	_, ok = a.Coach.ScanContext()
	assert.True(t, ok, "reset does not clear the coach context")
}
