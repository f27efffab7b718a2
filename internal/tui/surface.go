package tui

import (
	"strconv"
	"sync"

	"github.com/Veraticus/ecoscan/internal/coach"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/scan"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// Surface is the render target of the scan controller and the coach
// session. Every call mutates a shared AppView under a lock and then pokes
// the running program so it redraws.
type Surface struct {
	notify func()
	view   viewmodel.AppView
	mu     sync.Mutex
}

var (
	_ scan.View  = (*Surface)(nil)
	_ coach.View = (*Surface)(nil)
)

// NewSurface creates a surface showing the upload affordance and the
// closed coach launcher.
func NewSurface() *Surface {
	return &Surface{
		view: viewmodel.AppView{
			ActiveTab: viewmodel.TabScan,
			Scan: viewmodel.ScanView{
				UploadVisible:   true,
				ClassifyEnabled: true,
			},
			Coach: viewmodel.CoachView{
				LauncherVisible: true,
				SendEnabled:     true,
			},
		},
	}
}

// SetNotify installs the redraw hook.
func (s *Surface) SetNotify(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Snapshot returns a copy of the current view that is safe to read
// without the lock.
func (s *Surface) Snapshot() viewmodel.AppView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view
	v.Coach.Messages = append([]viewmodel.ChatBubble(nil), s.view.Coach.Messages...)
	v.Coach.QuickActions = append([]viewmodel.QuickActionView(nil), s.view.Coach.QuickActions...)
	return v
}

func (s *Surface) update(fn func(v *viewmodel.AppView)) {
	s.mu.Lock()
	fn(&s.view)
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// SetActiveTab switches the visible tab.
func (s *Surface) SetActiveTab(tab viewmodel.Tab) {
	s.update(func(v *viewmodel.AppView) { v.ActiveTab = tab })
}

// SetStatus sets the footer status line.
func (s *Surface) SetStatus(msg string) {
	s.update(func(v *viewmodel.AppView) { v.StatusMessage = msg })
}

// ShowWarning implements scan.View.
func (s *Surface) ShowWarning(msg string) {
	s.update(func(v *viewmodel.AppView) {
		v.Scan.Warning = msg
		v.Scan.Error = ""
	})
}

// ShowError implements scan.View.
func (s *Surface) ShowError(msg string) {
	s.update(func(v *viewmodel.AppView) {
		v.Scan.Error = msg
		v.Scan.Warning = ""
	})
}

// ShowPreview implements scan.View.
func (s *Surface) ShowPreview(p viewmodel.PreviewView) {
	s.update(func(v *viewmodel.AppView) {
		v.Scan.Preview = &p
		v.Scan.UploadVisible = false
		v.Scan.ScrollTop = false
		v.Scan.Warning = ""
		v.Scan.Error = ""
	})
}

// HideResults implements scan.View.
func (s *Surface) HideResults() {
	s.update(func(v *viewmodel.AppView) { v.Scan.Result = nil })
}

// SetLoading implements scan.View.
func (s *Surface) SetLoading(loading bool) {
	s.update(func(v *viewmodel.AppView) {
		v.Scan.Loading = loading
		if loading {
			v.Scan.Error = ""
		}
	})
}

// SetClassifyEnabled implements scan.View.
func (s *Surface) SetClassifyEnabled(enabled bool) {
	s.update(func(v *viewmodel.AppView) { v.Scan.ClassifyEnabled = enabled })
}

// RenderResult implements scan.View.
func (s *Surface) RenderResult(r viewmodel.ResultView) {
	s.update(func(v *viewmodel.AppView) {
		v.Scan.Result = &r
		v.Scan.Error = ""
	})
}

// UpdateStatsBar implements scan.View.
func (s *Surface) UpdateStatsBar(bar viewmodel.StatsBarView) {
	s.update(func(v *viewmodel.AppView) { v.StatsBar = bar })
}

// ShowAchievementNotice implements scan.View.
func (s *Surface) ShowAchievementNotice(n viewmodel.AchievementNotice) {
	s.update(func(v *viewmodel.AppView) { v.Scan.Notice = &n })
}

// DismissAchievementNotice implements scan.View.
func (s *Surface) DismissAchievementNotice() {
	s.update(func(v *viewmodel.AppView) { v.Scan.Notice = nil })
}

// ResetUpload implements scan.View.
func (s *Surface) ResetUpload() {
	s.update(func(v *viewmodel.AppView) {
		v.Scan.Preview = nil
		v.Scan.Result = nil
		v.Scan.Loading = false
		v.Scan.Warning = ""
		v.Scan.Error = ""
		v.Scan.UploadVisible = true
		v.Scan.ClassifyEnabled = true
		v.Scan.ScrollTop = true
	})
}

// RenderStatsDetail implements scan.View.
func (s *Surface) RenderStatsDetail(stats viewmodel.StatsDetailView) {
	s.update(func(v *viewmodel.AppView) { v.StatsDetail = stats })
}

// RenderHistory implements scan.View.
func (s *Surface) RenderHistory(h viewmodel.HistoryView) {
	s.update(func(v *viewmodel.AppView) { v.History = h })
}

// RenderAchievements implements scan.View.
func (s *Surface) RenderAchievements(b viewmodel.AchievementBoard) {
	s.update(func(v *viewmodel.AppView) { v.Achievements = b })
}

// SetOpen implements coach.View.
func (s *Surface) SetOpen(open bool) {
	s.update(func(v *viewmodel.AppView) {
		v.Coach.Open = open
		v.Coach.LauncherVisible = !open
	})
}

// AppendMessage implements coach.View.
func (s *Surface) AppendMessage(role model.Role, text string) {
	bubble := viewmodel.NewChatBubble(role, text)
	s.update(func(v *viewmodel.AppView) {
		v.Coach.Messages = append(v.Coach.Messages, bubble)
	})
}

// ShowQuickActions implements coach.View. Actions are keyed 1..n.
func (s *Surface) ShowQuickActions(prompt string, actions []coach.QuickAction) {
	views := make([]viewmodel.QuickActionView, 0, len(actions))
	for i, a := range actions {
		views = append(views, viewmodel.QuickActionView{Key: strconv.Itoa(i + 1), Label: a.Label()})
	}
	s.update(func(v *viewmodel.AppView) {
		v.Coach.QuickPrompt = prompt
		v.Coach.QuickActions = views
	})
}

// ShowTypingIndicator implements coach.View.
func (s *Surface) ShowTypingIndicator() {
	s.update(func(v *viewmodel.AppView) { v.Coach.Typing = true })
}

// RemoveTypingIndicator implements coach.View.
func (s *Surface) RemoveTypingIndicator() {
	s.update(func(v *viewmodel.AppView) { v.Coach.Typing = false })
}

// SetSendEnabled implements coach.View.
func (s *Surface) SetSendEnabled(enabled bool) {
	s.update(func(v *viewmodel.AppView) { v.Coach.SendEnabled = enabled })
}
