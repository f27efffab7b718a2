package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ecoscan/internal/coach"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

func TestNewSurface(t *testing.T) {
	v := NewSurface().Snapshot()

	assert.Equal(t, viewmodel.TabScan, v.ActiveTab)
	assert.True(t, v.Scan.UploadVisible)
	assert.True(t, v.Scan.ClassifyEnabled)
	assert.True(t, v.Coach.LauncherVisible)
	assert.False(t, v.Coach.Open)
	assert.True(t, v.Coach.SendEnabled)
}

func TestSurfaceNotifies(t *testing.T) {
	s := NewSurface()
	calls := 0
	s.SetNotify(func() {
		calls++
		// The lock must be released before notify runs.
		_ = s.Snapshot()
	})

	s.SetLoading(true)
	s.ShowTypingIndicator()
	assert.Equal(t, 2, calls)

	s.SetNotify(nil)
	s.SetLoading(false)
	assert.Equal(t, 2, calls)
}

func TestSurfaceWarningAndErrorExclude(t *testing.T) {
	s := NewSurface()

	s.ShowWarning("Please select an image first")
	s.ShowError("Classification failed")
	v := s.Snapshot()
	assert.Empty(t, v.Scan.Warning)
	assert.Equal(t, "Classification failed", v.Scan.Error)

	s.ShowWarning("Please select an image first")
	v = s.Snapshot()
	assert.Empty(t, v.Scan.Error)
	assert.Equal(t, "Please select an image first", v.Scan.Warning)
}

func TestSurfacePreviewAndReset(t *testing.T) {
	s := NewSurface()

	s.ShowWarning("Please upload an image file")
	s.ShowPreview(viewmodel.PreviewView{Name: "can.jpg"})
	s.RenderResult(viewmodel.ResultView{CategoryBadge: "METAL"})

	v := s.Snapshot()
	require.NotNil(t, v.Scan.Preview)
	assert.Equal(t, "can.jpg", v.Scan.Preview.Name)
	assert.False(t, v.Scan.UploadVisible)
	assert.Empty(t, v.Scan.Warning)
	require.NotNil(t, v.Scan.Result)

	s.ResetUpload()
	v = s.Snapshot()
	assert.Nil(t, v.Scan.Preview)
	assert.Nil(t, v.Scan.Result)
	assert.True(t, v.Scan.UploadVisible)
	assert.True(t, v.Scan.ScrollTop)
}

func TestSurfaceCoach(t *testing.T) {
	s := NewSurface()

	s.SetOpen(true)
	s.AppendMessage(model.RoleUser, "hi")
	s.AppendMessage(model.RoleBot, "hello\nthere")
	s.ShowQuickActions(coach.QuickActionsPrompt, coach.QuickActions())

	v := s.Snapshot()
	assert.True(t, v.Coach.Open)
	assert.False(t, v.Coach.LauncherVisible)
	require.Len(t, v.Coach.Messages, 2)
	assert.Equal(t, []string{"hello", "there"}, v.Coach.Messages[1].Lines)
	require.Len(t, v.Coach.QuickActions, 4)
	assert.Equal(t, "1", v.Coach.QuickActions[0].Key)
	assert.Equal(t, coach.ActionDisposal.Label(), v.Coach.QuickActions[0].Label)

	s.SetOpen(false)
	assert.True(t, s.Snapshot().Coach.LauncherVisible)
}

func TestSurfaceSnapshotIsACopy(t *testing.T) {
	s := NewSurface()
	s.AppendMessage(model.RoleBot, "one")

	v := s.Snapshot()
	v.Coach.Messages[0] = viewmodel.NewChatBubble(model.RoleUser, "changed")

	assert.Equal(t, []string{"one"}, s.Snapshot().Coach.Messages[0].Lines)
}
