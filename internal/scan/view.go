// Package scan implements the scan session controller: image selection,
// classification and the read-only statistics, history and achievement views.
package scan

import (
	"context"

	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// View receives render calls from the controller. Implementations must be
// safe for use from the goroutine that completes a request.
type View interface {
	ShowWarning(msg string)
	ShowError(msg string)
	ShowPreview(preview viewmodel.PreviewView)
	// HideResults hides the results panel and the quality feedback.
	HideResults()
	SetLoading(loading bool)
	SetClassifyEnabled(enabled bool)
	RenderResult(result viewmodel.ResultView)
	UpdateStatsBar(bar viewmodel.StatsBarView)
	ShowAchievementNotice(notice viewmodel.AchievementNotice)
	DismissAchievementNotice()
	// ResetUpload hides preview, results, loading and quality feedback,
	// shows the upload affordance and scrolls to the top.
	ResetUpload()
	RenderStatsDetail(stats viewmodel.StatsDetailView)
	RenderHistory(history viewmodel.HistoryView)
	RenderAchievements(board viewmodel.AchievementBoard)
}

// Backend is the subset of the backend client the controller needs.
type Backend interface {
	Predict(ctx context.Context, file model.ImageFile) (*model.ClassificationResult, error)
	Stats(ctx context.Context) (model.Stats, error)
	History(ctx context.Context, limit int) ([]model.HistoryItem, error)
	Achievements(ctx context.Context) ([]model.Achievement, error)
}

// Handoff receives a successful classification after the handoff delay.
type Handoff func(result model.ClassificationResult)
