package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Veraticus/ecoscan/internal/common"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// Default timings.
const (
	DefaultHandoffDelay   = time.Second
	DefaultNoticeDuration = 5 * time.Second
)

// Config holds controller settings.
type Config struct {
	Scheduler      common.Scheduler
	Handoff        Handoff
	Now            func() time.Time
	Pick           func(n int) int
	ResolveImage   func(path string) string
	HandoffDelay   time.Duration
	NoticeDuration time.Duration
	HistoryLimit   int
}

// Controller owns the upload lifecycle. It holds the single selected file.
type Controller struct {
	backend Backend
	view    View
	notice  common.Timer
	file    *model.ImageFile
	cfg     Config
	state   State
	mu      sync.Mutex
}

// NewController creates a controller in the Idle state.
func NewController(backend Backend, view View, cfg Config) *Controller {
	if cfg.Scheduler == nil {
		cfg.Scheduler = common.RealScheduler{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.HandoffDelay <= 0 {
		cfg.HandoffDelay = DefaultHandoffDelay
	}
	if cfg.NoticeDuration <= 0 {
		cfg.NoticeDuration = DefaultNoticeDuration
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = model.DefaultHistoryLimit
	}

	return &Controller{
		backend: backend,
		view:    view,
		cfg:     cfg,
		state:   StateIdle,
	}
}

// SetHandoff replaces the post-classification handoff.
func (c *Controller) SetHandoff(h Handoff) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Handoff = h
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SelectedFile returns the held file, if any.
func (c *Controller) SelectedFile() (model.ImageFile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.file == nil {
		return model.ImageFile{}, false
	}
	return *c.file, true
}

// SelectPath opens the file at path and selects it.
func (c *Controller) SelectPath(path string) error {
	file, err := OpenImage(path)
	if err != nil {
		msg := fmt.Sprintf("Could not open %q", path)
		c.view.ShowWarning(msg)
		return common.NewUserError(msg, err)
	}
	return c.SelectFile(file)
}

// SelectFile holds file and previews it. Non-image files are rejected with
// a warning and leave the state untouched.
func (c *Controller) SelectFile(file model.ImageFile) error {
	if !file.IsImage() {
		c.view.ShowWarning(common.MsgNotAnImage)
		return common.NewUserError(common.MsgNotAnImage, fmt.Errorf("%w: %s", common.ErrNotAnImage, file.MediaType))
	}

	c.mu.Lock()
	held := file
	c.file = &held
	c.state = StatePreviewing
	c.mu.Unlock()

	c.view.ShowPreview(viewmodel.PreviewView{
		Name:      file.Name,
		Path:      file.Path,
		MediaType: file.MediaType,
		Size:      file.Size,
		Width:     file.Width,
		Height:    file.Height,
	})
	c.view.HideResults()

	slog.Debug("Image selected", "name", file.Name, "media_type", file.MediaType, "size", file.Size)
	return nil
}

// Classify submits the held file. Without a file it reports an error and
// does nothing. Failures are not retried.
func (c *Controller) Classify(ctx context.Context) error {
	c.mu.Lock()
	if c.file == nil {
		c.mu.Unlock()
		c.view.ShowError(common.MsgNoImageSelected)
		return common.NewUserError(common.MsgNoImageSelected, common.ErrNoImageSelected)
	}
	file := *c.file
	c.state = StateClassifying
	c.mu.Unlock()

	c.view.SetLoading(true)
	c.view.HideResults()
	c.view.SetClassifyEnabled(false)
	defer func() {
		c.view.SetLoading(false)
		c.view.SetClassifyEnabled(true)
	}()

	result, err := c.backend.Predict(ctx, file)
	if err != nil {
		c.mu.Lock()
		if c.state == StateClassifying {
			c.state = StatePreviewing
		}
		c.mu.Unlock()

		common.LogError(err, "Classification failed", common.Fields{"file": file.Name})
		c.view.ShowError(common.MsgClassifyFailed)
		return common.NewUserError(common.MsgClassifyFailed, err)
	}

	c.mu.Lock()
	c.state = StateResulted
	handoff := c.cfg.Handoff
	c.mu.Unlock()

	c.view.RenderResult(viewmodel.BuildResultView(*result, c.cfg.Pick))

	if len(result.NewAchievements) > 0 {
		c.showNotice(result.NewAchievements)
	}
	c.view.UpdateStatsBar(viewmodel.NewStatsBar(result.Stats))

	if handoff != nil {
		payload := *result
		c.cfg.Scheduler.AfterFunc(c.cfg.HandoffDelay, func() {
			handoff(payload)
		})
	}

	slog.Info("Image classified",
		"label", result.Label,
		"confidence", result.Confidence,
		"new_achievements", len(result.NewAchievements))
	return nil
}

func (c *Controller) showNotice(achievements []model.Achievement) {
	c.mu.Lock()
	if c.notice != nil {
		c.notice.Stop()
	}
	c.mu.Unlock()

	c.view.ShowAchievementNotice(viewmodel.AchievementNotice{
		Achievements: append([]model.Achievement(nil), achievements...),
	})

	t := c.cfg.Scheduler.AfterFunc(c.cfg.NoticeDuration, c.view.DismissAchievementNotice)

	c.mu.Lock()
	c.notice = t
	c.mu.Unlock()
}

// Reset returns to Idle.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.file = nil
	c.state = StateIdle
	c.mu.Unlock()

	c.view.ResetUpload()
}

// LoadInitial fetches the stats bar, history and achievements. Each load
// is attempted even when an earlier one fails.
func (c *Controller) LoadInitial(ctx context.Context) error {
	return errors.Join(
		c.LoadStatsBar(ctx),
		c.LoadHistory(ctx),
		c.LoadAchievements(ctx),
	)
}

// ActivateTab refreshes the data behind tab.
func (c *Controller) ActivateTab(ctx context.Context, tab viewmodel.Tab) error {
	switch tab {
	case viewmodel.TabStats:
		return c.LoadDetailedStats(ctx)
	case viewmodel.TabHistory:
		return c.LoadHistory(ctx)
	case viewmodel.TabAchievements:
		return c.LoadAchievements(ctx)
	case viewmodel.TabScan:
		return nil
	default:
		return fmt.Errorf("unknown tab %v", tab)
	}
}

// LoadStatsBar refreshes the counter strip. Failures are logged only.
func (c *Controller) LoadStatsBar(ctx context.Context) error {
	stats, err := c.backend.Stats(ctx)
	if err != nil {
		common.LogError(err, "Error loading stats", nil)
		return err
	}
	c.view.UpdateStatsBar(viewmodel.NewStatsBar(stats))
	return nil
}

// LoadDetailedStats refreshes the statistics tab. Failures are logged only.
func (c *Controller) LoadDetailedStats(ctx context.Context) error {
	stats, err := c.backend.Stats(ctx)
	if err != nil {
		common.LogError(err, "Error loading detailed stats", nil)
		return err
	}
	c.view.RenderStatsDetail(viewmodel.BuildStatsDetail(stats))
	return nil
}

// LoadHistory refreshes the history tab. Failures are logged only.
func (c *Controller) LoadHistory(ctx context.Context) error {
	items, err := c.backend.History(ctx, c.cfg.HistoryLimit)
	if err != nil {
		common.LogError(err, "Error loading history", common.Fields{"limit": c.cfg.HistoryLimit})
		return err
	}
	c.view.RenderHistory(viewmodel.BuildHistory(items, c.cfg.Now(), c.cfg.ResolveImage))
	return nil
}

// LoadAchievements recomputes the achievement board from the endpoint.
// Failures are logged only.
func (c *Controller) LoadAchievements(ctx context.Context) error {
	unlocked, err := c.backend.Achievements(ctx)
	if err != nil {
		common.LogError(err, "Error loading achievements", nil)
		return err
	}
	c.view.RenderAchievements(viewmodel.BuildAchievementBoard(model.AchievementCards(), unlocked, c.cfg.Now()))
	return nil
}
