package service

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/uilens/uilens/domain"
)

// ProgressManagerImpl renders progress bars on stderr. Audit runs carry
// few, fast tasks, so bars skip time prediction and clear on finish.
type ProgressManagerImpl struct {
	writer io.Writer
	bars   []*progressbar.ProgressBar
}

// NewProgressManager returns an interactive manager when enabled and the
// environment has a terminal, a no-op manager otherwise
func NewProgressManager(enabled bool) domain.ProgressManager {
	if enabled && IsInteractiveEnvironment() {
		return &ProgressManagerImpl{writer: os.Stderr}
	}
	return &NoOpProgressManager{}
}

// StartTask opens a bar for a counted task. A non-positive total yields
// a spinner for work of unknown length.
func (pm *ProgressManagerImpl) StartTask(description string, total int) domain.TaskProgress {
	options := []progressbar.Option{
		progressbar.OptionSetWriter(pm.writer),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(24),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	}
	if total <= 0 {
		total = -1
		options = append(options, progressbar.OptionSpinnerType(14))
	}
	bar := progressbar.NewOptions(total, options...)
	pm.bars = append(pm.bars, bar)
	return &TaskProgressImpl{bar: bar}
}

// IsInteractive reports whether progress output is rendered
func (pm *ProgressManagerImpl) IsInteractive() bool {
	return true
}

// Close finishes any bars still open
func (pm *ProgressManagerImpl) Close() {
	for _, bar := range pm.bars {
		_ = bar.Finish()
	}
	pm.bars = nil
}

// TaskProgressImpl drives a single progress bar
type TaskProgressImpl struct {
	bar *progressbar.ProgressBar
}

func (tp *TaskProgressImpl) Increment(n int) {
	_ = tp.bar.Add(n)
}

func (tp *TaskProgressImpl) Describe(description string) {
	tp.bar.Describe(description)
}

func (tp *TaskProgressImpl) Complete() {
	_ = tp.bar.Finish()
}

// NoOpProgressManager is used for structured output and non-TTY runs so
// report streams never carry control characters
type NoOpProgressManager struct{}

func (pm *NoOpProgressManager) StartTask(_ string, _ int) domain.TaskProgress {
	return &NoOpTaskProgress{}
}

func (pm *NoOpProgressManager) IsInteractive() bool { return false }

func (pm *NoOpProgressManager) Close() {}

// NoOpTaskProgress discards all progress updates
type NoOpTaskProgress struct{}

func (tp *NoOpTaskProgress) Increment(_ int) {}

func (tp *NoOpTaskProgress) Describe(_ string) {}

func (tp *NoOpTaskProgress) Complete() {}
