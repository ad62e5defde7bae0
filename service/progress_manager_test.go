package service

import (
	"bytes"
	"testing"

	"github.com/uilens/uilens/domain"
)

func TestNewProgressManager_Disabled(t *testing.T) {
	pm := NewProgressManager(false)
	if pm.IsInteractive() {
		t.Error("Expected non-interactive progress manager when disabled")
	}

	var _ domain.ProgressManager = pm
}

func TestProgressManager_CountedTask(t *testing.T) {
	var buf bytes.Buffer
	pm := &ProgressManagerImpl{writer: &buf}

	task := pm.StartTask("comparing", 3)
	task.Increment(1)
	task.Describe("comparing components")
	task.Increment(2)
	task.Complete()
	pm.Close()

	if len(pm.bars) != 0 {
		t.Errorf("Expected bars released after Close, got %d", len(pm.bars))
	}
}

func TestProgressManager_SpinnerForUnknownTotal(t *testing.T) {
	var buf bytes.Buffer
	pm := &ProgressManagerImpl{writer: &buf}

	task := pm.StartTask("loading", 0)
	task.Increment(1)
	task.Complete()
	pm.Close()
}

func TestNoOpProgressManager(t *testing.T) {
	pm := &NoOpProgressManager{}

	if pm.IsInteractive() {
		t.Error("Expected NoOpProgressManager to report non-interactive")
	}

	task := pm.StartTask("test", 100)
	if task == nil {
		t.Fatal("Expected non-nil task from StartTask")
	}

	// None of these may panic or write anywhere
	task.Increment(10)
	task.Describe("testing")
	task.Complete()
	pm.Close()
}

func TestProgressManager_Interfaces(t *testing.T) {
	var _ domain.ProgressManager = &ProgressManagerImpl{}
	var _ domain.TaskProgress = &TaskProgressImpl{}
	var _ domain.TaskProgress = &NoOpTaskProgress{}
}
