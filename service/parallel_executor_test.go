package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/config"
)

type fakeTask struct {
	name    string
	enabled bool
	run     func(ctx context.Context) (any, error)
}

func (t *fakeTask) Name() string    { return t.name }
func (t *fakeTask) IsEnabled() bool { return t.enabled }
func (t *fakeTask) Execute(ctx context.Context) (any, error) {
	return t.run(ctx)
}

func TestParallelExecutor_RunsAllEnabledTasks(t *testing.T) {
	executor := NewParallelExecutor()

	var executed int64
	tasks := []domain.ExecutableTask{
		&fakeTask{name: "a", enabled: true, run: func(ctx context.Context) (any, error) {
			atomic.AddInt64(&executed, 1)
			return nil, nil
		}},
		&fakeTask{name: "b", enabled: true, run: func(ctx context.Context) (any, error) {
			atomic.AddInt64(&executed, 1)
			return nil, nil
		}},
		&fakeTask{name: "c", enabled: false, run: func(ctx context.Context) (any, error) {
			atomic.AddInt64(&executed, 1)
			return nil, nil
		}},
	}

	err := executor.Execute(context.Background(), tasks)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if atomic.LoadInt64(&executed) != 2 {
		t.Errorf("Expected 2 executed tasks, got %d", executed)
	}
}

func TestParallelExecutor_AggregatesAllFailures(t *testing.T) {
	executor := NewParallelExecutor()

	failA := errors.New("boom a")
	failB := errors.New("boom b")
	tasks := []domain.ExecutableTask{
		&fakeTask{name: "a", enabled: true, run: func(ctx context.Context) (any, error) {
			return nil, failA
		}},
		&fakeTask{name: "ok", enabled: true, run: func(ctx context.Context) (any, error) {
			return nil, nil
		}},
		&fakeTask{name: "b", enabled: true, run: func(ctx context.Context) (any, error) {
			return nil, failB
		}},
	}

	err := executor.Execute(context.Background(), tasks)
	if err == nil {
		t.Fatal("Expected aggregated error")
	}

	var aggregated *AggregatedError
	if !errors.As(err, &aggregated) {
		t.Fatalf("Expected AggregatedError, got %T", err)
	}
	if len(aggregated.Errors) != 2 {
		t.Errorf("Expected 2 task errors, got %d", len(aggregated.Errors))
	}
	if !strings.Contains(err.Error(), "2 tasks failed") {
		t.Errorf("Expected failure count in message, got %q", err.Error())
	}
}

func TestParallelExecutor_NoEnabledTasks(t *testing.T) {
	executor := NewParallelExecutor()

	tasks := []domain.ExecutableTask{
		&fakeTask{name: "off", enabled: false, run: func(ctx context.Context) (any, error) {
			t.Error("Disabled task should not run")
			return nil, nil
		}},
	}

	if err := executor.Execute(context.Background(), tasks); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestParallelExecutor_FromConfig(t *testing.T) {
	cfg := &config.PerformanceConfig{MaxGoroutines: 2, TimeoutSeconds: 30}
	executor := NewParallelExecutorFromConfig(cfg)

	if executor.maxConcurrency != 2 {
		t.Errorf("Expected max concurrency 2, got %d", executor.maxConcurrency)
	}
	if executor.timeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", executor.timeout)
	}
}

func TestParallelExecutor_FromConfigDefaults(t *testing.T) {
	cfg := &config.PerformanceConfig{MaxGoroutines: 0, TimeoutSeconds: 0}
	executor := NewParallelExecutorFromConfig(cfg)

	if executor.maxConcurrency != DefaultMaxConcurrency {
		t.Errorf("Expected default concurrency %d, got %d", DefaultMaxConcurrency, executor.maxConcurrency)
	}
	if executor.timeout != DefaultTimeout {
		t.Errorf("Expected default timeout, got %v", executor.timeout)
	}
}

func TestParallelExecutor_Setters(t *testing.T) {
	executor := NewParallelExecutor()

	executor.SetMaxConcurrency(8)
	if executor.maxConcurrency != 8 {
		t.Errorf("Expected max concurrency 8, got %d", executor.maxConcurrency)
	}

	executor.SetMaxConcurrency(-1)
	if executor.maxConcurrency != 8 {
		t.Error("Invalid concurrency should be ignored")
	}

	executor.SetTimeout(time.Minute)
	if executor.timeout != time.Minute {
		t.Errorf("Expected 1m timeout, got %v", executor.timeout)
	}
}

func TestTaskError_Format(t *testing.T) {
	err := TaskError{TaskName: "tokens", Err: errors.New("failed")}
	if err.Error() != "[tokens] failed" {
		t.Errorf("Expected formatted task error, got %q", err.Error())
	}

	cause := errors.New("root cause")
	aggregated := &AggregatedError{Errors: []TaskError{{TaskName: "t", Err: cause}}}
	if !errors.Is(aggregated, cause) {
		t.Error("Expected aggregated error to unwrap to the first cause")
	}
}
