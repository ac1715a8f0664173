package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"

	"github.com/prabinsunar/library-app/internal/database/integrity"
)

// IntegrityChecker finds, and optionally repairs, dangling catalog references.
type IntegrityChecker interface {
	Check(ctx context.Context) (*integrity.Report, error)
	Repair(ctx context.Context) (int64, error)
}

// CheckIntegrityTask scans the catalog for dangling references. With Repair
// set, join rows pointing at missing genres are removed afterwards.
type CheckIntegrityTask struct {
	Repair bool   `json:"repair"`
	Source string `json:"source"` // "schedule", "http" or "cli"
}

// Config returns the queue configuration for integrity checks.
func (t CheckIntegrityTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "check_integrity",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RunIntegrityCheck runs one check outside the queue, as the CLI does.
func RunIntegrityCheck(ctx context.Context, checker IntegrityChecker, repair bool) (*integrity.Report, int64, error) {
	report, err := checker.Check(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("check integrity: %w", err)
	}

	var repaired int64
	if repair && len(report.DanglingGenreRefs) > 0 {
		repaired, err = checker.Repair(ctx)
		if err != nil {
			return report, 0, fmt.Errorf("repair integrity: %w", err)
		}
	}
	return report, repaired, nil
}

// CheckIntegrityProcessor creates a processor function for CheckIntegrityTask.
func CheckIntegrityProcessor(checker IntegrityChecker) backlite.QueueProcessor[CheckIntegrityTask] {
	return func(ctx context.Context, task CheckIntegrityTask) error {
		if checker == nil {
			return fmt.Errorf("integrity checker not configured")
		}

		report, repaired, err := RunIntegrityCheck(ctx, checker, task.Repair)
		if err != nil {
			return err
		}

		event := log.Info()
		if !report.Clean() {
			event = log.Warn()
		}
		event.
			Str("source", task.Source).
			Int("books_without_author", len(report.BooksWithoutAuthor)).
			Int("dangling_genre_refs", len(report.DanglingGenreRefs)).
			Int("copies_without_book", len(report.CopiesWithoutBook)).
			Int64("repaired", repaired).
			Msg("Integrity check finished")
		return nil
	}
}

// NewCheckIntegrityQueue creates a backlite queue for integrity checks.
func NewCheckIntegrityQueue(checker IntegrityChecker) backlite.Queue {
	return backlite.NewQueue(CheckIntegrityProcessor(checker))
}

// EnqueueIntegrityCheck adds one integrity check to the queue and returns its task id.
func (c *Client) EnqueueIntegrityCheck(ctx context.Context, task CheckIntegrityTask) (string, error) {
	ids, err := c.Add(task).Ctx(ctx).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue integrity check: %w", err)
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

// InlineIntegrityRunner runs integrity checks in the caller's goroutine. It
// stands in for the queue when background tasks are disabled.
type InlineIntegrityRunner struct {
	process backlite.QueueProcessor[CheckIntegrityTask]
}

func NewInlineIntegrityRunner(checker IntegrityChecker) *InlineIntegrityRunner {
	return &InlineIntegrityRunner{process: CheckIntegrityProcessor(checker)}
}

// EnqueueIntegrityCheck runs the check immediately. The returned id is always empty.
func (r *InlineIntegrityRunner) EnqueueIntegrityCheck(ctx context.Context, task CheckIntegrityTask) (string, error) {
	return "", r.process(ctx, task)
}
