// Package tags implements the data source directory: tag metadata
// lookup and historical sample retrieval for the widgets that bind to
// them.
package tags

import (
	"context"
	"errors"
	"time"

	"gridboard/internal/dashboard/model"
)

var ErrTagNotFound = errors.New("tag not found")

// Directory resolves tag identifiers to metadata and history. Each
// history call re-fetches; results are finite and not restartable.
type Directory interface {
	GetTag(ctx context.Context, id string) (*model.Tag, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
	// GetTagHistory returns up to pointCount samples covering the last
	// timeRange. The result's Fallback flag is set when the directory
	// had nothing recorded and synthesized the series instead.
	GetTagHistory(ctx context.Context, id string, timeRange time.Duration, pointCount int) (*model.TagHistory, error)
}
