package driven

import (
	"context"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

// SignalStore supplies the scraped snapshot an analysis run reads.
// The engine treats the store as read-only and possibly partial: a
// missing collection yields an empty slice, not an error. Errors are
// reserved for backends that cannot be read at all.
type SignalStore interface {
	// Topics returns the seed topic catalog.
	Topics(ctx context.Context) ([]domain.Topic, error)

	// Modifiers returns the modifier catalog (pass-through, unscored).
	Modifiers(ctx context.Context) ([]domain.Modifier, error)

	// Videos returns the scraped video collection.
	Videos(ctx context.Context) ([]domain.Video, error)

	// Questions returns the scraped question/comment collection.
	Questions(ctx context.Context) ([]domain.Question, error)

	// Channels returns the channel profile catalog. A missing
	// catalog yields an empty (non-nil) catalog.
	Channels(ctx context.Context) (*domain.ChannelCatalog, error)
}
