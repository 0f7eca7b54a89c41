package journal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"spiral/internal/domain"
)

// ErrEmptyDraft is returned when saving a draft with no moods and no text.
var ErrEmptyDraft = errors.New("nothing to save")

// Service persists drafts as entries.
type Service struct {
	entries domain.EntryStore
	now     func() time.Time
}

// New returns a journal service backed by the given entry store.
func New(entries domain.EntryStore) *Service {
	return &Service{entries: entries, now: time.Now}
}

// Save stamps the draft with an id and timestamp and appends it to the
// store. The draft itself is left untouched so a failed save can be
// retried.
func (s *Service) Save(ctx context.Context, d *Draft) (domain.Entry, error) {
	if d.Empty() {
		return domain.Entry{}, ErrEmptyDraft
	}
	e := domain.Entry{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Moods:     d.Moods(),
		Text:      d.Text(),
	}
	if err := s.entries.AppendEntry(ctx, e); err != nil {
		return domain.Entry{}, err
	}
	return e, nil
}

// List returns up to limit entries, most recent first.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Entry, error) {
	return s.entries.ListEntries(ctx, limit)
}
