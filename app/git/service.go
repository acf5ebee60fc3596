package git

import (
	"fmt"

	"github.com/umputun/shelf/app/blog"
)

//go:generate moq -out mocks/storer.go -pkg mocks -skip-ensure -fmt goimports . Storer

// Storer defines the interface for git store operations needed by Service.
type Storer interface {
	Commit(req CommitRequest) error
	Delete(id string, author Author) error
	Pull() error
	Push() error
	History(id string, limit int) ([]Revision, error)
	GetRevision(id, rev string) (blog.Post, error)
}

// Service wraps Store and provides orchestrated git operations.
// handles commit + optional pull/push sequence.
type Service struct {
	store    Storer
	pushSync bool
}

// NewService creates a new git service.
// if pushSync is true, commits will be followed by pull and push.
func NewService(st Storer, pushSync bool) *Service {
	return &Service{store: st, pushSync: pushSync}
}

// Commit archives a post change and optionally syncs with remote.
func (s *Service) Commit(req CommitRequest) error {
	if err := s.store.Commit(req); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if s.pushSync {
		return s.pullAndPush()
	}
	return nil
}

// Delete removes a post from the archive and optionally syncs with remote.
func (s *Service) Delete(id string, author Author) error {
	if err := s.store.Delete(id, author); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if s.pushSync {
		return s.pullAndPush()
	}
	return nil
}

// pullAndPush pulls from remote, then pushes local commits.
func (s *Service) pullAndPush() error {
	if err := s.store.Pull(); err != nil {
		return fmt.Errorf("pull: %w", err)
	}
	if err := s.store.Push(); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// History returns the archived revisions of a post.
func (s *Service) History(id string, limit int) ([]Revision, error) {
	entries, err := s.store.History(id, limit)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return entries, nil
}

// GetRevision returns a post at a specific revision.
func (s *Service) GetRevision(id, rev string) (blog.Post, error) {
	p, err := s.store.GetRevision(id, rev)
	if err != nil {
		return blog.Post{}, fmt.Errorf("get revision: %w", err)
	}
	return p, nil
}
