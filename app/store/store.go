// Package store provides relational storage for posts, categories and tags.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/umputun/shelf/app/blog"
)

// ErrNotFound is returned when a post or category does not exist.
var ErrNotFound = errors.New("not found")

// Interface is the full set of storage operations, implemented by Store and Cached.
type Interface interface {
	ListPosts(ctx context.Context) ([]blog.Post, error)
	GetPost(ctx context.Context, id string) (blog.Post, error)
	SavePost(ctx context.Context, p blog.Post) error
	DeletePost(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]blog.Category, error)
	GetCategory(ctx context.Context, id string) (blog.Category, error)
	SaveCategory(ctx context.Context, c blog.Category) error
	ListTags(ctx context.Context) ([]blog.Tag, error)
	Close() error
}

// RWLocker is the locking contract used by Store, sync.RWMutex for sqlite.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// noopLocker is used for postgres, which handles concurrent writers itself.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
