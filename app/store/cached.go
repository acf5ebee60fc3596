package store

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lcw/v2"

	"github.com/umputun/shelf/app/blog"
)

// cache keys for the list caches, each cache holds a single entry
const listKey = "all"

// Cached wraps a store Interface with loading caches and satisfies the Interface itself.
// List reads and single posts are populated on reads via loader functions, every write
// invalidates the affected caches.
type Cached struct {
	store      Interface
	posts      lcw.LoadingCache[[]blog.Post]
	post       lcw.LoadingCache[blog.Post]
	categories lcw.LoadingCache[[]blog.Category]
	tags       lcw.LoadingCache[[]blog.Tag]
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of single posts kept in the cache.
func NewCached(store Interface, maxKeys int) (*Cached, error) {
	posts, err := lcw.NewLruCache(lcw.NewOpts[[]blog.Post]().MaxKeys(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create posts cache: %w", err)
	}
	post, err := lcw.NewLruCache(lcw.NewOpts[blog.Post]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create post cache: %w", err)
	}
	categories, err := lcw.NewLruCache(lcw.NewOpts[[]blog.Category]().MaxKeys(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create categories cache: %w", err)
	}
	tags, err := lcw.NewLruCache(lcw.NewOpts[[]blog.Tag]().MaxKeys(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create tags cache: %w", err)
	}
	return &Cached{store: store, posts: posts, post: post, categories: categories, tags: tags}, nil
}

// ListPosts returns all posts, using cache with load-through.
func (c *Cached) ListPosts(ctx context.Context) ([]blog.Post, error) {
	posts, err := c.posts.Get(listKey, func() ([]blog.Post, error) {
		res, loadErr := c.store.ListPosts(ctx)
		if loadErr != nil {
			return nil, fmt.Errorf("load from store: %w", loadErr)
		}
		return res, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return posts, nil
}

// GetPost returns a post, using cache with load-through. Misses are not cached.
func (c *Cached) GetPost(ctx context.Context, id string) (blog.Post, error) {
	post, err := c.post.Get(id, func() (blog.Post, error) {
		res, loadErr := c.store.GetPost(ctx, id)
		if loadErr != nil {
			return blog.Post{}, fmt.Errorf("load from store: %w", loadErr)
		}
		return res, nil
	})
	if err != nil {
		return blog.Post{}, fmt.Errorf("cache get: %w", err)
	}
	return post, nil
}

// SavePost stores a post and invalidates post and tag caches.
func (c *Cached) SavePost(ctx context.Context, p blog.Post) error {
	if err := c.store.SavePost(ctx, p); err != nil {
		return fmt.Errorf("store save post: %w", err)
	}
	c.invalidatePost(p.ID)
	return nil
}

// DeletePost removes a post and invalidates post and tag caches.
func (c *Cached) DeletePost(ctx context.Context, id string) error {
	// invalidate regardless of error - post might have been cached
	c.invalidatePost(id)
	if err := c.store.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("store delete post: %w", err)
	}
	return nil
}

// ListCategories returns all categories, using cache with load-through.
func (c *Cached) ListCategories(ctx context.Context) ([]blog.Category, error) {
	categories, err := c.categories.Get(listKey, func() ([]blog.Category, error) {
		res, loadErr := c.store.ListCategories(ctx)
		if loadErr != nil {
			return nil, fmt.Errorf("load from store: %w", loadErr)
		}
		return res, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves a category from the underlying store (not cached).
func (c *Cached) GetCategory(ctx context.Context, id string) (blog.Category, error) {
	category, err := c.store.GetCategory(ctx, id)
	if err != nil {
		return blog.Category{}, fmt.Errorf("store get category: %w", err)
	}
	return category, nil
}

// SaveCategory stores a category and invalidates the categories cache.
func (c *Cached) SaveCategory(ctx context.Context, cat blog.Category) error {
	if err := c.store.SaveCategory(ctx, cat); err != nil {
		return fmt.Errorf("store save category: %w", err)
	}
	c.categories.Invalidate(func(string) bool { return true })
	return nil
}

// ListTags returns tags, using cache with load-through.
func (c *Cached) ListTags(ctx context.Context) ([]blog.Tag, error) {
	tags, err := c.tags.Get(listKey, func() ([]blog.Tag, error) {
		res, loadErr := c.store.ListTags(ctx)
		if loadErr != nil {
			return nil, fmt.Errorf("load from store: %w", loadErr)
		}
		return res, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return tags, nil
}

// Close closes the caches and underlying store.
func (c *Cached) Close() error {
	_ = c.posts.Close()
	_ = c.post.Close()
	_ = c.categories.Close()
	_ = c.tags.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns statistics of the single post cache.
func (c *Cached) Stats() lcw.CacheStat {
	return c.post.Stat()
}

// invalidatePost drops a post and every list derived from posts.
func (c *Cached) invalidatePost(id string) {
	c.post.Invalidate(func(k string) bool { return k == id })
	c.posts.Invalidate(func(string) bool { return true })
	c.tags.Invalidate(func(string) bool { return true })
}
