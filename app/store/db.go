package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/enum"
)

// Store implements blog storage using SQLite or PostgreSQL.
type Store struct {
	db     *sqlx.DB
	dbType enum.DBType
	mu     RWLocker
}

// postColumns selects a post row with nullable columns flattened to empty strings.
const postColumns = `id, title, description, content, category, date, rating,
	COALESCE(image_url, '') AS image_url, COALESCE(source, '') AS source,
	COALESCE(personal_thoughts, '') AS personal_thoughts`

// New creates a new Store with the given database URL.
// Automatically detects database type from URL:
// - postgres:// or postgresql:// -> PostgreSQL
// - everything else -> SQLite
func New(dbURL string) (*Store, error) {
	dbType := detectDBType(dbURL)

	var db *sqlx.DB
	var err error
	var locker RWLocker

	switch dbType {
	case enum.DBTypePostgres:
		db, err = connectPostgres(dbURL)
		locker = noopLocker{}
	default:
		db, err = connectSQLite(dbURL)
		locker = &sync.RWMutex{}
	}

	if err != nil {
		return nil, err
	}

	s := &Store{db: db, dbType: dbType, mu: locker}

	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("[DEBUG] initialized %s store", s.dbType)
	return s, nil
}

// detectDBType determines database type from URL.
func detectDBType(url string) enum.DBType {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return enum.DBTypePostgres
	}
	return enum.DBTypeSQLite
}

// connectSQLite establishes SQLite connection with pragmas.
func connectSQLite(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	// set pragmas for performance and reliability
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=1000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil { //nolint:noctx // init-time, no context available
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	// limit connections for SQLite (single writer)
	db.SetMaxOpenConns(1)

	return db, nil
}

// connectPostgres establishes PostgreSQL connection.
func connectPostgres(dbURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	// set reasonable connection pool defaults
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// createSchema creates tables and indexes if they don't exist.
func (s *Store) createSchema() error {
	dateType := "DATETIME"
	if s.dbType == enum.DBTypePostgres {
		dateType = "TIMESTAMPTZ"
	}
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR(64) PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			color VARCHAR(32) NOT NULL DEFAULT '',
			icon VARCHAR(128)
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id VARCHAR(64) PRIMARY KEY,
			name TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id VARCHAR(64) PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			content TEXT NOT NULL,
			category VARCHAR(64) NOT NULL REFERENCES categories(id),
			date ` + dateType + ` NOT NULL,
			rating INTEGER NOT NULL,
			image_url TEXT,
			source TEXT,
			personal_thoughts TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS post_tags (
			post_id VARCHAR(64) NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			tag_id VARCHAR(64) NOT NULL REFERENCES tags(id),
			position INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (post_id, tag_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_date ON posts(date)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil { //nolint:noctx // init-time, no context available
			return fmt.Errorf("failed to execute schema: %w", err)
		}
	}
	return nil
}

// ListPosts returns all posts with their tags, newest first.
func (s *Store) ListPosts(ctx context.Context) ([]blog.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var posts []blog.Post
	query := s.adoptQuery("SELECT " + postColumns + " FROM posts ORDER BY date DESC, id")
	if err := s.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	var links []struct {
		PostID string `db:"post_id"`
		TagID  string `db:"tag_id"`
	}
	query = s.adoptQuery("SELECT post_id, tag_id FROM post_tags ORDER BY post_id, position")
	if err := s.db.SelectContext(ctx, &links, query); err != nil {
		return nil, fmt.Errorf("failed to list post tags: %w", err)
	}
	tags := make(map[string][]string, len(posts))
	for _, l := range links {
		tags[l.PostID] = append(tags[l.PostID], l.TagID)
	}
	for i := range posts {
		posts[i].Tags = tags[posts[i].ID]
		if posts[i].Tags == nil {
			posts[i].Tags = []string{}
		}
	}
	return posts, nil
}

// GetPost returns the post with id and its tags.
// Returns ErrNotFound if the post does not exist.
func (s *Store) GetPost(ctx context.Context, id string) (blog.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var post blog.Post
	query := s.adoptQuery("SELECT " + postColumns + " FROM posts WHERE id = ?")
	err := s.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return blog.Post{}, ErrNotFound
	}
	if err != nil {
		return blog.Post{}, fmt.Errorf("failed to get post %q: %w", id, err)
	}

	post.Tags = []string{}
	query = s.adoptQuery("SELECT tag_id FROM post_tags WHERE post_id = ? ORDER BY position")
	if err := s.db.SelectContext(ctx, &post.Tags, query, id); err != nil {
		return blog.Post{}, fmt.Errorf("failed to get tags of post %q: %w", id, err)
	}
	return post, nil
}

// SavePost creates or replaces the post and its tag links, keeping tag counts current.
func (s *Store) SavePost(ctx context.Context, p blog.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query := s.adoptQuery(`
		INSERT INTO posts (id, title, description, content, category, date, rating, image_url, source, personal_thoughts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, description = excluded.description,
			content = excluded.content, category = excluded.category, date = excluded.date,
			rating = excluded.rating, image_url = excluded.image_url, source = excluded.source,
			personal_thoughts = excluded.personal_thoughts`)
	date := p.Date.UTC().Truncate(time.Second)
	if _, err := tx.ExecContext(ctx, query, p.ID, p.Title, p.Description, p.Content, p.Category, date, p.Rating,
		nullable(p.ImageURL), nullable(p.Source), nullable(p.PersonalThoughts)); err != nil {
		return fmt.Errorf("failed to save post %q: %w", p.ID, err)
	}

	if _, err := tx.ExecContext(ctx, s.adoptQuery("DELETE FROM post_tags WHERE post_id = ?"), p.ID); err != nil {
		return fmt.Errorf("failed to clear tags of post %q: %w", p.ID, err)
	}

	insertTag := s.adoptQuery("INSERT INTO tags (id, name, count) VALUES (?, ?, 0) ON CONFLICT(id) DO NOTHING")
	insertLink := s.adoptQuery("INSERT INTO post_tags (post_id, tag_id, position) VALUES (?, ?, ?)")
	for i, tag := range uniqueTags(p.Tags) {
		if _, err := tx.ExecContext(ctx, insertTag, tag, tag); err != nil {
			return fmt.Errorf("failed to save tag %q: %w", tag, err)
		}
		if _, err := tx.ExecContext(ctx, insertLink, p.ID, tag, i); err != nil {
			return fmt.Errorf("failed to link tag %q to post %q: %w", tag, p.ID, err)
		}
	}

	if err := s.recountTags(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post %q: %w", p.ID, err)
	}
	return nil
}

// DeletePost removes the post and its tag links.
// Returns ErrNotFound if the post does not exist.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, s.adoptQuery("DELETE FROM post_tags WHERE post_id = ?"), id); err != nil {
		return fmt.Errorf("failed to delete tags of post %q: %w", id, err)
	}
	result, err := tx.ExecContext(ctx, s.adoptQuery("DELETE FROM posts WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete post %q: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err := s.recountTags(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete of post %q: %w", id, err)
	}
	return nil
}

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]blog.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var categories []blog.Category
	query := s.adoptQuery("SELECT id, name, description, color, COALESCE(icon, '') AS icon FROM categories ORDER BY name")
	if err := s.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategory returns the category with id.
// Returns ErrNotFound if the category does not exist.
func (s *Store) GetCategory(ctx context.Context, id string) (blog.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var category blog.Category
	query := s.adoptQuery("SELECT id, name, description, color, COALESCE(icon, '') AS icon FROM categories WHERE id = ?")
	err := s.db.GetContext(ctx, &category, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return blog.Category{}, ErrNotFound
	}
	if err != nil {
		return blog.Category{}, fmt.Errorf("failed to get category %q: %w", id, err)
	}
	return category, nil
}

// SaveCategory creates or updates the category.
func (s *Store) SaveCategory(ctx context.Context, c blog.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.adoptQuery(`
		INSERT INTO categories (id, name, description, color, icon) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, description = excluded.description,
			color = excluded.color, icon = excluded.icon`)
	if _, err := s.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.Color, nullable(c.Icon)); err != nil {
		return fmt.Errorf("failed to save category %q: %w", c.ID, err)
	}
	return nil
}

// ListTags returns tags used by at least one post, most used first.
func (s *Store) ListTags(ctx context.Context) ([]blog.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tags []blog.Tag
	query := s.adoptQuery("SELECT id, name, count FROM tags WHERE count > 0 ORDER BY count DESC, name")
	if err := s.db.SelectContext(ctx, &tags, query); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// recountTags refreshes tags.count from the links, must run inside the write transaction.
func (s *Store) recountTags(ctx context.Context, tx *sqlx.Tx) error {
	query := "UPDATE tags SET count = (SELECT COUNT(*) FROM post_tags WHERE post_tags.tag_id = tags.id)"
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to recount tags: %w", err)
	}
	return nil
}

// adoptQuery converts SQLite query syntax to PostgreSQL:
// - placeholders: ? → $1, $2, ...
// - case: excluded. → EXCLUDED.
func (s *Store) adoptQuery(query string) string {
	if s.dbType != enum.DBTypePostgres {
		return query
	}

	query = strings.ReplaceAll(query, "excluded.", "EXCLUDED.")

	// placeholder conversion
	result := make([]byte, 0, len(query)+10)
	paramNum := 1
	for i := range len(query) {
		if query[i] != '?' {
			result = append(result, query[i])
			continue
		}
		result = append(result, '$')
		result = append(result, strconv.Itoa(paramNum)...)
		paramNum++
	}
	return string(result)
}

// nullable maps empty optional text to NULL.
func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

// uniqueTags drops empty and repeated tags, keeping the first occurrence order.
func uniqueTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	res := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		res = append(res, t)
	}
	return res
}
