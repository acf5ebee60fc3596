// Package seed loads posts and categories from json, yaml or toml documents
// and imports them into the store, optionally re-importing when the file changes.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/shelf/app/blog"
)

//go:generate moq -out mocks/writer.go -pkg mocks -skip-ensure -fmt goimports . Writer

// Writer is the subset of the store used by Import.
type Writer interface {
	SaveCategory(ctx context.Context, c blog.Category) error
	SavePost(ctx context.Context, p blog.Post) error
}

// Document is the content of a seed file.
type Document struct {
	Categories []Category `json:"categories,omitempty" yaml:"categories" toml:"categories"`
	Posts      []Post     `json:"posts,omitempty" yaml:"posts" toml:"posts"`
}

// Category is a category entry of a seed file.
type Category struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description,omitempty" yaml:"description" toml:"description"`
	Color       string `json:"color,omitempty" yaml:"color" toml:"color"`
	Icon        string `json:"icon,omitempty" yaml:"icon" toml:"icon"`
}

// Post is a post entry of a seed file.
type Post struct {
	ID               string   `json:"id" yaml:"id" toml:"id"`
	Title            string   `json:"title" yaml:"title" toml:"title"`
	Description      string   `json:"description,omitempty" yaml:"description" toml:"description"`
	Content          string   `json:"content,omitempty" yaml:"content" toml:"content"`
	Category         string   `json:"category" yaml:"category" toml:"category"`
	Tags             []string `json:"tags,omitempty" yaml:"tags" toml:"tags"`
	Date             Date     `json:"date" yaml:"date" toml:"date"`
	Rating           int      `json:"rating" yaml:"rating" toml:"rating" jsonschema:"minimum=1,maximum=5"`
	ImageURL         string   `json:"imageUrl,omitempty" yaml:"imageUrl" toml:"imageUrl"`
	Source           string   `json:"source,omitempty" yaml:"source" toml:"source"`
	PersonalThoughts string   `json:"personalThoughts,omitempty" yaml:"personalThoughts" toml:"personalThoughts"`
}

// Date accepts a plain day (2006-01-02) or a full RFC3339 timestamp.
type Date struct {
	t time.Time
}

// Time returns the parsed time in UTC.
func (d Date) Time() time.Time { return d.t }

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", time.DateOnly}

// UnmarshalText implements encoding.TextUnmarshaler, used by all three decoders.
func (d *Date) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.t = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.t.Format(time.RFC3339)), nil
}

// Result reports what Import did.
type Result struct {
	Categories int
	Posts      int
	Skipped    int
}

// Load reads a seed document, the format is picked by the file extension.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return Document{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a seed document from data in the format named by ext (".json", ".yaml", ".yml", ".toml").
func Parse(data []byte, ext string) (Document, error) {
	var doc Document
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("failed to parse json seed: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("failed to parse yaml seed: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return Document{}, fmt.Errorf("failed to parse toml seed: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unsupported seed format %q", ext)
	}
	return doc, nil
}

// Import writes categories first, then posts. Invalid posts are skipped with a warning,
// write errors abort the import.
func Import(ctx context.Context, w Writer, doc Document) (Result, error) {
	var res Result
	for _, c := range doc.Categories {
		cat := blog.Category{ID: c.ID, Name: c.Name, Description: c.Description, Color: c.Color, Icon: c.Icon}
		if err := cat.Validate(); err != nil {
			log.Printf("[WARN] skip category %q: %v", c.ID, err)
			res.Skipped++
			continue
		}
		if err := w.SaveCategory(ctx, cat); err != nil {
			return res, fmt.Errorf("failed to save category %q: %w", c.ID, err)
		}
		res.Categories++
	}

	for _, p := range doc.Posts {
		post := p.toPost()
		if err := post.Validate(); err != nil {
			log.Printf("[WARN] skip post %q: %v", p.ID, err)
			res.Skipped++
			continue
		}
		if err := w.SavePost(ctx, post); err != nil {
			return res, fmt.Errorf("failed to save post %q: %w", p.ID, err)
		}
		res.Posts++
	}
	return res, nil
}

// ImportFile loads the seed file and imports it.
func ImportFile(ctx context.Context, w Writer, path string) (Result, error) {
	doc, err := Load(path)
	if err != nil {
		return Result{}, err
	}
	res, err := Import(ctx, w, doc)
	if err != nil {
		return res, err
	}
	log.Printf("[INFO] imported %s: %d categories, %d posts, %d skipped", path, res.Categories, res.Posts, res.Skipped)
	return res, nil
}

func (p Post) toPost() blog.Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return blog.Post{
		ID: p.ID, Title: p.Title, Description: p.Description, Content: p.Content, Category: p.Category,
		Tags: tags, Date: p.Date.Time(), Rating: p.Rating, ImageURL: p.ImageURL, Source: p.Source,
		PersonalThoughts: p.PersonalThoughts,
	}
}
