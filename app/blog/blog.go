// Package blog defines posts, categories and tags, and the in-memory queries
// used to filter, rank and relate posts.
package blog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/shelf/app/enum"
)

// MaxRating is the top of the rating scale.
const MaxRating = 5

// Post is a single article.
type Post struct {
	ID               string    `json:"id" yaml:"id" db:"id"`
	Title            string    `json:"title" yaml:"title" db:"title"`
	Description      string    `json:"description" yaml:"description" db:"description"`
	Content          string    `json:"content" yaml:"content" db:"content"`
	Category         string    `json:"category" yaml:"category" db:"category"`
	Tags             []string  `json:"tags" yaml:"tags" db:"-"`
	Date             time.Time `json:"date" yaml:"date" db:"date"`
	Rating           int       `json:"rating" yaml:"rating" db:"rating"`
	ImageURL         string    `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty" db:"image_url"`
	Source           string    `json:"source,omitempty" yaml:"source,omitempty" db:"source"`
	PersonalThoughts string    `json:"personalThoughts,omitempty" yaml:"personalThoughts,omitempty" db:"personal_thoughts"`
}

// Category groups posts.
type Category struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Color       string `json:"color" db:"color"`
	Icon        string `json:"icon,omitempty" db:"icon"`
}

// Tag is a label with the number of posts carrying it.
type Tag struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Count int    `json:"count" db:"count"`
}

// Filters are the criteria for FilterPosts. Zero fields don't filter,
// a zero SortBy keeps the input order.
type Filters struct {
	Category  string
	Tags      []string
	MinRating int
	Query     string
	SortBy    enum.SortBy
	SortOrder enum.SortOrder
}

// Active reports whether any narrowing criteria is set.
func (f Filters) Active() bool {
	return f.Category != "" || len(f.Tags) > 0 || f.MinRating > 0 || strings.TrimSpace(f.Query) != ""
}

// Validate checks required fields and the rating range.
func (p Post) Validate() error {
	var errs []error
	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, errors.New("category is required"))
	}
	if p.Rating < 1 || p.Rating > MaxRating {
		errs = append(errs, fmt.Errorf("rating %d is out of range 1..%d", p.Rating, MaxRating))
	}
	return errors.Join(errs...)
}

// HasTag reports whether the post carries tag.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Validate checks required category fields.
func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}
