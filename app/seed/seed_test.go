package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/seed/mocks"
	"github.com/umputun/shelf/app/store"
)

const jsonDoc = `{
  "categories": [
    {"id": "books", "name": "Books", "description": "reading", "color": "blue", "icon": "book"},
    {"id": "videos", "name": "Videos", "color": "red"}
  ],
  "posts": [
    {"id": "go-book", "title": "The Go Book", "description": "classic", "content": "text", "category": "books",
     "tags": ["go", "books"], "date": "2024-01-15", "rating": 5, "imageUrl": "https://example.com/go.png"},
    {"id": "talk", "title": "A Talk", "category": "videos", "date": "2024-02-01T10:00:00Z", "rating": 4,
     "personalThoughts": "worth it"}
  ]
}`

const yamlDoc = `
categories:
  - id: books
    name: Books
    description: reading
    color: blue
    icon: book
  - id: videos
    name: Videos
    color: red
posts:
  - id: go-book
    title: The Go Book
    description: classic
    content: text
    category: books
    tags: [go, books]
    date: 2024-01-15
    rating: 5
    imageUrl: https://example.com/go.png
  - id: talk
    title: A Talk
    category: videos
    date: "2024-02-01T10:00:00Z"
    rating: 4
    personalThoughts: worth it
`

const tomlDoc = `
[[categories]]
id = "books"
name = "Books"
description = "reading"
color = "blue"
icon = "book"

[[categories]]
id = "videos"
name = "Videos"
color = "red"

[[posts]]
id = "go-book"
title = "The Go Book"
description = "classic"
content = "text"
category = "books"
tags = ["go", "books"]
date = 2024-01-15
rating = 5
imageUrl = "https://example.com/go.png"

[[posts]]
id = "talk"
title = "A Talk"
category = "videos"
date = "2024-02-01T10:00:00Z"
rating = 4
personalThoughts = "worth it"
`

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{"json", jsonDoc, ".json"},
		{"yaml", yamlDoc, ".yaml"},
		{"yml", yamlDoc, "yml"},
		{"toml", tomlDoc, ".TOML"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse([]byte(tc.data), tc.ext)
			require.NoError(t, err)

			require.Len(t, doc.Categories, 2)
			assert.Equal(t, Category{ID: "books", Name: "Books", Description: "reading", Color: "blue", Icon: "book"},
				doc.Categories[0])
			assert.Equal(t, "Videos", doc.Categories[1].Name)

			require.Len(t, doc.Posts, 2)
			p := doc.Posts[0]
			assert.Equal(t, "go-book", p.ID)
			assert.Equal(t, []string{"go", "books"}, p.Tags)
			assert.Equal(t, 5, p.Rating)
			assert.Equal(t, "https://example.com/go.png", p.ImageURL)
			assert.True(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Equal(p.Date.Time()), "got %v", p.Date.Time())

			p = doc.Posts[1]
			assert.Equal(t, "worth it", p.PersonalThoughts)
			assert.Nil(t, p.Tags)
			assert.True(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC).Equal(p.Date.Time()))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("{}"), ".xml")
	require.ErrorContains(t, err, "unsupported seed format")

	_, err = Parse([]byte("{broken"), ".json")
	require.ErrorContains(t, err, "failed to parse json seed")

	_, err = Parse([]byte(`{"posts": [{"id": "x", "date": "15/01/2024"}]}`), ".json")
	require.ErrorContains(t, err, "invalid date")
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15T08:30:00+02:00", time.Date(2024, 1, 15, 6, 30, 0, 0, time.UTC)},
		{"2024-01-15T08:30:00", time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"2024-01-15 08:30:00", time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"", time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var d Date
			require.NoError(t, d.UnmarshalText([]byte(tc.in)))
			assert.True(t, tc.want.Equal(d.Time()), "got %v", d.Time())
		})
	}

	var d Date
	require.NoError(t, d.UnmarshalText([]byte("2024-03-04")))
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04T00:00:00Z", string(text))
}

func TestImport(t *testing.T) {
	t.Run("categories before posts, invalid entries skipped", func(t *testing.T) {
		var order []string
		w := &mocks.WriterMock{
			SaveCategoryFunc: func(_ context.Context, c blog.Category) error {
				order = append(order, "category:"+c.ID)
				return nil
			},
			SavePostFunc: func(_ context.Context, p blog.Post) error {
				order = append(order, "post:"+p.ID)
				return nil
			},
		}
		doc := Document{
			Posts: []Post{
				{ID: "p1", Title: "one", Category: "books", Rating: 3},
				{ID: "p2", Title: "", Category: "books", Rating: 3},
				{ID: "p3", Title: "three", Category: "books", Rating: 9},
			},
			Categories: []Category{{ID: "books", Name: "Books"}, {ID: "nameless"}},
		}

		res, err := Import(context.Background(), w, doc)
		require.NoError(t, err)
		assert.Equal(t, Result{Categories: 1, Posts: 1, Skipped: 3}, res)
		assert.Equal(t, []string{"category:books", "post:p1"}, order)
		assert.Equal(t, []string{}, w.SavePostCalls()[0].P.Tags, "nil tags normalized")
	})

	t.Run("write error aborts", func(t *testing.T) {
		w := &mocks.WriterMock{
			SaveCategoryFunc: func(context.Context, blog.Category) error { return nil },
			SavePostFunc:     func(context.Context, blog.Post) error { return errors.New("db down") },
		}
		doc := Document{
			Categories: []Category{{ID: "books", Name: "Books"}},
			Posts:      []Post{{ID: "p1", Title: "one", Category: "books", Rating: 3}, {ID: "p2", Title: "two", Category: "books", Rating: 3}},
		}
		res, err := Import(context.Background(), w, doc)
		require.ErrorContains(t, err, "db down")
		assert.Equal(t, 1, res.Categories)
		assert.Zero(t, res.Posts)
		assert.Len(t, w.SavePostCalls(), 1)
	})
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	st, err := store.New(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer st.Close()

	res, err := ImportFile(context.Background(), st, path)
	require.NoError(t, err)
	assert.Equal(t, Result{Categories: 2, Posts: 2}, res)

	post, err := st.GetPost(context.Background(), "go-book")
	require.NoError(t, err)
	assert.Equal(t, "The Go Book", post.Title)
	assert.Equal(t, []string{"go", "books"}, post.Tags)

	_, err = ImportFile(context.Background(), st, filepath.Join(dir, "missing.json"))
	require.ErrorContains(t, err, "failed to read seed file")
}
