package blog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/umputun/shelf/app/enum"
)

// default limits for list queries
const (
	DefaultFeaturedLimit = 6
	DefaultRecentLimit   = 10
	DefaultRelatedLimit  = 4

	featuredMinRating = 4
)

// FilterPosts applies f to posts and returns a new slice, posts is not modified.
func FilterPosts(posts []Post, f Filters) []Post {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	res := make([]Post, 0, len(posts))
	for _, p := range posts {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if len(f.Tags) > 0 && !slices.ContainsFunc(f.Tags, p.HasTag) {
			continue
		}
		if f.MinRating > 0 && p.Rating < f.MinRating {
			continue
		}
		if query != "" && !matches(p, query) {
			continue
		}
		res = append(res, p)
	}
	sortPosts(res, f.SortBy, f.SortOrder)
	return res
}

// SearchPosts returns posts matching query in title, description, content or tags.
func SearchPosts(posts []Post, query string) []Post {
	return FilterPosts(posts, Filters{Query: query})
}

// SortByDate returns a copy of posts, newest first.
func SortByDate(posts []Post) []Post {
	res := slices.Clone(posts)
	sortPosts(res, enum.SortByDate, enum.SortOrderDesc)
	return res
}

// FeaturedPosts returns posts rated 4 and above, best rated first and newest
// first within a rating. limit <= 0 means DefaultFeaturedLimit.
func FeaturedPosts(posts []Post, limit int) []Post {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	res := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Rating >= featuredMinRating {
			res = append(res, p)
		}
	}
	slices.SortStableFunc(res, func(a, b Post) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return b.Date.Compare(a.Date)
	})
	return head(res, limit)
}

// RecentPosts returns the newest posts. limit <= 0 means DefaultRecentLimit.
func RecentPosts(posts []Post, limit int) []Post {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return head(SortByDate(posts), limit)
}

// PostsByRating returns posts with rating within [minRating, maxRating].
// maxRating <= 0 means MaxRating.
func PostsByRating(posts []Post, minRating, maxRating int) []Post {
	if maxRating <= 0 {
		maxRating = MaxRating
	}
	var res []Post
	for _, p := range posts {
		if p.Rating >= minRating && p.Rating <= maxRating {
			res = append(res, p)
		}
	}
	return res
}

// PostsByCategory returns posts in the category.
func PostsByCategory(posts []Post, categoryID string) []Post {
	return FilterPosts(posts, Filters{Category: categoryID})
}

// PostsByTag returns posts carrying tag.
func PostsByTag(posts []Post, tag string) []Post {
	return FilterPosts(posts, Filters{Tags: []string{tag}})
}

// FindPost returns the post with id.
func FindPost(posts []Post, id string) (Post, bool) {
	i := slices.IndexFunc(posts, func(p Post) bool { return p.ID == id })
	if i < 0 {
		return Post{}, false
	}
	return posts[i], true
}

// FindCategory returns the category with id.
func FindCategory(categories []Category, id string) (Category, bool) {
	i := slices.IndexFunc(categories, func(c Category) bool { return c.ID == id })
	if i < 0 {
		return Category{}, false
	}
	return categories[i], true
}

// RelatedPosts ranks other posts by similarity to the post with id: 3 points
// for the same category and 2 per shared tag. Posts without any points are
// dropped. Unknown id gives nil. limit <= 0 means DefaultRelatedLimit.
func RelatedPosts(posts []Post, id string, limit int) []Post {
	current, ok := FindPost(posts, id)
	if !ok {
		return nil
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	type scored struct {
		post  Post
		score int
	}
	var candidates []scored
	for _, p := range posts {
		if p.ID == id {
			continue
		}
		score := 0
		if p.Category == current.Category {
			score += 3
		}
		for _, t := range p.Tags {
			if current.HasTag(t) {
				score += 2
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{post: p, score: score})
		}
	}
	slices.SortStableFunc(candidates, func(a, b scored) int { return cmp.Compare(b.score, a.score) })

	res := make([]Post, 0, min(limit, len(candidates)))
	for _, c := range head(candidates, limit) {
		res = append(res, c.post)
	}
	return res
}

// TagCounts returns every tag used by posts with its usage count,
// most used first and alphabetical within the same count.
func TagCounts(posts []Post) []Tag {
	counts := map[string]int{}
	for _, p := range posts {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	res := make([]Tag, 0, len(counts))
	for name, n := range counts {
		res = append(res, Tag{ID: name, Name: name, Count: n})
	}
	slices.SortFunc(res, func(a, b Tag) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return res
}

// matches checks lower-cased query against the searchable fields.
func matches(p Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Content), query) {
		return true
	}
	return slices.ContainsFunc(p.Tags, func(t string) bool {
		return strings.Contains(strings.ToLower(t), query)
	})
}

// sortPosts sorts in place, a zero by leaves the order untouched.
func sortPosts(posts []Post, by enum.SortBy, order enum.SortOrder) {
	var compare func(a, b Post) int
	switch by {
	case enum.SortByDate:
		compare = func(a, b Post) int { return a.Date.Compare(b.Date) }
	case enum.SortByRating:
		compare = func(a, b Post) int { return cmp.Compare(a.Rating, b.Rating) }
	case enum.SortByTitle:
		compare = func(a, b Post) int { return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) }
	default:
		return
	}
	if order == enum.SortOrderAsc {
		slices.SortStableFunc(posts, compare)
		return
	}
	slices.SortStableFunc(posts, func(a, b Post) int { return compare(b, a) })
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
