package blog

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// FormatDate renders t as "January 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// RelativeDate describes t relative to now, e.g. "Yesterday" or "3 weeks ago".
func RelativeDate(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return strconv.Itoa(days) + " days ago"
	case days < 30:
		return strconv.Itoa(days/7) + " weeks ago"
	case days < 365:
		return strconv.Itoa(days/30) + " months ago"
	default:
		return strconv.Itoa(days/365) + " years ago"
	}
}

// Truncate cuts s to at most maxLen runes and appends "..." when cut.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}

// Slug makes a url-friendly identifier from text.
func Slug(text string) string {
	return strings.Trim(slugRe.ReplaceAllString(strings.ToLower(text), "-"), "-")
}

// CapitalizeWords upper-cases the first letter of each space-separated word
// and lower-cases the rest.
func CapitalizeWords(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// Stars renders rating as filled and empty stars out of MaxRating.
func Stars(rating int) string {
	rating = max(0, min(rating, MaxRating))
	return strings.Repeat("★", rating) + strings.Repeat("☆", MaxRating-rating)
}

// RatingClass returns the text color class for rating.
func RatingClass(rating int) string {
	switch {
	case rating >= 5:
		return "rating-excellent"
	case rating >= 4:
		return "rating-good"
	case rating >= 3:
		return "rating-fair"
	case rating >= 2:
		return "rating-poor"
	default:
		return "rating-bad"
	}
}

// RatingBgClass returns the background class for rating.
func RatingBgClass(rating int) string {
	return RatingClass(rating) + "-bg"
}

// IsValidURL reports whether s is an absolute URL with scheme and host.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Domain returns the host of rawURL without a leading "www.", empty if invalid.
func Domain(rawURL string) string {
	if !IsValidURL(rawURL) {
		return ""
	}
	u, _ := url.Parse(rawURL)
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// Initials returns up to two upper-cased initials of name.
func Initials(name string) string {
	var res []rune
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		res = append(res, unicode.ToUpper(r))
		if len(res) == 2 {
			break
		}
	}
	return string(res)
}

// FormatFileSize renders bytes in Bytes, KB, MB or GB rounded to two decimals.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return strconv.FormatFloat(math.Round(size*100)/100, 'f', -1, 64) + " " + units[i]
}
