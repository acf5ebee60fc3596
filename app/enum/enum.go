// Package enum defines the enumerated types used across shelf.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

// theme is the user's explicit preference, "system" follows the host
const (
	themeSystem theme = iota // enum:alias=
	themeLight
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type scheme -lower
type scheme int

// scheme is a concrete color scheme, either reported by the host or resolved
const (
	schemeLight scheme = iota
	schemeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type sortBy -lower
type sortBy int

const (
	sortByDate sortBy = iota
	sortByRating
	sortByTitle
)

//go:generate go run github.com/go-pkgz/enum@latest -type sortOrder -lower
type sortOrder int

const (
	sortOrderDesc sortOrder = iota // enum:alias=descending
	sortOrderAsc                   // enum:alias=ascending
)

//go:generate go run github.com/go-pkgz/enum@latest -type dbType -lower
type dbType int

const (
	dbTypeSQLite   dbType = iota // enum:alias=sqlite
	dbTypePostgres               // enum:alias=postgres,postgresql
)

//go:generate go run github.com/go-pkgz/enum@latest -type viewMode -lower
type viewMode int

const (
	viewModeGrid viewMode = iota
	viewModeList
)
