package enum

// Label returns a human-readable label for the sort field.
func (s SortBy) Label() string {
	switch s {
	case SortByRating:
		return "Rating"
	case SortByTitle:
		return "Title"
	default:
		return "Date"
	}
}

// Toggle flips the sort direction.
func (o SortOrder) Toggle() SortOrder {
	if o == SortOrderAsc {
		return SortOrderDesc
	}
	return SortOrderAsc
}
