package enum

// Toggle returns the opposite view mode (grid↔list).
func (v ViewMode) Toggle() ViewMode {
	if v == ViewModeList {
		return ViewModeGrid
	}
	return ViewModeList
}
