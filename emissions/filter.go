package emissions

// ============================================================================
// FILTERS — Country Selection via TableView
// ============================================================================
// Single-pass filter returning a subView (index list into parent) — zero
// data copy. Matching is exact: country names are case- and
// spelling-sensitive, same as the source columns.
// ============================================================================

// FilterCountry returns a view of the rows whose Country matches exactly.
// Row order of the parent view is preserved.
func FilterCountry(view TableView, country string) TableView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if view.At(i).Country == country {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}
