package core

// FilterState is the category selection owned by the presentation layer.
// A nil Selected means every movement is shown.
type FilterState struct {
	Selected *MovementCategory
}

// Select returns a state filtering on c.
func Select(c MovementCategory) FilterState {
	return FilterState{Selected: &c}
}

// Apply filters movements with the current selection.
func (f FilterState) Apply(movements []Movement) []Movement {
	return FilterByCategory(movements, f.Selected)
}

// FilterByCategory returns the movements whose category equals selected,
// keeping their relative order. With a nil selection the result holds the
// same movements in the same order. The input is never modified.
func FilterByCategory(movements []Movement, selected *MovementCategory) []Movement {
	if selected == nil {
		out := make([]Movement, len(movements))
		copy(out, movements)
		return out
	}
	out := make([]Movement, 0, len(movements))
	for _, m := range movements {
		if m.Category == *selected {
			out = append(out, m)
		}
	}
	return out
}
