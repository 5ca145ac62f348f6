package menu

// Viewport is the visible window into the match set.
type Viewport struct {
	// Offset is the index in the match set of the first visible product.
	Offset int
	// Visible is the number of products shown.
	Visible   int
	MoreAbove bool
	MoreBelow bool
	// Page is counted from the selected product, or from Offset while a fixed row is selected.
	Page  int
	Pages int
}

// End returns the match index one past the last visible product.
func (v Viewport) End() int {
	return v.Offset + v.Visible
}

// ComputeViewport places the window so that selected stays visible.
// selected is an index into the match set, or negative when a fixed row is selected.
// Indicator lines for hidden products above or below take room from itemsPerPage,
// so the window is trimmed and re-anchored until nothing changes.
func ComputeViewport(selected, matchCount, itemsPerPage, offset int) Viewport {
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	if matchCount <= 0 {
		return Viewport{Page: 1, Pages: 1}
	}
	if selected >= matchCount {
		selected = matchCount - 1
	}

	if selected < 0 {
		offset = clamp(offset, 0, max(0, matchCount-itemsPerPage))
	} else {
		offset = clamp(offset, 0, matchCount-1)
		if selected < offset {
			offset = selected
		}
		if selected >= offset+itemsPerPage {
			offset = selected - itemsPerPage + 1
		}
	}

	visible := min(itemsPerPage, matchCount-offset)
	var above, below bool
	for {
		changed := false
		above = offset > 0
		below = offset+visible < matchCount

		budget := itemsPerPage
		if above {
			budget--
		}
		if below {
			budget--
		}
		budget = max(budget, 1)
		if visible > budget {
			visible = budget
			changed = true
		}
		if selected >= 0 && selected >= offset+visible {
			offset = selected - visible + 1
			changed = true
		}
		if rest := matchCount - offset; visible > rest {
			visible = rest
			changed = true
		}
		if !changed {
			break
		}
	}

	pages := (matchCount + itemsPerPage - 1) / itemsPerPage
	anchor := offset
	if selected >= 0 {
		anchor = selected
	}
	return Viewport{
		Offset:    offset,
		Visible:   visible,
		MoreAbove: above,
		MoreBelow: below,
		Page:      anchor/itemsPerPage + 1,
		Pages:     pages,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
