package textinput

// Scroll-into-view math. Horizontal for single-line inputs (keep the cursor
// inside the viewport with an edge margin), vertical for multiline (keep the
// cursor's visual line inside the viewport with padding). Both are pure
// functions of current offsets so they can run after the frame's full event
// batch, once layout has answered.

// scrollIntoViewX returns the horizontal scroll offset that keeps cursorX
// within [scrollX+margin, scrollX+viewportW-margin]. Offsets never go
// negative, and content narrower than the viewport stays unscrolled.
func scrollIntoViewX(cursorX, textWidth, viewportW, margin, scrollX float32) float32 {
	if viewportW <= 0 || textWidth <= viewportW {
		return 0
	}
	if margin > viewportW/2 {
		margin = viewportW / 2
	}

	if cursorX < scrollX+margin {
		scrollX = cursorX - margin
	} else if cursorX > scrollX+viewportW-margin {
		scrollX = cursorX - viewportW + margin
	}

	maxScroll := textWidth - viewportW
	if scrollX > maxScroll {
		scrollX = maxScroll
	}
	if scrollX < 0 {
		scrollX = 0
	}
	return scrollX
}

// scrollIntoViewY returns the vertical scroll offset that keeps the line
// spanning [lineTop, lineBottom] visible within the viewport, padded at both
// edges. A line already fully visible leaves the offset unchanged.
func scrollIntoViewY(lineTop, lineBottom, contentHeight, viewportH, padding, scrollY float32) float32 {
	if viewportH <= 0 || contentHeight <= viewportH {
		return 0
	}
	if padding > viewportH/2 {
		padding = viewportH / 2
	}

	visibleTop := scrollY + padding
	visibleBottom := scrollY + viewportH - padding

	if lineBottom > visibleBottom {
		scrollY = lineBottom - viewportH + padding

		// Don't overshoot so far that the line top leaves the viewport.
		if max := lineTop - padding; scrollY > max {
			scrollY = max
		}
	} else if lineTop < visibleTop {
		scrollY = lineTop - padding
	}

	maxScroll := contentHeight - viewportH
	if scrollY > maxScroll {
		scrollY = maxScroll
	}
	if scrollY < 0 {
		scrollY = 0
	}
	return scrollY
}
