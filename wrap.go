package textinput

import "unicode"

// WrappedLine is a single visual line of wrapped text.
type WrappedLine struct {
	Text       string // content of this visual line
	StartIndex int    // rune index in the original text where the line starts
	EndIndex   int    // rune index where the line ends (exclusive)
}

// WrapText breaks text into visual lines that fit within maxWidth pixels,
// hard-breaking on newlines and soft-wrapping at the last whitespace
// boundary (falling back to a mid-word break when a single word overflows).
// Reports ok=false when the measurer's layout is not ready yet; the result
// slice is nil in that case.
func WrapText(text string, maxWidth float32, m Measurer) (lines []WrappedLine, ok bool) {
	if text == "" {
		return []WrappedLine{{}}, true
	}

	runes := []rune(text)
	lineStart := 0
	lineEnd := 0
	lastBreak := 0

	for lineEnd < len(runes) {
		r := runes[lineEnd]

		if r == '\n' {
			lines = append(lines, WrappedLine{
				Text:       string(runes[lineStart:lineEnd]),
				StartIndex: lineStart,
				EndIndex:   lineEnd,
			})
			lineStart = lineEnd + 1 // skip the newline
			lineEnd = lineStart
			lastBreak = lineStart
			continue
		}

		if unicode.IsSpace(r) {
			lastBreak = lineEnd + 1
		}

		lineText := string(runes[lineStart : lineEnd+1])
		lineWidth, ready := m.MeasureToCursor(lineText, lineEnd+1-lineStart)
		if !ready {
			return nil, false
		}

		if maxWidth > 0 && lineWidth > maxWidth && lineEnd > lineStart {
			breakAt := lineEnd
			if lastBreak > lineStart {
				breakAt = lastBreak
			}

			lines = append(lines, WrappedLine{
				Text:       string(runes[lineStart:breakAt]),
				StartIndex: lineStart,
				EndIndex:   breakAt,
			})

			// Drop leading spaces on the continuation line.
			lineStart = breakAt
			for lineStart < len(runes) && runes[lineStart] == ' ' {
				lineStart++
			}
			lineEnd = lineStart
			lastBreak = lineStart
			continue
		}

		lineEnd++
	}

	if lineStart < len(runes) {
		lines = append(lines, WrappedLine{
			Text:       string(runes[lineStart:]),
			StartIndex: lineStart,
			EndIndex:   len(runes),
		})
	} else if len(runes) > 0 && runes[len(runes)-1] == '\n' {
		// Trailing newline gets an empty line so the cursor can sit on it.
		lines = append(lines, WrappedLine{StartIndex: lineStart, EndIndex: lineStart})
	}

	if len(lines) == 0 {
		lines = append(lines, WrappedLine{})
	}
	return lines, true
}

// CursorPositionInWrappedText locates a cursor rune index within wrapped
// lines: the visual row and the x offset in pixels within that row.
func CursorPositionInWrappedText(lines []WrappedLine, cursor int, m Measurer) (row int, colX float32, ok bool) {
	for i, line := range lines {
		last := i == len(lines)-1
		if cursor >= line.StartIndex && (cursor < line.EndIndex || (last && cursor <= line.EndIndex)) {
			offset := cursor - line.StartIndex
			if offset > 0 && line.Text != "" {
				colX, ok = m.MeasureToCursor(line.Text, offset)
				if !ok {
					return 0, 0, false
				}
			}
			return i, colX, true
		}
		// Cursor exactly at the end of a line that broke here.
		if cursor == line.EndIndex && !last {
			x, ready := m.MeasureToCursor(line.Text, len([]rune(line.Text)))
			return i, x, ready
		}
	}

	if len(lines) == 0 {
		return 0, 0, true
	}
	lastLine := lines[len(lines)-1]
	x, ready := m.MeasureToCursor(lastLine.Text, len([]rune(lastLine.Text)))
	return len(lines) - 1, x, ready
}

// CursorIndexFromPosition maps a visual row and pixel x offset back to a
// rune index in the original text, snapping to the nearest insertion point.
func CursorIndexFromPosition(lines []WrappedLine, row int, x float32, m Measurer) (int, bool) {
	if len(lines) == 0 {
		return 0, true
	}
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}

	line := lines[row]
	lineRunes := []rune(line.Text)

	for i := 0; i < len(lineRunes); i++ {
		here, ready := m.MeasureToCursor(line.Text, i)
		if !ready {
			return 0, false
		}
		next, ready := m.MeasureToCursor(line.Text, i+1)
		if !ready {
			return 0, false
		}
		if x < (here+next)/2 {
			return line.StartIndex + i, true
		}
	}
	return line.StartIndex + len(lineRunes), true
}

// MoveCursorVertical moves the cursor up or down by delta visual lines in
// wrapped text, preserving the horizontal pixel position where possible.
// At the top edge an upward move goes to the buffer start; at the bottom
// edge a downward move goes to the buffer end. Returns the unchanged cursor
// when the measurer is not ready.
func MoveCursorVertical(text string, cursor, delta int, maxWidth float32, m Measurer) int {
	lines, ok := WrapText(text, maxWidth, m)
	if !ok {
		return cursor
	}

	row, colX, ok := CursorPositionInWrappedText(lines, cursor, m)
	if !ok {
		return cursor
	}

	target := row + delta
	if target < 0 {
		target = 0
	}
	if target >= len(lines) {
		target = len(lines) - 1
	}

	if target == row {
		if delta < 0 {
			return 0
		}
		if delta > 0 {
			return len([]rune(text))
		}
		return cursor
	}

	pos, ok := CursorIndexFromPosition(lines, target, colX, m)
	if !ok {
		return cursor
	}
	return pos
}
