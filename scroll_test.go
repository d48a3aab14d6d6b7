package textinput

import "testing"

func TestScrollIntoViewX(t *testing.T) {
	tests := []struct {
		name      string
		cursorX   float32
		textWidth float32
		viewportW float32
		margin    float32
		scrollX   float32
		want      float32
	}{
		{
			name:    "content fits, never scrolls",
			cursorX: 5, textWidth: 8, viewportW: 10, margin: 2, scrollX: 3,
			want: 0,
		},
		{
			name:    "cursor visible, offset unchanged",
			cursorX: 10, textWidth: 40, viewportW: 20, margin: 2, scrollX: 0,
			want: 0,
		},
		{
			name:    "cursor past right edge scrolls right",
			cursorX: 30, textWidth: 40, viewportW: 20, margin: 2, scrollX: 0,
			want: 12,
		},
		{
			name:    "cursor before left edge scrolls left",
			cursorX: 3, textWidth: 40, viewportW: 20, margin: 2, scrollX: 10,
			want: 1,
		},
		{
			name:    "clamped to max scroll",
			cursorX: 40, textWidth: 40, viewportW: 20, margin: 2, scrollX: 0,
			want: 20,
		},
		{
			name:    "never negative",
			cursorX: 0, textWidth: 40, viewportW: 20, margin: 2, scrollX: 1,
			want: 0,
		},
		{
			name:    "margin clamped to half viewport",
			cursorX: 20, textWidth: 40, viewportW: 10, margin: 50, scrollX: 0,
			want: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrollIntoViewX(tt.cursorX, tt.textWidth, tt.viewportW, tt.margin, tt.scrollX)
			if got != tt.want {
				t.Errorf("scrollIntoViewX = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScrollIntoViewY(t *testing.T) {
	tests := []struct {
		name          string
		lineTop       float32
		lineBottom    float32
		contentHeight float32
		viewportH     float32
		padding       float32
		scrollY       float32
		want          float32
	}{
		{
			name:    "content fits, never scrolls",
			lineTop: 10, lineBottom: 20, contentHeight: 30, viewportH: 40, padding: 4, scrollY: 5,
			want: 0,
		},
		{
			name:    "line visible, offset unchanged",
			lineTop: 10, lineBottom: 20, contentHeight: 100, viewportH: 40, padding: 4, scrollY: 0,
			want: 0,
		},
		{
			name:    "line below viewport scrolls down",
			lineTop: 60, lineBottom: 70, contentHeight: 100, viewportH: 40, padding: 4, scrollY: 0,
			want: 34,
		},
		{
			name:    "line above viewport scrolls up",
			lineTop: 10, lineBottom: 20, contentHeight: 100, viewportH: 40, padding: 4, scrollY: 30,
			want: 6,
		},
		{
			name:    "clamped to max scroll",
			lineTop: 90, lineBottom: 100, contentHeight: 100, viewportH: 40, padding: 4, scrollY: 0,
			want: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrollIntoViewY(tt.lineTop, tt.lineBottom, tt.contentHeight, tt.viewportH, tt.padding, tt.scrollY)
			if got != tt.want {
				t.Errorf("scrollIntoViewY = %v, want %v", got, tt.want)
			}
		})
	}
}
