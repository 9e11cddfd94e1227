package ui

// inCanvas reports whether pixel (x, y) is on a w×h canvas.
func inCanvas(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}
