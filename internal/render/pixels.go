package render

import "image/color"

// rgba8 converts c to straight 8-bit channels.
func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA writes one RGBA pixel per cell into buf: on for live
// cells, off for dead ones. buf must hold 4*len(cells) bytes.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := rgba8(on), rgba8(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// CellAt maps a screen position to the cell under it for a board drawn with
// square tiles of the given size. ok is false outside the board.
func CellAt(px, py, tile, w, h int) (x, y int, ok bool) {
	if tile <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/tile, py/tile
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
