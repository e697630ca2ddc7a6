package sobel

// EmitFunc receives each computed interior pixel in row-major order.
type EmitFunc func(row, col, value int)

// Scan filters every interior pixel of src with the variant. Border pixels of
// the returned grid stay zero. emit may be nil.
func Scan(src *Grid, v Variant, emit EmitFunc) *Grid {
	dst := NewGrid(src.Rows, src.Cols)
	ScanRows(src, dst, v, 1, src.Rows-1, emit)
	return dst
}

// ScanRows filters interior rows [start, end) of src into dst. Rows outside
// the interior are skipped, so callers may split 1..Rows-1 freely.
func ScanRows(src, dst *Grid, v Variant, start, end int, emit EmitFunc) {
	if start < 1 {
		start = 1
	}
	if end > src.Rows-1 {
		end = src.Rows - 1
	}
	for r := start; r < end; r++ {
		for c := 1; c < src.Cols-1; c++ {
			out := v.Apply(src.Gather(r, c))
			dst.Set(r, c, out)
			if emit != nil {
				emit(r, c, out)
			}
		}
	}
}

// EmitInterior replays the interior of an already filtered grid in
// row-major order.
func EmitInterior(g *Grid, emit EmitFunc) {
	for r := 1; r < g.Rows-1; r++ {
		for c := 1; c < g.Cols-1; c++ {
			emit(r, c, g.At(r, c))
		}
	}
}
