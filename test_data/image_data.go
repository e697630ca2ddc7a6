package testdata

// ImageHeight and ImageWidth are the fixture image dimensions.
const (
	ImageHeight = 16
	ImageWidth  = 16
)

// Image is a frozen 16x16 grayscale scene: textured background, a bright
// square, a vertical line at column 12 and a diagonal ramp in the lower right.
var Image = [ImageHeight][ImageWidth]int{
	{24, 27, 31, 30, 30, 31, 27, 24, 24, 24, 30, 29, 255, 26, 26, 25},
	{24, 30, 31, 29, 26, 25, 29, 29, 26, 32, 29, 25, 255, 24, 26, 29},
	{28, 27, 27, 32, 32, 26, 25, 32, 30, 30, 30, 30, 255, 32, 24, 31},
	{31, 30, 24, 205, 201, 201, 201, 202, 204, 30, 28, 31, 255, 30, 25, 27},
	{28, 29, 25, 204, 203, 207, 204, 208, 200, 27, 29, 30, 255, 30, 28, 45},
	{24, 28, 30, 207, 203, 203, 207, 205, 200, 26, 29, 31, 255, 26, 40, 55},
	{28, 25, 28, 204, 205, 206, 201, 203, 208, 29, 24, 26, 255, 46, 58, 64},
	{32, 32, 28, 202, 205, 202, 201, 206, 203, 27, 25, 31, 48, 56, 68, 84},
	{30, 27, 32, 200, 202, 201, 203, 202, 202, 25, 24, 48, 59, 69, 77, 96},
	{30, 25, 31, 30, 29, 24, 24, 29, 30, 30, 41, 53, 67, 79, 95, 104},
	{31, 30, 29, 26, 29, 26, 30, 29, 26, 46, 56, 69, 82, 96, 104, 116},
	{31, 29, 28, 27, 29, 31, 32, 32, 42, 57, 64, 80, 88, 108, 114, 127},
	{27, 25, 28, 28, 28, 25, 28, 47, 53, 68, 84, 96, 102, 120, 125, 140},
	{32, 27, 32, 30, 25, 30, 42, 55, 66, 79, 94, 106, 120, 126, 140, 153},
	{31, 29, 26, 24, 28, 44, 55, 71, 80, 88, 105, 114, 127, 136, 152, 167},
	{25, 31, 30, 27, 40, 52, 72, 80, 93, 101, 114, 129, 140, 154, 164, 173},
}

// ImageRows returns the fixture as freshly allocated rows.
func ImageRows() [][]int {
	rows := make([][]int, ImageHeight)
	for r := range rows {
		rows[r] = make([]int, ImageWidth)
		copy(rows[r], Image[r][:])
	}
	return rows
}
