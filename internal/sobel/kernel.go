package sobel

// MaxIntensity is the saturation value of a result pixel.
const MaxIntensity = 255

// Neighborhood is a 3x3 window labelled row-major a..i. The centre e is
// never read by the kernels.
//
//	a b c
//	d e f
//	g h i
type Neighborhood struct {
	A, B, C int
	D, F    int
	G, H, I int
}

// Exact computes the clamped Sobel gradient magnitude from all eight
// neighbours.
func Exact(a, b, c, d, f, g, h, i int) int {
	gx := (f*2 + c + i) - (d*2 + a + g)
	gy := (a + b*2 + c) - (g + h*2 + i)

	res := abs(gx) + abs(gy)
	if res > MaxIntensity {
		res = MaxIntensity
	}
	return res
}

// SW1 reads seven neighbours: d is replaced by a.
func SW1(a, b, c, f, g, h, i int) int {
	return Exact(a, b, c, a, f, g, h, i)
}

// SW2 reads six neighbours: d is replaced by a, b by c.
func SW2(a, c, f, g, h, i int) int {
	return Exact(a, c, c, a, f, g, h, i)
}

// SW3 reads five neighbours: d is replaced by a, b by c, f by i.
func SW3(a, c, g, h, i int) int {
	return Exact(a, c, c, a, i, g, h, i)
}

// SW4 reads four neighbours: d is replaced by a, b by c, f by i, h by g.
func SW4(a, c, g, i int) int {
	return Exact(a, c, c, a, i, g, g, i)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
