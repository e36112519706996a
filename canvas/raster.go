package canvas

import "math"

// Line draws with Bresenham's algorithm
func (cv *Canvas) Line(x1, y1, x2, y2 int, color uint8) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1

	for {
		cv.Pset(x, y, color)

		if (x == x2) && (y == y2) {
			return
		}

		e2 := 2 * err
		if e2 >= dy {
			if x == x2 {
				return
			}
			err += dy
			x += sx
		}
		if e2 <= dx {
			if y == y2 {
				return
			}
			err += dx
			y += sy
		}
	}
}

// Box draws an unfilled rectangle
func (cv *Canvas) Box(x1, y1, x2, y2 int, color uint8) {
	cv.Line(x1, y1, x2, y1, color)
	cv.Line(x1, y2, x2, y2, color)
	cv.Line(x1, y1, x1, y2, color)
	cv.Line(x2, y1, x2, y2, color)
}

// BoxFill draws a solid rectangle
func (cv *Canvas) BoxFill(x1, y1, x2, y2 int, color uint8) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			cv.Pset(x, y, color)
		}
	}
}

// Circle draws a full circle using the midpoint algorithm
func (cv *Canvas) Circle(cx, cy, r int, color uint8) {
	x := r
	y := 0
	p := 1 - r

	cv.circlePoints(cx, cy, x, y, color)

	for x > y {
		y++
		if p <= 0 {
			p += 2*y + 1
		} else {
			x--
			p += 2*y - 2*x + 1
		}
		cv.circlePoints(cx, cy, x, y, color)
	}
}

func (cv *Canvas) circlePoints(cx, cy, x, y int, color uint8) {
	cv.Pset(cx+x, cy+y, color)
	cv.Pset(cx-x, cy+y, color)
	cv.Pset(cx+x, cy-y, color)
	cv.Pset(cx-x, cy-y, color)
	cv.Pset(cx+y, cy+x, color)
	cv.Pset(cx-y, cy+x, color)
	cv.Pset(cx+y, cy-x, color)
	cv.Pset(cx-y, cy-x, color)
}

// Arc draws an ellipse arc by stepping the parameter. Angles are in
// radians, zero at three o'clock going counter-clockwise, and the
// end angle wraps when it is below the start. Aspect scales the
// vertical radius, values above one shrink the horizontal radius
// instead.
func (cv *Canvas) Arc(cx, cy, r int, color uint8, start, end, aspect float64) {
	rx := float64(r)
	ry := float64(r)
	if aspect <= 0 {
		aspect = 1
	}
	if aspect <= 1 {
		ry = rx * aspect
	} else {
		rx = ry / aspect
	}

	if end < start {
		end += 2 * math.Pi
	}

	step := 1.0 / math.Max(math.Max(rx, ry), 1.0)
	for angle := start; angle <= end; angle += step {
		px := cx + int(math.Round(rx*math.Cos(angle)))
		py := cy - int(math.Round(ry*math.Sin(angle))) // Y is inverted in screen coords
		cv.Pset(px, py, color)
	}

	px := cx + int(math.Round(rx*math.Cos(end)))
	py := cy - int(math.Round(ry*math.Sin(end)))
	cv.Pset(px, py, color)
}

// Paint flood fills the 4-connected region around the seed that
// shares the seed's original color. A seed already holding the fill
// color is a no-op, never an infinite loop.
func (cv *Canvas) Paint(x, y int, fill uint8) {
	if (x < 0) || (y < 0) || (x >= cv.width) || (y >= cv.height) {
		return
	}

	fill &= 0x0F
	target := uint8(cv.Point(x, y))
	if target == fill {
		return
	}

	cv.scanlineFill(x, y, target, fill)
}

func (cv *Canvas) scanlineFill(startX, startY int, target, fill uint8) {
	type span struct{ x, y int }
	stack := []span{{startX, startY}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := s.x, s.y

		if (x < 0) || (y < 0) || (x >= cv.width) || (y >= cv.height) {
			continue
		}
		if uint8(cv.Point(x, y)) != target {
			continue
		}

		left := x
		for (left > 0) && (uint8(cv.Point(left-1, y)) == target) {
			left--
		}

		right := x
		for (right < cv.width) && (uint8(cv.Point(right, y)) == target) {
			cv.Pset(right, y, fill)
			right++
		}

		for scanX := left; scanX < right; scanX++ {
			if (y > 0) && (uint8(cv.Point(scanX, y-1)) == target) {
				stack = append(stack, span{scanX, y - 1})
			}
			if (y < cv.height-1) && (uint8(cv.Point(scanX, y+1)) == target) {
				stack = append(stack, span{scanX, y + 1})
			}
		}
	}
}

// Bezier strokes a quadratic curve from (x1,y1) to (x2,y2) with
// control point (cx,cy). Thickness above one replicates the stroke
// along the perpendicular of each segment.
func (cv *Canvas) Bezier(x1, y1, cx, cy, x2, y2 int, color uint8, thickness int) {
	if thickness < 1 {
		thickness = 1
	}

	// sample count follows the control polygon length so the
	// segments stay about a pixel long
	steps := int(dist(x1, y1, cx, cy)+dist(cx, cy, x2, y2)) + 1
	if steps < 8 {
		steps = 8
	}

	px, py := x1, y1
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		fx := u*u*float64(x1) + 2*u*t*float64(cx) + t*t*float64(x2)
		fy := u*u*float64(y1) + 2*u*t*float64(cy) + t*t*float64(y2)
		nx := int(math.Round(fx))
		ny := int(math.Round(fy))

		cv.thickSegment(px, py, nx, ny, color, thickness)
		px, py = nx, ny
	}
}

// thickSegment draws a line plus parallel copies offset along the
// segment normal
func (cv *Canvas) thickSegment(x1, y1, x2, y2 int, color uint8, thickness int) {
	cv.Line(x1, y1, x2, y2, color)
	if thickness == 1 {
		return
	}

	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		length = 1
	}
	nx := -dy / length
	ny := dx / length

	for o := 1; o <= thickness/2; o++ {
		ox := int(math.Round(nx * float64(o)))
		oy := int(math.Round(ny * float64(o)))
		cv.Line(x1+ox, y1+oy, x2+ox, y2+oy, color)
		cv.Line(x1-ox, y1-oy, x2-ox, y2-oy, color)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func dist(x1, y1, x2, y2 int) float64 {
	return math.Hypot(float64(x2-x1), float64(y2-y1))
}
