package raster

import (
	"image"
	"image/color"
	"math"
)

// drawLine draws a one pixel wide line after clipping it to the image
// bounds (Liang-Barsky), then walks it with Bresenham.
func drawLine(img *image.NRGBA, x0, y0, x1, y1 float32, c color.NRGBA) {
	w, h := float32(img.Rect.Dx()), float32(img.Rect.Dy())
	if !clipRect(&x0, &y0, &x1, &y1, 0, 0, w-1, h-1) {
		return
	}

	ix0, iy0 := int(math.Round(float64(x0))), int(math.Round(float64(y0)))
	ix1, iy1 := int(math.Round(float64(x1))), int(math.Round(float64(y1)))

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	e := dx + dy

	for {
		img.SetNRGBA(ix0, iy0, c)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ix0 += sx
		}
		if e2 <= dx {
			e += dx
			iy0 += sy
		}
	}
}

// clipRect clips the segment to [minX,maxX] x [minY,maxY] in place.
// It returns false when nothing of the segment is inside.
func clipRect(x0, y0, x1, y1 *float32, minX, minY, maxX, maxY float32) bool {
	dx, dy := *x1-*x0, *y1-*y0
	t0, t1 := float32(0), float32(1)

	edges := [4][2]float32{
		{-dx, *x0 - minX},
		{dx, maxX - *x0},
		{-dy, *y0 - minY},
		{dy, maxY - *y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
	}

	nx0, ny0 := *x0+t0*dx, *y0+t0*dy
	nx1, ny1 := *x0+t1*dx, *y0+t1*dy
	*x0, *y0, *x1, *y1 = nx0, ny0, nx1, ny1
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
