package tui

import (
	"math"
	"strings"
)

type vec3 struct {
	x, y, z float64
}

var cubeVertices = [8]vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

const (
	edgeRune   = '.'
	vertexRune = 'o'

	cameraDistance = 5.0
	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 0.5
)

// Cube renders a wireframe cube rotated by angle radians onto a width x height
// character canvas.
func Cube(angle float64, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	scale := math.Min(float64(width)*cellAspect, float64(height))

	var points [8][2]int
	for i, v := range cubeVertices {
		v = rotateX(rotateY(v, angle), angle*0.7)
		z := v.z + cameraDistance
		points[i] = [2]int{
			int(math.Round(v.x/z*scale/cellAspect)) + width/2,
			int(math.Round(v.y/z*scale)) + height/2,
		}
	}

	for _, e := range cubeEdges {
		drawLine(canvas, points[e[0]], points[e[1]], edgeRune)
	}
	for _, p := range points {
		plot(canvas, p[0], p[1], vertexRune)
	}

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}

	return strings.Join(lines, "\n")
}

func rotateY(v vec3, a float64) vec3 {
	sin, cos := math.Sincos(a)
	return vec3{x: v.x*cos + v.z*sin, y: v.y, z: -v.x*sin + v.z*cos}
}

func rotateX(v vec3, a float64) vec3 {
	sin, cos := math.Sincos(a)
	return vec3{x: v.x, y: v.y*cos - v.z*sin, z: v.y*sin + v.z*cos}
}

// drawLine is Bresenham's algorithm, clipped to the canvas.
func drawLine(canvas [][]rune, from, to [2]int, r rune) {
	x0, y0 := from[0], from[1]
	x1, y1 := to[0], to[1]

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		plot(canvas, x0, y0, r)
		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func plot(canvas [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(canvas) || x < 0 || x >= len(canvas[y]) {
		return
	}
	canvas[y][x] = r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
