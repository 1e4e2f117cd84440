// Package cities - the plain-text city file format.
//
// One city per line: two whitespace-separated floating-point coordinates, "x y".
// Blank lines and lines starting with '#' are ignored. The line order defines
// the city indices 0..N-1. Write emits the same format, so the cities of a
// tour can be saved in visiting order and read back.
package cities

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read parses a city file from r.
//
// Errors: ErrParse (wrapped with the line number) for malformed lines,
// ErrNoCities when the input holds no cities, and any read error from r.
func Read(r io.Reader) (*Cities, error) {
	var (
		sc     = bufio.NewScanner(r)
		points []Point
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrParse)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrParse)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrParse)
		}
		points = append(points, Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return New(points)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Cities, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Write emits the cities of order, in visiting order, one "x y" line each.
// Returns ErrDimensionMismatch when order is not a permutation of [0,N).
func Write(w io.Writer, c *Cities, order []int) error {
	if _, err := c.TourCost(order); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var i int
	for i = 0; i < len(order); i++ {
		p := c.points[order[i]]
		if _, err := fmt.Fprintf(bw, "%s %s\n",
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes the ordered cities to path, truncating any existing file.
func WriteFile(path string, c *Cities, order []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, c, order); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
