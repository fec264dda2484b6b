package example

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/patrikhermansson/pairdist/core"
	"github.com/rs/zerolog/log"
)

// LoadPoints reads a point set from a CSV file with one "x,y" row per point.
// If skipHeader is true the first row is ignored.
func LoadPoints(path string, skipHeader bool) (core.PointSet, error) {
	log.Debug().Msgf("Opening CSV file: %s", path)
	file, err := os.Open(path)
	if err != nil {
		return core.PointSet{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	points, err := ReadPoints(file, skipHeader)
	if err != nil {
		return core.PointSet{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	log.Info().Msgf("Loaded %d points from %s", points.Len(), path)
	return points, nil
}

// ReadPoints parses "x,y" CSV rows from r.
func ReadPoints(r io.Reader, skipHeader bool) (core.PointSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var points core.PointSet
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return core.PointSet{}, fmt.Errorf("read error: %w", err)
		}
		if skipHeader {
			skipHeader = false
			continue
		}
		x, err := parseCoordinate(record[0])
		if err != nil {
			return core.PointSet{}, fmt.Errorf("parse error at line %d col 0: %w", line, err)
		}
		y, err := parseCoordinate(record[1])
		if err != nil {
			return core.PointSet{}, fmt.Errorf("parse error at line %d col 1: %w", line, err)
		}
		points.Append(x, y)
	}
	return points, nil
}

// parseCoordinate converts s to a finite float32.
func parseCoordinate(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	f := float32(v)
	if f != f || f > maxFinite || f < -maxFinite {
		return 0, fmt.Errorf("coordinate %q is not finite", s)
	}
	return f, nil
}
