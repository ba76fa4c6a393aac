package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Row is one record of a benchmark results table.
type Row struct {
	Algo       string // algorithm name
	File       string // input file name, "TOTAL" for the aggregate row
	BlockBytes *int64 // block size B in bytes, nil if not recorded
	Bytes      int64  // bytes hashed
	ElapsedMs  float64
	Throughput float64 // MiB/s
	SumHex     string
}

// ReadRows reads benchmark result rows from a CSV file.
func ReadRows(file string) ([]Row, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return ParseRows(fd)
}

// MustReadRows reads all rows of the given results file.
func MustReadRows(file string) []Row {
	rows, err := ReadRows(file)
	if err != nil {
		log.Fatalf("%s: %v", file, err)
	}
	return rows
}

// ParseRows parses CSV benchmark results. The header must name at least the
// algo and file columns. Other columns are optional and numeric cells that
// don't parse are treated as absent, never as an error.
func ParseRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("can't read header: %v", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, req := range []string{"algo", "file"} {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("missing required column %q", req)
		}
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return rows, err
		}
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		rows = append(rows, Row{
			Algo:       cell("algo"),
			File:       cell("file"),
			BlockBytes: toInt(cell("B_bytes")),
			Bytes:      intOrZero(cell("bytes")),
			ElapsedMs:  toFloat(cell("elapsed_ms_med")),
			Throughput: toFloat(cell("throughput_mib_s")),
			SumHex:     cell("sum_hex"),
		})
	}
	return rows, nil
}

// toInt parses an integer cell, nil if the cell is empty or malformed.
func toInt(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intOrZero(s string) int64 {
	if v := toInt(s); v != nil {
		return *v
	}
	return 0
}

// toFloat parses a float cell, zero if the cell is empty or malformed.
func toFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// OutputPaths derives the three chart file names from the name of the
// results file.
func OutputPaths(csvfile, outdir string) (timePNG, speedupPNG, throughputPNG string) {
	base := strings.TrimSuffix(filepath.Base(csvfile), filepath.Ext(csvfile))
	timePNG = filepath.Join(outdir, base+"_time.png")
	speedupPNG = filepath.Join(outdir, base+"_speedup.png")
	throughputPNG = filepath.Join(outdir, base+"_throughput.png")
	return timePNG, speedupPNG, throughputPNG
}
