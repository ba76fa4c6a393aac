package bench

// TotalRow is the file name of the aggregate row emitted by the benchmark
// runner. It is skipped by the elapsed-time chart.
const TotalRow = "TOTAL"

// AlgoPair names the two algorithms being compared. Speedup is
// Second relative to First.
type AlgoPair struct {
	First  string
	Second string
}

// DefaultPair is the comparison produced by the snapshot benchmark runner.
var DefaultPair = AlgoPair{First: "SHA-256", Second: "PH128"}

// Index groups rows by file name, then by algorithm. Rows whose algorithm is
// not part of the pair are dropped.
type Index struct {
	pair  AlgoPair
	order []string // file names in first-seen order
	files map[string]map[string]Row
}

// NewIndex builds the per-file index over rows. When the input contains more
// than one row for the same file and algorithm, the last one wins.
func NewIndex(rows []Row, pair AlgoPair) *Index {
	ix := &Index{pair: pair, files: make(map[string]map[string]Row)}
	for _, r := range rows {
		if r.Algo != pair.First && r.Algo != pair.Second {
			continue
		}
		m := ix.files[r.File]
		if m == nil {
			m = make(map[string]Row, 2)
			ix.files[r.File] = m
			ix.order = append(ix.order, r.File)
		}
		m[r.Algo] = r
	}
	return ix
}

// Pair returns the algorithm pair the index was built with.
func (ix *Index) Pair() AlgoPair {
	return ix.pair
}

// Files returns all file names in the order they first appeared.
func (ix *Index) Files() []string {
	return ix.order
}

// Both returns the rows of both algorithms for the given file. ok is false
// unless the file has a row for each algorithm of the pair.
func (ix *Index) Both(file string) (first, second Row, ok bool) {
	m := ix.files[file]
	first, ok1 := m[ix.pair.First]
	second, ok2 := m[ix.pair.Second]
	return first, second, ok1 && ok2
}
