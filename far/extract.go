package far

// ExtractRange collects every entry of r whose key falls in [lo, hi]
// (inclusive on both ends, lexicographic byte comparison), scanning
// sequentially from the current position to the end of the archive. It
// is the concrete key-range extraction behavior grounded on
// original_source's extensions/far/extract.h, restated here since far
// itself has no dependency on that out-of-scope text-conversion layer.
// It does not assume sorted key order, since STLIST imposes none; an
// STTABLE-backed Reader could stop early on key > hi, but that
// optimization is left to callers that know their source is sorted.
func ExtractRange(r Reader, lo, hi string) ([]Entry, error) {
	var out []Entry
	for !r.Done() {
		key := r.GetKey()
		if compareKeys(key, lo) >= 0 && compareKeys(key, hi) <= 0 {
			out = append(out, Entry{Key: key, FST: r.GetFST()})
		}
		r.Next()
	}
	return out, nil
}
