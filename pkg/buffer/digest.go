package buffer

import (
	"encoding/binary"

	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/zeebo/blake3"
)

// ContentDigest hashes a Matrix's shape and contents with BLAKE3. It
// backs the provenance check of isOptimizable (spec.md §4.4
// precondition: "its input buffer is identical (by reference/contents
// hash) to the checker's input buffer") for the case where two Matrix
// values are not the same Go pointer but may still be the same logical
// buffer (e.g. after deserialization).
func ContentDigest(m *datamanager.Matrix) [32]byte {
	h := blake3.New()
	var header [16]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(m.Rows()))
	binary.LittleEndian.PutUint64(header[8:16], uint64(m.Cols()))
	h.Write(header[:])
	var cell [8]byte
	for r := 0; r < m.Rows(); r++ {
		row := m.RowSlice(r)
		for _, v := range row {
			binary.LittleEndian.PutUint64(cell[:], uint64(int64(v)))
			h.Write(cell[:])
		}
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// SameProvenance reports whether a and b are the same buffer, first by
// pointer identity (the common case — both reference the DataManager's
// live generalized matrix) and falling back to a content digest
// comparison otherwise.
func SameProvenance(a, b *datamanager.Matrix) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	return ContentDigest(a) == ContentDigest(b)
}
