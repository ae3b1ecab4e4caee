// Package fake provides small, real (non-mock) implementations of the
// engine's collaborator interfaces, used by tests and demos that need
// actual row-level semantics rather than a scripted expectation. The
// synthetic dataset generator below mirrors the teacher's
// pkg/blobstore/sharding weighted-permuter idiom of seeding an
// xorshift generator from a caller-supplied value for reproducible
// sequences, here applied to quasi-identifier code generation instead
// of shard selection.
package fake

import (
	"github.com/lazybeaver/xorshift"

	"github.com/arxgo/arxgo/pkg/datamanager"
)

// GenerateMatrix deterministically fills a rows×cols datamanager.Matrix
// with codes in [0, domainSize), seeded by seed. Two calls with the
// same arguments always produce byte-identical matrices.
func GenerateMatrix(seed uint64, rows, cols, domainSize int) *datamanager.Matrix {
	if seed == 0 {
		seed = 1
	}
	if domainSize <= 0 {
		domainSize = 1
	}
	sequence := xorshift.NewXorShift64Star(seed)
	m := datamanager.NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.Set(r, c, int(sequence.Next()%uint64(domainSize)))
		}
	}
	return m
}

// GenerateDictionary builds a Dictionary populated with size
// placeholder string values ("v0".."v{size-1}"), suitable for pairing
// with a matrix produced by GenerateMatrix at the same domainSize.
func GenerateDictionary(size int) *datamanager.Dictionary {
	dict := datamanager.NewDictionary()
	for i := 0; i < size; i++ {
		dict.Intern(syntheticValue(i))
	}
	return dict
}

func syntheticValue(code int) string {
	const digits = "0123456789"
	if code == 0 {
		return "v0"
	}
	buf := make([]byte, 0, 8)
	n := code
	for n > 0 {
		buf = append(buf, digits[n%10])
		n /= 10
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return "v" + string(buf)
}
