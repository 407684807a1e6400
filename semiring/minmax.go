package semiring

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"
)

// MinMaxWeight is the (min, max) semiring over the extended reals: Plus
// is min, Times is max, Zero is +Inf, One is -Inf. Both operations are
// idempotent and commutative, and Plus is a path selector, making this
// semiring useful for bottleneck-style optimizations (e.g. widest-path
// variants that minimize the maximum edge cost along a path).
type MinMaxWeight float64

func MinMaxZero() MinMaxWeight { return MinMaxWeight(math.Inf(1)) }

func MinMaxOne() MinMaxWeight { return MinMaxWeight(math.Inf(-1)) }

var MinMaxSemiring = SemiringOps[MinMaxWeight]{Zero: MinMaxZero(), One: MinMaxOne()}

func (w MinMaxWeight) Plus(other MinMaxWeight) MinMaxWeight {
	if other < w {
		return other
	}
	return w
}

func (w MinMaxWeight) Times(other MinMaxWeight) MinMaxWeight {
	if other > w {
		return other
	}
	return w
}

func (w MinMaxWeight) Member() bool { return !math.IsNaN(float64(w)) }

func (w MinMaxWeight) Quantize(delta float64) MinMaxWeight {
	if delta <= 0 || math.IsInf(float64(w), 0) {
		return w
	}
	return MinMaxWeight(math.Floor(float64(w)/delta+0.5) * delta)
}

func (w MinMaxWeight) Reverse() MinMaxWeight { return w }

func (w MinMaxWeight) ApproxEqual(other MinMaxWeight, delta float64) bool {
	if math.IsInf(float64(w), 0) || math.IsInf(float64(other), 0) {
		return w == other
	}
	return math.Abs(float64(w)-float64(other)) <= delta
}

func (w MinMaxWeight) Type() string { return "minmax" }

func (w MinMaxWeight) Properties() Properties {
	return SemiringSemiring | Commutative | Idempotent | Path
}

func (w MinMaxWeight) String() string { return strconv.FormatFloat(float64(w), 'g', -1, 64) }

func (w MinMaxWeight) WriteTo(dst io.Writer) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(w)))
	_, err := dst.Write(buf[:])
	return err
}

// ReadMinMaxWeight reads the payload written by WriteTo.
func ReadMinMaxWeight(src io.Reader) (MinMaxWeight, error) {
	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, err
	}
	return MinMaxWeight(math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))), nil
}
