// Package seedrand is a deterministic pseudo-random source keyed by an
// arbitrary string.
//
// The generator is ARC4 keyed the same way as the seedrandom JavaScript
// library: the seed is folded into a key over its UTF-16 code units, the
// first 256 keystream bytes are dropped and every Float64 is assembled from
// at least 52 bits of keystream. Sequences are reproducible across processes
// and across implementations of that algorithm:
//
//	seedrand.New("hello.").Float64() == 0.9282578795792454
//
// A Source is not safe for concurrent use.
package seedrand

import (
	"math"
	"unicode/utf16"
)

const (
	width        = 256
	mask         = width - 1
	chunks       = 6
	startDenom   = 1 << (8 * chunks)
	significance = 1 << 52
	overflow     = significance * 2
)

type Source struct {
	s    [width]byte
	i, j byte
}

// New returns a Source whose sequence depends only on seed.
func New(seed string) *Source {
	src := &Source{}
	src.schedule(mixKey(seed))
	src.next(width) // RC4-drop[256]
	return src
}

func mixKey(seed string) []byte {
	key := make([]byte, 0, width)
	smear := 0
	for j, unit := range utf16.Encode([]rune(seed)) {
		idx := j & mask
		if idx == len(key) {
			key = append(key, 0)
		}
		smear ^= int(key[idx]) * 19
		key[idx] = byte(mask & (smear + int(unit)))
	}
	return key
}

func (src *Source) schedule(key []byte) {
	if len(key) == 0 {
		key = []byte{0}
	}
	for i := range src.s {
		src.s[i] = byte(i)
	}
	var j byte
	for i := 0; i < width; i++ {
		t := src.s[i]
		j += key[i%len(key)] + t
		src.s[i] = src.s[j]
		src.s[j] = t
	}
}

// next returns the next count keystream bytes as one big-endian number.
func (src *Source) next(count int) uint64 {
	var r uint64
	i, j, s := src.i, src.j, &src.s
	for ; count > 0; count-- {
		i++
		t := s[i]
		j += t
		s[i] = s[j]
		s[j] = t
		r = r*width + uint64(s[s[i]+s[j]])
	}
	src.i, src.j = i, j
	return r
}

// Float64 returns the next value in [0, 1).
func (src *Source) Float64() float64 {
	n := src.next(chunks)
	d := float64(startDenom)
	var x uint64
	for n < significance {
		n = (n + x) * width
		d *= width
		x = src.next(1)
	}
	for n >= overflow {
		n /= 2
		d /= 2
		x >>= 1
	}
	return float64(n+x) / d
}

// IntBetween returns floor(Float64()*(max-min+1)) + min, an integer in [min, max].
func (src *Source) IntBetween(min, max int) int {
	return int(math.Floor(src.Float64()*float64(max-min+1))) + min
}

// Int64Between is IntBetween for ranges wider than a 32-bit int.
func (src *Source) Int64Between(min, max int64) int64 {
	return int64(math.Floor(src.Float64()*float64(max-min+1))) + min
}

// Weighted picks an index with probability proportional to its weight.
// It always consumes one draw; non-positive totals resolve to index 0.
func (src *Source) Weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	r := src.Float64() * total
	if total <= 0 {
		return 0
	}
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
		last = i
	}
	return last
}

// Pick returns a uniformly chosen element. An empty slice yields the zero
// value without consuming a draw.
func Pick[T any](src *Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.IntBetween(0, len(items)-1)]
}
