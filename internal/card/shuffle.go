package card

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"strconv"
	"time"
)

// ResolveSeed canonicalizes a raw seed string to the int64 that drives the
// random stream. The rule:
//
//   - an empty string synthesizes a seed from the wall clock, so repeated
//     calls produce different cards (callers that need reproducibility must
//     pass an explicit seed);
//   - a base-10 integer that fits in an int64 (sign allowed) is used as-is,
//     so the value printed in a card's footer round-trips;
//   - any other string is hashed with 64-bit FNV-1a over its UTF-8 bytes.
//
// Two implementations agree on a text seed's permutation only if they share
// this canonicalization and the same underlying random stream; the rule is
// a compatibility boundary, not a portable standard.
func ResolveSeed(raw string) int64 {
	if raw == "" {
		return time.Now().UnixNano()
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	h := fnv.New64a()
	h.Write([]byte(raw))
	return int64(h.Sum64())
}

// Shuffle returns a reproducible permutation of words for the given seed.
// The input slice is not modified.
//
// The shuffle is key-based: a single seeded stream assigns each word a
// pseudo-random rank in input order, and words are sorted by rank with a
// stable sort. Because ranks depend only on input position, extending the
// word list never reorders the words that were already present, and any
// prefix of the result is stable however much of the list is used later.
func Shuffle(words []string, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))

	keys := make([]float64, len(words))
	for i := range keys {
		keys[i] = rng.Float64()
	}

	order := make([]int, len(words))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	out := make([]string, len(words))
	for i, j := range order {
		out[i] = words[j]
	}
	return out
}
