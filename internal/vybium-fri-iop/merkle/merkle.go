// Package merkle implements the BLAKE3 leaf/node hashing primitives the
// FRI commitment and authentication-path layers build their tree on.
package merkle

import (
	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest, used as an opaque leaf/node identifier.
type Hash [32]byte

// Bytes returns the digest as a byte slice.
func (h Hash) Bytes() []byte { return h[:] }

// HashFromBytes copies b (which must be 32 bytes) into a Hash.
func HashFromBytes(b []byte) Hash {
	var h Hash
	copy(h[:], b)
	return h
}

// HashLeafPair hashes two field-element byte encodings together:
// H(left ‖ right), matching the leaf-level rule in §4.E: adjacent
// evaluations are concatenated in their canonical little-endian encoding
// and hashed with a single BLAKE3 instance.
func HashLeafPair(left, right []byte) Hash {
	h := blake3.New()
	h.Write(left)
	h.Write(right)
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// HashNodePair hashes two child digests together, left then right.
func HashNodePair(left, right Hash) Hash {
	h := blake3.New()
	h.Write(left[:])
	h.Write(right[:])
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// BuildTree builds a complete binary tree over an even-length leaf-pair
// hash vector (one hash per adjacent evaluation pair, already produced by
// HashLeafPair) and returns every level, leaves first, root last.
// len(leafHashes) must be a power of two; an empty input, or any level of
// odd size above one, is a precondition violation and panics (a single
// leaf is its own root), matching §3's "every Merkle tree is built over
// an even number of leaves; the tree is complete and balanced".
func BuildTree(leafHashes []Hash) [][]Hash {
	if len(leafHashes) == 0 {
		panic("merkle: BuildTree called with no leaves")
	}
	levels := make([][]Hash, 0)
	current := make([]Hash, len(leafHashes))
	copy(current, leafHashes)
	levels = append(levels, current)

	for len(current) > 1 {
		if len(current)%2 != 0 {
			panic("merkle: BuildTree encountered an odd-sized level")
		}
		next := make([]Hash, len(current)/2)
		for i := 0; i < len(current); i += 2 {
			next[i/2] = HashNodePair(current[i], current[i+1])
		}
		levels = append(levels, next)
		current = next
	}
	return levels
}

// Root returns the final (single-element) level of a tree built by BuildTree.
func Root(levels [][]Hash) Hash {
	last := levels[len(levels)-1]
	return last[0]
}
