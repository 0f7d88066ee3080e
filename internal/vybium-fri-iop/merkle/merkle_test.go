package merkle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTreeDeterministic(t *testing.T) {
	leaves := []Hash{
		HashLeafPair([]byte("a"), []byte("b")),
		HashLeafPair([]byte("c"), []byte("d")),
		HashLeafPair([]byte("e"), []byte("f")),
		HashLeafPair([]byte("g"), []byte("h")),
	}
	levels1 := BuildTree(leaves)
	levels2 := BuildTree(leaves)
	require.Equal(t, Root(levels1), Root(levels2))
	require.Len(t, levels1, 3)
}

func TestBitFlipChangesRoot(t *testing.T) {
	leaves := []Hash{
		HashLeafPair([]byte("a"), []byte("b")),
		HashLeafPair([]byte("c"), []byte("d")),
	}
	root := Root(BuildTree(leaves))

	tampered := make([]Hash, len(leaves))
	copy(tampered, leaves)
	tampered[0][0] ^= 0x01
	tamperedRoot := Root(BuildTree(tampered))

	require.NotEqual(t, root, tamperedRoot)
}

func TestBuildTreePanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() {
		BuildTree(nil)
	})
}

func TestBuildTreePanicsOnOddLevel(t *testing.T) {
	leaves := []Hash{
		HashLeafPair([]byte("a"), []byte("b")),
		HashLeafPair([]byte("c"), []byte("d")),
		HashLeafPair([]byte("e"), []byte("f")),
	}
	require.Panics(t, func() {
		BuildTree(leaves)
	})
}
