package arr

import "slices"

// Chunk splits items into groups of size, each an independent copy. The
// last group holds the remainder. A non-positive size yields no groups.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for chunk := range slices.Chunk(items, size) {
		chunks = append(chunks, slices.Clone(chunk))
	}
	return chunks
}
