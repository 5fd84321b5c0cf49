package seq

// PerCharWidthPx is the rendered width in pixels of one monospaced residue
// cell, padding included. Pixel-based renderers (HTML export) divide the
// container width by this to get the chunk size.
const PerCharWidthPx = 19

// Chunk is a same-range slice pair from both sequences, used only for
// wrapped display. A and B always have equal length.
type Chunk struct {
	A string
	B string
}

// ChunkSize returns how many residue cells of the given width fit in a
// container of the given width. A container width of 0 (not yet measured)
// yields 0; callers must treat that as "no measurement" rather than
// partitioning with it.
func ChunkSize(containerWidth, cellWidth int) int {
	if containerWidth <= 0 || cellWidth <= 0 {
		return 0
	}
	return containerWidth / cellWidth
}

// ChunkSizePx is ChunkSize with the fixed pixel cell width.
func ChunkSizePx(containerWidthPx int) int {
	return ChunkSize(containerWidthPx, PerCharWidthPx)
}

// Partition splits the pair into ordered chunks of the given size; the last
// chunk holds the remainder. Concatenating the chunk halves in order
// reconstructs each sequence exactly. A size below 1 is clamped to 1 so the
// step can never be zero.
func Partition(p Pair, size int) []Chunk {
	if size < 1 {
		size = 1
	}
	n := p.Len()
	if n == 0 {
		return nil
	}
	chunks := make([]Chunk, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		chunks = append(chunks, Chunk{
			A: p.Seq1[start:end],
			B: p.Seq2[start:end],
		})
	}
	return chunks
}
