package report

import (
	"fmt"
	"strings"
)

// boundaryRatio is how far into a window a sentence break must fall
// before the window is cut there. Breaking earlier would produce
// pathologically short chunks.
const boundaryRatio = 0.7

type Chunker struct {
	chunkSize    int
	chunkOverlap int
}

// NewChunker validates the size/overlap relationship up front: an
// overlap at or above the chunk size would stop the window advancing.
func NewChunker(chunkSize, chunkOverlap int) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, fmt.Errorf("chunk overlap must be in [0, %d), got %d", chunkSize, chunkOverlap)
	}
	return &Chunker{chunkSize: chunkSize, chunkOverlap: chunkOverlap}, nil
}

// Split walks the text in a sliding window of chunkSize characters.
// Windows that do not reach the end of the text are truncated at the
// last sentence or line break, provided that break falls past 70% of
// the window. Each emitted chunk is whitespace-trimmed; consecutive
// chunks overlap by chunkOverlap characters.
func (c *Chunker) Split(text string) []string {
	var chunks []string
	start := 0

	for start < len(text) {
		// end may point past the text; the window itself is clamped but
		// the advance below uses the unclamped position so the loop
		// terminates after the final window.
		end := start + c.chunkSize
		windowEnd := end
		if windowEnd > len(text) {
			windowEnd = len(text)
		}

		if end < len(text) {
			if bp := lastBoundary(text[start:windowEnd]); float64(bp) > float64(c.chunkSize)*boundaryRatio {
				end = start + bp + 1
				windowEnd = end
			}
		}

		if chunk := strings.TrimSpace(text[start:windowEnd]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		// move start position with overlap
		newStart := end - c.chunkOverlap
		if newStart <= start {
			// ensure progress to avoid infinite loop
			newStart = start + 1
		}
		start = newStart
	}

	return chunks
}

// lastBoundary returns the index of the latest '.', '!', '?' or
// newline in window, or -1 when none is present.
func lastBoundary(window string) int {
	best := -1
	for _, boundary := range []string{".", "!", "?", "\n"} {
		if i := strings.LastIndex(window, boundary); i > best {
			best = i
		}
	}
	return best
}
