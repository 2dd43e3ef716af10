package pdftext

import (
	"strings"

	"github.com/smartstudy/flashcards-api/apperr"
)

// DefaultChunkSize is the number of words per prompt window.
const DefaultChunkSize = 100

// Chunk joins the page texts with single spaces, splits the result on
// whitespace and regroups the words into consecutive windows of size
// words each. The final window may be shorter. Windows have no
// awareness of sentence or paragraph boundaries.
func Chunk(pages []string, size int) ([]string, error) {
	if size <= 0 {
		size = DefaultChunkSize
	}

	words := strings.Fields(strings.Join(pages, " "))
	if len(words) == 0 {
		return nil, apperr.InvalidInput(nil, "PDF contains no readable text.")
	}

	chunks := make([]string, 0, (len(words)+size-1)/size)
	for i := 0; i < len(words); i += size {
		end := min(i+size, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}

	return chunks, nil
}
