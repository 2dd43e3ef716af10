package pdftext

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstudy/flashcards-api/apperr"
)

func TestChunkWindowsHaveExactSize(t *testing.T) {
	words := make([]string, 0, 250)
	for i := 0; i < 250; i++ {
		words = append(words, fmt.Sprintf("w%d", i))
	}

	chunks, err := Chunk([]string{strings.Join(words, " ")}, 100)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Len(t, strings.Fields(chunks[0]), 100)
	assert.Len(t, strings.Fields(chunks[1]), 100)
	assert.Len(t, strings.Fields(chunks[2]), 50)
}

func TestChunkConcatenationReproducesWordSequence(t *testing.T) {
	pages := []string{
		"the quick   brown fox",
		"jumps over\nthe lazy dog",
		"and keeps  running",
	}

	chunks, err := Chunk(pages, 4)
	require.NoError(t, err)

	var got []string
	for _, c := range chunks {
		got = append(got, strings.Fields(c)...)
	}
	want := strings.Fields(strings.Join(pages, " "))
	assert.Equal(t, want, got)
}

func TestChunkIsDeterministic(t *testing.T) {
	pages := []string{"alpha beta gamma delta epsilon zeta"}

	first, err := Chunk(pages, 2)
	require.NoError(t, err)
	second, err := Chunk(pages, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestChunkNoReadableText(t *testing.T) {
	for _, pages := range [][]string{nil, {}, {"   ", "\n\t"}} {
		_, err := Chunk(pages, 100)
		require.Error(t, err)

		var ae *apperr.Error
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, http.StatusBadRequest, ae.StatusCode)
		assert.Equal(t, "PDF contains no readable text.", ae.Msg)
	}
}

func TestChunkDefaultsWindowSize(t *testing.T) {
	words := make([]string, 150)
	for i := range words {
		words[i] = "x"
	}

	chunks, err := Chunk([]string{strings.Join(words, " ")}, 0)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Len(t, strings.Fields(chunks[0]), DefaultChunkSize)
}
