package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanedLine_String(t *testing.T) {
	assert.Equal(t, "Visit:now", CleanedLine{"Visit", "now"}.String())
	assert.Equal(t, "solo", CleanedLine{"solo"}.String())
}

func TestCleanedDocument_String(t *testing.T) {
	doc := CleanedDocument{
		Lines: []CleanedLine{
			{"hola"},
			{"buenos", "días"},
		},
		SourceLines: 4,
	}

	assert.Equal(t, "hola\nbuenos:días", doc.String())
	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, 2, doc.Dropped())
}

func TestCleanedDocument_Empty(t *testing.T) {
	var doc CleanedDocument

	assert.Equal(t, "", doc.String())
	assert.Equal(t, 0, doc.Len())
	assert.Equal(t, 0, doc.Dropped())
}
