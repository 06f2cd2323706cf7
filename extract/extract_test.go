package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_PlainText(t *testing.T) {
	got, err := Text("notes.txt", strings.NewReader("Mitochondria produce ATP."))
	require.NoError(t, err)
	assert.Equal(t, "Mitochondria produce ATP.", got)
}

func TestText_Markdown(t *testing.T) {
	got, err := Text("Notes.MD", strings.NewReader("# Biology"))
	require.NoError(t, err)
	assert.Equal(t, "# Biology", got)
}

func TestText_AtSizeLimit(t *testing.T) {
	got, err := Text("notes.txt", strings.NewReader(strings.Repeat("a", maxSize)))
	require.NoError(t, err)
	assert.Len(t, got, maxSize)
}

func TestText_OversizeRejectedNotTruncated(t *testing.T) {
	_, err := Text("notes.txt", strings.NewReader(strings.Repeat("a", maxSize+1)))
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestText_UnsupportedTypes(t *testing.T) {
	for _, name := range []string{"slides.pptx", "paper.pdf", "essay.docx", "archive"} {
		_, err := Text(name, strings.NewReader("binary"))
		assert.True(t, errors.Is(err, ErrUnsupported), "expected ErrUnsupported for %s", name)
	}
}
