package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atsresume/parsers"
)

func TestRenderDOCX_ProducesDocument(t *testing.T) {
	svc := NewRenderService(&fakeEngine{})

	out, err := svc.RenderDOCX(sampleDocument())
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
	// DOCX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, out[:2])
}

func TestRenderDOCX_EmptyDocument(t *testing.T) {
	svc := NewRenderService(&fakeEngine{})

	out, err := svc.RenderDOCX(&parsers.ResumeDocument{})
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}
