package util

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractResumeTextPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	content := "John Smith\nSoftware Engineer\nSkills: Go, Python"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := ExtractResumeText(path, "text")
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestExtractResumeTextMissingFile(t *testing.T) {
	_, err := ExtractResumeText("/nonexistent/resume.txt", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestExtractResumeTextSizeGate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.txt")
	require.NoError(t, os.WriteFile(path, make([]byte, maxResumeBytes+1), 0o644))

	_, err := ExtractResumeText(path, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smaller than 2MB")
}

func TestExtractResumeTextTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "long.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a", MaxExtractedChars+500)), 0o644))

	text, err := ExtractResumeText(path, "text")
	require.NoError(t, err)
	assert.Len(t, text, MaxExtractedChars+3)
	assert.True(t, strings.HasSuffix(text, "..."))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 100))
	assert.Equal(t, "abc...", TruncateText("abcdef", 3))
	assert.Equal(t, "abcdef", TruncateText("abcdef", 0))
}

func writeDOCX(t *testing.T, dir, documentXML string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestExtractResumeTextDOCX(t *testing.T) {
	dir := t.TempDir()
	path := writeDOCX(t, dir, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Data Scientist</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := ExtractResumeText(path, "docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Data Scientist")
}

func TestExtractResumeTextDOCXCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	// Decode failures come back as the extraction result, not an error.
	text, err := ExtractResumeText(path, "docx")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Error reading DOCX:"))
}

func TestExtractResumeTextDOCXMissingDocument(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	path := filepath.Join(dir, "empty.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	text, err := ExtractResumeText(path, "docx")
	require.NoError(t, err)
	assert.Contains(t, text, "document.xml file not found")
}
