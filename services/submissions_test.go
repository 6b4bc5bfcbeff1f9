package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokusound/types"
)

// makeFileHeader builds a real multipart.FileHeader by round-tripping a
// form through the multipart reader
func makeFileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	headers := form.File[field]
	require.Len(t, headers, 1)
	return headers[0]
}

func validForm(t *testing.T) *types.SoundForm {
	return &types.SoundForm{
		Title:    "Henshin Jingle",
		Category: "Kamen Rider",
		Season:   "Build",
		Tags:     "transformation, loud",
		Audio:    makeFileHeader(t, "audio", "jingle.mp3", "audio/mpeg", []byte("fake mp3 bytes")),
	}
}

// TestSubmitValidation tests that missing required fields fail before any
// side effect
func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*types.SoundForm)
		expected string
	}{
		{name: "missing title", mutate: func(f *types.SoundForm) { f.Title = "" }, expected: "title"},
		{name: "missing category", mutate: func(f *types.SoundForm) { f.Category = "  " }, expected: "category"},
		{name: "missing season", mutate: func(f *types.SoundForm) { f.Season = "" }, expected: "season"},
		{name: "missing audio", mutate: func(f *types.SoundForm) { f.Audio = nil }, expected: "audio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publicDir := t.TempDir()
			form := validForm(t)
			tt.mutate(form)

			_, _, err := NewSubmissionService(publicDir).Submit(form)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expected, validationErr.Field)

			// no side effects: nothing was written under publicDir
			entries, readErr := os.ReadDir(publicDir)
			require.NoError(t, readErr)
			assert.Empty(t, entries)
		})
	}
}

// TestSubmitRejectsWrongMIME tests the MIME type checks for both parts
func TestSubmitRejectsWrongMIME(t *testing.T) {
	publicDir := t.TempDir()

	form := validForm(t)
	form.Audio = makeFileHeader(t, "audio", "notes.txt", "text/plain", []byte("not audio"))

	_, _, err := NewSubmissionService(publicDir).Submit(form)
	assert.True(t, errors.Is(err, ErrUploadRejected))

	form = validForm(t)
	form.Image = makeFileHeader(t, "image", "cover.pdf", "application/pdf", []byte("not an image"))

	_, _, err = NewSubmissionService(publicDir).Submit(form)
	assert.True(t, errors.Is(err, ErrUploadRejected))
}

// TestSubmitRejectsOversizedAudio tests the upload size cap
func TestSubmitRejectsOversizedAudio(t *testing.T) {
	publicDir := t.TempDir()

	form := validForm(t)
	form.Audio.Size = MaxAudioSize + 1

	_, _, err := NewSubmissionService(publicDir).Submit(form)
	assert.True(t, errors.Is(err, ErrUploadRejected))
}

// TestSubmitSuccess tests the full pipeline: files stored under
// category-derived folders, record written once with the expected name
func TestSubmitSuccess(t *testing.T) {
	publicDir := t.TempDir()

	form := validForm(t)
	form.Image = makeFileHeader(t, "image", "cover.png", "image/png", []byte("fake png bytes"))

	record, fileName, err := NewSubmissionService(publicDir).Submit(form)
	require.NoError(t, err)
	require.NotNil(t, record)

	// record file name: form_<slugified-title>_<timestamp>.json
	assert.Regexp(t, regexp.MustCompile(`^form_henshin_jingle_\d{8}T\d{6}Z\.json$`), fileName)

	// record content round-trips
	data, err := os.ReadFile(filepath.Join(publicDir, "forms", fileName))
	require.NoError(t, err)

	var persisted types.SubmissionRecord
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, "Henshin Jingle", persisted.Title)
	assert.Equal(t, []string{"transformation", "loud"}, persisted.Tags)
	assert.False(t, persisted.SubmittedAt.IsZero())

	// audio stored under the category slug folder
	assert.Equal(t, "/sounds/kamen-rider/"+record.AudioFileName, record.AudioFilePath)
	_, err = os.Stat(filepath.Join(publicDir, "sounds", "kamen-rider", record.AudioFileName))
	assert.NoError(t, err)

	// image stored alongside
	require.NotEmpty(t, record.ImageFileName)
	assert.Equal(t, "/images/kamen-rider/"+record.ImageFileName, record.ThumbnailPath)
	_, err = os.Stat(filepath.Join(publicDir, "images", "kamen-rider", record.ImageFileName))
	assert.NoError(t, err)
}

// TestSubmitWithoutImage tests that the image part stays optional
func TestSubmitWithoutImage(t *testing.T) {
	publicDir := t.TempDir()

	record, fileName, err := NewSubmissionService(publicDir).Submit(validForm(t))
	require.NoError(t, err)

	assert.NotEmpty(t, fileName)
	assert.Empty(t, record.ImageFileName)
	assert.Empty(t, record.ThumbnailPath)
}

// TestSubmitUniqueStoredNames tests that two submissions of the same file
// never collide on disk
func TestSubmitUniqueStoredNames(t *testing.T) {
	publicDir := t.TempDir()
	service := NewSubmissionService(publicDir)

	first, _, err := service.Submit(validForm(t))
	require.NoError(t, err)
	second, _, err := service.Submit(validForm(t))
	require.NoError(t, err)

	assert.NotEqual(t, first.AudioFileName, second.AudioFileName)
}
