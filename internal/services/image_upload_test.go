package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartImage builds a request carrying one uploaded file so the test
// exercises the same multipart plumbing the handler uses.
func multipartImage(t *testing.T, field, filename, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="` + field + `"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/new", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile(field)
	require.NoError(t, err)
	return file, header
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	file, header := multipartImage(t, "image", "pic.png", "image/png", []byte("png-bytes"))
	defer file.Close()

	result, err := SaveImage(file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/posts/"))
	assert.True(t, strings.HasSuffix(result.Filename, ".png"))

	stored, err := os.ReadFile(filepath.Join(dir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestSaveImageRejectsNonImages(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	file, header := multipartImage(t, "image", "run.sh", "text/x-shellscript", []byte("#!/bin/sh"))
	defer file.Close()

	_, err := SaveImage(file, header)
	assert.ErrorIs(t, err, ErrValidation)
}
