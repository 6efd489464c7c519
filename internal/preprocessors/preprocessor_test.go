// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-scan/internal/pii"
)

func TestPlaintextProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hans Müller, geboren in Berlin."), 0o600))

	doc, err := NewPlaintext().Process(path)
	require.NoError(t, err)

	assert.Equal(t, "Hans Müller, geboren in Berlin.", doc.Text)
	assert.Equal(t, "notes.txt", doc.Filename)
	assert.Equal(t, "plaintext", doc.ProcessorType)
	assert.Equal(t, doc.Text, doc.ScannableText())
}

func TestPlaintextRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.txt")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02}, 0o600))

	_, err := NewPlaintext().Process(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, pii.ErrInvalidInput)
}

func TestPlaintextMissingFile(t *testing.T) {
	_, err := NewPlaintext().Process(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestCanProcessByExtension(t *testing.T) {
	assert.True(t, NewPlaintext().CanProcess("a.TXT"))
	assert.False(t, NewPlaintext().CanProcess("a.pdf"))
	assert.True(t, NewPDFText().CanProcess("doc.pdf"))
	assert.True(t, NewPDFMetadata().CanProcess("doc.pdf"))
	assert.True(t, NewExifMetadata().CanProcess("photo.JPG"))
	assert.False(t, NewExifMetadata().CanProcess("doc.pdf"))
}

func TestForFile(t *testing.T) {
	names := func(path string) []string {
		var result []string
		for _, p := range ForFile(path) {
			result = append(result, p.Name())
		}
		return result
	}

	assert.Equal(t, []string{"plaintext"}, names("a.txt"))
	assert.Equal(t, []string{"pdf-text", "pdf-metadata"}, names("a.pdf"))
	assert.Empty(t, names("a.exe"))
}

func TestMetadataTextStableOrder(t *testing.T) {
	doc := &Document{
		Text: "body",
		Metadata: map[string]string{
			"Creator": "Anna Schmidt",
			"Author":  "Hans Müller",
		},
	}

	expected := "Author: Hans Müller\nCreator: Anna Schmidt\n"
	assert.Equal(t, expected, doc.MetadataText())
	assert.Equal(t, "body\n"+expected, doc.ScannableText())
}
