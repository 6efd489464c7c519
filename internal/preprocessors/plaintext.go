// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"pii-scan/internal/pii"
)

// maxPlaintextSize caps how much text is loaded into memory per file.
const maxPlaintextSize = 50 * 1024 * 1024

// PlaintextPreprocessor reads text files as-is.
type PlaintextPreprocessor struct{}

// NewPlaintext creates a plaintext preprocessor.
func NewPlaintext() *PlaintextPreprocessor {
	return &PlaintextPreprocessor{}
}

func (p *PlaintextPreprocessor) Name() string { return "plaintext" }

func (p *PlaintextPreprocessor) CanProcess(path string) bool {
	return hasExtension(path, ".txt", ".md", ".csv", ".log", ".json", ".yaml", ".yml", ".xml", ".html")
}

func (p *PlaintextPreprocessor) Process(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, eris.Wrapf(err, "plaintext: stat %s", path)
	}
	if info.Size() > maxPlaintextSize {
		return nil, fmt.Errorf("%w: file %s exceeds %d bytes", pii.ErrInvalidInput, path, maxPlaintextSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "plaintext: read %s", path)
	}
	if bytes.ContainsRune(data, 0) || !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: file %s is not UTF-8 text", pii.ErrInvalidInput, path)
	}

	return &Document{
		OriginalPath:  path,
		Filename:      filepath.Base(path),
		Text:          string(data),
		Format:        "text",
		ProcessorType: p.Name(),
	}, nil
}
