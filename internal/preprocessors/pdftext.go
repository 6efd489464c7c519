// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"path/filepath"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
)

// maxPDFPages limits processing for very large documents.
const maxPDFPages = 50

// PDFTextPreprocessor extracts body text from PDF documents.
type PDFTextPreprocessor struct{}

// NewPDFText creates a PDF text preprocessor.
func NewPDFText() *PDFTextPreprocessor {
	return &PDFTextPreprocessor{}
}

func (p *PDFTextPreprocessor) Name() string { return "pdf-text" }

func (p *PDFTextPreprocessor) CanProcess(path string) bool {
	return hasExtension(path, ".pdf")
}

func (p *PDFTextPreprocessor) Process(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "pdf-text: open %s", path)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	if pageCount > maxPDFPages {
		pageCount = maxPDFPages
	}

	var buf bytes.Buffer
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// a single unreadable page does not fail the document
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	return &Document{
		OriginalPath:  path,
		Filename:      filepath.Base(path),
		Text:          buf.String(),
		Format:        "pdf",
		ProcessorType: p.Name(),
	}, nil
}
