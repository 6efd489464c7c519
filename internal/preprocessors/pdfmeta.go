// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rotisserie/eris"
)

// PDFMetadataPreprocessor extracts the document information dictionary of a
// PDF. Author and creator fields regularly carry person names, which is why
// metadata is scanned alongside body text.
type PDFMetadataPreprocessor struct {
	pdfConfig *model.Configuration
}

// NewPDFMetadata creates a PDF metadata preprocessor.
func NewPDFMetadata() *PDFMetadataPreprocessor {
	pdfConfig := model.NewDefaultConfiguration()
	pdfConfig.ValidationMode = model.ValidationRelaxed
	return &PDFMetadataPreprocessor{pdfConfig: pdfConfig}
}

func (p *PDFMetadataPreprocessor) Name() string { return "pdf-metadata" }

func (p *PDFMetadataPreprocessor) CanProcess(path string) bool {
	return hasExtension(path, ".pdf")
}

func (p *PDFMetadataPreprocessor) Process(path string) (*Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "pdf-metadata: read %s", path)
	}

	metadata := make(map[string]string)
	set := func(key, value string) {
		if value != "" {
			metadata[key] = value
		}
	}
	set("Title", ctx.Title)
	set("Author", ctx.Author)
	set("Subject", ctx.Subject)
	set("Creator", ctx.Creator)
	set("Producer", ctx.Producer)
	set("CreationDate", ctx.CreationDate)
	set("ModificationDate", ctx.ModDate)
	set("PageCount", strconv.Itoa(ctx.PageCount))
	if ctx.Encrypt != nil {
		metadata["Encrypted"] = "true"
	}

	return &Document{
		OriginalPath:  path,
		Filename:      filepath.Base(path),
		Format:        "pdf",
		Metadata:      metadata,
		ProcessorType: p.Name(),
	}, nil
}
