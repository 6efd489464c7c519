// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ExifMetadataPreprocessor extracts EXIF tags from image files. Artist,
// copyright and GPS fields are the usual PII carriers in photos.
type ExifMetadataPreprocessor struct{}

// NewExifMetadata creates an EXIF metadata preprocessor.
func NewExifMetadata() *ExifMetadataPreprocessor {
	return &ExifMetadataPreprocessor{}
}

func (p *ExifMetadataPreprocessor) Name() string { return "exif-metadata" }

func (p *ExifMetadataPreprocessor) CanProcess(path string) bool {
	return hasExtension(path, ".jpg", ".jpeg", ".tiff", ".tif", ".png", ".heic")
}

// exifWalker collects every tag the decoder exposes.
type exifWalker struct {
	tags map[string]string
}

func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag != nil {
		w.tags[string(name)] = strings.Trim(tag.String(), `"`)
	}
	return nil
}

func (p *ExifMetadataPreprocessor) Process(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "exif-metadata: open %s", path)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, eris.Wrapf(err, "exif-metadata: no EXIF data in %s", path)
	}

	walker := &exifWalker{tags: make(map[string]string)}
	if err := x.Walk(walker); err != nil {
		return nil, eris.Wrapf(err, "exif-metadata: walk tags of %s", path)
	}

	if lat, long, err := x.LatLong(); err == nil {
		walker.tags["GPSLatitudeDecimal"] = fmt.Sprintf("%.6f", lat)
		walker.tags["GPSLongitudeDecimal"] = fmt.Sprintf("%.6f", long)
	}

	return &Document{
		OriginalPath:  path,
		Filename:      filepath.Base(path),
		Format:        "image",
		Metadata:      walker.tags,
		ProcessorType: p.Name(),
	}, nil
}
