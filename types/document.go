package types

import (
	"path/filepath"
	"strings"
)

// FileFormat identifies a supported upload format. The value is the
// lower-cased filename extension the format is derived from.
type FileFormat string

const (
	FormatPDF    FileFormat = ".pdf"
	FormatSlides FileFormat = ".pptx"
	FormatText   FileFormat = ".txt"
)

// AllowedExtensions lists the upload extensions the service accepts.
var AllowedExtensions = []string{".pdf", ".pptx", ".txt"}

// FormatFromFilename derives the document format from the filename
// extension, case-insensitively. Any other extension is an invalid file
// type.
func FormatFromFilename(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch FileFormat(ext) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatSlides:
		return FormatSlides, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", Errorf(KindInvalidFileType,
			"unsupported file type %q, allowed types are: %s",
			ext, strings.Join(AllowedExtensions, ", "))
	}
}
