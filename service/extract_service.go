package service

import (
	"archive/zip"
	"bytes"
	"io"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/ledongthuc/pdf"
	"github.com/trungle-dev/docqa-be/types"
)

// ExtractService converts raw uploaded bytes into plain text. It is the
// single entry point for every supported format, so adding a format means
// adding one branch here rather than new call sites.
type ExtractService struct{}

func NewExtractService() *ExtractService {
	return &ExtractService{}
}

// Extract returns the text content of data interpreted as format. The result
// is a pure function of its inputs: the same bytes and format always produce
// the same text.
func (s *ExtractService) Extract(data []byte, format types.FileFormat) (string, error) {
	switch format {
	case types.FormatPDF:
		return s.extractPDF(data)
	case types.FormatSlides:
		return s.extractSlides(data)
	case types.FormatText:
		return s.extractText(data)
	default:
		return "", types.Errorf(types.KindInvalidFileType, "unsupported format %q", format)
	}
}

// extractPDF concatenates the text of each page in page order, joined by
// newline. Pages that yield no text (image-only scans) are skipped; a
// document where every page is empty legitimately extracts to "".
func (s *ExtractService) extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs instead of returning
	// an error. A corrupt upload must stay a per-file failure.
	defer func() {
		if r := recover(); r != nil {
			err = types.Errorf(types.KindExtractionFailure, "parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", types.Errorf(types.KindExtractionFailure, "parse pdf: %v", err)
	}

	var pages []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Warning: failed to extract text from page %d: %v", pageNum, err)
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

var slideNameRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractSlides concatenates the text of every paragraph across every shape
// that carries a text body, across every slide in slide order. Shapes
// without text content (pictures, tables) are skipped.
func (s *ExtractService) extractSlides(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", types.Errorf(types.KindExtractionFailure, "open pptx archive: %v", err)
	}

	slides := make(map[int]*zip.File)
	var order []int
	for _, f := range archive.File {
		m := slideNameRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides[num] = f
		order = append(order, num)
	}
	sort.Ints(order)

	var paragraphs []string
	for _, num := range order {
		rc, err := slides[num].Open()
		if err != nil {
			return "", types.Errorf(types.KindExtractionFailure, "open slide %d: %v", num, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", types.Errorf(types.KindExtractionFailure, "read slide %d: %v", num, err)
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(raw); err != nil {
			return "", types.Errorf(types.KindExtractionFailure, "parse slide %d: %v", num, err)
		}
		collectShapeParagraphs(doc.Root(), &paragraphs)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// collectShapeParagraphs walks a slide tree and appends one entry per <a:p>
// paragraph found inside the <p:txBody> of each <p:sp> shape, in document
// order. Table cells carry their own txBody outside an sp element and are
// deliberately not collected.
func collectShapeParagraphs(el *etree.Element, out *[]string) {
	if el == nil {
		return
	}
	if el.Tag == "sp" {
		for _, body := range el.ChildElements() {
			if body.Tag != "txBody" {
				continue
			}
			for _, p := range body.ChildElements() {
				if p.Tag == "p" {
					*out = append(*out, paragraphText(p))
				}
			}
		}
		return
	}
	for _, child := range el.ChildElements() {
		collectShapeParagraphs(child, out)
	}
}

// paragraphText concatenates the <a:t> runs of a paragraph in document order.
func paragraphText(p *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == "t" {
			b.WriteString(el.Text())
			return
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(p)
	return b.String()
}

// extractText decodes the payload as UTF-8 with no further processing.
func (s *ExtractService) extractText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", types.Errorf(types.KindExtractionFailure, "decode text: payload is not valid UTF-8")
	}
	return string(data), nil
}
