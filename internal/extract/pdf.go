package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDF pulls text from the show-text operators of every page
// content stream. SOF documents are simple machine-generated text
// PDFs, so operator-level extraction is sufficient; scanned image
// pages yield nothing and surface as an empty-document error upstream.
func extractPDF(fileBytes []byte) (string, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(fileBytes), conf)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var sb strings.Builder
	for page := 1; page <= ctx.PageCount; page++ {
		r, err := pdfcpu.ExtractPageContent(ctx, page)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", page, err)
		}
		if r == nil {
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read page %d content: %w", page, err)
		}
		sb.WriteString(decodeShowTextOps(content))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// decodeShowTextOps collects the literal string arguments of Tj and TJ
// operators from a decoded content stream. Each text-showing operator
// ends a line: SOF layouts place one field per line, and the
// field patterns anchor on line boundaries.
func decodeShowTextOps(content []byte) string {
	var sb strings.Builder
	var line strings.Builder
	i := 0
	for i < len(content) {
		switch content[i] {
		case '(':
			str, next := readLiteralString(content, i)
			line.WriteString(str)
			i = next
		case 'T':
			if i+1 < len(content) && (content[i+1] == 'j' || content[i+1] == 'J') {
				if line.Len() > 0 {
					sb.WriteString(line.String())
					sb.WriteString("\n")
					line.Reset()
				}
				i += 2
				continue
			}
			i++
		default:
			i++
		}
	}
	if line.Len() > 0 {
		sb.WriteString(line.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// readLiteralString reads a PDF literal string starting at the opening
// parenthesis and returns its unescaped value plus the index just past
// the closing parenthesis.
func readLiteralString(content []byte, start int) (string, int) {
	var sb strings.Builder
	depth := 0
	i := start
	for i < len(content) {
		c := content[i]
		switch c {
		case '\\':
			if i+1 < len(content) {
				switch content[i+1] {
				case 'n':
					sb.WriteByte('\n')
				case 'r':
					sb.WriteByte('\r')
				case 't':
					sb.WriteByte('\t')
				default:
					sb.WriteByte(content[i+1])
				}
				i += 2
				continue
			}
			i++
		case '(':
			depth++
			if depth > 1 {
				sb.WriteByte(c)
			}
			i++
		case ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), i
}
