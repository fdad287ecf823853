package textextract

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFExtractor reads page content streams with pdfcpu and recovers the text
// shown by the text operators, one output line per text line.
type PDFExtractor struct {
	conf *model.Configuration
}

// NewPDFExtractor creates a PDFExtractor with pdfcpu's default configuration.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{conf: model.NewDefaultConfiguration()}
}

// ExtractText returns the text of every page, pages separated by newlines.
func (p *PDFExtractor) ExtractText(ctx context.Context, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(content), p.conf)
	if err != nil {
		return "", fmt.Errorf("pdfcpu read: %w", err)
	}

	var pages []string
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
		if err != nil || r == nil {
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil || len(data) == 0 {
			continue
		}
		if text := textFromContent(data); text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n"), nil
}

// textFromContent tokenizes a content stream and renders the operands of the
// text-showing operators. Line breaks follow T*, ', ", Tm, ET and any Td/TD
// with a vertical offset.
func textFromContent(data []byte) string {
	var sb strings.Builder
	var numbers []string
	var shown []string
	inArray := false

	flush := func() {
		for _, s := range shown {
			sb.WriteString(s)
		}
	}

	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case isPDFSpace(c):
			i++
		case c == '%':
			for i < len(data) && data[i] != '\n' && data[i] != '\r' {
				i++
			}
		case c == '(':
			s, n := readLiteral(data[i:])
			shown = append(shown, s)
			i += n
		case c == '<' && i+1 < len(data) && data[i+1] == '<':
			i += 2
		case c == '<':
			end := bytes.IndexByte(data[i:], '>')
			if end < 0 {
				i = len(data)
				continue
			}
			shown = append(shown, decodeHexString(data[i+1:i+end]))
			i += end + 1
		case c == '[' || c == ']':
			inArray = c == '['
			i++
		case c == '>' || c == '{' || c == '}' || c == ')':
			i++
		case c == '/':
			i++
			for i < len(data) && !isPDFSpace(data[i]) && !isPDFDelimiter(data[i]) {
				i++
			}
		default:
			start := i
			for i < len(data) && !isPDFSpace(data[i]) && !isPDFDelimiter(data[i]) {
				i++
			}
			tok := string(data[start:i])
			if isNumeric(tok) {
				if inArray {
					if isWordGap(tok) {
						shown = append(shown, " ")
					}
					continue
				}
				numbers = append(numbers, tok)
				continue
			}

			switch tok {
			case "Tj", "TJ":
				flush()
			case "'", "\"":
				sb.WriteByte('\n')
				flush()
			case "T*", "Tm", "ET":
				sb.WriteByte('\n')
			case "Td", "TD":
				if len(numbers) >= 2 && !isZero(numbers[len(numbers)-1]) {
					sb.WriteByte('\n')
				} else {
					sb.WriteByte(' ')
				}
			}
			numbers = numbers[:0]
			shown = shown[:0]
		}
	}

	return cleanLines(sb.String())
}

// readLiteral decodes a balanced (...) string starting at data[0] and returns
// the decoded text and the number of bytes consumed.
func readLiteral(data []byte) (string, int) {
	var sb strings.Builder
	depth := 0
	i := 0
	for ; i < len(data); i++ {
		c := data[i]
		switch {
		case c == '\\' && i+1 < len(data):
			i++
			switch e := data[i]; e {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'b', 'f':
			case '\n', '\r':
			default:
				if e >= '0' && e <= '7' {
					val := int(e - '0')
					for k := 0; k < 2 && i+1 < len(data) && data[i+1] >= '0' && data[i+1] <= '7'; k++ {
						i++
						val = val*8 + int(data[i]-'0')
					}
					sb.WriteByte(byte(val))
				} else {
					sb.WriteByte(e)
				}
			}
		case c == '(':
			if depth > 0 {
				sb.WriteByte(c)
			}
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), i
}

func decodeHexString(raw []byte) string {
	digits := make([]byte, 0, len(raw)+1)
	for _, c := range raw {
		if !isPDFSpace(c) {
			digits = append(digits, c)
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, hex.DecodedLen(len(digits)))
	n, err := hex.Decode(out, digits)
	if err != nil {
		return ""
	}
	return string(out[:n])
}

// cleanLines collapses whitespace inside each line and drops blank lines.
func cleanLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	return strings.Join(lines, "\n")
}

func isPDFSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f' || c == 0
}

func isPDFDelimiter(c byte) bool {
	return strings.IndexByte("()<>[]{}/%", c) >= 0
}

func isNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' {
			return false
		}
	}
	return true
}

// wordGapAdjustment is the TJ displacement, in thousandths of text space,
// at or below which a gap is rendered as a space.
const wordGapAdjustment = -200

func isWordGap(tok string) bool {
	v, err := strconv.ParseFloat(tok, 64)
	return err == nil && v <= wordGapAdjustment
}

func isZero(tok string) bool {
	return strings.Trim(tok, "+-0.") == ""
}
