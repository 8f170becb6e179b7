package pdf

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// contentStreamPages reads each page's content stream with pdfcpu and pulls
// the shown strings out of it.
func contentStreamPages(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	pages := make([]string, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil || r == nil {
			pages = append(pages, "")
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNr, err)
		}
		pages = append(pages, TextFromContent(data))
	}
	return pages, nil
}

// TextFromContent returns the text shown by the Tj, TJ, ' and " operators
// of a content stream. T*, ' and " start a new line; Td and TD insert a
// space. The stream is tokenised by operator, so several operators may
// share a line.
func TextFromContent(data []byte) string {
	var sb strings.Builder
	var operands []string

	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case isWhite(c):
			i++
		case c == '%':
			for i < len(data) && data[i] != '\n' && data[i] != '\r' {
				i++
			}
		case c == '(':
			var text string
			text, i = readLiteral(data, i)
			operands = append(operands, text)
		case c == '<' && i+1 < len(data) && data[i+1] == '<', c == '>' && i+1 < len(data) && data[i+1] == '>':
			i += 2
		case c == '<':
			var text string
			text, i = readHex(data, i)
			operands = append(operands, text)
		case c == '[', c == ']', c == '{', c == '}':
			i++
		case c == '/':
			i = skipRegular(data, i+1)
		default:
			end := skipRegular(data, i)
			if end == i {
				end = i + 1
			}
			op := string(data[i:end])
			i = end
			if isNumeric(op) {
				continue
			}

			switch op {
			case "Tj", "TJ":
				for _, text := range operands {
					sb.WriteString(text)
				}
			case "'", "\"":
				sb.WriteByte('\n')
				for _, text := range operands {
					sb.WriteString(text)
				}
			case "Td", "TD":
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
			case "T*":
				sb.WriteByte('\n')
			case "ID":
				i = skipInlineImage(data, i)
			}
			operands = operands[:0]
		}
	}

	return strings.TrimSpace(sb.String())
}

// isWhite reports PDF white-space characters.
func isWhite(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	return strings.IndexByte("()<>[]{}/%", c) >= 0
}

// skipRegular returns the index after the run of regular characters at i.
func skipRegular(data []byte, i int) int {
	for i < len(data) && !isWhite(data[i]) && !isDelimiter(data[i]) {
		i++
	}
	return i
}

func isNumeric(tok string) bool {
	return strings.IndexByte("+-.0123456789", tok[0]) >= 0
}

// readLiteral reads the string literal starting at data[start] == '('.
// Balanced parentheses may appear unescaped inside it.
func readLiteral(data []byte, start int) (string, int) {
	depth := 0
	for i := start; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return decodeString(data[start+1 : i]), i + 1
			}
		}
	}
	return decodeString(data[start+1:]), len(data)
}

// readHex reads the hex string starting at data[start] == '<'.
func readHex(data []byte, start int) (string, int) {
	var digits []byte
	i := start + 1
	for ; i < len(data) && data[i] != '>'; i++ {
		if isHexDigit(data[i]) {
			digits = append(digits, data[i])
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	raw := make([]byte, hex.DecodedLen(len(digits)))
	n, _ := hex.Decode(raw, digits)
	return textString(raw[:n]), min(i+1, len(data))
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// textString decodes string bytes: UTF-16BE when they carry a byte order
// mark, single bytes otherwise.
func textString(raw []byte) string {
	if len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF {
		units := make([]uint16, 0, (len(raw)-2)/2)
		for j := 2; j+1 < len(raw); j += 2 {
			units = append(units, uint16(raw[j])<<8|uint16(raw[j+1]))
		}
		return string(utf16.Decode(units))
	}
	var sb strings.Builder
	for _, b := range raw {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// skipInlineImage returns the index after the EI that ends inline image
// data starting at i.
func skipInlineImage(data []byte, i int) int {
	for ; i+2 <= len(data); i++ {
		if data[i] == 'E' && data[i+1] == 'I' && i > 0 && isWhite(data[i-1]) &&
			(i+2 == len(data) || isWhite(data[i+2])) {
			return i + 2
		}
	}
	return len(data)
}

// decodeString resolves the escape sequences of a string literal body.
// Bytes are read as single-byte characters, so 0xE9 becomes 'é'.
func decodeString(raw []byte) string {
	var out []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out = append(out, raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case '\r':
			// Line continuation.
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
		case '\n':
		default:
			if raw[i] < '0' || raw[i] > '7' {
				out = append(out, raw[i])
				continue
			}
			// Octal escape, up to three digits.
			val := int(raw[i] - '0')
			for n := 1; n < 3 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			out = append(out, byte(val))
		}
	}
	return textString(out)
}
