// Package encoding normalizes uploaded CSV bytes to UTF-8. Spreadsheet
// exports arrive in whatever the sender's machine produced: UTF-8 with or
// without a BOM, UTF-16, or a Windows/Latin single-byte codepage.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const peekSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r with whatever decoding its content needs:
//
//  1. a BOM wins (the UTF-8 BOM is stripped, UTF-16 is decoded)
//  2. bytes that already validate as UTF-8 pass through untouched
//  3. otherwise chardet picks a charset from the first few KB
//  4. unrecognized content falls back to Windows-1252, which accepts any
//     byte sequence and covers most Latin-script spreadsheet exports
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	charset := ""
	if result, detectErr := chardet.NewTextDetector().DetectBest(buf); detectErr == nil {
		charset = result.Charset
	}

	// The peek can cut a multi-byte rune at the boundary, failing the
	// validation above on content that is in fact UTF-8.
	if charset == "UTF-8" {
		return br, nil
	}

	if dec := decoderFor(charset); dec != nil {
		return transform.NewReader(br, dec), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

func decoderFor(charset string) transform.Transformer {
	switch charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252.NewDecoder()
	case "ISO-8859-15":
		return charmap.ISO8859_15.NewDecoder()
	case "ISO-8859-9":
		return charmap.ISO8859_9.NewDecoder()
	default:
		return nil
	}
}
