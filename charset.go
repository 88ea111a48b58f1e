// charset.go resolves raw input bytes to decoded UTF-8 text before
// tokenization: gzip inflation, prolog-declared encodings, and BOMs.
package xmltree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/pgzip"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeInput reads r fully and returns its content as UTF-8 text.
// Gzip-compressed input is inflated first. The encoding is taken from
// label if non-empty, else from an `encoding="..."` declaration in a
// leading prolog; with neither, the input is treated as UTF-8 with an
// optional BOM (a UTF-16 BOM switches the decoder accordingly). A
// leading BOM is stripped on every path and never reaches the lexer.
func decodeInput(r io.Reader, label string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		zr, err := pgzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("inflating gzip input: %w", err)
		}
		data, err = io.ReadAll(zr)
		if err != nil {
			zr.Close()
			return "", fmt.Errorf("inflating gzip input: %w", err)
		}
		if err := zr.Close(); err != nil {
			return "", fmt.Errorf("inflating gzip input: %w", err)
		}
	}

	if label == "" {
		label = sniffEncodingLabel(data)
	}
	if label != "" {
		cr, err := charset.NewReaderLabel(label, bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("encoding %q: %w", label, err)
		}
		decoded, err := io.ReadAll(cr)
		if err != nil {
			return "", fmt.Errorf("decoding input as %q: %w", label, err)
		}
		// The labeled decoder passes a leading BOM through as U+FEFF,
		// which would reach the lexer as text.
		return strings.TrimPrefix(string(decoded), "\uFEFF"), nil
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decoding input: %w", err)
	}
	return string(decoded), nil
}

// sniffEncodingLabel extracts the encoding label from a leading
// `<?xml ... encoding="..." ...?>` prolog. It scans ASCII only; inputs
// in encodings that are not ASCII-compatible rely on their BOM. An
// empty return means no declaration was found.
func sniffEncodingLabel(data []byte) string {
	head := data
	if len(head) > 256 {
		head = head[:256]
	}
	s := string(head)
	s = strings.TrimPrefix(s, "\xef\xbb\xbf")
	if !strings.HasPrefix(s, "<?xml") {
		return ""
	}
	end := strings.Index(s, "?>")
	if end < 0 {
		return ""
	}
	pi := s[:end]

	// Match `encoding` only as an attribute name: preceded by
	// whitespace and followed by `=`. A bare substring hit (say inside
	// another attribute's value) is skipped.
	for j := 0; ; {
		k := strings.Index(pi[j:], "encoding")
		if k < 0 {
			return ""
		}
		k += j
		j = k + len("encoding")
		if k == 0 || !isSpaceByte(pi[k-1]) {
			continue
		}
		rest := strings.TrimLeft(pi[j:], " \t\r\n")
		if !strings.HasPrefix(rest, "=") {
			continue
		}
		rest = strings.TrimLeft(rest[1:], " \t\r\n")
		if rest == "" {
			return ""
		}
		quote := rest[0]
		if quote != '"' && quote != '\'' {
			return ""
		}
		rest = rest[1:]
		v := strings.IndexByte(rest, quote)
		if v < 0 {
			return ""
		}
		return rest[:v]
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
