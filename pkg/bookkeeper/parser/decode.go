package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw file bytes to text.
// A UTF-8 or UTF-16 byte-order mark wins over name; otherwise name is a WHATWG
// encoding label such as "utf-8", "windows-1252" or "shift_jis". Empty means UTF-8.
func Decode(data []byte, name string) (string, error) {
	fallback, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}

	decoder := unicode.BOMOverride(fallback.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}
