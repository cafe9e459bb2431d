// Package encoding decodes names stored in legacy code pages. Older model
// formats copy node, mesh and material names into the file byte for byte,
// so a scene authored on a Korean or Japanese system carries EUC-KR or
// Shift-JIS bytes where UTF-8 is expected.
package encoding

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Decoder converts names from one legacy encoding to UTF-8. A nil
// *Decoder passes names through unchanged.
type Decoder struct {
	name string
	enc  encoding.Encoding
}

// EUCKR decodes EUC-KR (code page 949) names.
var EUCKR = &Decoder{name: "euc-kr", enc: korean.EUCKR}

// Lookup returns the decoder for a WHATWG encoding label such as
// "euc-kr", "shift_jis", "gbk" or "windows-1252". The empty label and
// "utf-8" return nil.
func Lookup(label string) (*Decoder, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" || label == "utf-8" || label == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return &Decoder{name: name, enc: enc}, nil
}

// Name returns the canonical label, or "utf-8" for a nil decoder.
func (d *Decoder) Name() string {
	if d == nil {
		return "utf-8"
	}
	return d.name
}

// String decodes s unless it is already valid UTF-8. It returns s
// unchanged if decoding fails.
func (d *Decoder) String(s string) string {
	if d == nil || utf8.ValidString(s) {
		return s
	}
	result, _, err := transform.String(d.enc.NewDecoder(), s)
	if err != nil {
		return s
	}
	return result
}

// Fixed decodes a NUL-terminated fixed-size field.
func (d *Decoder) Fixed(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return d.String(string(data))
}

// Encode converts a UTF-8 name back to the legacy encoding, for writing
// names into formats that expect it.
func (d *Decoder) Encode(s string) ([]byte, error) {
	if d == nil {
		return []byte(s), nil
	}
	result, _, err := transform.Bytes(d.enc.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %q as %s: %w", s, d.name, err)
	}
	return result, nil
}
