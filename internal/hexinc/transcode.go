// Package hexinc rewrites generated hex-literal include files into canonical
// fixed-width byte array declarations.
package hexinc

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecKarfonta/zelda-sub001/internal/util"
)

// DefaultBytesPerLine is the number of byte literals emitted per output line.
const DefaultBytesPerLine = 16

// wordBytes is the width of a source literal in bytes (64-bit words).
const wordBytes = 8

var (
	// ErrEmptyInput is reported when a unit contains no hex literals.
	// The unit is skipped; the batch continues.
	ErrEmptyInput = errors.New("no hex literals found")

	literalRe = regexp.MustCompile(`0[xX][0-9a-fA-F]+`)
	declRe    = regexp.MustCompile(`(?s)\bu8\s+([A-Za-z_][A-Za-z0-9_]*)\s*\[\s*\]\s*=\s*\{(.*)\}\s*;`)
)

// Transcoder converts a unit of hex-literal text into a byte array declaration.
type Transcoder struct {
	Mode         NamingMode
	BytesPerLine int
	// CoordPrefix is prepended to coordinate-composed identifiers.
	CoordPrefix string
	// StripSuffixes overrides the default suffix set for suffix-strip naming.
	StripSuffixes []string
}

// New creates a Transcoder with default formatting for the given naming mode.
func New(mode NamingMode) *Transcoder {
	return &Transcoder{
		Mode:         mode,
		BytesPerLine: DefaultBytesPerLine,
		CoordPrefix:  DefaultCoordPrefix,
	}
}

// StripDeclaration removes an existing array-declaration wrapper from text,
// returning the bare literal stream. The second result reports whether a
// wrapper was found.
func StripDeclaration(text string) (string, bool) {
	m := declRe.FindStringSubmatch(text)
	if m == nil {
		return text, false
	}
	return m[2], true
}

// ExtractLiterals collects every 0x-prefixed hex literal in text, in order of
// appearance, as 64-bit words. Non-literal text is ignored.
func ExtractLiterals(text string) ([]uint64, error) {
	toks := literalRe.FindAllString(text, -1)
	if len(toks) == 0 {
		return nil, ErrEmptyInput
	}

	values := make([]uint64, len(toks))
	for i, tok := range toks {
		v, err := strconv.ParseUint(tok[2:], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("literal %q at index %d: %w", tok, i, err)
		}
		values[i] = v
	}
	return values, nil
}

// ToBytesBigEndian expands each 64-bit word into its 8 constituent bytes,
// most significant byte first, concatenated in input order.
func ToBytesBigEndian(values []uint64) []byte {
	out := make([]byte, 0, len(values)*wordBytes)
	for _, v := range values {
		out = append(out, util.U64ToBEBytes(v)...)
	}
	return out
}

// RenderDeclaration serializes data as a u8 array declaration, wrapping every
// bytesPerLine bytes. No trailing comma after the final byte.
func RenderDeclaration(identifier string, data []byte, bytesPerLine int) string {
	if bytesPerLine <= 0 {
		bytesPerLine = DefaultBytesPerLine
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("u8 %s[] = {\n", identifier))

	for i, b := range data {
		sb.WriteString(fmt.Sprintf("0x%02x", b))
		if i < len(data)-1 {
			sb.WriteString(",")
			if (i+1)%bytesPerLine == 0 {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
		}
	}

	sb.WriteString("\n};\n")
	return sb.String()
}

// TranscodeUnit converts one unit of input text into its canonical
// declaration. Any existing wrapper is stripped first, which makes the
// operation idempotent: a previously rendered declaration carries byte-wide
// literals and is reparsed as bytes rather than re-expanded as words.
func (t *Transcoder) TranscodeUnit(text, filename string) (string, error) {
	inner, stripped := StripDeclaration(text)

	values, err := ExtractLiterals(inner)
	if err != nil {
		return "", err
	}

	var data []byte
	if stripped && maxValue(values) <= 0xFF {
		// Literals inside a wrapper are already bytes.
		data = make([]byte, len(values))
		for i, v := range values {
			data[i] = byte(v)
		}
	} else {
		data = ToBytesBigEndian(values)
	}

	ident, err := t.deriveIdentifier(filename)
	if err != nil {
		return "", err
	}

	return RenderDeclaration(ident, data, t.BytesPerLine), nil
}

func maxValue(values []uint64) uint64 {
	var m uint64
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
