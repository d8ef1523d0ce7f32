package hexinc

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// NamingMode selects how the emitted array identifier is derived from the
// source filename.
type NamingMode int

const (
	// NamingSuffixStrip strips known format-and-encoding suffixes from the
	// filename and uses the remaining base name.
	NamingSuffixStrip NamingMode = iota
	// NamingCoordinate parses row and column integers out of the filename
	// and composes a fixed-prefix slice identifier.
	NamingCoordinate
)

// DefaultCoordPrefix is the identifier prefix for coordinate-composed names.
const DefaultCoordPrefix = "gMap_"

// ErrInvalidFilename is reported when a filename does not match the pattern
// required by the naming mode. The unit is skipped; the batch continues.
var ErrInvalidFilename = errors.New("filename does not match naming pattern")

// coordRe captures row then column. Row is always the first group and is
// always emitted first, matching the downstream naming convention.
var coordRe = regexp.MustCompile(`(\d+)_(\d+)`)

// defaultStripSuffixes are the known format-and-encoding extensions removed
// by suffix-strip naming, e.g. "map_grand.u64.inc.c" -> "map_grand".
var defaultStripSuffixes = []string{
	".c", ".inc", ".bin",
	".u8", ".u16", ".u32", ".u64",
	".i4", ".i8", ".ia4", ".ia8", ".ia16",
	".ci4", ".ci8", ".rgba16", ".rgba32",
}

// String returns the mode name used in flags and config files.
func (m NamingMode) String() string {
	switch m {
	case NamingCoordinate:
		return "coordinate"
	default:
		return "suffix"
	}
}

// ParseNamingMode converts a flag/config value into a NamingMode.
func ParseNamingMode(s string) (NamingMode, error) {
	switch strings.ToLower(s) {
	case "suffix", "suffix-strip", "":
		return NamingSuffixStrip, nil
	case "coordinate", "coordinate-compose", "coord":
		return NamingCoordinate, nil
	}
	return NamingSuffixStrip, fmt.Errorf("unknown naming mode %q", s)
}

// DeriveIdentifier derives an array identifier from filename using the given
// mode and package defaults.
func DeriveIdentifier(filename string, mode NamingMode) (string, error) {
	t := New(mode)
	return t.deriveIdentifier(filename)
}

func (t *Transcoder) deriveIdentifier(filename string) (string, error) {
	base := filepath.Base(filename)

	switch t.Mode {
	case NamingCoordinate:
		m := coordRe.FindStringSubmatch(base)
		if m == nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidFilename, base)
		}
		row, err := strconv.Atoi(m[1])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidFilename, base)
		}
		col, err := strconv.Atoi(m[2])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidFilename, base)
		}
		prefix := t.CoordPrefix
		if prefix == "" {
			prefix = DefaultCoordPrefix
		}
		return fmt.Sprintf("%sslice_%d_%d", prefix, row, col), nil

	default:
		return stripSuffixes(base, t.stripSuffixes()), nil
	}
}

func (t *Transcoder) stripSuffixes() []string {
	if len(t.StripSuffixes) > 0 {
		return t.StripSuffixes
	}
	return defaultStripSuffixes
}

func stripSuffixes(name string, suffixes []string) string {
	for {
		ext := filepath.Ext(name)
		if ext == "" {
			return name
		}
		known := false
		for _, s := range suffixes {
			if strings.EqualFold(ext, s) {
				known = true
				break
			}
		}
		if !known {
			return name
		}
		name = strings.TrimSuffix(name, ext)
	}
}
