package hexinc

import (
	"errors"
	"testing"
)

func TestDeriveIdentifierSuffixStrip(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"u64 include", "map_grand.u64.inc.c", "map_grand"},
		{"i8 texture", "minimap_mask.i8.inc.c", "minimap_mask"},
		{"rgba16", "icon_item.rgba16.inc.c", "icon_item"},
		{"path stripped", "assets/textures/map_i_static/map_grand.u64.inc.c", "map_grand"},
		{"unknown suffix kept", "notes.txt", "notes.txt"},
		{"no suffix", "map_grand", "map_grand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveIdentifier(tt.filename, NamingSuffixStrip)
			if err != nil {
				t.Fatalf("DeriveIdentifier(%q) error: %v", tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("DeriveIdentifier(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDeriveIdentifierCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
		wantErr  bool
	}{
		{"basic", "slice_2_5.i8.inc.c", "gMap_slice_2_5", false},
		{"row emitted first", "slice_10_3.i8.inc.c", "gMap_slice_10_3", false},
		{"bare pair", "7_11", "gMap_slice_7_11", false},
		{"no coordinates", "map_grand.u64.inc.c", "", true},
		{"single integer", "slice_2.inc.c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveIdentifier(tt.filename, NamingCoordinate)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeriveIdentifier(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFilename) {
					t.Errorf("error = %v, want ErrInvalidFilename", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("DeriveIdentifier(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDeriveIdentifierCustomPrefix(t *testing.T) {
	tr := New(NamingCoordinate)
	tr.CoordPrefix = "gWorldMap_"
	got, err := tr.deriveIdentifier("slice_0_1.ia8.inc.c")
	if err != nil {
		t.Fatal(err)
	}
	if got != "gWorldMap_slice_0_1" {
		t.Errorf("identifier = %q, want %q", got, "gWorldMap_slice_0_1")
	}
}

func TestParseNamingMode(t *testing.T) {
	tests := []struct {
		input   string
		want    NamingMode
		wantErr bool
	}{
		{"suffix", NamingSuffixStrip, false},
		{"suffix-strip", NamingSuffixStrip, false},
		{"", NamingSuffixStrip, false},
		{"coordinate", NamingCoordinate, false},
		{"COORD", NamingCoordinate, false},
		{"bogus", NamingSuffixStrip, true},
	}
	for _, tt := range tests {
		got, err := ParseNamingMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNamingMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseNamingMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
