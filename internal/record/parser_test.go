package record

import (
	"slices"
	"testing"
)

func TestParseLineStrict(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			"clean record",
			`{"instruction": "Do X", "input": "ctx", "output": "Y"}`,
			Record{Instruction: "Do X", Input: "ctx", Output: "Y"},
		},
		{
			"null input collapses to empty",
			`{"instruction": "Do X", "input": null, "output": "Y"}`,
			Record{Instruction: "Do X", Input: "", Output: "Y"},
		},
		{
			"advisory field accepted",
			`{"instruction": "Do X", "input": "", "output": "Y", "technical_notes": "n"}`,
			Record{Instruction: "Do X", Input: "", Output: "Y"},
		},
		{
			"whitespace trimmed",
			`{"instruction": "  Do X ", "input": "", "output": " Y\n "}`,
			Record{Instruction: "Do X", Input: "", Output: "Y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			if got.Tier != TierStrict {
				t.Errorf("tier = %v, want strict", got.Tier)
			}
			if got.Record != tt.want {
				t.Errorf("record = %+v, want %+v", got.Record, tt.want)
			}
		})
	}
}

func TestParseLineFallback(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Record
		missing []string
	}{
		{
			"trailing comma",
			`{"instruction": "Do X", "input": null, "output": "Y",}`,
			Record{Instruction: "Do X", Input: "", Output: "Y"},
			nil,
		},
		{
			"truncated line missing output",
			`{"instruction": "Do X", "input": "ctx"`,
			Record{Instruction: "Do X", Input: "ctx", Output: ""},
			[]string{"output"},
		},
		{
			"garbage around fields",
			`garbage "instruction": "A" more "output": "B" trailing`,
			Record{Instruction: "A", Input: "", Output: "B"},
			[]string{"input"},
		},
		{
			"nothing recoverable",
			`not a record at all`,
			Record{},
			[]string{"instruction", "input", "output"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			if got.Tier != TierSalvaged {
				t.Errorf("tier = %v, want salvaged", got.Tier)
			}
			if got.Record != tt.want {
				t.Errorf("record = %+v, want %+v", got.Record, tt.want)
			}
			if !slices.Equal(got.Missing, tt.missing) {
				t.Errorf("missing = %v, want %v", got.Missing, tt.missing)
			}
		})
	}
}

// An escaped quote inside the output value must not truncate extraction.
func TestParseLineEmbeddedQuote(t *testing.T) {
	line := `{"instruction": "Quote", "input": null, "output": "He said \"hi\" twice",}`
	got := ParseLine(line)
	if got.Tier != TierSalvaged {
		t.Fatalf("tier = %v, want salvaged", got.Tier)
	}
	if want := `He said "hi" twice`; got.Record.Output != want {
		t.Errorf("output = %q, want %q", got.Record.Output, want)
	}
}

func TestParseLineUnescapesOutput(t *testing.T) {
	// Truncated line: no closing brace, so only the fallback tier applies.
	line := `{"instruction": "Fmt", "output": "line1\nline2\tend"`
	got := ParseLine(line)
	if got.Tier != TierSalvaged {
		t.Fatalf("tier = %v, want salvaged", got.Tier)
	}
	if got.Record.Output != "line1\nline2\tend" {
		t.Errorf("output = %q", got.Record.Output)
	}
}

func TestParseLineArtifactStripped(t *testing.T) {
	// Upstream line-splitting bug leaves a trailing `",` on field values.
	line := `{"instruction": "Do X\",", "input": null, "output": "Y\","}`
	got := ParseLine(line)
	if got.Record.Instruction != "Do X" {
		t.Errorf("instruction = %q, want %q", got.Record.Instruction, "Do X")
	}
	if got.Record.Output != "Y" {
		t.Errorf("output = %q, want %q", got.Record.Output, "Y")
	}
}

func TestParseLineMissingOutputNeverFails(t *testing.T) {
	got := ParseLine(`{"instruction": "only this"}`)
	if got.Record.Output != "" {
		t.Errorf("output = %q, want empty", got.Record.Output)
	}
	if !slices.Contains(got.Missing, "output") {
		t.Errorf("missing = %v, want output listed", got.Missing)
	}
}

// Normalization is idempotent on already-clean input.
func TestParseLineRoundtrip(t *testing.T) {
	line := `{"instruction": "Do X", "input": "ctx", "output": "Y"}`
	first := ParseLine(line)
	second := ParseLine(`{"instruction": "` + first.Record.Instruction +
		`", "input": "` + first.Record.Input +
		`", "output": "` + first.Record.Output + `"}`)
	if first.Record != second.Record {
		t.Errorf("round-trip mismatch: %+v vs %+v", first.Record, second.Record)
	}
}

func TestParseBatchOrder(t *testing.T) {
	lines := []string{
		`{"instruction": "a", "output": "1"}`,
		`broken`,
		`{"instruction": "c", "output": "3"}`,
	}
	var got []Result
	for r := range ParseBatch(slices.Values(lines)) {
		got = append(got, r)
	}
	if len(got) != 3 {
		t.Fatalf("parsed %d results, want 3", len(got))
	}
	if got[0].Record.Instruction != "a" || got[2].Record.Instruction != "c" {
		t.Errorf("order not preserved: %+v", got)
	}
	if got[1].Tier != TierSalvaged {
		t.Errorf("middle line tier = %v, want salvaged", got[1].Tier)
	}
}

func TestParseBatchLazy(t *testing.T) {
	lines := []string{`{"instruction": "a", "output": "1"}`, `{"instruction": "b", "output": "2"}`}
	n := 0
	for range ParseBatch(slices.Values(lines)) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("early break consumed %d results", n)
	}
}
