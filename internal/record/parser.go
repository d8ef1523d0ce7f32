// Package record recovers structured instruction records from malformed
// line-delimited JSON.
package record

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Record is one normalized training record. All fields are plain strings;
// a missing or null source field is an empty string.
type Record struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
}

// Tier identifies which parse strategy produced a result.
type Tier int

const (
	// TierStrict means the line parsed as well-formed JSON.
	TierStrict Tier = iota
	// TierSalvaged means field-by-field extraction recovered the record.
	TierSalvaged
)

// String returns the tier name used in logs and summaries.
func (t Tier) String() string {
	if t == TierStrict {
		return "strict"
	}
	return "salvaged"
}

// Result is a parsed line tagged with the tier that handled it. Missing lists
// the required fields the fallback extractor could not find (they are empty
// strings in the record). Notes carries the optional advisory field when the
// line had one.
type Result struct {
	Record  Record
	Tier    Tier
	Missing []string
	Notes   string
}

// rawRecord distinguishes absent keys from null values during strict parsing.
type rawRecord struct {
	Instruction    *string `json:"instruction"`
	Input          *string `json:"input"`
	Output         *string `json:"output"`
	TechnicalNotes *string `json:"technical_notes"`
}

// artifactSuffix is the residue left by an upstream line-truncation bug.
const artifactSuffix = `",`

var outputUnescaper = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\"`, `"`)

// fieldValueRe matches a key's value: either the null token or a quoted
// string. The string alternative tolerates escaped quotes, so an output like
// "He said \"hi\"" is captured in full instead of truncating at the first
// quote.
func fieldValueRe(key string) *regexp.Regexp {
	return regexp.MustCompile(`"` + key + `"\s*:\s*(?:(null)|"((?:[^"\\]|\\.)*)")`)
}

var (
	instructionRe = fieldValueRe("instruction")
	inputRe       = fieldValueRe("input")
	outputRe      = fieldValueRe("output")
	notesRe       = fieldValueRe("technical_notes")
)

// ParseLine turns one raw line into a normalized record. It never fails:
// lines that are not valid JSON degrade to field-by-field extraction, and
// fields that cannot be recovered normalize to empty strings.
func ParseLine(line string) Result {
	var raw rawRecord
	if err := json.Unmarshal([]byte(line), &raw); err == nil &&
		raw.Instruction != nil && raw.Output != nil {
		return Result{
			Record: normalize(raw.Instruction, raw.Input, raw.Output),
			Tier:   TierStrict,
			Notes:  deref(raw.TechnicalNotes),
		}
	}

	instruction, foundInstruction := extractField(instructionRe, line)
	input, foundInput := extractField(inputRe, line)
	output, foundOutput := extractField(outputRe, line)
	notes, _ := extractField(notesRe, line)

	var missing []string
	if !foundInstruction {
		missing = append(missing, "instruction")
	}
	if !foundInput {
		missing = append(missing, "input")
	}
	if !foundOutput {
		missing = append(missing, "output")
	}

	return Result{
		Record:  normalize(instruction, input, output),
		Tier:    TierSalvaged,
		Missing: missing,
		Notes:   deref(notes),
	}
}

// extractField finds the first occurrence of the field in line. A null value
// counts as found with a nil string, so the caller can tell "missing" from
// "present but null".
func extractField(re *regexp.Regexp, line string) (*string, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	if m[1] == "null" {
		return nil, true
	}
	v := m[2]
	return &v, true
}

// normalize applies the cleanup pass shared by both tiers: trim, unescape the
// output, collapse null input, and strip the trailing truncation artifact.
func normalize(instruction, input, output *string) Record {
	ins := strings.TrimSpace(deref(instruction))
	in := deref(input)
	out := strings.TrimSpace(deref(output))

	out = outputUnescaper.Replace(out)

	ins = strings.TrimSuffix(ins, artifactSuffix)
	in = strings.TrimSuffix(in, artifactSuffix)
	out = strings.TrimSuffix(out, artifactSuffix)

	return Record{Instruction: ins, Input: in, Output: out}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
