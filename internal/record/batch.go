package record

import "iter"

// ParseBatch applies ParseLine to each line in order, preserving order. The
// returned sequence is lazy: a caller can begin writing output before the
// whole batch has been parsed.
func ParseBatch(lines iter.Seq[string]) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for line := range lines {
			if !yield(ParseLine(line)) {
				return
			}
		}
	}
}
