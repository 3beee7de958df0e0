package wordlist

import (
	"bufio"
	"io"
	"iter"

	"github.com/wordforge/wordforge/mutate"
)

// Dedup strips repeated candidate texts from seq, preserving first-seen
// order, and stops after limit unique strings. A limit <= 0 means no limit.
// Once the limit is reached the upstream sequence is no longer pulled.
func Dedup(seq iter.Seq[mutate.Candidate], limit int) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for c := range seq {
			if _, dup := seen[c.Text]; dup {
				continue
			}
			seen[c.Text] = struct{}{}
			if !yield(c.Text) {
				return
			}
			if limit > 0 && len(seen) >= limit {
				return
			}
		}
	}
}

// DedupStrings is Dedup for plain string sequences.
func DedupStrings(seq iter.Seq[string], limit int) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for s := range seq {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			if !yield(s) {
				return
			}
			if limit > 0 && len(seen) >= limit {
				return
			}
		}
	}
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[string]) []string {
	var out []string
	for s := range seq {
		out = append(out, s)
	}

	return out
}

// Write streams seq to w, one candidate per line, newline-terminated.
// Returns the number of candidates written and the first write error.
func Write(w io.Writer, seq iter.Seq[string]) (int, error) {
	bw := bufio.NewWriter(w)
	var n int
	for s := range seq {
		if _, err := bw.WriteString(s); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}

	return n, bw.Flush()
}
