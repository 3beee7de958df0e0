package mutate_test

import (
	"testing"

	"github.com/wordforge/wordforge/mutate"
	"github.com/wordforge/wordforge/seeds"
)

// BenchmarkGenerate_Comprehensive drains the widest profile over a typical
// seed set (two names, a date, two extras).
func BenchmarkGenerate_Comprehensive(b *testing.B) {
	set, err := seeds.Extract(seeds.Facts{
		Name:  "Arjun Rao",
		Pet:   "Bruno",
		Date:  "2001-06-15",
		Extra: []string{"cyber", "college"},
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		seq, _ := mutate.Generate(set, mutate.Comprehensive)
		var n int
		for range seq {
			n++
		}
		if n == 0 {
			b.Fatal("no candidates generated")
		}
	}
}

// BenchmarkGenerate_FirstHundred measures the lazy path: a consumer that
// stops after 100 candidates must not pay for the full space.
func BenchmarkGenerate_FirstHundred(b *testing.B) {
	set, _ := seeds.Extract(seeds.Facts{
		Name: "Arjun Rao",
		Pet:  "Bruno",
		Date: "2001-06-15",
	})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		seq, _ := mutate.Generate(set, mutate.Comprehensive)
		var n int
		for range seq {
			if n++; n == 100 {
				break
			}
		}
	}
}
