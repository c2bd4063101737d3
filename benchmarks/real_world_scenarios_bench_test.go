package smallvec_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pavanmanishd/smallvec"
)

// BenchmarkParserScenarios simulates token and operand lists in a parser
func BenchmarkParserScenarios(b *testing.B) {
	line := "mov eax, dword ptr [ebx + 4]"

	b.Run("Tokenize", func(b *testing.B) {
		b.Run("SmallVec", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var toks smallvec.SmallVec[string, [8]string]
				for _, f := range strings.Fields(line) {
					toks.Push(f)
				}
				if toks.Len() != 8 {
					b.Fatal("bad token count")
				}
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var toks []string
				for _, f := range strings.Fields(line) {
					toks = append(toks, f)
				}
				if len(toks) != 8 {
					b.Fatal("bad token count")
				}
			}
		})
	})
}

type node struct {
	id       int
	children smallvec.SmallVec[*node, [4]*node]
}

type sliceNode struct {
	id       int
	children []*sliceNode
}

// BenchmarkTreeScenarios builds trees whose nodes mostly have few children
func BenchmarkTreeScenarios(b *testing.B) {
	const nodes = 1000

	b.Run("SmallVec", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			all := make([]node, nodes)
			for j := 1; j < nodes; j++ {
				all[j].id = j
				parent := &all[(j-1)/3]
				parent.children.Push(&all[j])
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			all := make([]sliceNode, nodes)
			for j := 1; j < nodes; j++ {
				all[j].id = j
				parent := &all[(j-1)/3]
				parent.children = append(parent.children, &all[j])
			}
		}
	})
}

// BenchmarkFormattingScenarios formats log lines into a byte vector
func BenchmarkFormattingScenarios(b *testing.B) {
	b.Run("SmallVecWriter", func(b *testing.B) {
		b.ReportAllocs()
		var v smallvec.SmallVec[byte, [128]byte]
		w := smallvec.NewWriter(&v)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Clear()
			fmt.Fprintf(w, "level=info req=%d path=%s status=%d", i, "/api/items", 200)
		}
	})

	b.Run("StringsBuilder", func(b *testing.B) {
		b.ReportAllocs()
		var sb strings.Builder
		for i := 0; i < b.N; i++ {
			sb.Reset()
			fmt.Fprintf(&sb, "level=info req=%d path=%s status=%d", i, "/api/items", 200)
		}
	})
}

// BenchmarkDecodeScenarios decodes short JSON arrays
func BenchmarkDecodeScenarios(b *testing.B) {
	data := []byte(`[1, 2, 3, 4, 5, 6]`)

	b.Run("SmallVec", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var v smallvec.SmallVec[int, [8]int]
			if err := json.Unmarshal(data, &v); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s []int
			if err := json.Unmarshal(data, &s); err != nil {
				b.Fatal(err)
			}
		}
	})
}
