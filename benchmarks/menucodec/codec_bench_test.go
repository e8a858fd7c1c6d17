package menucodec_bench

import (
	"fmt"
	"strings"
	"testing"

	"github.com/deluxetools/menued/internal/menu"
)

// buildMenuYAML produces a menu config with the given number of items,
// each carrying requirements, so the benchmarks exercise the full codec
// rather than just the header fields.
func buildMenuYAML(items int) string {
	var b strings.Builder
	b.WriteString("menu_title: '&6Benchmark Shop'\n")
	b.WriteString("open_command: bench\n")
	b.WriteString("size: 54\n")
	b.WriteString("open_requirement:\n")
	b.WriteString("  requirements:\n")
	b.WriteString("    perm:\n")
	b.WriteString("      type: has permission\n")
	b.WriteString("      permission: shop.open\n")
	b.WriteString("items:\n")
	for i := 0; i < items; i++ {
		fmt.Fprintf(&b, "  item%d:\n", i)
		b.WriteString("    material: DIAMOND_SWORD\n")
		fmt.Fprintf(&b, "    slot: %d\n", i%54)
		fmt.Fprintf(&b, "    display_name: '&bItem %d'\n", i)
		b.WriteString("    lore:\n")
		b.WriteString("      - '&7First line'\n")
		b.WriteString("      - '&7Second line'\n")
		b.WriteString("    click_requirement:\n")
		b.WriteString("      requirements:\n")
		b.WriteString("        cost:\n")
		b.WriteString("          type: has money\n")
		b.WriteString("          amount: 100\n")
		b.WriteString("    left_click_commands:\n")
		b.WriteString("      - '[message] bought'\n")
	}
	return b.String()
}

func BenchmarkParse(b *testing.B) {
	for _, size := range []int{1, 10, 50} {
		b.Run(fmt.Sprintf("items_%d", size), func(b *testing.B) {
			text := buildMenuYAML(size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := menu.Parse(text); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGenerate(b *testing.B) {
	for _, size := range []int{1, 10, 50} {
		b.Run(fmt.Sprintf("items_%d", size), func(b *testing.B) {
			settings, err := menu.Parse(buildMenuYAML(size))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := menu.Generate(settings); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	text := buildMenuYAML(10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		settings, err := menu.Parse(text)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := menu.Generate(settings); err != nil {
			b.Fatal(err)
		}
	}
}
