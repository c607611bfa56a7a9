package metric_test

import (
	"fmt"

	"github.com/katalvlaran/textdiv/metric"
)

// ExampleRegistry_Lookup resolves a misspelled name and computes a distance.
func ExampleRegistry_Lookup() {
	m, name, err := metric.Default().Lookup("levenstein", metric.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	d, _ := m.Distance("kitten", "sitting")
	fmt.Println(name, d)
	// Output: levenshtein 3
}

// ExampleCompose wraps an edit count into a normalized token-order-insensitive metric.
func ExampleCompose() {
	base, _, _ := metric.Default().Lookup("levenshtein", metric.DefaultOptions())
	m, _ := metric.Compose(metric.ModTokenSort, base)
	d, _ := m.Distance("brown fox", "fox brown")
	fmt.Println(m.Name(), d)
	// Output: token_sort:levenshtein 0
}
