// SPDX-License-Identifier: MIT
package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/disjointset"
)

func ExampleForest() {
	f := disjointset.NewForest[string](4)
	for _, room := range []string{"hall", "kitchen", "attic", "cellar"} {
		_ = f.MakeSet(room)
	}
	_, _ = f.Union("hall", "kitchen")
	_, _ = f.Union("kitchen", "cellar")

	linked, _ := f.Connected("hall", "cellar")
	size, _ := f.SizeOf("hall")
	fmt.Println(linked, size, f.Count())

	// Output:
	// true 3 2
}
