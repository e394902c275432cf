package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// ExampleDisjointSet shows incremental connectivity over six elements.
func ExampleDisjointSet() {
	ds, _ := unionfind.New(6)
	_ = ds.Union(0, 1)
	_ = ds.Union(1, 2)
	_ = ds.Union(4, 5)

	a, _ := ds.Connected(0, 2)
	b, _ := ds.Connected(2, 4)
	fmt.Println("0~2:", a)
	fmt.Println("2~4:", b)
	fmt.Println("components:", ds.Count())

	// Output:
	// 0~2: true
	// 2~4: false
	// components: 3
}
