package grid_test

import (
	"fmt"

	"github.com/katalvlaran/cubix/grid"
)

// ExampleBuild constructs a 2-D lattice over the unit square with two
// subdivisions per axis and reports its cell inventory.
func ExampleBuild() {
	g, err := grid.Build(
		[]grid.Interval{{Min: 0, Max: 1}, {Min: 0, Max: 1}},
		grid.Options{Resolution: 2},
	)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	for k := 0; k <= g.Dimension(); k++ {
		fmt.Printf("%d-cells: %d\n", k, g.DimCellCount(k))
	}
	fmt.Println("total:", g.CellCount())
	// Output:
	// 0-cells: 9
	// 1-cells: 12
	// 2-cells: 4
	// total: 25
}
