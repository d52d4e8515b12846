package traversal_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/traversal"
)

func ExampleRun() {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	g.AddArc(a, b, core.Directed)
	g.AddArc(a, c, core.Directed)

	res, _ := traversal.Run(g, traversal.WithRoots(a))
	fmt.Println(len(res.Order))
	// Output: 3
}
