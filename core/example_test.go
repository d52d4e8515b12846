package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

func ExampleCustomGraph() {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	_, _ = g.AddArc(a, b, core.Directed)
	_, _ = g.AddArc(b, c, core.Directed)

	fmt.Println(g.NodeCount(), g.ArcCount(core.All))
	// Output: 3 2
}

func ExampleCompleteGraph() {
	g := core.NewCompleteGraph(4, core.Undirected)
	fmt.Println(g.ArcCount(core.All))
	// Output: 6
}
