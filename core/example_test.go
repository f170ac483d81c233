package core_test

import (
	"fmt"

	"github.com/katalvlaran/mene/core"
)

// ExampleBuilder builds a two-reaction network and walks its index view.
func ExampleBuilder() {
	b := core.NewBuilder(core.WithName("demo"))
	_ = b.AddReaction("R_in", nil, []string{"A"})
	_ = b.AddReaction("R_ab", []string{"A"}, []string{"B"}, core.WithReversible(true))
	net, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(net.Compounds())
	a, _ := net.CompoundIndex("A")
	for _, r := range net.ConsumersOf(a) {
		fmt.Println(net.ReactionID(r), net.Reversible(r))
	}
	// Output:
	// [A B]
	// R_ab true
}
