package cofactor_test

import (
	"fmt"

	"github.com/katalvlaran/mene/cofactor"
	"github.com/katalvlaran/mene/internal/testnet"
)

func ExampleRun() {
	res, err := cofactor.Run(testnet.Toy(), testnet.ToySeeds(), testnet.ToyTargets())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Chosen {
		fmt.Println(c.ID, c.Weight)
	}
	fmt.Println("newly producible:", res.NewlyProducible)
	// Output:
	// M_T1_c 2
	// M_c_c 1
	// newly producible: [M_T1_c M_T2_c]
}
