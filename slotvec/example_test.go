package slotvec_test

import (
	"fmt"

	"github.com/katalvlaran/gengraph/slotvec"
)

// ExampleSlotVec demonstrates the generational lifecycle: a removed handle
// never resolves again, even though its physical slot is reused.
func ExampleSlotVec() {
	names := slotvec.New[string]()

	// Add mints a (slot, generation) handle.
	alpha := names.Add("alpha")
	fmt.Println("alpha lives at", alpha)

	// Removing advances the slot's generation...
	names.Remove(alpha)

	// ...so the reuse gets a distinct handle on the same slot.
	beta := names.Add("beta")
	fmt.Println("beta lives at", beta)

	// The stale handle is rejected; the fresh one resolves.
	_, ok := names.Get(alpha)
	fmt.Println("alpha still resolves:", ok)
	v, _ := names.Get(beta)
	fmt.Println("beta resolves to:", v)

	// Output:
	// alpha lives at 0.0
	// beta lives at 0.1
	// alpha still resolves: false
	// beta resolves to: beta
}

// ExampleParseIndex demonstrates the compact literal round-trip.
func ExampleParseIndex() {
	ix, err := slotvec.ParseIndex("12.3")
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	fmt.Println(ix.Slot, ix.Generation)
	fmt.Println(ix)

	// Output:
	// 12 3
	// 12.3
}
