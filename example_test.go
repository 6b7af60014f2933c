package colorwheel

import "fmt"

// ExampleCalculate shows how to derive the triadic harmony of a hex color.
func ExampleCalculate() {
	base, _ := HexToHSV("#992E99")
	colors, _ := Calculate(base, Triadic)
	for _, c := range colors {
		fmt.Println(c.Hex())
	}
	// Output:
	// #2E9999
	// #99992E
}

// ExampleHSVToHex converts HSV components to an RGB hex string.
func ExampleHSVToHex() {
	fmt.Println(HSVToHex(120, 100, 100))
	// Output: #00FF00
}

// ExampleParseHarmonyKind resolves a prompt selector.
func ExampleParseHarmonyKind() {
	k, _ := ParseHarmonyKind("sp")
	fmt.Println(k, k.Len())
	// Output: split-complementary 2
}
