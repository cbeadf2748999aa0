package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHanning, 5)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3], w[4])
	// Output:
	// 0.00 0.50 1.00 0.50 0.00
}

func ExampleWeight() {
	fmt.Printf("%.2f\n", Weight(TypeHamming, 0, 31))
	// Output:
	// 0.08
}

func ExampleParseType() {
	t, ok := ParseType("kaiser")
	fmt.Println(t, ok)
	// Output:
	// hamming false
}
