package xkc

import (
	"fmt"
)

func Example() {
	c, err := New()
	if err != nil {
		panic(err)
	}
	input := []byte("AABAA")
	packed, err := c.Encode(input)
	if err != nil {
		panic(err)
	}
	orig, err := c.Decode(packed)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d bytes packed into %d\n", len(input), len(packed))
	fmt.Println(string(orig))
	// Output:
	// 5 bytes packed into 9
	// AABAA
}

func ExampleCodec_DotGraph() {
	c, err := New()
	if err != nil {
		panic(err)
	}
	dot, err := c.DotGraph([]byte("AABAA"))
	if err != nil {
		panic(err)
	}
	fmt.Print(dot)
	// Output:
	// strict graph {
	// 	"0x41 d0" -- "0x42 d1" [label=0]
	// }
}
