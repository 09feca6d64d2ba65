package vetspan_test

import (
	"fmt"

	"github.com/rawbytedev/vetspan"
)

func ExampleScopeString() {
	vetspan.ScopeString("a→中😀", func(c *vetspan.Container[vetspan.Character, string]) error {
		r, ok := c.Full().NonEmpty()
		if !ok {
			return nil
		}
		ix := r.Start()
		for {
			fmt.Printf("%d %c\n", ix.Untrusted(), c.At(ix).Rune())
			next, ok := c.Advance(ix)
			if !ok {
				break
			}
			ix = next
		}
		return nil
	})
	// Output:
	// 0 a
	// 1 →
	// 4 中
	// 7 😀
}

func ExampleContainer_Vet() {
	vetspan.ScopeString("héllo", func(c *vetspan.Container[vetspan.Character, string]) error {
		if _, err := c.Vet(2); err != nil {
			fmt.Println(err)
		}
		ix, _ := c.Align(2)
		fmt.Println(ix.Untrusted())
		return nil
	})
	// Output:
	// vetspan: offset not on an item boundary
	// 1
}

func ExampleScopeSlice() {
	total := vetspan.ScopeSlice([]int{3, 1, 4, 1, 5}, func(c *vetspan.Container[int, []int]) int {
		sum := 0
		r, ok := c.Full().NonEmpty()
		if !ok {
			return 0
		}
		ix := r.Start()
		for {
			sum += c.At(ix)
			next, ok := c.Advance(ix)
			if !ok {
				break
			}
			ix = next
		}
		return sum
	})
	fmt.Println(total)
	// Output:
	// 14
}
