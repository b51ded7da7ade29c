package stages_test

import (
	"fmt"

	"flume/stages"
)

func ExampleFilter() {
	src := stages.FromSlice([]int{1, 2, 3, 4})
	odd := stages.Filter(src, func(n int) bool { return n%2 == 1 })

	for v := range odd.Seq() {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 3
}

func ExampleSortedBy() {
	src := stages.FromSlice([]string{"pear", "fig", "apple"})
	byLen := stages.SortedBy(src,
		stages.KeyAsc(func(s string) int { return len(s) }),
	)

	fmt.Println(stages.Collect(byLen))

	// Output:
	// [fig pear apple]
}

func ExampleMemoize() {
	expensive := stages.Map(stages.FromSlice([]int{1, 2}), func(n int) int {
		fmt.Println("computing", n)
		return n * 10
	})
	cached := stages.Memoize(expensive)

	fmt.Println(stages.Collect(cached))
	fmt.Println(stages.Collect(cached))

	// Output:
	// computing 1
	// computing 2
	// [10 20]
	// [10 20]
}
