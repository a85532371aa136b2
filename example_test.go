package linkedvec_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/linkedvec"
)

// Example demonstrates handle-addressed insertion and relinking.
func Example() {
	l := linkedvec.New[string]()
	a := l.PushBack("a")
	c := l.PushBack("c")
	b, _ := l.InsertBefore(c, "b")

	_ = l.Swap(a, c)
	fmt.Println(l)

	linkedvec.Sort(l)
	fmt.Println(l)

	v, _ := l.Get(b)
	fmt.Println(v)
	// Output:
	// [c b a]
	// [a b c]
	// b
}

// Example_iterate demonstrates both traversal directions.
func Example_iterate() {
	l := linkedvec.FromSlice([]int{1, 2, 3})

	fmt.Println(slices.Collect(l.Values()))

	var rev []int
	for _, v := range l.Backward() {
		rev = append(rev, v)
	}
	fmt.Println(rev)
	// Output:
	// [1 2 3]
	// [3 2 1]
}

// Example_cursor demonstrates walking and editing through a cursor.
func Example_cursor() {
	l := linkedvec.FromSlice([]int{1, 2, 3, 4, 5})
	c, _ := l.CursorFrontMut()

	for {
		v, _ := c.Get()
		if v%2 == 0 {
			_, _ = c.Remove()
			continue
		}
		if _, ok := c.MoveNext(); !ok {
			break
		}
	}
	fmt.Println(l)
	// Output: [1 3 5]
}

// Example_sortStable demonstrates ordering by key while keeping handles.
func Example_sortStable() {
	l := linkedvec.FromSlice([]string{"Bob", "alice", "Carol", "dave"})
	first, _ := l.FrontNode()

	linkedvec.SortStableByKey(l, strings.ToLower)
	fmt.Println(l)

	v, _ := l.Get(first)
	fmt.Println(v)
	// Output:
	// [alice Bob Carol dave]
	// Bob
}

// ExampleList_Append demonstrates moving all elements of one list into
// another.
func ExampleList_Append() {
	a := linkedvec.FromSlice([]int{1, 2})
	b := linkedvec.FromSlice([]int{3, 4})

	a.Append(b)
	fmt.Println(a, b.Len())
	// Output: [1 2 3 4] 0
}

// ExampleList_Verify demonstrates the integrity check.
func ExampleList_Verify() {
	l := linkedvec.FromSlice([]int{3, 1, 2})
	linkedvec.Sort(l)
	fmt.Println(l.Verify())
	// Output: <nil>
}
