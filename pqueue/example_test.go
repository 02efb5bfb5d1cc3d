package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/hexpath/pqueue"
)

// ExampleQueue_SetPriority shows decrease-key: a queued item is moved to the
// front without being re-inserted.
func ExampleQueue_SetPriority() {
	type node struct {
		id   int
		name string
	}
	q := pqueue.New(func(n node) int { return n.id })
	_ = q.Add(node{1, "north"}, 4)
	_ = q.Add(node{2, "east"}, 2)
	_ = q.Add(node{3, "south"}, 3)

	_ = q.SetPriority(1, 1) // a cheaper route to north was found

	for q.Len() > 0 {
		it, _ := q.Pull()
		fmt.Println(it.Value.name, it.Priority)
	}
	// Output:
	// north 1
	// east 2
	// south 3
}
