// Package pqueue provides an indexed binary min-heap: a priority queue whose
// items carry a unique key, so the priority of a queued item can be changed in
// place instead of pushing a duplicate.
//
// Overview:
//
//   - Add inserts an item at the end of the heap and sifts it up.
//   - Pull removes the minimum: the last item moves to the root and sifts down.
//   - SetPriority looks the item up by key; a lower priority sifts it up,
//     a higher one sifts it down, an equal one does nothing.
//   - Has answers membership in O(1).
//
// Three structures are kept in lockstep: the item slice (heap order), a
// key→index map and an index→priority slice. Every swap updates all three;
// a swap that moved items without moving their keys would silently corrupt
// later lookups.
//
// Invariant:
//
//	for every index i > 0: priority(parent(i)) ≤ priority(i), parent(i) = (i-1)/2
//
// Complexity:
//
//   - Add, Pull, SetPriority: O(log n).
//   - Peek, Has, Priority, Len: O(1).
//
// Errors (sentinel):
//
//   - ErrDuplicateKey: Add with a key already queued.
//   - ErrKeyNotFound:  SetPriority/Priority with a key not queued.
//   - ErrBadPriority:  a NaN priority, which would break heap ordering.
//
// A Queue is not safe for concurrent use.
package pqueue
