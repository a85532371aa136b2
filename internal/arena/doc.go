// Package arena provides the slot storage behind linkedvec lists.
//
// An Arena is one contiguous, growable slice of nodes. Values never move
// between slots once stored; callers address them by index. Slot 0 is
// reserved as the nil index.
//
// # Recycling
//
// Reclaimed slots form a singly linked chain through Node.Next and are
// reused LIFO by later allocations. Each reclamation bumps the slot's
// generation counter, so an index captured together with its generation can
// later be recognised as stale even after the slot has been reused.
//
// # Concurrency Model
//
// Arena has no internal synchronization. A single owner mutates it; readers
// must be externally synchronized with that owner.
package arena
