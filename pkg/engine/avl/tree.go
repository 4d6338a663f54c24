// Package avl provides a height-balanced binary search tree keyed by an
// ordered type. It backs the player's inventory, where membership checks
// ("does the player hold the key?") must stay O(log n).
package avl

import (
	"cmp"
	"iter"

	"github.com/zyedidia/generic"
)

// EventKind identifies a structural change reported to an Observer.
type EventKind int

const (
	EventInserted EventKind = iota
	EventUpdated
	EventRemoved
	EventNotFound
)

// String returns a short name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventInserted:
		return "inserted"
	case EventUpdated:
		return "updated"
	case EventRemoved:
		return "removed"
	case EventNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Event describes one insert/remove outcome.
type Event[K any] struct {
	Kind EventKind
	Key  K
}

// Observer receives diagnostic events. It must not mutate the tree.
type Observer[K any] func(Event[K])

type node[K, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	height int
}

// Tree is an AVL tree. The zero value is not usable; call New or NewOrdered.
type Tree[K, V any] struct {
	root     *node[K, V]
	less     generic.LessFn[K]
	size     int
	observer Observer[K]
}

// New creates an empty tree ordered by less.
func New[K, V any](less generic.LessFn[K]) *Tree[K, V] {
	return &Tree[K, V]{less: less}
}

// NewOrdered creates an empty tree using the natural ordering of K.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](generic.Less[K])
}

// SetObserver installs (or clears, with nil) the diagnostic hook.
func (t *Tree[K, V]) SetObserver(fn Observer[K]) {
	t.observer = fn
}

func (t *Tree[K, V]) emit(kind EventKind, key K) {
	if t.observer != nil {
		t.observer(Event[K]{Kind: kind, Key: key})
	}
}

// Len returns the number of keys in the tree
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Height returns the height of the root (0 for an empty tree)
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

// Insert adds key with value. An existing key has its value overwritten in
// place without restructuring.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.root = t.insert(t.root, key, value)
}

func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		t.size++
		t.emit(EventInserted, key)
		return &node[K, V]{key: key, value: value, height: 1}
	}

	switch {
	case t.less(key, n.key):
		n.left = t.insert(n.left, key, value)
	case t.less(n.key, key):
		n.right = t.insert(n.right, key, value)
	default:
		n.value = value
		t.emit(EventUpdated, key)
		return n
	}

	n.height = 1 + max(height(n.left), height(n.right))
	bal := balance(n)

	// Left-left
	if bal > 1 && t.less(key, n.left.key) {
		return rotateRight(n)
	}
	// Right-right
	if bal < -1 && t.less(n.right.key, key) {
		return rotateLeft(n)
	}
	// Left-right
	if bal > 1 && t.less(n.left.key, key) {
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}
	// Right-left
	if bal < -1 && t.less(key, n.right.key) {
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// Remove deletes key. Removing an absent key is a no-op.
func (t *Tree[K, V]) Remove(key K) {
	t.root = t.remove(t.root, key, true)
}

func (t *Tree[K, V]) remove(n *node[K, V], key K, report bool) *node[K, V] {
	if n == nil {
		if report {
			t.emit(EventNotFound, key)
		}
		return nil
	}

	switch {
	case t.less(key, n.key):
		n.left = t.remove(n.left, key, report)
	case t.less(n.key, key):
		n.right = t.remove(n.right, key, report)
	default:
		if report {
			t.size--
			t.emit(EventRemoved, key)
		}
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}

		// Two children: take over the in-order successor, then drop it
		// from the right subtree.
		succ := minNode(n.right)
		n.key = succ.key
		n.value = succ.value
		n.right = t.remove(n.right, succ.key, false)
	}

	n.height = 1 + max(height(n.left), height(n.right))
	bal := balance(n)

	// No inserted key to compare against here, so the child's own balance
	// picks between the outer and inner case.
	if bal > 1 && balance(n.left) >= 0 {
		return rotateRight(n)
	}
	if bal > 1 && balance(n.left) < 0 {
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}
	if bal < -1 && balance(n.right) <= 0 {
		return rotateLeft(n)
	}
	if bal < -1 && balance(n.right) > 0 {
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// Search returns the value stored for key and whether it was found
func (t *Tree[K, V]) Search(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case t.less(key, n.key):
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is present
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// All returns an in-order iterator over key/value pairs. Each call starts a
// fresh traversal.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(t.root, yield)
	}
}

func walk[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, yield) {
		return false
	}
	if !yield(n.key, n.value) {
		return false
	}
	return walk(n.right, yield)
}

// Keys returns all keys in ascending order
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balance[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rotateLeft[K, V any](x *node[K, V]) *node[K, V] {
	y := x.right
	t2 := y.left

	y.left = x
	x.right = t2

	x.height = 1 + max(height(x.left), height(x.right))
	y.height = 1 + max(height(y.left), height(y.right))

	return y
}

func rotateRight[K, V any](y *node[K, V]) *node[K, V] {
	x := y.left
	t2 := x.right

	x.right = y
	y.left = t2

	y.height = 1 + max(height(y.left), height(y.right))
	x.height = 1 + max(height(x.left), height(x.right))

	return x
}
