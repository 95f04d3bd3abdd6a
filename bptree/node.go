package bptree

import "bytes"

/*
A node is either a leaf or an inner routing node.
Leaves hold the entries plus a pointer to the next leaf on the right.
Inner nodes hold separator keys and one more child than separators;
child i covers keys in [keys[i-1], keys[i]).
A node with no children is a leaf.
*/
type node struct {
	items    []*item  // leaf entries, sorted by key
	keys     [][]byte // inner separators, strictly ascending
	children []*node  // inner children, always len(keys)+1
	next     *node    // right sibling in the leaf chain, non-owning, nil on the last leaf
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

/*
If an entry with the given key is in leaf n, return its index and true.
Else, return the index where the entry would be spliced in to keep the
leaf sorted. Basically, the lower bound of the key in the leaf.
*/
func (n *node) search(key []byte) (int, bool) {
	low, high := 0, len(n.items)
	var mid int
	for low < high {
		mid = (low + high) / 2
		cmp := bytes.Compare(key, n.items[mid].key)
		switch {
		case cmp > 0:
			low = mid + 1
		case cmp < 0:
			high = mid
		case cmp == 0:
			return mid, true
		}
	}
	return low, false
}

/*
childIndex locates the unique child whose subtree may contain the key.
Separators route equal keys to the right: the returned index is the
number of separators <= key.
*/
func (n *node) childIndex(key []byte) int {
	low, high := 0, len(n.keys)
	for low < high {
		mid := (low + high) / 2
		if bytes.Compare(key, n.keys[mid]) < 0 {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}

// helper method to insert an entry at an arbitrary position of a leaf
func (n *node) insertItemAt(pos int, it *item) {
	n.items = append(n.items, nil)
	copy(n.items[pos+1:], n.items[pos:])
	n.items[pos] = it
}

// helper method to remove the entry at an arbitrary position of a leaf
func (n *node) removeItemAt(pos int) *item {
	it := n.items[pos]
	n.items = append(n.items[:pos], n.items[pos+1:]...)
	return it
}

// helper method to insert a separator and the child it routes to.
// The new child lands just right of the one it split from.
func (n *node) insertSeparatorAt(pos int, sep []byte, right *node) {
	n.keys = append(n.keys, nil)
	copy(n.keys[pos+1:], n.keys[pos:])
	n.keys[pos] = sep

	n.children = append(n.children, nil)
	copy(n.children[pos+2:], n.children[pos+1:])
	n.children[pos+1] = right
}

// helper method to remove separator pos together with the child on its right
func (n *node) removeSeparatorAt(pos int) {
	n.keys = append(n.keys[:pos], n.keys[pos+1:]...)
	n.children = append(n.children[:pos+1], n.children[pos+2:]...)
}

/*
splitLeaf partitions an overflowing leaf, keeping the larger half on the
left, and links the new right sibling into the leaf chain.
It returns the separator to propagate upward: the right node's smallest
key, which stays in the right leaf (unlike inner splits, where the
lifted separator leaves both halves).
*/
func (n *node) splitLeaf() ([]byte, *node) {
	mid := (len(n.items) + 1) / 2

	right := &node{}
	right.items = append(right.items, n.items[mid:]...)
	n.items = n.items[:mid]

	right.next = n.next
	n.next = right

	return right.items[0].key, right
}

/*
splitInner partitions an overflowing inner node around its middle
separator, which is lifted out to the parent and stored in neither half.
*/
func (n *node) splitInner() ([]byte, *node) {
	mid := len(n.keys) / 2
	sep := n.keys[mid]

	right := &node{}
	right.keys = append(right.keys, n.keys[mid+1:]...)
	right.children = append(right.children, n.children[mid+1:]...)
	n.keys = n.keys[:mid]
	n.children = n.children[:mid+1]

	return sep, right
}

/*
borrowFromRight moves the smallest element of n's right sibling into n.
n is child i of parent; the separator between the two siblings is
parent.keys[i] and is refreshed to keep routing correct.
For leaves the entry itself crosses over; for inner nodes the parent
separator rotates down into n and the sibling's first key rotates up.
*/
func (n *node) borrowFromRight(parent *node, i int) {
	right := parent.children[i+1]
	if n.isLeaf() {
		n.items = append(n.items, right.removeItemAt(0))
		parent.keys[i] = right.items[0].key
	} else {
		n.keys = append(n.keys, parent.keys[i])
		n.children = append(n.children, right.children[0])
		parent.keys[i] = right.keys[0]
		right.keys = right.keys[1:]
		right.children = right.children[1:]
	}
}

/*
borrowFromLeft moves the largest element of n's left sibling into n.
n is child i of parent; the separator between the two siblings is
parent.keys[i-1].
*/
func (n *node) borrowFromLeft(parent *node, i int) {
	left := parent.children[i-1]
	if n.isLeaf() {
		it := left.removeItemAt(len(left.items) - 1)
		n.insertItemAt(0, it)
		parent.keys[i-1] = it.key
	} else {
		n.keys = append([][]byte{parent.keys[i-1]}, n.keys...)
		n.children = append([]*node{left.children[len(left.children)-1]}, n.children...)
		parent.keys[i-1] = left.keys[len(left.keys)-1]
		left.keys = left.keys[:len(left.keys)-1]
		left.children = left.children[:len(left.children)-1]
	}
}

/*
mergeRight concatenates n's right sibling into n and removes the
separator between them from the parent.
Leaf merges redirect the leaf chain past the dropped node. Inner merges
pull the parent separator down between the two key sequences, the
inverse of the split lift.
*/
func (n *node) mergeRight(parent *node, i int) {
	right := parent.children[i+1]
	if n.isLeaf() {
		n.items = append(n.items, right.items...)
		n.next = right.next
	} else {
		n.keys = append(n.keys, parent.keys[i])
		n.keys = append(n.keys, right.keys...)
		n.children = append(n.children, right.children...)
	}
	parent.removeSeparatorAt(i)
}
