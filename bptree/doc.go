// Package bptree implements an in-memory B+ tree: an ordered map from
// []byte keys to opaque []byte values.
//
// # Overview
//
// All entries live in the leaves, which are chained left to right, so
// point operations cost O(log n) and ascending range scans walk the
// chain without touching inner nodes:
//
//   - Insert / Upsert / Search / Contains / Delete
//   - Iter and Range cursors over a half-open key interval
//
// # Usage
//
//	tree, err := bptree.New(128)
//
//	err = tree.Insert([]byte("uid=alice"), []byte("entry-1"))
//	val, err := tree.Search([]byte("uid=alice"))
//
//	it := tree.Range([]byte("uid=a"), []byte("uid=m"))
//	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
//		// ...
//	}
//
// A key transform can be plugged at construction to normalize keys on
// every entry point, e.g. bytes.ToLower for case-insensitive ordering:
//
//	tree, err := bptree.New(128, bptree.WithKeyFunc(bytes.ToLower))
//
// The tree provides no internal synchronization.
package bptree
