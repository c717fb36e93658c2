// Package ordering implements the order lifecycle: placement, cancellation,
// delivery completion, and the order queries backing list views.
//
// Every mutation runs inside a single storage transaction so that stock
// changes, status flips, and new rows commit together or not at all. The
// stock invariant itself lives on storage.Item (RemoveStock/AddStock); this
// package only decides when those mutators run.
package ordering
