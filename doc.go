// Package classyfd exposes file and directory objects that delegate to the
// underlying operating system's filesystem primitives.
//
// A [File] or [Directory] is constructed from a path string, which is
// resolved to a canonical absolute path and kept as the value's identity.
// The values are stateless proxies: nothing but the path is stored, every
// accessor re-queries the filesystem, and no handle or lock is held between
// operations. Deleting the on-disk target does not invalidate a previously
// constructed value; later operations on it report [ErrNotFound].
//
// Mutations share one safety contract: the source must exist, the
// destination parent must be an existing directory and the destination must
// be free unless [WithOverwrite] was given. Same-volume renames and moves
// use the atomic rename primitive of the underlying filesystem.
// Cross-volume moves degrade to copy-verify-remove and are not crash-atomic.
//
// No coordination with other processes takes place. If another process
// mutates the same paths concurrently, outcomes follow whatever consistency
// the underlying filesystem provides; operations fail cleanly when the
// underlying primitive reports a mismatch, but races between a check and
// the following mutation are not closed.
package classyfd
