// Package walker streams candidate files from a project tree to the
// searcher.
//
// The walker is a producer: it filters the tree (hidden directories,
// standard build/dependency directories, configured exclusions, file
// type, size) and hands each surviving file to a callback as a
// FileCandidate. When content loading is enabled the files are read
// through a bounded worker pool while the callback still runs on a
// single goroutine, so consumers need no locking of their own.
//
// An optional SecurityCheck hook vetoes individual paths before they
// are offered; a veto or a check error skips the file silently.
package walker
