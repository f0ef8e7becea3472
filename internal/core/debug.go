//go:build !papiliodebug

package core

// debugPositions is false in normal builds: script errors are plain
// sentinel values with no attached cursor offset.
const debugPositions = false
