//go:build papiliodebug

package core

// debugPositions is true under the papiliodebug build tag: script
// errors carry the failing cursor offset (spec.md §7: "In a
// debug-enabled build, script errors additionally carry the failing
// cursor position").
const debugPositions = true
