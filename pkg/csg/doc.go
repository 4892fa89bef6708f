// Package csg defines the constructive solid geometry tree emitted by the
// part builders and consumed by the tessellator. Trees are immutable values:
// each node owns its children, nothing is shared, and nothing is mutated
// after construction.
package csg
