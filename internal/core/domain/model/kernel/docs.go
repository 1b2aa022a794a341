// Package kernel provides shared domain primitives for the adventure list.
//
// The package includes:
//   - UUID: the identifier value object used by items and every command that targets one
//
// Primitives are immutable and validated on construction; their zero values
// are invalid so that forgotten initialisation surfaces as a validation error.
package kernel
