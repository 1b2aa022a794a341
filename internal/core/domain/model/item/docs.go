// Package item provides the Item aggregate, the single entity of the adventure list.
//
// The package includes:
//   - Item: identity, label, completion flag and display order of a to-do entry
//   - Text: the trimmed, non-empty label value object
//
// Key business rules:
//   - Every item has a unique identifier for its entire lifetime
//   - Text is never blank and never longer than MaxTextLength runes
//   - Order is a positive display position assigned by the service, never by the caller
//   - Completion is freely reversible (false -> true -> false)
package item
