// Package services provides domain services that operate on more than one item
// at a time, or on nothing the aggregate owns.
//
// The package includes:
//   - Sequencer: assigns display orders for appends, full reorders, drag/drop moves
//     and the repair of duplicated orders
//   - Countdown: the time gate in front of the surprise page
package services
