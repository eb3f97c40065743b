// Package records defines the concrete wire records the node exchanges and
// stores: transactions, block headers, blocks and inventory vectors. Each
// type implements wire.Serializable; its field order is the external wire
// contract and must never be reordered.
//
// The package carries no validation or consensus semantics. A Transaction
// here is a byte layout with a hash, not a statement about spendability;
// policy lives with the node's validation collaborators.
package records
