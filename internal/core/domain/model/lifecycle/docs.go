// Package lifecycle implements the product lifecycle state machine of the
// warehouse: the status enumeration, the static graph of legal transitions,
// the per-edge policy table (admin role, mandatory comment, named fields) and
// the Engine that resolves them.
//
// Key business rules:
//   - DELIVERED and ELIMINATED are terminal
//   - a status never transitions to itself
//   - legality is checked before role, so non-edges never reveal role requirements
//   - a required comment implies a required "reason" field
//   - blank strings count as missing evidence
//
// The Engine is pure: it never touches storage. Committing a transition is
// the job of the status applier and the change-status command handler.
package lifecycle
