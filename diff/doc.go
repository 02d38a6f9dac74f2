// Package diff computes a structural difference between two ir.Node trees.
// Object members are matched by field name using a Myers diff over a
// rune-alphabet encoding of the field-name sequences (one rune per distinct
// name), the same technique used for diffing tagged structures in the
// format this package's object-diff strategy is adapted from: field
// insertions/deletions fall out of the diff's Insert/Delete runs, and
// matched names recurse.
package diff
