// Package patch applies an RFC 6902 JSON Patch document to an ir.Node
// tree: marshal to JSON, hand the patch to evanphx/json-patch, decode the
// result back. It operates on the logical value, never on CON source text,
// so it never has to re-pick encoding shapes for untouched siblings.
package patch
