// Package ir defines the logical value tree shared by every CON component.
//
// A Node is a closed, six-variant tagged union — Null, Bool, Number, String,
// Array, Object — identical in shape to the JSON data model. It carries no
// position, comment, or tag metadata: those are Tony-format concerns that
// CON's non-goals explicitly drop (no comments, no references/anchors, no
// numeric textual form preservation).
//
// Every other package (normalize, shape, encode, parse, diff, patch, query)
// operates exclusively on *Node, so ir has no dependency on any of them.
package ir
