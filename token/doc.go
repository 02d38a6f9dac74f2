// Package token provides the lexical primitives shared by encode and parse:
// string escaping/unescaping, quote- and delimiter-aware scanning helpers,
// and the literal classifiers that decide when a value needs quoting on the
// way out and how a bare token decodes on the way in.
//
// Nothing in this package knows about the line/indentation grammar — it
// operates on individual string tokens, the way the teacher's token package
// separates character-level concerns from the line-oriented ones.
package token
