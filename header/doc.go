// Package header recognizes and decomposes an array header line:
//
//	[key]«[[#]N[delim-hint]]»[{f1«delim»f2«delim»…}]:
//
// A Descriptor plus any inline tail text following the header's colon is
// returned by Parse. This is the one place the count/delimiter/field-list
// grammar in spec §4.6 is implemented; both the emitter (to keep its writer
// and this parser in agreement) and the parser (recursive descent over
// lines) depend on it.
package header
