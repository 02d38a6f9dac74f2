// Package con implements CON (Compact Object Notation): a lossless,
// text-based, indentation-structured serialization format with a
// JSON-identical data model. Serialize and Deserialize are the two
// top-level operations; callers already holding an *ir.Node (built via
// normalize.FromJSON or query.Select, say) can skip the any round-trip and
// call encode.Emit/parse.Parse directly.
package con
