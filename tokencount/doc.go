// Package tokencount estimates how many LLM tokens two equivalent text
// renderings (CON and JSON) would cost, so callers can quantify the
// token-budget savings of using CON over JSON for a given payload. The
// default estimator is a coarse word/punctuation proxy for a real BPE
// tokenizer; callers with an actual tokenizer on hand can supply one via
// the Tokenizer option.
package tokencount
