package tokencount

import "unicode/utf8"

// Tokenizer counts how many tokens text would cost under some tokenization
// scheme. DefaultTokenizer is used when no Tokenizer is supplied to Count.
type Tokenizer interface {
	CountTokens(text string) int
}

// TokenizerFunc adapts a plain function to the Tokenizer interface.
type TokenizerFunc func(text string) int

func (f TokenizerFunc) CountTokens(text string) int { return f(text) }

// DefaultTokenizer is a coarse word/punctuation estimator: every maximal
// run of ASCII letters/digits is one token, and every other non-space rune
// is its own token. It is the common proxy for a real BPE tokenizer used
// when no tokenizer library is on hand.
var DefaultTokenizer Tokenizer = TokenizerFunc(countWordsAndPunct)

func countWordsAndPunct(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case isWordRune(r):
			if !inWord {
				count++
				inWord = true
			}
		case isSpace(r):
			inWord = false
		default:
			inWord = false
			count++
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// Counts holds the raw character and token counts for one rendering.
type Counts struct {
	Chars  int
	Tokens int
}

// Savings reports how much smaller con is than json, both as an absolute
// delta and as a percentage of json's size.
type Savings struct {
	CharsSaved      int
	CharsSavedPct   float64
	TokensSaved     int
	TokensSavedPct  float64
}

// Result is the outcome of Count: the raw counts for each rendering plus
// the derived savings of CON over JSON.
type Result struct {
	CON     Counts
	JSON    Counts
	Savings Savings
}

// Count computes character and token counts for conText and jsonText and
// derives CON's savings relative to JSON. tok defaults to DefaultTokenizer
// when omitted.
func Count(conText, jsonText string, tok ...Tokenizer) Result {
	t := DefaultTokenizer
	if len(tok) > 0 && tok[0] != nil {
		t = tok[0]
	}

	con := Counts{Chars: utf8.RuneCountInString(conText), Tokens: t.CountTokens(conText)}
	js := Counts{Chars: utf8.RuneCountInString(jsonText), Tokens: t.CountTokens(jsonText)}

	return Result{
		CON:  con,
		JSON: js,
		Savings: Savings{
			CharsSaved:     js.Chars - con.Chars,
			CharsSavedPct:  pct(js.Chars-con.Chars, js.Chars),
			TokensSaved:    js.Tokens - con.Tokens,
			TokensSavedPct: pct(js.Tokens-con.Tokens, js.Tokens),
		},
	}
}

func pct(delta, base int) float64 {
	if base == 0 {
		return 0
	}
	return float64(delta) / float64(base) * 100
}
