// Package line implements the line-model pre-pass: splitting parser input
// into indented line records before the recursive-descent parser ever looks
// at them. This mirrors the teacher's strategy of pre-splitting the whole
// input rather than threading indentation state through a streaming
// tokenizer — acceptable for prompt-sized (megabyte-scale) payloads, and it
// keeps the recursive decoder simple.
package line
