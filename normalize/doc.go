// Package normalize implements the pure, depth-first coercion from an
// arbitrary host value into the canonical CON logical tree (ir.Node),
// applying the invariants in spec §3: -0 → 0, non-finite → null, safe-range
// big integers → number (else decimal string), date-like → ISO-8601
// string, set-like → array, map-like → object, plain record-like → object
// of its own enumerable fields, anything else → null. Circular structure is
// rejected with ir.ErrCycleDetected before any of it can reach the emitter.
package normalize
