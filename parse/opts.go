package parse

// Option configures a single Parse call.
type Option func(*state)

type state struct {
	strict bool
}

// Strict enables indentation-regularity checks (§4.5) and array count
// assertions (§4.7). Off by default so hand-edited input still round-trips.
func Strict(v bool) Option {
	return func(s *state) { s.strict = v }
}
