// Package debug holds opt-in, environment-gated diagnostics: flags read
// once at process start that other packages can check without threading a
// verbosity parameter through every call, and a colorized tree dump used
// when developing against the codec by eye.
package debug
