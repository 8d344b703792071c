package effect

// Swap temporarily replaces a variable with another, typically a package-level filesystem. Call
// the returned function to restore the original value.
func Swap[V any](ref *V, val V) func() {
	old := *ref
	*ref = val
	return func() { *ref = old }
}
