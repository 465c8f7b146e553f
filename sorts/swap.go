package sorts

// Swap exchanges s[i] and s[j]. It panics if either index is out of range.
func Swap[S ~[]E, E any](s S, i, j int) {
	s[i], s[j] = s[j], s[i]
}
