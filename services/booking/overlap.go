package booking

// Interval is a half-open [Start, End) span in minutes from midnight, where
// End already includes the package's cleanup buffer.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals share at least one
// instant. Touching endpoints do not conflict. Every conflict decision in
// the engine — availability and allocation alike — goes through this one
// predicate.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}
