// Package vote implements the like/dislike marker machinery shared by
// projects and comments. A marker document is the source of truth for "this
// user cast this vote on this resource"; the denormalized counters on the
// resource follow the markers. Counter updates use $inc conditioned on the
// outcome of the marker write, so concurrent toggles by the same user cannot
// double-count: a decrement only happens when a marker was actually removed
// and an increment only when one was actually inserted.
package vote

// Kind is the vote direction.
type Kind int

const (
	Like Kind = iota
	Dislike
)

// Plan is the set of marker transitions a toggle must perform, derived purely
// from the current marker state.
type Plan struct {
	// RemoveSame undoes an existing vote of the same kind (toggle off).
	RemoveSame bool
	// RemoveOpposite clears a vote of the opposite kind before casting, so a
	// user never holds both markers on one resource.
	RemoveOpposite bool
	// Add casts the new vote.
	Add bool
}

// Decide computes the transition plan for casting `kind` given the user's
// current markers.
func Decide(kind Kind, hasLike, hasDislike bool) Plan {
	hasSame, hasOpposite := hasLike, hasDislike
	if kind == Dislike {
		hasSame, hasOpposite = hasDislike, hasLike
	}

	if hasSame {
		return Plan{RemoveSame: true}
	}
	return Plan{RemoveOpposite: hasOpposite, Add: true}
}
