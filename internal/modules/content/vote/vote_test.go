package vote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecideFirstVote(t *testing.T) {
	plan := Decide(Like, false, false)
	require.Equal(t, Plan{Add: true}, plan)

	plan = Decide(Dislike, false, false)
	require.Equal(t, Plan{Add: true}, plan)
}

// Casting the same vote twice toggles it off.
func TestDecideToggleOff(t *testing.T) {
	plan := Decide(Like, true, false)
	require.Equal(t, Plan{RemoveSame: true}, plan)

	plan = Decide(Dislike, false, true)
	require.Equal(t, Plan{RemoveSame: true}, plan)
}

// Casting the opposite vote swaps: the old marker goes, the new one lands.
func TestDecideSwap(t *testing.T) {
	plan := Decide(Like, false, true)
	require.Equal(t, Plan{RemoveOpposite: true, Add: true}, plan)

	plan = Decide(Dislike, true, false)
	require.Equal(t, Plan{RemoveOpposite: true, Add: true}, plan)
}

// No reachable plan ever leaves the user holding both markers: whenever a vote
// is added, any opposite marker is removed in the same plan.
func TestDecideMutualExclusion(t *testing.T) {
	for _, kind := range []Kind{Like, Dislike} {
		for _, hasLike := range []bool{false, true} {
			for _, hasDislike := range []bool{false, true} {
				plan := Decide(kind, hasLike, hasDislike)

				hasSame, hasOpposite := hasLike, hasDislike
				if kind == Dislike {
					hasSame, hasOpposite = hasDislike, hasLike
				}
				if plan.Add && hasOpposite {
					require.True(t, plan.RemoveOpposite,
						"kind=%v like=%v dislike=%v", kind, hasLike, hasDislike)
				}
				require.False(t, plan.Add && plan.RemoveSame)
				if hasSame {
					require.Equal(t, Plan{RemoveSame: true}, plan)
				}
			}
		}
	}
}
