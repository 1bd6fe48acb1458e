package responder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStarters(t *testing.T) {
	t.Parallel()

	t.Run("each surface has three starters", func(t *testing.T) {
		t.Parallel()
		for _, surface := range []Surface{SurfaceDailySpend, SurfaceCycle, SurfaceMonthly, SurfaceSavings, SurfaceCategory} {
			require.Len(t, Starters(surface, ""), 3, "surface %s", surface)
		}
	})

	t.Run("unknown surface has none", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, Starters(Surface("bogus"), ""))
	})

	t.Run("category surface interpolates category", func(t *testing.T) {
		t.Parallel()
		starters := Starters(SurfaceCategory, "dining")
		require.Equal(t, "Modify limits", starters[0].Label)
		require.Equal(t, "Show Dining transactions", starters[1].Label)
		require.Equal(t, "Show me recent transactions in dining.", starters[1].Query)
		require.Equal(t, "Save in Dining", starters[2].Label)
		require.Equal(t, "Give me 3 specific tips to reduce my spending in dining.", starters[2].Query)
	})

	t.Run("monthly starter labels route to their insight rules", func(t *testing.T) {
		t.Parallel()
		for _, s := range Starters(SurfaceMonthly, "") {
			require.NotEqual(t, Fallback, Respond(s.Label, Context{}), "starter %q", s.Label)
		}
	})

	t.Run("global suggestions avoid the fallback", func(t *testing.T) {
		t.Parallel()
		for _, s := range GlobalSuggestions() {
			require.NotEqual(t, Fallback, Respond(s, Context{}), "suggestion %q", s)
		}
	})
}
