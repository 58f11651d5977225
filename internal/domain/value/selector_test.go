package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bnb_finder/internal/domain/value"
)

func TestSelector(t *testing.T) {
	rq := require.New(t)

	rq.True(value.SelectorAll.IsAll())
	rq.True(value.Selector("").IsAll(), "an absent query parameter disables the filter")
	rq.False(value.Selector("Fenway").IsAll())

	rq.True(value.Selector("Fenway").Matches("Fenway"))
	rq.False(value.Selector("Fenway").Matches("fenway"), "matching is case sensitive")
	rq.False(value.Selector("Fenway").Matches("Back Bay"))

	rq.True(value.SelectorAll.Matches("anything"))
	rq.True(value.Selector("").Matches("anything"))
}
