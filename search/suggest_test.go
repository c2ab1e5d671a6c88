package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	names := []string{"Kalenjin", "Kikuyu", "Luo", "Luhya", "Kamba", "Maasai", "Samburu", "Meru"}

	t.Run("subsequence match", func(t *testing.T) {
		assert.Contains(t, Suggest("kuy", names, 0), "Kikuyu")
		assert.Contains(t, Suggest("asai", names, 0), "Maasai")
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Suggest("zzz", names, 0))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Nil(t, Suggest("", names, 5))
	})

	t.Run("limit", func(t *testing.T) {
		all := Suggest("a", names, 0)
		assert.Greater(t, len(all), 2)
		assert.Len(t, Suggest("a", names, 2), 2)
		assert.Equal(t, all[:2], Suggest("a", names, 2))
	})
}
