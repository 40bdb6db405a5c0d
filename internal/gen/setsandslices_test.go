//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"unicode"
)

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedUnique([]string{"c", "a", "b", "a"}))
	assert.Equal(t, []int{1, 3}, SortedUnique([]int{3, 1, 3}))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"French", "Seafood"}, SplitAndTrim(" French, Seafood,,", ","))
	assert.Nil(t, SplitAndTrim("", ","))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny([]string{"Thai", "Korean"}, []string{"Korean"}))
	assert.False(t, ContainsAny([]string{"Thai"}, []string{"Korean", "French"}))
	assert.False(t, ContainsAny([]string{"Thai"}, nil))
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringMapKeysIntoSlice(map[string]int{"b": 1, "a": 2}))
}

func TestKeepRunes(t *testing.T) {
	assert.Equal(t, "wellknown 30", KeepRunes("well-known, 30!", func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' '
	}))
}
