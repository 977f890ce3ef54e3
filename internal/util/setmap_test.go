package util

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewSetMap(t *testing.T) {
	setMap := NewSetMap[string, string]("a", "b", "c")
	if len(setMap) != 3 {
		t.Errorf("NewSetMap() = %v, want %v", len(setMap), 3)
	}
}

func TestSetMap_Add(t *testing.T) {
	setMap := NewSetMap[string, string]("a", "b", "c")
	setMap.Add("a", "b")
	setMap.Add("a", "c")
	setMap.Add("b", "c")
	setMap.Add("d", "e")

	assert.Equal(t, mapset.NewSet[string]("b", "c"), setMap["a"])
	assert.Equal(t, mapset.NewSet[string]("c"), setMap["b"])
	assert.Equal(t, mapset.NewSet[string](), setMap["c"])
	assert.Equal(t, mapset.NewSet[string]("e"), setMap["d"])
}

func TestSetMap_Len(t *testing.T) {
	setMap := NewSetMap[Pair[int], Pair[int]](Pair[int]{L: 0, R: 1}, Pair[int]{L: 0, R: 2})
	setMap.Add(Pair[int]{L: 0, R: 1}, Pair[int]{L: 0, R: 0})
	setMap.Add(Pair[int]{L: 0, R: 1}, Pair[int]{L: 0, R: 0})
	setMap.Add(Pair[int]{L: 0, R: 1}, Pair[int]{L: 1, R: 0})
	setMap.Add(Pair[int]{L: 0, R: 2}, Pair[int]{L: 1, R: 1})

	assert.Equal(t, 3, setMap.Len())
}
