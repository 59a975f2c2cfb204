package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := map[string]string{"A": "1"}
	second := map[string]string{"B": "2", "C": "3"}

	merged := maps.Collect(IterSeq2Concat(maps.All(first), maps.All(second)))
	assert.Equal(map[string]string{"A": "1", "B": "2", "C": "3"}, merged)

	count := 0
	for range IterSeq2Concat(maps.All(first), maps.All(second)) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestIterSeq2Sorted(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{"ZETA": "26", "ALPHA": "1", "MU": "12"}

	var keys []string
	for key, value := range IterSeq2Sorted(maps.All(defines)) {
		keys = append(keys, key)
		assert.Equal(defines[key], value)
	}
	assert.Equal([]string{"ALPHA", "MU", "ZETA"}, keys)

	keys = nil
	for key := range IterSeq2Sorted(maps.All(defines)) {
		keys = append(keys, key)
		break
	}
	assert.Equal([]string{"ALPHA"}, keys)
}
