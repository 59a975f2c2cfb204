package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	saved := Language()
	defer use(saved)

	err := SetLanguage("en-US")
	assert.NoError(err)
	assert.Equal("en-US", Language().String())
	assert.Equal("register A: 14 digits", From("register %v: %d digits", "A", 14))

	err = SetLanguage("not a language tag")
	assert.Error(err)
	assert.Equal("en-US", Language().String())
}
