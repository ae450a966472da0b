package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Email("test@example.com"), NewEmail("test@example.com"))
	assert.Equal(Email("test@example.com"), NewEmail("Test@Example.COM"))
	assert.Equal(Email("test@example.com"), NewEmail("  test@example.com\n"))
	assert.Equal(Email(""), NewEmail("   "))
}
