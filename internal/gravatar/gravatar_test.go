package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	url := URL("a@a.com")

	assert.Equal(t, "https://www.gravatar.com/avatar/d10ca8d11301c2f4993ac2279ce4b930?s=200&r=pg&d=mm", url)
}

func TestURL_Deterministic(t *testing.T) {
	assert.Equal(t, URL("test@example.com"), URL("test@example.com"))
}

func TestURL_NormalizesEmail(t *testing.T) {
	expected := URL("test@example.com")

	assert.Equal(t, expected, URL("Test@Example.com"))
	assert.Equal(t, expected, URL("  test@example.com  "))
}
