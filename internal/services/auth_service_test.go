package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGuestIDDeterministic(t *testing.T) {
	a := uuid.NewSHA1(guestNamespace, []byte("device-1"))
	b := uuid.NewSHA1(guestNamespace, []byte("device-1"))
	c := uuid.NewSHA1(guestNamespace, []byte("device-2"))

	assert.Equal(t, a, b, "the same device must resolve to the same guest identity")
	assert.NotEqual(t, a, c)
}

func TestHashTokenStable(t *testing.T) {
	assert.Equal(t, hashToken("abc"), hashToken("abc"))
	assert.NotEqual(t, hashToken("abc"), hashToken("abd"))
	assert.Len(t, hashToken("abc"), 64)
}
