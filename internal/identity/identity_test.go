package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		want string
	}{
		{"registered with name", Identity{Kind: KindRegistered, Name: "Tanaka"}, "Tanaka"},
		{"registered without name", Identity{Kind: KindRegistered}, "user"},
		{"guest with nickname", Identity{Kind: KindGuest, Name: "ponpoko"}, "ponpoko"},
		{"guest without nickname", Identity{Kind: KindGuest}, "guest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.DisplayName())
		})
	}
}

func TestHasName(t *testing.T) {
	assert.True(t, Identity{Kind: KindRegistered}.HasName(), "registered accounts always qualify")
	assert.True(t, Identity{Kind: KindGuest, Name: "ponpoko"}.HasName())
	assert.False(t, Identity{Kind: KindGuest}.HasName(), "nameless guests cannot act")
}

func TestIsPrivileged(t *testing.T) {
	r := NewResolver("admin@example.com, second@example.com")

	assert.True(t, r.IsPrivileged(Identity{Kind: KindRegistered, Email: "admin@example.com"}))
	assert.True(t, r.IsPrivileged(Identity{Kind: KindRegistered, Email: "second@example.com"}),
		"whitespace around list entries is trimmed")
	assert.False(t, r.IsPrivileged(Identity{Kind: KindRegistered, Email: "user@example.com"}))
	assert.False(t, r.IsPrivileged(Identity{Kind: KindGuest, Email: "admin@example.com"}),
		"guests are never privileged even with a matching email")
	assert.False(t, r.IsPrivileged(Identity{Kind: KindRegistered}))
}

func TestIsPrivilegedEmptyList(t *testing.T) {
	r := NewResolver("")
	assert.False(t, r.IsPrivileged(Identity{Kind: KindRegistered, Email: "anyone@example.com"}))
}

func TestCanMutate(t *testing.T) {
	creator := uuid.New()
	other := uuid.New()
	r := NewResolver("admin@example.com")

	assert.True(t, r.CanMutate(creator, Identity{ID: creator, Kind: KindRegistered}),
		"creator can always mutate")
	assert.False(t, r.CanMutate(creator, Identity{ID: other, Kind: KindRegistered}),
		"non-creator non-admin cannot")
	assert.True(t, r.CanMutate(creator, Identity{ID: other, Kind: KindRegistered, Email: "admin@example.com"}),
		"admin can mutate anything")
	assert.True(t, r.CanMutate(creator, Identity{ID: creator, Kind: KindGuest}),
		"a guest identity matching the creator id still counts as the creator")
}
