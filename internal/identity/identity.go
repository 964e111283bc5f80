package identity

import (
	"strings"

	"github.com/google/uuid"
)

// Kind distinguishes the two identity variants.
type Kind string

const (
	KindRegistered Kind = "registered"
	KindGuest      Kind = "guest"
)

// Identity is an acting principal: either a durable registered account or a
// transient guest session bound to a device.
type Identity struct {
	ID    uuid.UUID
	Kind  Kind
	Email string // registered accounts only
	Name  string // provider display name, or the guest's persisted nickname
}

func (i Identity) IsRegistered() bool { return i.Kind == KindRegistered }

func (i Identity) IsGuest() bool { return i.Kind == KindGuest }

// DisplayName resolves the name shown next to this identity's actions.
// Registered accounts fall back to "user" when the provider gave no name;
// guests without a persisted nickname show as "guest".
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.Kind == KindGuest {
		return "guest"
	}
	return "user"
}

// HasName reports whether the identity can take a social action that
// requires a non-placeholder display name (posting a comment). Registered
// accounts always qualify; guests need a persisted nickname first.
func (i Identity) HasName() bool {
	return i.IsRegistered() || i.Name != ""
}

// Resolver answers permission questions against the static admin allow-list.
type Resolver struct {
	adminEmails []string
}

// NewResolver parses a comma-separated admin email allow-list.
func NewResolver(adminEmails string) *Resolver {
	r := &Resolver{}
	for _, p := range strings.Split(adminEmails, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			r.adminEmails = append(r.adminEmails, trimmed)
		}
	}
	return r
}

// IsPrivileged reports membership in the admin allow-list. Guests are never
// privileged.
func (r *Resolver) IsPrivileged(id Identity) bool {
	if !id.IsRegistered() || id.Email == "" {
		return false
	}
	for _, email := range r.adminEmails {
		if email == id.Email {
			return true
		}
	}
	return false
}

// CanMutate is the edit/delete permission rule shared by all components:
// the original creator or a privileged identity.
func (r *Resolver) CanMutate(creatorID uuid.UUID, id Identity) bool {
	if r.IsPrivileged(id) {
		return true
	}
	return id.ID == creatorID
}
