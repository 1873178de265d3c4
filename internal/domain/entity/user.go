// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"

	"outside/internal/domain/reconcile"
)

// UserIdentity is the credential record of a person: the login email and the
// bcrypt hash of their password. Exactly one UserProfile references it.
type UserIdentity struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the identity.
	Email        string     // Unique login email.
	PasswordHash string     // bcrypt hash of the password.
	CreatedAt    time.Time  // Timestamp of when the identity was created.
	UpdatedAt    *time.Time // Nil until the first accepted change.
	Version      int64      // Optimistic concurrency token, bumped on every write.
}

// UserProfile is the public face of a user. Its ID is the external "user id"
// and the subject of access tokens.
type UserProfile struct {
	ID         uuid.UUID     // The Global Unique Identifier (GUID) for the profile.
	IdentityID uuid.UUID     // Foreign key to the owning UserIdentity.
	Identity   *UserIdentity // Hydrated identity, nil unless loaded.
	FirstName  string        // Given name.
	LastName   string        // Family name.
	CreatedAt  time.Time     // Timestamp of when the profile was created.
	UpdatedAt  *time.Time    // Nil until the first accepted change.
	Version    int64         // Optimistic concurrency token, bumped on every write.
}

// UserProfileUpdate is a partial update form for a profile.
type UserProfileUpdate struct {
	FirstName *string
	LastName  *string
}

// ChangeEmail applies a new login email. It returns false, leaving the
// identity untouched, when the candidate is nil, empty or equal to the
// current email.
func (i *UserIdentity) ChangeEmail(email *string, now time.Time) bool {
	if !reconcile.String(&i.Email, email) {
		return false
	}
	i.UpdatedAt = &now

	return true
}

// ApplyUpdate reconciles the form against the profile and stamps UpdatedAt
// only when at least one field changed.
func (p *UserProfile) ApplyUpdate(form UserProfileUpdate, now time.Time) bool {
	changed := reconcile.Any(
		reconcile.String(&p.FirstName, form.FirstName),
		reconcile.String(&p.LastName, form.LastName),
	)
	if changed {
		p.UpdatedAt = &now
	}

	return changed
}

// Email returns the identity email if the identity is hydrated.
func (p *UserProfile) Email() string {
	if p.Identity == nil {
		return ""
	}

	return p.Identity.Email
}
