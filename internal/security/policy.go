package security

import "errors"

// Sentinel failures raised by the access policies. ErrIdentification means
// no caller identity is active; ErrAuthorization means an identity is
// present but lacks the required role or ownership. Handlers translate
// these into 401 and 403 responses.
var (
	ErrIdentification = errors.New("requires identification")
	ErrAuthorization  = errors.New("requires authorization")
)

// ErrConnection is raised by the login flow when the username or password
// does not match. It deliberately does not reveal which one was wrong.
var ErrConnection = errors.New("username or password is incorrect")

// RequireStaff enforces the staff-only policy. It is evaluated before any
// side effect of the guarded operation.
func RequireStaff(ident *Identity) error {
	if ident == nil {
		return ErrIdentification
	}
	if !ident.IsStaff() {
		return ErrAuthorization
	}
	return nil
}

// RequireUser enforces the owner-only policy: the caller must be logged in
// as exactly the user identified by ownerUUID. An empty owner identifier
// fails authorization rather than passing open.
func RequireUser(ident *Identity, ownerUUID string) error {
	if ident == nil {
		return ErrIdentification
	}
	if !ident.Is(ownerUUID) {
		return ErrAuthorization
	}
	return nil
}
