// Package security holds the caller identity type and the access policies
// evaluated at the top of every guarded engine operation. The original
// system attached these rules declaratively and resolved the owning
// identifier by reflecting over parameter names; here each policy is an
// explicit function call and the owner identifier is passed in directly,
// which keeps the engine testable and free of shared mutable state.
package security

import "github.com/agenson/cinema-booking/internal/model"

// Identity describes the authenticated caller of an engine operation.
// A nil *Identity means nobody is logged in. One identity exists per
// session; it is carried explicitly into every engine call rather than
// held in a global.
type Identity struct {
	UUID string     // the user's public identifier
	Role model.Role // CUSTOMER or STAFF
}

// IsStaff reports whether the identity is present and has the STAFF role.
func (i *Identity) IsStaff() bool {
	return i != nil && i.Role == model.RoleStaff
}

// Is reports whether the identity is present and matches the given user.
func (i *Identity) Is(userUUID string) bool {
	return i != nil && userUUID != "" && i.UUID == userUUID
}
