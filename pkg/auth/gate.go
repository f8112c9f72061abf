package auth

import (
	"tourly/pkg/utils"
)

type Operation string

const (
	OpReadPublic     Operation = "read_public"
	OpWriteCatalog   Operation = "write_catalog"
	OpUploadImages   Operation = "upload_images"
	OpReadOwnReviews Operation = "read_own_reviews"
	OpWriteReview    Operation = "write_review"
	OpCheckout       Operation = "checkout"
	OpAdminArea      Operation = "admin_area"
)

// requiredRole is the least privileged role allowed to perform an operation.
var requiredRole = map[Operation]Role{
	OpReadPublic:     RoleGuest,
	OpWriteCatalog:   RoleAdmin,
	OpUploadImages:   RoleAdmin,
	OpReadOwnReviews: RoleUser,
	OpWriteReview:    RoleUser,
	OpCheckout:       RoleUser,
	OpAdminArea:      RoleAdmin,
}

func rank(r Role) int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// Authorize returns nil when identity may perform op. A guest denied access
// gets an Unauthenticated error, an authenticated caller with too small a
// role gets Forbidden. Unknown operations are denied.
func Authorize(identity Identity, op Operation) error {
	need, ok := requiredRole[op]
	if !ok {
		if identity.IsAuthenticated() {
			return utils.Forbidden()
		}
		return utils.Unauthenticated()
	}
	if need == RoleGuest {
		return nil
	}
	if !identity.IsAuthenticated() {
		return utils.Unauthenticated()
	}
	if rank(identity.Role) < rank(need) {
		return utils.Forbidden()
	}
	return nil
}
