package domain

import (
	"fmt"

	"stockroom/internal/errors"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleStaff
}

// AuthorizeTransition validates a requested status change against the
// role matrix:
//
//	staff:   Approved -> Packed
//	manager: Pending  -> Approved | Rejected
//	         Packed   -> Shipped
//	admin:   any      -> any
//
// Any triple outside the matrix is rejected. A manager asking for a listed
// target from the wrong current status gets a ValidationError (bad request);
// a role asking for a target it may never set gets a ForbiddenError carrying
// the violated rule.
func AuthorizeTransition(role Role, current, requested OrderStatus) error {
	if !requested.Valid() {
		return errors.NewValidationError(fmt.Sprintf("unknown status %q", requested))
	}

	switch role {
	case RoleAdmin:
		// Admin satisfies any rule, including moves out of terminal states.
		return nil

	case RoleStaff:
		if current == OrderStatusApproved && requested == OrderStatusPacked {
			return nil
		}
		return errors.NewForbiddenError("staff can only mark Approved orders as Packed")

	case RoleManager:
		switch requested {
		case OrderStatusApproved, OrderStatusRejected:
			if current != OrderStatusPending {
				return errors.NewValidationError("can only approve or reject Pending orders")
			}
			return nil
		case OrderStatusShipped:
			if current != OrderStatusPacked {
				return errors.NewValidationError("can only ship Packed orders")
			}
			return nil
		default:
			return errors.NewForbiddenError("invalid status transition for manager")
		}
	}

	return errors.NewForbiddenError(fmt.Sprintf("unknown role %q", role))
}
