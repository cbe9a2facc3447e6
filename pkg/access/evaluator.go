package access

import (
	"notevision-be/internal/entity"
)

type DenyReason string

const (
	DenyNotFound     DenyReason = "notebook_not_found"
	DenyNoGrant      DenyReason = "no_access_entry"
	DenyInsufficient DenyReason = "insufficient_permission"
)

// Decision carries the denial reason alongside the verdict so callers can
// log and report why access was refused instead of a bare boolean.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func allowed() Decision {
	return Decision{Allowed: true}
}

func denied(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Evaluate decides whether email may act on the notebook at the required
// level. Rules, in order: absent notebook denies; the owner always passes
// (implicit edit, never listed in the access list); an edit grant passes any
// requirement; a view grant passes only a view requirement. Pure function;
// callers run it before every non-public read and every mutation.
func Evaluate(nb *entity.Notebook, email string, required entity.Permission) Decision {
	if nb == nil {
		return denied(DenyNotFound)
	}
	if nb.OwnerEmail == email {
		return allowed()
	}

	entry := nb.AccessFor(email)
	if entry == nil {
		return denied(DenyNoGrant)
	}
	if entry.Permission == entity.PermissionEdit {
		return allowed()
	}
	if entry.Permission == entity.PermissionView && required == entity.PermissionView {
		return allowed()
	}
	return denied(DenyInsufficient)
}
