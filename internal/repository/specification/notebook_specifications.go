package specification

import (
	"encoding/json"

	"gorm.io/gorm"
)

// OwnedBy filters notebooks by owner email.
type OwnedBy struct {
	OwnerEmail string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_email = ?", s.OwnerEmail)
}

// NotOwnedBy excludes the caller's own notebooks. Combined with
// AccessListContains it yields "shared with me" without ever matching a
// self-share.
type NotOwnedBy struct {
	OwnerEmail string
}

func (s NotOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_email <> ?", s.OwnerEmail)
}

// IsPublic filters on visibility.
type IsPublic struct{}

func (s IsPublic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ?", true)
}

// AccessListContains matches notebooks whose access_list JSONB array holds
// an entry for the given email, using Postgres containment so the set
// membership check runs in the store.
type AccessListContains struct {
	UserEmail string
}

func (s AccessListContains) Apply(db *gorm.DB) *gorm.DB {
	probe, _ := json.Marshal([]map[string]string{{"user_email": s.UserEmail}})
	return db.Where("access_list @> ?", string(probe))
}
