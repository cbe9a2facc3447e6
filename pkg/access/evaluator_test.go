package access

import (
	"testing"

	"notevision-be/internal/entity"
)

func notebook(owner string, entries ...entity.AccessEntry) *entity.Notebook {
	return &entity.Notebook{
		Name:       "Physics 101",
		OwnerEmail: owner,
		AccessList: entries,
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		nb          *entity.Notebook
		email       string
		required    entity.Permission
		wantAllowed bool
		wantReason  DenyReason
	}{
		{
			name:        "absent notebook denies",
			nb:          nil,
			email:       "alice@example.com",
			required:    entity.PermissionView,
			wantAllowed: false,
			wantReason:  DenyNotFound,
		},
		{
			name:        "owner passes view",
			nb:          notebook("alice@example.com"),
			email:       "alice@example.com",
			required:    entity.PermissionView,
			wantAllowed: true,
		},
		{
			name:        "owner passes edit regardless of access list",
			nb:          notebook("alice@example.com", entity.AccessEntry{UserEmail: "bob@example.com", Permission: entity.PermissionView}),
			email:       "alice@example.com",
			required:    entity.PermissionEdit,
			wantAllowed: true,
		},
		{
			name:        "edit grant implies view",
			nb:          notebook("alice@example.com", entity.AccessEntry{UserEmail: "bob@example.com", Permission: entity.PermissionEdit}),
			email:       "bob@example.com",
			required:    entity.PermissionView,
			wantAllowed: true,
		},
		{
			name:        "edit grant passes edit",
			nb:          notebook("alice@example.com", entity.AccessEntry{UserEmail: "bob@example.com", Permission: entity.PermissionEdit}),
			email:       "bob@example.com",
			required:    entity.PermissionEdit,
			wantAllowed: true,
		},
		{
			name:        "view grant passes view",
			nb:          notebook("alice@example.com", entity.AccessEntry{UserEmail: "bob@example.com", Permission: entity.PermissionView}),
			email:       "bob@example.com",
			required:    entity.PermissionView,
			wantAllowed: true,
		},
		{
			name:        "view grant fails edit",
			nb:          notebook("alice@example.com", entity.AccessEntry{UserEmail: "bob@example.com", Permission: entity.PermissionView}),
			email:       "bob@example.com",
			required:    entity.PermissionEdit,
			wantAllowed: false,
			wantReason:  DenyInsufficient,
		},
		{
			name:        "no grant denies",
			nb:          notebook("alice@example.com", entity.AccessEntry{UserEmail: "bob@example.com", Permission: entity.PermissionEdit}),
			email:       "carol@example.com",
			required:    entity.PermissionView,
			wantAllowed: false,
			wantReason:  DenyNoGrant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.nb, tt.email, tt.required)

			if got.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", got.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}
