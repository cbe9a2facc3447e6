package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Permission string

const (
	PermissionView Permission = "view"
	PermissionEdit Permission = "edit"
)

func (p Permission) Valid() bool {
	return p == PermissionView || p == PermissionEdit
}

type AccessEntry struct {
	UserEmail  string     `json:"user_email"`
	Permission Permission `json:"permission"`
}

type Note struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Notebook is the aggregate root: notes live only inside their notebook and
// every mutation goes through notebook-scoped operations.
type Notebook struct {
	Id         uuid.UUID
	Name       string
	OwnerEmail string
	IsPublic   bool
	Notes      []Note
	AccessList []AccessEntry
	Tags       []string
	Likes      []string
	CreatedAt  time.Time
}

// AccessFor returns the access entry granted to email, or nil. The owner has
// implicit edit access and never appears in the access list.
func (nb *Notebook) AccessFor(email string) *AccessEntry {
	for i := range nb.AccessList {
		if nb.AccessList[i].UserEmail == email {
			return &nb.AccessList[i]
		}
	}
	return nil
}

// Grant adds or updates an access entry in place. A recipient is never
// duplicated: sharing twice keeps one entry with the latest permission.
func (nb *Notebook) Grant(email string, permission Permission) {
	for i := range nb.AccessList {
		if nb.AccessList[i].UserEmail == email {
			nb.AccessList[i].Permission = permission
			return
		}
	}
	nb.AccessList = append(nb.AccessList, AccessEntry{UserEmail: email, Permission: permission})
}

func (nb *Notebook) AppendNote(note Note) {
	nb.Notes = append(nb.Notes, note)
}

func (nb *Notebook) FindNote(id uuid.UUID) *Note {
	for i := range nb.Notes {
		if nb.Notes[i].Id == id {
			return &nb.Notes[i]
		}
	}
	return nil
}

// RemoveNote deletes the note if present and reports whether it was found.
// Removing an absent note is not an error: the desired end state is reached
// either way, and callers treat both outcomes as success.
func (nb *Notebook) RemoveNote(id uuid.UUID) bool {
	for i := range nb.Notes {
		if nb.Notes[i].Id == id {
			nb.Notes = append(nb.Notes[:i], nb.Notes[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleLike flips email's membership in the likes set and returns the new
// state (true = liked). Toggling twice restores the original set.
func (nb *Notebook) ToggleLike(email string) bool {
	for i, liker := range nb.Likes {
		if liker == email {
			nb.Likes = append(nb.Likes[:i], nb.Likes[i+1:]...)
			return false
		}
	}
	nb.Likes = append(nb.Likes, email)
	return true
}

func (nb *Notebook) LikedBy(email string) bool {
	for _, liker := range nb.Likes {
		if liker == email {
			return true
		}
	}
	return false
}

// NormalizeTags lowercases, trims whitespace, drops empty strings,
// deduplicates and sorts lexicographically. Tags are stored only in this
// form so search and dedupe never depend on input casing.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		cleaned = append(cleaned, tag)
	}
	sort.Strings(cleaned)
	return cleaned
}
