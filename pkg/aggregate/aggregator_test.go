package aggregate

import (
	"testing"
	"time"

	"notevision-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func noteAt(ts string) entity.Note {
	at, _ := time.Parse(time.RFC3339, ts)
	return entity.Note{Id: uuid.New(), Content: "note", CreatedAt: at}
}

func TestComputeStats(t *testing.T) {
	owned := []*entity.Notebook{
		{
			Name:     "Physics 101",
			IsPublic: true,
			Notes:    []entity.Note{noteAt("2025-01-15T10:00:00Z"), noteAt("2025-01-16T10:00:00Z")},
			Likes:    []string{"bob@example.com", "carol@example.com"},
			AccessList: []entity.AccessEntry{
				{UserEmail: "bob@example.com", Permission: entity.PermissionView},
			},
		},
		{
			Name:  "Private Journal",
			Notes: []entity.Note{noteAt("2025-01-15T11:00:00Z")},
			// Likes on a private notebook never count toward the total
			Likes: []string{"dave@example.com"},
		},
	}
	sharedWith := []*entity.Notebook{
		{Name: "Team Notes", OwnerEmail: "bob@example.com"},
	}

	stats := ComputeStats(owned, sharedWith)

	assert.Equal(t, 2, stats.NotebooksCreated)
	assert.Equal(t, 3, stats.NotesCreated)
	assert.Equal(t, 1, stats.NotebooksSharedByUser)
	assert.Equal(t, 1, stats.NotebooksSharedWithUser)
	assert.Equal(t, 2, stats.TotalLikesReceived)
}

func TestNoteDates(t *testing.T) {
	notebooks := []*entity.Notebook{
		{Notes: []entity.Note{
			noteAt("2025-01-16T08:00:00Z"),
			noteAt("2025-01-15T23:59:59Z"),
		}},
		{Notes: []entity.Note{
			noteAt("2025-01-15T00:00:00Z"),
		}},
	}

	dates := NoteDates(notebooks)

	assert.Equal(t, []string{"2025-01-15", "2025-01-16"}, dates)
}

func TestNotesOnBoundaries(t *testing.T) {
	inStart := noteAt("2025-01-15T00:00:00Z")
	inLate := noteAt("2025-01-15T23:59:59Z")
	beforeDay := noteAt("2025-01-14T23:59:59Z")
	nextDay := noteAt("2025-01-16T00:00:00Z")

	notebooks := []*entity.Notebook{
		{Notes: []entity.Note{inLate, nextDay}},
		{Notes: []entity.Note{beforeDay, inStart}},
	}
	day, _ := time.Parse("2006-01-02", "2025-01-15")

	notes := NotesOn(notebooks, day)

	assert.Len(t, notes, 2)
	assert.Equal(t, inStart.Id, notes[0].Id)
	assert.Equal(t, inLate.Id, notes[1].Id)
}

func TestRankPublicQueryMatching(t *testing.T) {
	physics := &entity.Notebook{Id: uuid.New(), Name: "Physics 101", IsPublic: true}
	tagged := &entity.Notebook{Id: uuid.New(), Name: "Lab Book", IsPublic: true, Tags: []string{"physics"}}
	chemistry := &entity.Notebook{Id: uuid.New(), Name: "Chemistry", IsPublic: true}
	private := &entity.Notebook{Id: uuid.New(), Name: "Physics Secret"}

	results := RankPublic([]*entity.Notebook{physics, tagged, chemistry, private}, "phys")

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []string{"Physics 101", "Lab Book"}, names)
}

func TestRankPublicOrderingAndCap(t *testing.T) {
	notebooks := []*entity.Notebook{
		{Id: uuid.New(), Name: "Beta", IsPublic: true, Likes: []string{"a@x.com"}},
		{Id: uuid.New(), Name: "Alpha", IsPublic: true, Likes: []string{"a@x.com"}},
		{Id: uuid.New(), Name: "Gamma", IsPublic: true, Likes: []string{"a@x.com", "b@x.com"}},
	}

	results := RankPublic(notebooks, "")

	assert.Equal(t, "Gamma", results[0].Name)
	assert.Equal(t, "Alpha", results[1].Name)
	assert.Equal(t, "Beta", results[2].Name)

	// Cap at 50 even when more match
	many := make([]*entity.Notebook, 0, 60)
	for i := 0; i < 60; i++ {
		many = append(many, &entity.Notebook{Id: uuid.New(), Name: "NB", IsPublic: true})
	}
	assert.Len(t, RankPublic(many, ""), SearchResultLimit)
}
