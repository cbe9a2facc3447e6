package mapper

import (
	"testing"
	"time"

	"notevision-be/internal/entity"
	"notevision-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestToEntityDefaultsMissingColumns(t *testing.T) {
	m := NewNotebookMapper()

	// Rows written before a column existed come back null; loading must
	// still produce usable empty slices.
	nb := m.ToEntity(&model.Notebook{
		Id:         uuid.New(),
		Name:       "Old Notebook",
		OwnerEmail: "owner@example.com",
	})

	assert.NotNil(t, nb.Notes)
	assert.NotNil(t, nb.AccessList)
	assert.NotNil(t, nb.Tags)
	assert.NotNil(t, nb.Likes)
	assert.Empty(t, nb.Notes)
	assert.Empty(t, nb.Likes)
}

func TestToEntityIgnoresMalformedColumn(t *testing.T) {
	m := NewNotebookMapper()

	nb := m.ToEntity(&model.Notebook{
		Id:    uuid.New(),
		Name:  "Broken",
		Notes: datatypes.JSON(`{"not": "an array"}`),
	})

	assert.Empty(t, nb.Notes)
}

func TestModelEntityRoundTrip(t *testing.T) {
	m := NewNotebookMapper()

	original := &entity.Notebook{
		Id:         uuid.New(),
		Name:       "Physics 101",
		OwnerEmail: "owner@example.com",
		IsPublic:   true,
		Notes: []entity.Note{
			{Id: uuid.New(), Content: "Newton's first law", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		},
		AccessList: []entity.AccessEntry{
			{UserEmail: "friend@example.com", Permission: entity.PermissionView},
		},
		Tags:      []string{"physics", "science"},
		Likes:     []string{"fan@example.com"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	got := m.ToEntity(m.ToModel(original))

	assert.Equal(t, original.Id, got.Id)
	assert.Equal(t, original.Notes, got.Notes)
	assert.Equal(t, original.AccessList, got.AccessList)
	assert.Equal(t, original.Tags, got.Tags)
	assert.Equal(t, original.Likes, got.Likes)
}
