package mapper

import (
	"encoding/json"

	"notevision-be/internal/entity"
	"notevision-be/internal/model"

	"gorm.io/datatypes"
)

type NotebookMapper struct{}

func NewNotebookMapper() *NotebookMapper {
	return &NotebookMapper{}
}

// ToEntity decodes the JSONB document columns into typed slices. Missing or
// null columns (documents written before a field existed) load as empty
// slices here, once, instead of being backfilled by every handler.
func (m *NotebookMapper) ToEntity(n *model.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	nb := &entity.Notebook{
		Id:         n.Id,
		Name:       n.Name,
		OwnerEmail: n.OwnerEmail,
		IsPublic:   n.IsPublic,
		Notes:      decodeColumn[entity.Note](n.Notes),
		AccessList: decodeColumn[entity.AccessEntry](n.AccessList),
		Tags:       decodeColumn[string](n.Tags),
		Likes:      decodeColumn[string](n.Likes),
		CreatedAt:  n.CreatedAt,
	}
	return nb
}

func (m *NotebookMapper) ToModel(nb *entity.Notebook) *model.Notebook {
	if nb == nil {
		return nil
	}
	return &model.Notebook{
		Id:         nb.Id,
		Name:       nb.Name,
		OwnerEmail: nb.OwnerEmail,
		IsPublic:   nb.IsPublic,
		Notes:      encodeColumn(nb.Notes),
		AccessList: encodeColumn(nb.AccessList),
		Tags:       encodeColumn(nb.Tags),
		Likes:      encodeColumn(nb.Likes),
		CreatedAt:  nb.CreatedAt,
	}
}

func (m *NotebookMapper) ToEntities(notebooks []*model.Notebook) []*entity.Notebook {
	entities := make([]*entity.Notebook, len(notebooks))
	for i, n := range notebooks {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func decodeColumn[T any](raw datatypes.JSON) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

func encodeColumn[T any](items []T) datatypes.JSON {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
