package dto

import "encoding/json"

// Relation is a to-one relationship in a response. A relation that was not
// loaded is left out of the JSON object (the field must carry omitzero); a
// loaded relation without a row renders as null.
type Relation[T any] struct {
	Loaded bool
	Value  *T
}

// LoadedRelation marks value as loaded, nil meaning no related row.
func LoadedRelation[T any](value *T) Relation[T] {
	return Relation[T]{Loaded: true, Value: value}
}

func (r Relation[T]) IsZero() bool {
	return !r.Loaded
}

func (r Relation[T]) MarshalJSON() ([]byte, error) {
	if r.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// RelationList is a to-many relationship in a response. A loaded relation
// without rows renders as [].
type RelationList[T any] struct {
	Loaded bool
	Items  []T
}

func LoadedRelationList[T any](items []T) RelationList[T] {
	return RelationList[T]{Loaded: true, Items: items}
}

func (r RelationList[T]) IsZero() bool {
	return !r.Loaded
}

func (r RelationList[T]) MarshalJSON() ([]byte, error) {
	if r.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Items)
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items   []T
	Page    int
	PerPage int
	Total   int64
}
