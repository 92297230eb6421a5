package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// BookIDs is a denormalized list of Book ids stored as a jsonb column.
// The list is kept consistent with the forward pointers on Book by the
// relationship operations, not by the store.
type BookIDs []string

func (ids BookIDs) Value() (driver.Value, error) {
	if ids == nil {
		ids = BookIDs{}
	}
	return json.Marshal(ids)
}

func (ids *BookIDs) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ids = BookIDs{}
		return nil
	case []byte:
		return json.Unmarshal(v, ids)
	case string:
		return json.Unmarshal([]byte(v), ids)
	default:
		return errors.Errorf("unsupported scan type %T for BookIDs", src)
	}
}

func (ids BookIDs) Contains(id string) bool {
	for _, el := range ids {
		if el == id {
			return true
		}
	}
	return false
}

// Remove returns the list without the first occurrence of id. The second
// return reports whether id was present.
func (ids BookIDs) Remove(id string) (BookIDs, bool) {
	for i, el := range ids {
		if el == id {
			out := make(BookIDs, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...), true
		}
	}
	return ids, false
}
