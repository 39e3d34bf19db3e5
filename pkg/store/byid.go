package store

import (
	"fmt"
)

// ByID filters on the store's own record identifier.
func ByID(id string) Predicate {
	return byIDPredicate{id: id}
}

type byIDPredicate struct {
	id string
}

func (p byIDPredicate) formula() (string, error) {
	escaped, err := escapeValue(p.id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`RECORD_ID() = "%s"`, escaped), nil
}

func (p byIDPredicate) match(rec Record) (bool, error) {
	return rec.ID == p.id, nil
}
