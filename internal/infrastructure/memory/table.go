package memory

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var (
	_ repository.ClientRepository      = (*OwnedTable[entity.Client])(nil)
	_ repository.ProductRepository     = (*OwnedTable[entity.Product])(nil)
	_ repository.JobPositionRepository = (*OwnedTable[entity.JobPosition])(nil)
)

type rowKeys struct {
	id, owner, name string
}

// OwnedTable implementa repository.NamedRepository[E] (y por tanto OwnedRepository[E]).
type OwnedTable[E any] struct {
	st         *Store
	rows       map[string]*E
	keys       func(*E) rowKeys
	uniqueName bool
	onDelete   func(id string) error
	view       func(*E)
}

func newTable[E any](st *Store, uniqueName bool, keys func(*E) rowKeys) *OwnedTable[E] {
	return &OwnedTable[E]{st: st, rows: map[string]*E{}, keys: keys, uniqueName: uniqueName}
}

// out copia la fila y completa los campos derivados. Requiere el lock.
func (t *OwnedTable[E]) out(e *E) *E {
	cp := *e
	if t.view != nil {
		t.view(&cp)
	}
	return &cp
}

func (t *OwnedTable[E]) find(ownerID, id string) *E {
	e, ok := t.rows[id]
	if !ok || t.keys(e).owner != ownerID {
		return nil
	}
	return e
}

func (t *OwnedTable[E]) nameTaken(ownerID, name, excludeID string) bool {
	for id, e := range t.rows {
		k := t.keys(e)
		if k.owner == ownerID && k.name == name && id != excludeID {
			return true
		}
	}
	return false
}

func (t *OwnedTable[E]) ListByOwner(_ context.Context, ownerID string) ([]*E, error) {
	t.st.mu.RLock()
	defer t.st.mu.RUnlock()
	list := make([]*E, 0)
	for _, e := range t.rows {
		if t.keys(e).owner == ownerID {
			list = append(list, t.out(e))
		}
	}
	sortByName(list, func(e *E) string { return t.keys(e).name })
	return list, nil
}

func (t *OwnedTable[E]) GetByID(_ context.Context, ownerID, id string) (*E, error) {
	t.st.mu.RLock()
	defer t.st.mu.RUnlock()
	e := t.find(ownerID, id)
	if e == nil {
		return nil, nil
	}
	return t.out(e), nil
}

func (t *OwnedTable[E]) Create(_ context.Context, e *E) error {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	k := t.keys(e)
	if _, exists := t.rows[k.id]; exists {
		return domain.ErrDuplicate
	}
	if t.uniqueName && t.nameTaken(k.owner, k.name, "") {
		return domain.ErrDuplicate
	}
	cp := *e
	t.rows[k.id] = &cp
	return nil
}

func (t *OwnedTable[E]) Update(_ context.Context, ownerID, id string, ch repository.Changes) (*E, error) {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	cur := t.find(ownerID, id)
	if cur == nil {
		return nil, nil
	}
	next, err := applyChanges(cur, ch)
	if err != nil {
		return nil, err
	}
	if t.uniqueName && t.nameTaken(ownerID, t.keys(next).name, id) {
		return nil, domain.ErrDuplicate
	}
	t.rows[id] = next
	return t.out(next), nil
}

func (t *OwnedTable[E]) Delete(_ context.Context, ownerID, id string) (int64, error) {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if t.find(ownerID, id) == nil {
		return 0, nil
	}
	if t.onDelete != nil {
		if err := t.onDelete(id); err != nil {
			return 0, err
		}
	}
	delete(t.rows, id)
	return 1, nil
}

func (t *OwnedTable[E]) NameTaken(_ context.Context, ownerID, name, excludeID string) (bool, error) {
	t.st.mu.RLock()
	defer t.st.mu.RUnlock()
	return t.nameTaken(ownerID, name, excludeID), nil
}
