package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// ItemRepo implementa repository.EquipmentItemRepository.
type ItemRepo struct {
	st   *Store
	rows map[string]*entity.EquipmentItem
}

var _ repository.EquipmentItemRepository = (*ItemRepo)(nil)

func (r *ItemRepo) find(ownerID, productID, id string) *entity.EquipmentItem {
	it, ok := r.rows[id]
	if !ok || it.UserID != ownerID || it.ProductoID != productID {
		return nil
	}
	return it
}

func (r *ItemRepo) serialTaken(ownerID, productID, serial, excludeID string) bool {
	for id, it := range r.rows {
		if id != excludeID && it.UserID == ownerID && it.ProductoID == productID &&
			it.NumeroSerie != nil && *it.NumeroSerie == serial {
			return true
		}
	}
	return false
}

// ListByProduct ordena por número de serie (sin serie al final) y fecha de alta.
func (r *ItemRepo) ListByProduct(_ context.Context, ownerID, productID string) ([]*entity.EquipmentItem, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	list := make([]*entity.EquipmentItem, 0)
	for _, it := range r.rows {
		if it.UserID == ownerID && it.ProductoID == productID {
			cp := *it
			list = append(list, &cp)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch {
		case a.NumeroSerie != nil && b.NumeroSerie != nil && *a.NumeroSerie != *b.NumeroSerie:
			return *a.NumeroSerie < *b.NumeroSerie
		case a.NumeroSerie != nil && b.NumeroSerie == nil:
			return true
		case a.NumeroSerie == nil && b.NumeroSerie != nil:
			return false
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return list, nil
}

func (r *ItemRepo) GetByID(_ context.Context, ownerID, productID, id string) (*entity.EquipmentItem, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	it := r.find(ownerID, productID, id)
	if it == nil {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *ItemRepo) Create(_ context.Context, item *entity.EquipmentItem) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.products.rows[item.ProductoID]; !ok {
		return domain.ErrInvalidInput
	}
	if item.NumeroSerie != nil && r.serialTaken(item.UserID, item.ProductoID, *item.NumeroSerie, "") {
		return domain.ErrDuplicate
	}
	cp := *item
	r.rows[item.ID] = &cp
	return nil
}

func (r *ItemRepo) Update(_ context.Context, ownerID, productID, id string, ch repository.Changes) (*entity.EquipmentItem, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	cur := r.find(ownerID, productID, id)
	if cur == nil {
		return nil, nil
	}
	next, err := applyChanges(cur, ch)
	if err != nil {
		return nil, err
	}
	if next.NumeroSerie != nil && r.serialTaken(ownerID, productID, *next.NumeroSerie, id) {
		return nil, domain.ErrDuplicate
	}
	r.rows[id] = next
	cp := *next
	return &cp, nil
}

func (r *ItemRepo) Delete(_ context.Context, ownerID, productID, id string) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.find(ownerID, productID, id) == nil {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *ItemRepo) SerialTaken(_ context.Context, ownerID, productID, serial, excludeID string) (bool, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	return r.serialTaken(ownerID, productID, serial, excludeID), nil
}
