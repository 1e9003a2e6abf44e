package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// AssignmentRepo implementa repository.AssignmentRepository.
type AssignmentRepo struct {
	st   *Store
	rows map[string]*entity.Assignment
}

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

func (r *AssignmentRepo) find(ownerID, personalID, puestoID string) *entity.Assignment {
	for _, a := range r.rows {
		if a.UserID == ownerID && a.PersonalID == personalID && a.PuestoTrabajoID == puestoID {
			return a
		}
	}
	return nil
}

// removeWhere requiere el lock de escritura.
func (r *AssignmentRepo) removeWhere(match func(*entity.Assignment) bool) int64 {
	var n int64
	for id, a := range r.rows {
		if match(a) {
			delete(r.rows, id)
			n++
		}
	}
	return n
}

func (r *AssignmentRepo) ListByPersonnel(_ context.Context, ownerID, personalID string) ([]*entity.Assignment, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	list := make([]*entity.Assignment, 0)
	for _, a := range r.rows {
		if a.UserID != ownerID || a.PersonalID != personalID {
			continue
		}
		cp := *a
		if p, ok := r.st.positions.rows[a.PuestoTrabajoID]; ok {
			pc := *p
			cp.Puesto = &pc
		}
		list = append(list, &cp)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return puestoName(list[i]) < puestoName(list[j])
	})
	return list, nil
}

func puestoName(a *entity.Assignment) string {
	if a.Puesto == nil {
		return ""
	}
	return a.Puesto.Nombre
}

func (r *AssignmentRepo) Add(_ context.Context, a *entity.Assignment) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return r.insert(a)
}

func (r *AssignmentRepo) insert(a *entity.Assignment) error {
	if r.find(a.UserID, a.PersonalID, a.PuestoTrabajoID) != nil {
		return domain.ErrDuplicate
	}
	cp := *a
	cp.Puesto = nil
	r.rows[cp.ID] = &cp
	return nil
}

func (r *AssignmentRepo) Update(_ context.Context, ownerID, personalID, puestoID string, ch repository.Changes) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	cur := r.find(ownerID, personalID, puestoID)
	if cur == nil {
		return 0, nil
	}
	next, err := applyChanges(cur, ch)
	if err != nil {
		return 0, err
	}
	r.rows[cur.ID] = next
	return 1, nil
}

func (r *AssignmentRepo) Remove(_ context.Context, ownerID, personalID, puestoID string) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return r.removeWhere(func(a *entity.Assignment) bool {
		return a.UserID == ownerID && a.PersonalID == personalID && a.PuestoTrabajoID == puestoID
	}), nil
}

// Replace es atómico: si el nuevo conjunto tiene pares repetidos no se modifica nada.
func (r *AssignmentRepo) Replace(_ context.Context, ownerID, personalID string, set []*entity.Assignment) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	seen := make(map[string]bool, len(set))
	for _, a := range set {
		if seen[a.PuestoTrabajoID] {
			return domain.ErrDuplicate
		}
		seen[a.PuestoTrabajoID] = true
	}
	r.removeWhere(func(a *entity.Assignment) bool {
		return a.UserID == ownerID && a.PersonalID == personalID
	})
	for _, a := range set {
		if err := r.insert(a); err != nil {
			return err
		}
	}
	return nil
}
