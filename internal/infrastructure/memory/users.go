package memory

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository.
type UserRepo struct {
	st   *Store
	rows map[string]*entity.User
}

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, existing := range r.rows {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, u := range r.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
