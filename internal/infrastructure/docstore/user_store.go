package docstore

import (
	"context"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore usuarios registrados (clave "users").
type UserStore struct {
	mu    sync.RWMutex
	doc   repository.DocumentStore
	log   *logger.Logger
	users []*entity.User
}

func NewUserStore(ctx context.Context, doc repository.DocumentStore, log *logger.Logger) (*UserStore, error) {
	var users []*entity.User
	if err := load(ctx, doc, repository.KeyUsers, &users); err != nil {
		return nil, err
	}
	users = compact(users)
	log.Debug().Int("count", len(users)).Msg("usuarios cargados")
	return &UserStore{doc: doc, log: log, users: users}, nil
}

// Create falla con ErrDuplicate si el username o el ID ya existen.
func (s *UserStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.ID == user.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *user
	s.users = append(s.users, &cp)
	if err := save(ctx, s.doc, repository.KeyUsers, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		s.log.Error().Err(err).Msg("no se pudo guardar los usuarios")
		return err
	}
	return nil
}

// FindByUsername devuelve (nil, nil) si no existe.
func (s *UserStore) FindByUsername(username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *UserStore) GetByID(id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
