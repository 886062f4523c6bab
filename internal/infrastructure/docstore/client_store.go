package docstore

import (
	"context"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

var _ repository.ClientRepository = (*ClientStore)(nil)

// ClientStore dueño de los clientes. Editar o borrar un cliente no toca las ventas.
type ClientStore struct {
	mu      sync.RWMutex
	doc     repository.DocumentStore
	log     *logger.Logger
	clients []*entity.Client
}

// NewClientStore carga los clientes guardados bajo "clients".
func NewClientStore(ctx context.Context, doc repository.DocumentStore, log *logger.Logger) (*ClientStore, error) {
	var clients []*entity.Client
	if err := load(ctx, doc, repository.KeyClients, &clients); err != nil {
		return nil, err
	}
	clients = compact(clients)
	log.Info().Int("count", len(clients)).Msg("clientes cargados")
	return &ClientStore{doc: doc, log: log, clients: clients}, nil
}

func (s *ClientStore) GetByID(id string) (*entity.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.clients[i].Clone(), nil
	}
	return nil, nil
}

func (s *ClientStore) List() ([]*entity.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (s *ClientStore) Create(ctx context.Context, client *entity.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(client.ID) >= 0 {
		return domain.ErrDuplicate
	}
	s.clients = append(s.clients, client.Clone())
	if err := s.persist(ctx); err != nil {
		s.clients = s.clients[:len(s.clients)-1]
		return err
	}
	return nil
}

func (s *ClientStore) Update(ctx context.Context, client *entity.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(client.ID)
	if i < 0 {
		return &domain.NotFoundError{Kind: "cliente", ID: client.ID}
	}
	prev := s.clients[i]
	s.clients[i] = client.Clone()
	if err := s.persist(ctx); err != nil {
		s.clients[i] = prev
		return err
	}
	return nil
}

func (s *ClientStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return &domain.NotFoundError{Kind: "cliente", ID: id}
	}
	prev := s.clients
	next := make([]*entity.Client, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)
	s.clients = next
	if err := s.persist(ctx); err != nil {
		s.clients = prev
		return err
	}
	return nil
}

func (s *ClientStore) indexOf(id string) int {
	for i, c := range s.clients {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *ClientStore) persist(ctx context.Context) error {
	if err := save(ctx, s.doc, repository.KeyClients, s.clients); err != nil {
		s.log.Error().Err(err).Msg("no se pudo guardar los clientes")
		return err
	}
	return nil
}
