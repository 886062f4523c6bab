// Package bootstrap arma las dependencias compartidas por la API y la CLI:
// almacén de documentos según STORE_DRIVER y los stores de dominio cargados.
package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	infrabadger "github.com/jhoicas/Tienda-api/internal/infrastructure/badger"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Tienda-api/internal/infrastructure/redis"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// OpenDocumentStore abre el backend configurado. El llamador debe cerrarlo.
func OpenDocumentStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.DocumentStore, error) {
	log.Info().Str("driver", cfg.Store.Driver).Msg("abriendo almacén de documentos")
	switch cfg.Store.Driver {
	case config.StoreMemory:
		return memory.NewDocumentStore(), nil
	case config.StoreBadger:
		return opened(infrabadger.Open(infrabadger.Config{Path: cfg.Store.BadgerPath, SyncWrites: true}))
	case config.StoreRedis:
		return opened(infraredis.New(ctx, infraredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		}))
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return opened(postgres.OpenDocumentStore(ctx, pool))
	case config.StoreSQLite:
		return opened(sqlite.Open(cfg.Store.SQLitePath))
	default:
		return nil, fmt.Errorf("driver de almacén desconocido: %q", cfg.Store.Driver)
	}
}

// opened evita devolver un puntero nil envuelto en la interfaz cuando la apertura falla.
func opened(store repository.DocumentStore, err error) (repository.DocumentStore, error) {
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Stores colecciones de dominio cargadas en memoria.
type Stores struct {
	Products *docstore.InventoryStore
	Clients  *docstore.ClientStore
	Sales    *docstore.SalesLedger
	Users    *docstore.UserStore
}

// LoadStores carga las cuatro colecciones en paralelo; falla si cualquiera no se puede leer.
func LoadStores(ctx context.Context, doc repository.DocumentStore, log *logger.Logger) (*Stores, error) {
	var s Stores
	storeLog := log.Component("docstore")
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.Products, err = docstore.NewInventoryStore(ctx, doc, storeLog)
		return err
	})
	g.Go(func() (err error) {
		s.Clients, err = docstore.NewClientStore(ctx, doc, storeLog)
		return err
	})
	g.Go(func() (err error) {
		s.Sales, err = docstore.NewSalesLedger(ctx, doc, storeLog)
		return err
	})
	g.Go(func() (err error) {
		s.Users, err = docstore.NewUserStore(ctx, doc, storeLog)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}
