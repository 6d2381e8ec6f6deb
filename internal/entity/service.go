package entity

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"reststate/internal/models"
	"reststate/internal/rest"
	"reststate/internal/state"
	"reststate/internal/store"
	"reststate/internal/utils"
)

// Service holds the five action creators for one entity resource, bound to
// a REST client and the store they dispatch through. Create, update, and
// delete each chain a fresh list fetch after their own success.
type Service struct {
	store  *store.Store
	client *rest.Client
	path   string
}

// NewService binds a store and client to a resource path such as "/entities".
func NewService(st *store.Store, client *rest.Client, resourcePath string) *Service {
	if resourcePath == "" {
		resourcePath = "/entities"
	}
	return &Service{
		store:  st,
		client: client,
		path:   resourcePath,
	}
}

// FetchEntities loads the full collection.
func (s *Service) FetchEntities(ctx context.Context) (state.EntityState, error) {
	return s.store.Execute(ctx, s.fetchListAction())
}

// FetchEntity loads a single item by id.
func (s *Service) FetchEntity(ctx context.Context, id uuid.UUID) (state.EntityState, error) {
	return s.store.Execute(ctx, store.AsyncAction{
		Type: state.FetchEntity,
		Call: func(ctx context.Context) (any, error) {
			body, err := s.client.Get(ctx, s.path+"/"+id.String())
			if err != nil {
				return nil, err
			}
			return s.decodeEntity(body)
		},
	})
}

// CreateEntity posts a new item, then refreshes the collection.
func (s *Service) CreateEntity(ctx context.Context, e models.Entity) (state.EntityState, error) {
	return s.store.Execute(ctx, store.AsyncAction{
		Type: state.CreateEntity,
		Call: func(ctx context.Context) (any, error) {
			body, err := s.client.Post(ctx, s.path, e)
			if err != nil {
				return nil, err
			}
			return s.decodeEntity(body)
		},
		Then: s.refresh,
	})
}

// UpdateEntity puts an existing item, then refreshes the collection.
func (s *Service) UpdateEntity(ctx context.Context, e models.Entity) (state.EntityState, error) {
	return s.store.Execute(ctx, store.AsyncAction{
		Type: state.UpdateEntity,
		Call: func(ctx context.Context) (any, error) {
			body, err := s.client.Put(ctx, s.path+"/"+e.ID.String(), e)
			if err != nil {
				return nil, err
			}
			return s.decodeEntity(body)
		},
		Then: s.refresh,
	})
}

// DeleteEntity removes an item by id, then refreshes the collection. The
// response body, if any, is discarded.
func (s *Service) DeleteEntity(ctx context.Context, id uuid.UUID) (state.EntityState, error) {
	return s.store.Execute(ctx, store.AsyncAction{
		Type: state.DeleteEntity,
		Call: func(ctx context.Context) (any, error) {
			if _, err := s.client.Delete(ctx, s.path+"/"+id.String()); err != nil {
				return nil, err
			}
			return nil, nil
		},
		Then: s.refresh,
	})
}

func (s *Service) fetchListAction() store.AsyncAction {
	return store.AsyncAction{
		Type: state.FetchEntityList,
		Call: func(ctx context.Context) (any, error) {
			body, err := s.client.Get(ctx, s.path)
			if err != nil {
				return nil, err
			}

			var list []models.Entity
			if err := json.Unmarshal(body, &list); err != nil {
				log.Printf("Service: failed to decode entity list: %v", err)
				return nil, utils.NewDecodeError(s.path, err)
			}
			return list, nil
		},
	}
}

func (s *Service) refresh() *store.AsyncAction {
	action := s.fetchListAction()
	return &action
}

func (s *Service) decodeEntity(body []byte) (models.Entity, error) {
	var e models.Entity
	if err := json.Unmarshal(body, &e); err != nil {
		return models.Entity{}, utils.NewDecodeError(s.path, err)
	}
	return e, nil
}
