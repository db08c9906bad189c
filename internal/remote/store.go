package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stpnv0/StudioDesk/internal/domain"
)

// Store exposes one remote collection as full-record create, replace and
// delete calls.
type Store[T any] struct {
	client   *Client
	path     string
	key      func(T) string
	notFound error
}

func NewStore[T any](client *Client, path string, key func(T) string, notFound error) *Store[T] {
	return &Store[T]{client: client, path: path, key: key, notFound: notFound}
}

func (s *Store[T]) itemPath(key string) string {
	return s.path + "/" + url.PathEscape(key)
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := s.client.do(ctx, http.MethodGet, s.path, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store[T]) Get(ctx context.Context, key string) (T, error) {
	var out T
	err := s.client.do(ctx, http.MethodGet, s.itemPath(key), nil, &out, s.notFound)
	return out, err
}

// Create posts the optimistic record and returns the canonical one, which may
// carry a different key.
func (s *Store[T]) Create(ctx context.Context, item T) (T, error) {
	var out T
	if err := s.client.do(ctx, http.MethodPost, s.path, item, &out, nil); err != nil {
		return out, err
	}
	return s.canonical(out)
}

func (s *Store[T]) Update(ctx context.Context, item T) (T, error) {
	var out T
	if err := s.client.do(ctx, http.MethodPut, s.itemPath(s.key(item)), item, &out, s.notFound); err != nil {
		return out, err
	}
	return s.canonical(out)
}

// canonical refuses a success answer that carries no record, e.g. an empty
// body or null.
func (s *Store[T]) canonical(out T) (T, error) {
	if s.key(out) == "" {
		var zero T
		return zero, &domain.RejectionError{Status: http.StatusBadGateway, Message: "malformed response"}
	}
	return out, nil
}

func (s *Store[T]) Delete(ctx context.Context, key string) error {
	return s.client.do(ctx, http.MethodDelete, s.itemPath(key), nil, nil, s.notFound)
}
