// Package member implements customer registration and lookup.
package member

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoward/bookshop/internal/storage"
	"github.com/khoward/bookshop/pkg/types"
)

// Service handles member registration and lookup. Members are created once
// at registration and never mutated by the order flow.
type Service struct {
	store  storage.Storage
	logger *zap.Logger
}

// NewService creates a member service backed by store.
func NewService(store storage.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Register creates a new member and returns its ID. Names must be unique;
// a duplicate fails with storage.ErrAlreadyExists. The uniqueness check and
// the insert share one transaction.
func (s *Service) Register(ctx context.Context, name string, address types.Address) (int64, error) {
	if name == "" {
		return 0, types.ErrEmptyName
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	count, err := tx.CountMembersByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, fmt.Errorf("member %q: %w", name, storage.ErrAlreadyExists)
	}

	m := &storage.Member{Name: name, Address: address}
	if err := tx.CreateMember(ctx, m); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("member registered", zap.Int64("memberId", m.ID), zap.String("name", name))
	return m.ID, nil
}

// Get returns the member with the given ID.
func (s *Service) Get(ctx context.Context, memberID int64) (*storage.Member, error) {
	return s.store.GetMember(ctx, memberID)
}

// List returns all members.
func (s *Service) List(ctx context.Context) ([]*storage.Member, error) {
	return s.store.ListMembers(ctx)
}
