package mocks

import (
	"context"

	"community-board/internal/repository"
)

// Transactor runs the transaction body directly against a fixed set of
// repositories, standing in for repository.Store in unit tests.
type Transactor struct {
	Repos *repository.Repositories
	Err   error
}

func (m *Transactor) RunInTx(_ context.Context, fn func(r *repository.Repositories) error) error {
	if m.Err != nil {
		return m.Err
	}
	return fn(m.Repos)
}
