// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompanyMembership(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("INSERT INTO company_memberships").
			WithArgs(sqlmock.AnyArg(), "company-1", "user-1", "admin").
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := s.CreateCompanyMembership(ctx, "company-1", "user-1", "admin")
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate membership", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("INSERT INTO company_memberships").
			WithArgs(sqlmock.AnyArg(), "company-1", "user-1", "admin").
			WillReturnError(duplicateKeyErr())

		_, err := s.CreateCompanyMembership(ctx, "company-1", "user-1", "admin")
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("INSERT INTO company_memberships").
			WithArgs(sqlmock.AnyArg(), "company-1", "ghost", "admin").
			WillReturnError(foreignKeyErr())

		_, err := s.CreateCompanyMembership(ctx, "company-1", "ghost", "admin")
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetCompanyMembership(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		s, mock := newTestStorage(t)

		rows := sqlmock.NewRows([]string{"id", "company_id", "user_id", "role", "created_at"}).
			AddRow("m-1", "company-1", "user-1", "owner", now)
		mock.ExpectQuery("SELECT (.+) FROM company_memberships").
			WithArgs("company-1", "user-1").
			WillReturnRows(rows)

		m, err := s.GetCompanyMembership(ctx, "company-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "owner", m.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not a member", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectQuery("SELECT (.+) FROM company_memberships").
			WithArgs("company-1", "stranger").
			WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "user_id", "role", "created_at"}))

		m, err := s.GetCompanyMembership(ctx, "company-1", "stranger")
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateCompanyMembershipRole(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("UPDATE company_memberships SET role").
			WithArgs("billing", "company-1", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.UpdateCompanyMembershipRole(ctx, "company-1", "user-1", "billing")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not a member", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("UPDATE company_memberships SET role").
			WithArgs("billing", "company-1", "stranger").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.UpdateCompanyMembershipRole(ctx, "company-1", "stranger", "billing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteCompanyMembership(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("DELETE FROM company_memberships").
			WithArgs("company-1", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.DeleteCompanyMembership(ctx, "company-1", "user-1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not a member", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("DELETE FROM company_memberships").
			WithArgs("company-1", "stranger").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.DeleteCompanyMembership(ctx, "company-1", "stranger")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountCompanyOwners(t *testing.T) {
	ctx := context.Background()
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM company_memberships`).
		WithArgs("company-1", "owner").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := s.CountCompanyOwners(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCompanyMemberships(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	s, mock := newTestStorage(t)

	rows := sqlmock.NewRows([]string{"id", "company_id", "user_id", "role", "created_at"}).
		AddRow("m-1", "company-1", "user-1", "owner", now).
		AddRow("m-2", "company-1", "user-2", "member", now)
	mock.ExpectQuery("SELECT (.+) FROM company_memberships").
		WithArgs("company-1").
		WillReturnRows(rows)

	members, err := s.ListCompanyMemberships(ctx, "company-1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "user-1", members[0].UserID)
	assert.Equal(t, "member", members[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWorkspaceMembership(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("INSERT INTO workspace_memberships").
			WithArgs(sqlmock.AnyArg(), "ws-1", "user-1", "writer").
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := s.CreateWorkspaceMembership(ctx, "ws-1", "user-1", "writer")
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate membership", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("INSERT INTO workspace_memberships").
			WithArgs(sqlmock.AnyArg(), "ws-1", "user-1", "writer").
			WillReturnError(duplicateKeyErr())

		_, err := s.CreateWorkspaceMembership(ctx, "ws-1", "user-1", "writer")
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteWorkspaceMembership(t *testing.T) {
	ctx := context.Background()
	s, mock := newTestStorage(t)

	mock.ExpectExec("DELETE FROM workspace_memberships").
		WithArgs("ws-1", "stranger").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteWorkspaceMembership(ctx, "ws-1", "stranger")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
