// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (s *Storage) CreateAuditRecord(ctx context.Context, companyID, actorID, action, detail string) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAuditRecord")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate audit ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("audit_records").
		Columns("id", "company_id", "actor_id", "action", "detail").
		Values(id.String(), companyID, actorID, action, detail).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}

	return nil
}
