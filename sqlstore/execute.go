package sqlstore

import (
	"context"

	"code.cloudfoundry.org/aclstore"
	"code.cloudfoundry.org/aclstore/messages"
	"code.cloudfoundry.org/lager"
	"github.com/Masterminds/squirrel"
)

// End applies the unit's actions strictly in append order, stopping at
// the first failure. Each action is its own statement; actions applied
// before a failure stay committed.
func (s *Store) End(ctx context.Context, logger lager.Logger, unit *aclstore.Unit) error {
	logger = logger.Session("end", lager.Data{
		"unit": unit.ID,
	})

	for i, action := range unit.Actions() {
		err := s.apply(ctx, logger, action)
		if err != nil {
			logger.Error(messages.FailedToApplyAction, err, lager.Data{
				"index":     i,
				"op":        action.Op.String(),
				"container": action.Container,
			})
			return err
		}
	}

	return nil
}

func (s *Store) apply(ctx context.Context, logger lager.Logger, action aclstore.PendingAction) error {
	switch action.Op {
	case aclstore.OpUpsertSet:
		return s.setKeys(ctx, logger, action)
	case aclstore.OpUpsertUnset:
		return s.unsetKeys(ctx, logger, action)
	case aclstore.OpRemoveRecords:
		return s.removeRecords(ctx, logger, action)
	case aclstore.OpEnsureIndex:
		return s.ensureContainer(ctx, logger, action.Container)
	default:
		return nil
	}
}

func (s *Store) setKeys(ctx context.Context, logger lager.Logger, action aclstore.PendingAction) error {
	err := s.ensureContainer(ctx, logger, action.Container)
	if err != nil {
		return err
	}

	subject := action.Subjects[0]

	insert := squirrel.Insert(quoteIdentifier(action.Container)).
		Columns(s.grantColumns()...).
		Suffix("ON DUPLICATE KEY UPDATE " + subjectColumn + " = " + subjectColumn)
	for _, key := range action.Keys {
		insert = insert.Values(s.grantValues(action.Discriminator, subject, key)...)
	}

	_, err = insert.RunWith(s.conn).ExecContext(ctx)
	if err != nil {
		logger.Error(messages.FailedToUpsertRecord, err, lager.Data{
			"container": action.Container,
		})
		return err
	}
	return nil
}

func (s *Store) unsetKeys(ctx context.Context, logger lager.Logger, action aclstore.PendingAction) error {
	where := squirrel.Eq{
		subjectColumn: action.Subjects[0],
		keyColumn:     action.Keys,
	}
	if action.Discriminator != "" {
		where[bucketColumn] = action.Discriminator
	}

	_, err := squirrel.Delete(quoteIdentifier(action.Container)).
		Where(where).
		RunWith(s.conn).
		ExecContext(ctx)

	switch {
	case err == nil:
		return nil
	case isNoSuchTable(err):
		// No table means no record: nothing to unset.
		return nil
	default:
		logger.Error(messages.FailedToUnsetKeys, err, lager.Data{
			"container": action.Container,
		})
		return err
	}
}

func (s *Store) removeRecords(ctx context.Context, logger lager.Logger, action aclstore.PendingAction) error {
	where := squirrel.Eq{
		subjectColumn: action.Subjects,
	}
	if action.Discriminator != "" {
		where[bucketColumn] = action.Discriminator
	}

	_, err := squirrel.Delete(quoteIdentifier(action.Container)).
		Where(where).
		RunWith(s.conn).
		ExecContext(ctx)

	switch {
	case err == nil:
		return nil
	case isNoSuchTable(err):
		return nil
	default:
		logger.Error(messages.FailedToRemoveRecords, err, lager.Data{
			"container": action.Container,
		})
		return err
	}
}

// ensureContainer creates the grant table if it does not exist. The
// primary key covers the subject lookup, which is what the enqueued
// ensure-index action asks for.
func (s *Store) ensureContainer(ctx context.Context, logger lager.Logger, container string) error {
	_, err := s.conn.ExecContext(ctx, s.createTableDDL(container))
	if err != nil {
		logger.Error(messages.FailedToEnsureContainer, err, lager.Data{
			"container": container,
		})
		return err
	}
	return nil
}

func (s *Store) createTableDDL(container string) string {
	if s.Naming().Addressing == aclstore.AddressSingleContainer {
		return `CREATE TABLE IF NOT EXISTS ` + quoteIdentifier(container) + ` (
` + bucketColumn + ` VARCHAR(128) NOT NULL,
` + subjectColumn + ` VARCHAR(255) NOT NULL,
` + keyColumn + ` VARCHAR(255) NOT NULL,
PRIMARY KEY (` + bucketColumn + `, ` + subjectColumn + `, ` + keyColumn + `)
)`
	}
	return `CREATE TABLE IF NOT EXISTS ` + quoteIdentifier(container) + ` (
` + subjectColumn + ` VARCHAR(255) NOT NULL,
` + keyColumn + ` VARCHAR(255) NOT NULL,
PRIMARY KEY (` + subjectColumn + `, ` + keyColumn + `)
)`
}

func (s *Store) grantColumns() []string {
	if s.Naming().Addressing == aclstore.AddressSingleContainer {
		return []string{bucketColumn, subjectColumn, keyColumn}
	}
	return []string{subjectColumn, keyColumn}
}

func (s *Store) grantValues(discriminator, subject, key string) []interface{} {
	if s.Naming().Addressing == aclstore.AddressSingleContainer {
		return []interface{}{discriminator, subject, key}
	}
	return []interface{}{subject, key}
}
