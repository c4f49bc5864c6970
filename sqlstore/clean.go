package sqlstore

import (
	"context"
	"strings"
	"sync"

	"code.cloudfoundry.org/aclstore/messages"
	"code.cloudfoundry.org/lager"
	"github.com/Masterminds/squirrel"
)

// Clean enumerates the grant tables carrying the configured prefix and
// drops each. Drops run concurrently and individual failures are
// swallowed; only enumeration failure is reported.
func (s *Store) Clean(ctx context.Context, logger lager.Logger) error {
	logger = logger.Session("clean")

	rows, err := squirrel.Select("table_name").
		From("information_schema.tables").
		Where(squirrel.Expr("table_schema = DATABASE()")).
		RunWith(s.conn).
		QueryContext(ctx)
	if err != nil {
		logger.Error(messages.FailedToListContainers, err)
		return err
	}
	defer rows.Close()

	var containers []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			logger.Error(messages.FailedToListContainers, err)
			return err
		}
		if strings.HasPrefix(name, s.Naming().Prefix) {
			containers = append(containers, name)
		}
	}
	if err := rows.Err(); err != nil {
		logger.Error(messages.FailedToListContainers, err)
		return err
	}

	var wg sync.WaitGroup
	for _, name := range containers {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			_, err := s.conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdentifier(name))
			if err != nil {
				logger.Debug(messages.FailedToDropContainer, lager.Data{
					"container": name,
					"error":     err.Error(),
				})
				return
			}
			logger.Debug(messages.DroppedContainer, lager.Data{
				"container": name,
			})
		}(name)
	}
	wg.Wait()

	return nil
}
