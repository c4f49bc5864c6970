package mongostore

import (
	"context"
	"strings"
	"sync"

	"code.cloudfoundry.org/aclstore/messages"
	"code.cloudfoundry.org/lager"
	"go.mongodb.org/mongo-driver/bson"
)

// Clean drops every container carrying the configured prefix. The
// drops run concurrently and individual failures are swallowed (the
// wipe is best-effort); only enumeration failure is reported.
func (s *Store) Clean(ctx context.Context, logger lager.Logger) error {
	logger = logger.Session("clean")

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		logger.Error(messages.FailedToListContainers, err)
		return err
	}

	var wg sync.WaitGroup
	for _, name := range names {
		if !strings.HasPrefix(name, s.Naming().Prefix) {
			continue
		}

		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			err := s.db.Collection(name).Drop(ctx)
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
