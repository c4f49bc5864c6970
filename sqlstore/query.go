package sqlstore

import (
	"context"

	"code.cloudfoundry.org/aclstore"
	"code.cloudfoundry.org/aclstore/messages"
	"code.cloudfoundry.org/lager"
	"github.com/Masterminds/squirrel"
)

// Get returns the decoded key set granted to one subject. A missing
// table or row is not an error: the subject has no keys.
func (s *Store) Get(ctx context.Context, logger lager.Logger, bucket, subject string) ([]string, error) {
	logger = logger.Session("get", lager.Data{
		"bucket": bucket,
	})

	return s.selectKeys(ctx, logger, bucket, []string{aclstore.Encode(subject)})
}

// Union returns the deduplicated union of the key sets of every
// matching subject.
func (s *Store) Union(ctx context.Context, logger lager.Logger, bucket string, subjects []string) ([]string, error) {
	logger = logger.Session("union", lager.Data{
		"bucket": bucket,
	})

	return s.selectKeys(ctx, logger, bucket, aclstore.EncodeAll(subjects))
}

func (s *Store) selectKeys(ctx context.Context, logger lager.Logger, bucket string, encodedSubjects []string) ([]string, error) {
	where := squirrel.Eq{
		subjectColumn: encodedSubjects,
	}
	if disc := s.Naming().Discriminator(bucket); disc != "" {
		where[bucketColumn] = disc
	}

	rows, err := squirrel.Select(keyColumn).
		Options("DISTINCT").
		From(quoteIdentifier(s.Naming().Container(bucket))).
		Where(where).
		RunWith(s.conn).
		QueryContext(ctx)

	switch {
	case err == nil:
	case isNoSuchTable(err):
		return []string{}, nil
	default:
		logger.Error(messages.FailedToFindRecords, err)
		return nil, err
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			logger.Error(messages.FailedToDecodeRecord, err)
			return nil, err
		}
		keys = append(keys, aclstore.Decode(key))
	}
	if err := rows.Err(); err != nil {
		logger.Error(messages.FailedToFindRecords, err)
		return nil, err
	}

	return keys, nil
}
