package mongostore

import (
	"context"

	"code.cloudfoundry.org/aclstore"
	"code.cloudfoundry.org/aclstore/messages"
	"code.cloudfoundry.org/lager"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// End applies the unit's actions strictly in append order, one at a
// time, stopping at the first failure. Already-applied actions stay
// committed; MongoDB offers no multi-document rollback here.
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
	coll := s.db.Collection(action.Container)

	switch action.Op {
	case aclstore.OpUpsertSet:
		return upsert(ctx, logger, coll, action, setDocument(action.Keys))
	case aclstore.OpUpsertUnset:
		return upsert(ctx, logger, coll, action, unsetDocument(action.Keys))
	case aclstore.OpRemoveRecords:
		return removeRecords(ctx, logger, coll, action)
	case aclstore.OpEnsureIndex:
		return ensureIndex(ctx, logger, coll, action)
	default:
		return nil
	}
}

func upsert(ctx context.Context, logger lager.Logger, coll *mongo.Collection, action aclstore.PendingAction, update bson.M) error {
	// The upsert filter's equality fields (subject, discriminator)
	// become part of any inserted document, so the update document
	// only carries the key fields.
	_, err := coll.UpdateOne(ctx, recordFilter(action), update, options.Update().SetUpsert(true))
	if err != nil {
		logger.Error(messages.FailedToUpsertRecord, err, lager.Data{
			"container": action.Container,
		})
		return err
	}
	return nil
}

func removeRecords(ctx context.Context, logger lager.Logger, coll *mongo.Collection, action aclstore.PendingAction) error {
	_, err := coll.DeleteMany(ctx, recordFilter(action))
	if err != nil {
		logger.Error(messages.FailedToRemoveRecords, err, lager.Data{
			"container": action.Container,
		})
		return err
	}
	return nil
}

func ensureIndex(ctx context.Context, logger lager.Logger, coll *mongo.Collection, action aclstore.PendingAction) error {
	keys := bson.D{}
	for _, field := range action.Keys {
		keys = append(keys, bson.E{Key: field, Value: 1})
	}

	// CreateOne is idempotent for an identical index spec, so every
	// Add can safely enqueue it.
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys})
	if err != nil {
		logger.Error(messages.FailedToEnsureIndex, err, lager.Data{
			"container": action.Container,
		})
		return err
	}
	return nil
}

// recordFilter scopes an operation to its records: by discriminator
// when buckets share a container, and by one subject (equality) or
// many ($in) otherwise.
func recordFilter(action aclstore.PendingAction) bson.M {
	filter := bson.M{}
	if action.Discriminator != "" {
		filter[aclstore.BucketField] = action.Discriminator
	}
	switch len(action.Subjects) {
	case 0:
	case 1:
		filter[aclstore.SubjectField] = action.Subjects[0]
	default:
		filter[aclstore.SubjectField] = bson.M{"$in": action.Subjects}
	}
	return filter
}

func setDocument(keys []string) bson.M {
	fields := bson.M{}
	for _, key := range keys {
		fields[key] = true
	}
	return bson.M{"$set": fields}
}

func unsetDocument(keys []string) bson.M {
	fields := bson.M{}
	for _, key := range keys {
		fields[key] = ""
	}
	return bson.M{"$unset": fields}
}
