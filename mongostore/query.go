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

// Get returns the decoded key set granted to one subject. An absent
// record is not an error: the subject simply has no keys.
func (s *Store) Get(ctx context.Context, logger lager.Logger, bucket, subject string) ([]string, error) {
	logger = logger.Session("get", lager.Data{
		"bucket": bucket,
	})

	coll := s.db.Collection(s.Naming().Container(bucket))
	filter := lookupFilter(s.Naming(), bucket, []string{aclstore.Encode(subject)})

	var record bson.M
	err := coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{
		"_id":                0,
		aclstore.BucketField: 0,
	})).Decode(&record)

	switch err {
	case nil:
		return recordKeys(record), nil
	case mongo.ErrNoDocuments:
		return []string{}, nil
	default:
		logger.Error(messages.FailedToFindRecord, err)
		return nil, err
	}
}

// Union returns the deduplicated union of the key sets of every
// matching subject.
func (s *Store) Union(ctx context.Context, logger lager.Logger, bucket string, subjects []string) ([]string, error) {
	logger = logger.Session("union", lager.Data{
		"bucket": bucket,
	})

	coll := s.db.Collection(s.Naming().Container(bucket))
	filter := lookupFilter(s.Naming(), bucket, aclstore.EncodeAll(subjects))

	cursor, err := coll.Find(ctx, filter, options.Find().SetProjection(bson.M{
		"_id":                0,
		aclstore.BucketField: 0,
	}))
	if err != nil {
		logger.Error(messages.FailedToFindRecords, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	seen := make(map[string]struct{})
	keys := []string{}
	for cursor.Next(ctx) {
		var record bson.M
		if err := cursor.Decode(&record); err != nil {
			logger.Error(messages.FailedToDecodeRecord, err)
			return nil, err
		}
		for _, key := range recordKeys(record) {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	if err := cursor.Err(); err != nil {
		logger.Error(messages.FailedToFindRecords, err)
		return nil, err
	}

	return keys, nil
}

func lookupFilter(naming aclstore.Naming, bucket string, encodedSubjects []string) bson.M {
	filter := bson.M{}
	if disc := naming.Discriminator(bucket); disc != "" {
		filter[aclstore.BucketField] = disc
	}
	if len(encodedSubjects) == 1 {
		filter[aclstore.SubjectField] = encodedSubjects[0]
	} else {
		filter[aclstore.SubjectField] = bson.M{"$in": encodedSubjects}
	}
	return filter
}

// recordKeys decodes the granted key names out of a stored record,
// dropping the adapter-owned fields and anything unset.
func recordKeys(record bson.M) []string {
	keys := []string{}
	for field, value := range record {
		if field == aclstore.SubjectField || field == aclstore.BucketField || field == "_id" {
			continue
		}
		if truthy(value) {
			keys = append(keys, aclstore.Decode(field))
		}
	}
	return keys
}

func truthy(value interface{}) bool {
	v, ok := value.(bool)
	return !ok || v
}
