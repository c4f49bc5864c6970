// Package mongostore persists bucketed ACL key sets in MongoDB. Each
// record is one document per (bucket, subject): granted keys are
// stored as encoded boolean field names, the encoded subject in the
// "subject" field, and, under single-container addressing, the bucket
// name in the "bucket" discriminator field.
package mongostore

import (
	"code.cloudfoundry.org/aclstore"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	aclstore.Recorder

	db *mongo.Database
}

// NewStore wraps an already-connected database handle. The handle is
// shared by every operation and every in-flight unit of work; the
// store itself holds no mutable state beyond its naming config.
func NewStore(db *mongo.Database, naming aclstore.Naming) *Store {
	return &Store{
		Recorder: aclstore.NewRecorder(naming),
		db:       db,
	}
}
