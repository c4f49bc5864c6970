// Package sqlstore persists bucketed ACL key sets in MySQL. Each
// grant is one row: (subject, key_name) in a table per bucket, or
// (bucket, subject, key_name) in one shared table under
// single-container addressing. The observable contract is identical
// to the document-backed store.
package sqlstore

import (
	"database/sql"
	"strings"

	"code.cloudfoundry.org/aclstore"
	"github.com/go-sql-driver/mysql"
)

const (
	MySQLErrorCodeNoSuchTable = 1146

	subjectColumn = aclstore.SubjectField
	bucketColumn  = aclstore.BucketField
	keyColumn     = "key_name"
)

type Store struct {
	aclstore.Recorder

	conn *sql.DB
}

// NewStore wraps an open connection pool. Grant tables are created
// lazily the first time a unit touches them.
func NewStore(conn *sql.DB, naming aclstore.Naming) *Store {
	return &Store{
		Recorder: aclstore.NewRecorder(naming),
		conn:     conn,
	}
}

// quoteIdentifier backtick-quotes a container name so bucket names
// survive as table names.
func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func isNoSuchTable(err error) bool {
	e, ok := err.(*mysql.MySQLError)
	return ok && e.Number == MySQLErrorCodeNoSuchTable
}
