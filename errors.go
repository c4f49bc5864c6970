package aclstore

var (
	// ErrReservedKey is returned by Add when a caller tries to grant
	// the subject-identity field name as a key.
	ErrReservedKey = NewErrReserved(SubjectField)

	// ErrReservedBucketKey is returned by Add when a caller tries to
	// grant the bucket-discriminator field name as a key.
	ErrReservedBucketKey = NewErrReserved(BucketField)

	ErrKeySetEmpty  = NewErrCannotBeEmpty("key set")
	ErrBucketEmpty  = NewErrCannotBeEmpty("bucket name")
	ErrSubjectEmpty = NewErrCannotBeEmpty("subject")
)
