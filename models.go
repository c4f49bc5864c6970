package aclstore

// SubjectField is the record field holding the encoded subject
// identifier. It is reserved: it can never be granted as a key.
const SubjectField = "subject"

// BucketField is the discriminator field distinguishing buckets that
// share a single container. It is reserved like SubjectField: a key
// stored under this field name would shadow the discriminator.
const BucketField = "bucket"

// SharedContainer is the container all buckets share under
// AddressSingleContainer.
const SharedContainer = "resources"

type Addressing int

const (
	// AddressPerBucket backs each bucket with its own container.
	AddressPerBucket Addressing = iota

	// AddressSingleContainer backs every bucket with one shared
	// container, discriminated by the BucketField on each record.
	AddressSingleContainer
)

// Naming resolves logical buckets onto physical containers. It is
// configured once at construction and never mutated.
type Naming struct {
	Prefix     string
	Addressing Addressing
}

// Container returns the physical container backing a bucket.
func (n Naming) Container(bucket string) string {
	if n.Addressing == AddressSingleContainer {
		return n.Prefix + SharedContainer
	}
	return n.Prefix + bucket
}

// Discriminator returns the value records must carry in BucketField to
// belong to the bucket, or "" when the container is already
// bucket-scoped.
func (n Naming) Discriminator(bucket string) string {
	if n.Addressing == AddressSingleContainer {
		return bucket
	}
	return ""
}

// IndexFields returns the fields an Add-enqueued index must cover so
// that subject lookups stay cheap in either addressing.
func (n Naming) IndexFields() []string {
	if n.Addressing == AddressSingleContainer {
		return []string{BucketField, SubjectField}
	}
	return []string{SubjectField}
}
