package storebehaviors_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/aclstore"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"
)

// BehavesLikeAnACLStore is the contract suite every store
// implementation must pass, regardless of storage engine or
// addressing.
func BehavesLikeAnACLStore(subjectCreator func() aclstore.Store) {
	var (
		subject aclstore.Store

		ctx        context.Context
		cancelFunc context.CancelFunc
		logger     *lagertest.TestLogger

		bucket   string
		username string
	)

	BeforeEach(func() {
		subject = subjectCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 5*time.Second)
		logger = lagertest.NewTestLogger("aclstore-test")

		bucket = "roles"
		username = uuid.NewV4().String()
	})

	AfterEach(func() {
		cancelFunc()
	})

	grant := func(bucket, subj string, keys ...string) {
		unit := subject.Begin()
		err := subject.Add(unit, bucket, subj, keys...)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		ExpectWithOffset(1, subject.End(ctx, logger, unit)).To(Succeed())
	}

	Describe("#Get", func() {
		It("returns an empty set when the subject was never granted keys", func() {
			keys, err := subject.Get(ctx, logger, bucket, username)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())
		})

		It("returns every key granted by a committed unit", func() {
			grant(bucket, username, "read", "write")

			keys, err := subject.Get(ctx, logger, bucket, username)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("read", "write"))
		})

		It("merges keys granted by separate units", func() {
			grant(bucket, username, "read")
			grant(bucket, username, "write")

			keys, err := subject.Get(ctx, logger, bucket, username)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("read", "write"))
		})

		It("keeps buckets apart", func() {
			grant("roles", username, "admin")
			grant("allows_admin", username, "delete")

			keys, err := subject.Get(ctx, logger, "roles", username)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("admin"))
		})

		It("never exposes the subject-identity field", func() {
			grant(bucket, username, "read")

			keys, err := subject.Get(ctx, logger, bucket, username)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).NotTo(ContainElement(aclstore.SubjectField))
		})

		It("round-trips keys and subjects containing encodable characters", func() {
			dottedSubject := "user.name@example.com"
			grant(bucket, dottedSubject, "some.dotted.key", "100%", "$currency")

			keys, err := subject.Get(ctx, logger, bucket, dottedSubject)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("some.dotted.key", "100%", "$currency"))
		})

		It("treats numeric-looking subjects like any other", func() {
			grant(bucket, "12345", "read")

			keys, err := subject.Get(ctx, logger, bucket, "12345")

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("read"))
		})
	})

	Describe("#Union", func() {
		It("returns the deduplicated union across subjects", func() {
			other := uuid.NewV4().String()
			grant(bucket, username, "read", "write")
			grant(bucket, other, "write", "delete")

			keys, err := subject.Union(ctx, logger, bucket, []string{username, other})

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("read", "write", "delete"))
		})

		It("returns an empty set when no subject matches", func() {
			keys, err := subject.Union(ctx, logger, bucket, []string{username, "nobody"})

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())
		})

		It("skips subjects without records", func() {
			grant(bucket, username, "read")

			keys, err := subject.Union(ctx, logger, bucket, []string{username, "nobody"})

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("read"))
		})
	})

	Describe("#Add", func() {
		It("rejects the reserved subject field name without enqueuing anything", func() {
			unit := subject.Begin()

			err := subject.Add(unit, bucket, username, "read", aclstore.SubjectField)

			Expect(err).To(Equal(aclstore.ErrReservedKey))
			Expect(unit.Len()).To(BeZero())

			Expect(subject.End(ctx, logger, unit)).To(Succeed())

			keys, err := subject.Get(ctx, logger, bucket, username)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())
		})

		It("rejects the bucket discriminator field name without enqueuing anything", func() {
			unit := subject.Begin()

			err := subject.Add(unit, bucket, username, "read", aclstore.BucketField)

			Expect(err).To(Equal(aclstore.ErrReservedBucketKey))
			Expect(unit.Len()).To(BeZero())

			Expect(subject.End(ctx, logger, unit)).To(Succeed())

			keys, err := subject.Get(ctx, logger, bucket, username)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())
		})

		It("performs no I/O before End", func() {
			unit := subject.Begin()
			err := subject.Add(unit, bucket, username, "read")
			Expect(err).NotTo(HaveOccurred())

			keys, err := subject.Get(ctx, logger, bucket, username)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())
		})
	})

	Describe("#Remove", func() {
		It("unsets only the given keys", func() {
			grant(bucket, username, "read", "write")

			unit := subject.Begin()
			subject.Remove(unit, bucket, username, "write")
			Expect(subject.End(ctx, logger, unit)).To(Succeed())

			keys, err := subject.Get(ctx, logger, bucket, username)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("read"))
		})

		It("leaves the subject with an empty set when every key is unset", func() {
			grant(bucket, username, "read")

			unit := subject.Begin()
			subject.Remove(unit, bucket, username, "read")
			Expect(subject.End(ctx, logger, unit)).To(Succeed())

			keys, err := subject.Get(ctx, logger, bucket, username)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())
		})

		It("succeeds against a subject that was never granted keys", func() {
			unit := subject.Begin()
			subject.Remove(unit, bucket, username, "read")

			Expect(subject.End(ctx, logger, unit)).To(Succeed())
		})
	})

	Describe("#Del", func() {
		It("deletes every given subject's record", func() {
			other := uuid.NewV4().String()
			grant(bucket, username, "read")
			grant(bucket, other, "write")

			unit := subject.Begin()
			subject.Del(unit, bucket, username, other)
			Expect(subject.End(ctx, logger, unit)).To(Succeed())

			keys, err := subject.Get(ctx, logger, bucket, username)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())

			keys, err = subject.Get(ctx, logger, bucket, other)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())
		})

		It("leaves other subjects untouched", func() {
			other := uuid.NewV4().String()
			grant(bucket, username, "read")
			grant(bucket, other, "write")

			unit := subject.Begin()
			subject.Del(unit, bucket, username)
			Expect(subject.End(ctx, logger, unit)).To(Succeed())

			keys, err := subject.Get(ctx, logger, bucket, other)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("write"))
		})
	})

	Describe("#Clean", func() {
		It("wipes every bucket", func() {
			grant("roles", username, "admin")
			grant("allows_admin", username, "delete")

			Expect(subject.Clean(ctx, logger)).To(Succeed())

			keys, err := subject.Get(ctx, logger, "roles", username)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())

			keys, err = subject.Get(ctx, logger, "allows_admin", username)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())
		})
	})

	Describe("unit ordering", func() {
		It("applies actions in the order they were appended", func() {
			unit := subject.Begin()
			err := subject.Add(unit, bucket, username, "read", "write")
			Expect(err).NotTo(HaveOccurred())
			subject.Remove(unit, bucket, username, "write")
			err = subject.Add(unit, bucket, username, "delete")
			Expect(err).NotTo(HaveOccurred())

			Expect(subject.End(ctx, logger, unit)).To(Succeed())

			keys, err := subject.Get(ctx, logger, bucket, username)

			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf("read", "delete"))
		})
	})
}
