package aclstore_test

import (
	. "code.cloudfoundry.org/aclstore"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Naming", func() {
	Describe("with a container per bucket", func() {
		naming := Naming{Prefix: "acl_", Addressing: AddressPerBucket}

		It("prefixes the bucket name", func() {
			Expect(naming.Container("roles")).To(Equal("acl_roles"))
		})

		It("needs no discriminator", func() {
			Expect(naming.Discriminator("roles")).To(BeEmpty())
		})

		It("indexes the subject field only", func() {
			Expect(naming.IndexFields()).To(Equal([]string{SubjectField}))
		})
	})

	Describe("with a single shared container", func() {
		naming := Naming{Prefix: "acl_", Addressing: AddressSingleContainer}

		It("resolves every bucket to the shared container", func() {
			Expect(naming.Container("roles")).To(Equal("acl_resources"))
			Expect(naming.Container("allows_admin")).To(Equal("acl_resources"))
		})

		It("discriminates by bucket name", func() {
			Expect(naming.Discriminator("roles")).To(Equal("roles"))
		})

		It("indexes the discriminator and subject fields", func() {
			Expect(naming.IndexFields()).To(Equal([]string{BucketField, SubjectField}))
		})
	})
})

var _ = Describe("Recorder", func() {
	var (
		recorder Recorder
		unit     *Unit
	)

	BeforeEach(func() {
		recorder = NewRecorder(Naming{Prefix: "acl_", Addressing: AddressSingleContainer})
		unit = recorder.Begin()
	})

	Describe("#Begin", func() {
		It("returns an empty unit with a fresh ID", func() {
			Expect(unit.Len()).To(BeZero())
			Expect(unit.ID).NotTo(BeEmpty())
			Expect(recorder.Begin().ID).NotTo(Equal(unit.ID))
		})
	})

	Describe("#Add", func() {
		It("enqueues an upsert-set followed by an ensure-index", func() {
			err := recorder.Add(unit, "roles", "alice", "read", "write")

			Expect(err).NotTo(HaveOccurred())
			Expect(unit.Len()).To(Equal(2))

			actions := unit.Actions()
			Expect(actions[0].Op).To(Equal(OpUpsertSet))
			Expect(actions[0].Container).To(Equal("acl_resources"))
			Expect(actions[0].Discriminator).To(Equal("roles"))
			Expect(actions[0].Subjects).To(Equal([]string{"alice"}))
			Expect(actions[0].Keys).To(Equal([]string{"read", "write"}))

			Expect(actions[1].Op).To(Equal(OpEnsureIndex))
			Expect(actions[1].Container).To(Equal("acl_resources"))
			Expect(actions[1].Keys).To(Equal([]string{BucketField, SubjectField}))
		})

		It("encodes subjects and keys before they reach an action", func() {
			err := recorder.Add(unit, "roles", "user.name", "a.b")

			Expect(err).NotTo(HaveOccurred())

			action := unit.Actions()[0]
			Expect(action.Subjects).To(Equal([]string{"user%2Ename"}))
			Expect(action.Keys).To(Equal([]string{"a%2Eb"}))
		})

		It("rejects the reserved subject field name before enqueuing", func() {
			err := recorder.Add(unit, "roles", "alice", "read", SubjectField)

			Expect(err).To(Equal(ErrReservedKey))
			Expect(unit.Len()).To(BeZero())
		})

		It("rejects the reserved bucket field name before enqueuing", func() {
			err := recorder.Add(unit, "roles", "alice", "read", BucketField)

			Expect(err).To(Equal(ErrReservedBucketKey))
			Expect(unit.Len()).To(BeZero())
		})

		It("rejects an empty key set", func() {
			err := recorder.Add(unit, "roles", "alice")

			Expect(err).To(Equal(ErrKeySetEmpty))
			Expect(unit.Len()).To(BeZero())
		})

		It("rejects an empty bucket or subject", func() {
			Expect(recorder.Add(unit, "", "alice", "read")).To(Equal(ErrBucketEmpty))
			Expect(recorder.Add(unit, "roles", "", "read")).To(Equal(ErrSubjectEmpty))
			Expect(unit.Len()).To(BeZero())
		})
	})

	Describe("#Del", func() {
		It("enqueues one remove-records action covering every subject", func() {
			recorder.Del(unit, "roles", "alice", "bob")

			Expect(unit.Len()).To(Equal(1))

			action := unit.Actions()[0]
			Expect(action.Op).To(Equal(OpRemoveRecords))
			Expect(action.Discriminator).To(Equal("roles"))
			Expect(action.Subjects).To(Equal([]string{"alice", "bob"}))
		})

		It("enqueues nothing for an empty subject list", func() {
			recorder.Del(unit, "roles")

			Expect(unit.Len()).To(BeZero())
		})

		It("omits the discriminator when containers are bucket-scoped", func() {
			perBucket := NewRecorder(Naming{Prefix: "acl_", Addressing: AddressPerBucket})

			perBucket.Del(unit, "roles", "alice", "bob")

			action := unit.Actions()[0]
			Expect(action.Container).To(Equal("acl_roles"))
			Expect(action.Discriminator).To(BeEmpty())
			Expect(action.Subjects).To(Equal([]string{"alice", "bob"}))
		})
	})

	Describe("#Remove", func() {
		It("enqueues an upsert-unset action", func() {
			recorder.Remove(unit, "roles", "alice", "read")

			Expect(unit.Len()).To(Equal(1))

			action := unit.Actions()[0]
			Expect(action.Op).To(Equal(OpUpsertUnset))
			Expect(action.Subjects).To(Equal([]string{"alice"}))
			Expect(action.Keys).To(Equal([]string{"read"}))
		})
	})

	It("preserves append order across mixed operations", func() {
		Expect(recorder.Add(unit, "roles", "alice", "read")).To(Succeed())
		recorder.Remove(unit, "roles", "alice", "read")
		recorder.Del(unit, "roles", "bob")

		ops := []Op{}
		for _, action := range unit.Actions() {
			ops = append(ops, action.Op)
		}
		Expect(ops).To(Equal([]Op{OpUpsertSet, OpEnsureIndex, OpUpsertUnset, OpRemoveRecords}))
	})
})
