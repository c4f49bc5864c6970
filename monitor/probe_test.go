package monitor_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/aclstore"
	"code.cloudfoundry.org/aclstore/inmemory"
	. "code.cloudfoundry.org/aclstore/monitor"
	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Probe", func() {
	var (
		store *inmemory.Store

		ctx    context.Context
		logger *lagertest.TestLogger

		probe *Probe
	)

	BeforeEach(func() {
		store = inmemory.NewStore(aclstore.Naming{
			Prefix:     "probe_",
			Addressing: aclstore.AddressSingleContainer,
		})

		ctx = context.Background()
		logger = lagertest.NewTestLogger("probe")

		probe = NewProbe(store)
	})

	Describe("#Run", func() {
		It("grants, reads back, and unions the probe key", func() {
			correct, durations, err := probe.Run(ctx, logger, "suffix-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(correct).To(BeTrue())
			Expect(durations).To(HaveLen(3))
		})

		It("isolates concurrent probes by suffix", func() {
			correct, _, err := probe.Run(ctx, logger, "suffix-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(correct).To(BeTrue())

			correct, _, err = probe.Run(ctx, logger, "suffix-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(correct).To(BeTrue())
		})

		It("reports an incorrect run when reads return the wrong keys", func() {
			probe = NewProbe(lyingStore{store})

			correct, _, err := probe.Run(ctx, logger, "suffix-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(correct).To(BeFalse())
		})

		It("fails when a round trip exceeds the max latency", func() {
			probe = NewProbe(slowStore{store, 5 * time.Millisecond}, WithMaxLatency(time.Millisecond))

			_, _, err := probe.Run(ctx, logger, "suffix-1")

			Expect(err).To(MatchError("probe: exceeded max latency"))
		})
	})

	Describe("#Cleanup", func() {
		It("removes the probe's records", func() {
			_, _, err := probe.Run(ctx, logger, "suffix-1")
			Expect(err).NotTo(HaveOccurred())

			Expect(probe.Cleanup(ctx, logger, "suffix-1")).To(Succeed())

			keys, err := store.Get(ctx, logger, ProbeBucket+".suffix-1", ProbeSubject)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(BeEmpty())
		})
	})
})

// lyingStore answers every read with an empty key set.
type lyingStore struct {
	aclstore.Store
}

func (s lyingStore) Get(ctx context.Context, logger lager.Logger, bucket, subject string) ([]string, error) {
	return []string{}, nil
}

// slowStore delays every read.
type slowStore struct {
	aclstore.Store

	delay time.Duration
}

func (s slowStore) Get(ctx context.Context, logger lager.Logger, bucket, subject string) ([]string, error) {
	time.Sleep(s.delay)
	return s.Store.Get(ctx, logger, bucket, subject)
}
