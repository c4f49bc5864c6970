package monitor_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/aclstore"
	"code.cloudfoundry.org/aclstore/inmemory"
	. "code.cloudfoundry.org/aclstore/monitor"
	"code.cloudfoundry.org/aclstore/monitor/monitorfakes"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RecordProbeResults", func() {
	var (
		store *inmemory.Store

		statsd  *monitorfakes.FakeStatter
		statter *Statter

		ctx    context.Context
		logger *lagertest.TestLogger
	)

	BeforeEach(func() {
		store = inmemory.NewStore(aclstore.Naming{
			Prefix:     "probe_",
			Addressing: aclstore.AddressSingleContainer,
		})

		statsd = new(monitorfakes.FakeStatter)
		statter = &Statter{
			Statter:   statsd,
			Histogram: NewThreadSafeHistogram(ProbeHistogramWindow, 3),
		}

		ctx = context.Background()
		logger = lagertest.NewTestLogger("run-probe")
	})

	Context("when the probe runs correctly", func() {
		It("sends the correctness gauges and the latency stats", func() {
			RecordProbeResults(ctx, logger, NewProbe(store), statter)

			Expect(statsd.GaugeCallCount()).To(Equal(6))

			metricName, value, _ := statsd.GaugeArgsForCall(0)
			Expect(metricName).To(Equal("aclstore.probe.runs.success"))
			Expect(value).To(Equal(int64(1)))

			metricName, value, _ = statsd.GaugeArgsForCall(1)
			Expect(metricName).To(Equal("aclstore.probe.runs.correct"))
			Expect(value).To(Equal(int64(1)))

			metricName, _, _ = statsd.GaugeArgsForCall(2)
			Expect(metricName).To(Equal("aclstore.probe.responses.timing.p90"))
		})
	})

	Context("when the probe reads back the wrong keys", func() {
		It("sends failure for both the success and correct gauges", func() {
			RecordProbeResults(ctx, logger, NewProbe(lyingStore{store}), statter)

			Expect(statsd.GaugeCallCount()).To(Equal(2))

			metricName, value, _ := statsd.GaugeArgsForCall(0)
			Expect(metricName).To(Equal("aclstore.probe.runs.success"))
			Expect(value).To(Equal(int64(0)))

			metricName, value, _ = statsd.GaugeArgsForCall(1)
			Expect(metricName).To(Equal("aclstore.probe.runs.correct"))
			Expect(value).To(Equal(int64(0)))
		})
	})

	Context("when the probe exceeds the max latency", func() {
		It("sends failure for the success gauge only", func() {
			probe := NewProbe(slowStore{store, 5 * time.Millisecond}, WithMaxLatency(time.Millisecond))

			RecordProbeResults(ctx, logger, probe, statter)

			Expect(statsd.GaugeCallCount()).To(Equal(1))

			metricName, value, _ := statsd.GaugeArgsForCall(0)
			Expect(metricName).To(Equal("aclstore.probe.runs.success"))
			Expect(value).To(Equal(int64(0)))
		})
	})
})

var _ = Describe("RunProbeWithFrequency", func() {
	It("probes on the given cadence until the context is canceled", func() {
		store := inmemory.NewStore(aclstore.Naming{
			Prefix:     "probe_",
			Addressing: aclstore.AddressSingleContainer,
		})
		statsd := new(monitorfakes.FakeStatter)
		statter := &Statter{
			Statter:   statsd,
			Histogram: NewThreadSafeHistogram(ProbeHistogramWindow, 3),
		}
		logger := lagertest.NewTestLogger("run-probe")

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			RunProbeWithFrequency(ctx, logger, NewProbe(store), statter, 5*time.Millisecond)
		}()

		Eventually(statsd.GaugeCallCount).Should(BeNumerically(">", 0))

		cancel()
		Eventually(done).Should(BeClosed())
	})
})
