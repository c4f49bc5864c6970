package monitor_test

import (
	. "code.cloudfoundry.org/aclstore/monitor"

	"code.cloudfoundry.org/aclstore/monitor/monitorfakes"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Statter", func() {
	var (
		histogram *ThreadSafeHistogram
		statsd    *monitorfakes.FakeStatter

		logger *lagertest.TestLogger

		statter *Statter
	)

	BeforeEach(func() {
		histogram = NewThreadSafeHistogram(1, 3)
		statsd = new(monitorfakes.FakeStatter)

		logger = lagertest.NewTestLogger("statter")

		statter = &Statter{
			Statter:   statsd,
			Histogram: histogram,
		}
	})

	Describe("SendFailedProbe", func() {
		It("sends a failure for the probe stat", func() {
			statter.SendFailedProbe(logger)

			Expect(statsd.GaugeCallCount()).To(Equal(1))

			metricName, value, rate := statsd.GaugeArgsForCall(0)
			Expect(metricName).To(Equal("aclstore.probe.runs.success"))
			Expect(value).To(Equal(int64(0)))
			Expect(rate).To(Equal(float32(1.0)))
		})
	})

	Describe("SendIncorrectProbe", func() {
		It("sends a failure and an incorrect stat", func() {
			statter.SendIncorrectProbe(logger)

			Expect(statsd.GaugeCallCount()).To(Equal(2))

			metricName, value, rate := statsd.GaugeArgsForCall(0)
			Expect(metricName).To(Equal("aclstore.probe.runs.success"))
			Expect(value).To(Equal(int64(0)))
			Expect(rate).To(Equal(float32(1.0)))

			metricName, value, rate = statsd.GaugeArgsForCall(1)
			Expect(metricName).To(Equal("aclstore.probe.runs.correct"))
			Expect(value).To(Equal(int64(0)))
			Expect(rate).To(Equal(float32(1.0)))
		})
	})

	Describe("SendCorrectProbe", func() {
		It("sends a success and a correct stat", func() {
			statter.SendCorrectProbe(logger)

			Expect(statsd.GaugeCallCount()).To(Equal(2))

			metricName, value, rate := statsd.GaugeArgsForCall(0)
			Expect(metricName).To(Equal("aclstore.probe.runs.success"))
			Expect(value).To(Equal(int64(1)))
			Expect(rate).To(Equal(float32(1.0)))

			metricName, value, rate = statsd.GaugeArgsForCall(1)
			Expect(metricName).To(Equal("aclstore.probe.runs.correct"))
			Expect(value).To(Equal(int64(1)))
			Expect(rate).To(Equal(float32(1.0)))
		})
	})

	Describe("SendStats", func() {
		It("sends the 90th, 99th, 99.9th and max quantile timings", func() {
			statter.RecordProbeDuration(logger, 1)
			statter.RecordProbeDuration(logger, 2)
			statter.RecordProbeDuration(logger, 3)

			statter.SendStats(logger)

			Expect(statsd.GaugeCallCount()).To(Equal(4))

			metricName, _, _ := statsd.GaugeArgsForCall(0)
			Expect(metricName).To(Equal("aclstore.probe.responses.timing.p90"))

			metricName, _, _ = statsd.GaugeArgsForCall(1)
			Expect(metricName).To(Equal("aclstore.probe.responses.timing.p99"))

			metricName, _, _ = statsd.GaugeArgsForCall(2)
			Expect(metricName).To(Equal("aclstore.probe.responses.timing.p999"))

			metricName, value, _ := statsd.GaugeArgsForCall(3)
			Expect(metricName).To(Equal("aclstore.probe.responses.timing.max"))
			Expect(value).To(Equal(int64(3)))
		})
	})
})
