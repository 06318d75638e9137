package dynamo

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Plan", func() {
	DescribeTable("counts floor(horizon/stepsize) steps",
		func(horizon, stepsize float64, want int) {
			n, err := Plan(horizon, stepsize)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(want))
			Expect(n).To(Equal(int(math.Floor(horizon / stepsize))))
		},
		Entry("demo run", 10.0, 0.0001, 100000),
		Entry("exact multiple", 2.0, 0.5, 4),
		Entry("truncates the remainder", 1.0, 0.3, 3),
		Entry("zero horizon", 0.0, 0.1, 0),
		Entry("horizon below one step", 0.05, 0.1, 0),
		Entry("largest count", float64(MaxSteps), 1.0, MaxSteps),
	)

	DescribeTable("rejects infeasible input",
		func(horizon, stepsize float64, want error) {
			n, err := Plan(horizon, stepsize)
			Expect(err).To(MatchError(want))
			Expect(n).To(BeZero())
		},
		Entry("negative horizon", -1.0, 0.1, ErrInvalidHorizon),
		Entry("NaN horizon", math.NaN(), 0.1, ErrInvalidHorizon),
		Entry("zero step", 10.0, 0.0, ErrInvalidStepSize),
		Entry("negative step", 10.0, -0.5, ErrInvalidStepSize),
		Entry("NaN step", 10.0, math.NaN(), ErrInvalidStepSize),
		Entry("overflow", 1e18, 1e-10, ErrStepCountOverflow),
		Entry("one past the limit", float64(MaxSteps)+1, 1.0, ErrStepCountOverflow),
		Entry("infinite horizon", math.Inf(1), 1.0, ErrStepCountOverflow),
	)

	It("checks the horizon before the step size", func() {
		_, err := Plan(-1, 0)
		Expect(err).To(MatchError(ErrInvalidHorizon))
	})
})

var _ = Describe("IntegrationError", func() {
	It("unwraps to the sentinel and names the inputs", func() {
		err := &IntegrationError{Op: "integrate", Horizon: -1, StepSize: 0.1, Wrapped: ErrInvalidHorizon}
		Expect(err).To(MatchError(ErrInvalidHorizon))
		Expect(err.Error()).To(ContainSubstring("integrate"))
		Expect(err.Error()).To(ContainSubstring("horizon=-1"))
	})
})
