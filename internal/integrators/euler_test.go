package integrators

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odestep/internal/dynamo"
)

func growth(_, x float64) float64 { return x }

var _ = Describe("Integrate", func() {
	It("seeds the first sample with x0", func() {
		traj, err := Integrate(0.25, 1, 0.1, growth)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj[0]).To(Equal(0.25))
	})

	It("produces floor(horizon/stepsize) samples", func() {
		traj, err := Integrate(0.001, 10, 0.0001, growth)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Len()).To(Equal(100000))
	})

	It("matches x0*(1+h)^i for exponential growth", func() {
		const x0, h = 0.001, 0.0001
		traj, err := Integrate(x0, 10, h, growth)
		Expect(err).NotTo(HaveOccurred())

		for _, i := range []int{0, 1, 2, 10, 1000, 50000, traj.Len() - 1} {
			want := x0 * math.Pow(1+h, float64(i))
			Expect(traj[i]).To(BeNumerically("~", want, want*1e-9), "sample %d", i)
		}
	})

	It("evaluates the derivative at i*stepsize for sample i", func() {
		var times []float64
		_, err := Integrate(0, 0.5, 0.125, func(t, x float64) float64 {
			times = append(times, t)
			return 0
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(times).To(Equal([]float64{0.125, 0.25, 0.375}))
	})

	It("applies one Euler update per sample", func() {
		traj, err := Integrate(1, 0.375, 0.125, func(t, x float64) float64 { return -2 * x })
		Expect(err).NotTo(HaveOccurred())
		Expect(traj).To(Equal(dynamo.Trajectory{1, 0.75, 0.5625}))
	})

	It("returns an empty trajectory when the horizon is shorter than one step", func() {
		traj, err := Integrate(1, 0.05, 0.1, growth)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj).To(BeEmpty())
	})

	DescribeTable("rejects invalid input before allocating",
		func(horizon, stepsize float64, f dynamo.ScalarFunc, want error) {
			traj, err := Integrate(1, horizon, stepsize, f)
			Expect(err).To(MatchError(want))
			Expect(traj).To(BeNil())

			var ierr *dynamo.IntegrationError
			Expect(errors.As(err, &ierr)).To(BeTrue())
			Expect(ierr.Horizon).To(Equal(horizon))
		},
		Entry("negative horizon", -1.0, 0.1, dynamo.ScalarFunc(growth), dynamo.ErrInvalidHorizon),
		Entry("zero step", 10.0, 0.0, dynamo.ScalarFunc(growth), dynamo.ErrInvalidStepSize),
		Entry("negative step", 10.0, -0.5, dynamo.ScalarFunc(growth), dynamo.ErrInvalidStepSize),
		Entry("step too small", 1e18, 1e-10, dynamo.ScalarFunc(growth), dynamo.ErrStepCountOverflow),
		Entry("nil derivative", 10.0, 0.1, nil, dynamo.ErrMissingDerivative),
	)

	It("reports a missing derivative ahead of bad bounds", func() {
		_, err := Integrate(1, -1, 0, nil)
		Expect(err).To(MatchError(dynamo.ErrMissingDerivative))
	})
})

var _ = Describe("makeBuffer", func() {
	It("maps a length-out-of-range panic to ErrAllocation", func() {
		buf, err := makeBuffer(-1, func(n int) []float64 { return make([]float64, n) })
		Expect(err).To(MatchError(dynamo.ErrAllocation))
		Expect(buf).To(BeNil())
	})

	It("re-panics on non-runtime panics", func() {
		Expect(func() {
			_, _ = makeBuffer(1, func(int) []float64 { panic("boom") })
		}).To(PanicWith("boom"))
	})
})
