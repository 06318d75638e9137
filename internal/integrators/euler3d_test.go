package integrators

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odestep/internal/dynamo"
)

func identity3(_ float64, x, out []float64) {
	out[0], out[1], out[2] = x[0], x[1], x[2]
}

var _ = Describe("Integrate3D", func() {
	x0 := [3]float64{0.001, -0.5, 2}

	It("seeds group zero with x0", func() {
		traj, err := Integrate3D(x0, 1, 0.125, identity3)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.State(0)).To(Equal(x0))
	})

	It("allocates one lane group per step", func() {
		traj, err := Integrate3D(x0, 10, 0.0001, identity3)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Len()).To(Equal(100000))
		Expect(traj.Lanes()).To(HaveLen(100000))
	})

	It("follows the scalar growth law on every component", func() {
		const h = 0.0001
		traj, err := Integrate3D(x0, 10, h, identity3)
		Expect(err).NotTo(HaveOccurred())

		for k := 0; k < dynamo.Dim3; k++ {
			scalar, err := Integrate(x0[k], 10, h, growth)
			Expect(err).NotTo(HaveOccurred())
			got := traj.Component(k)
			Expect(got).To(HaveLen(scalar.Len()))
			mismatches := 0
			for i := range got {
				if math.Abs(got[i]-scalar[i]) > math.Abs(scalar[i])*1e-12 {
					mismatches++
				}
			}
			Expect(mismatches).To(BeZero(), "component %d", k)

			last := traj.Len() - 1
			want := x0[k] * math.Pow(1+h, float64(last))
			Expect(traj.At(last, k)).To(BeNumerically("~", want, math.Abs(want)*1e-9))
		}
	})

	It("passes three state components and a full lane of output", func() {
		var times []float64
		_, err := Integrate3D(x0, 0.5, 0.125, func(t float64, x, out []float64) {
			Expect(x).To(HaveLen(dynamo.Dim3))
			Expect(out).To(HaveLen(dynamo.LaneWidth))
			times = append(times, t)
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(times).To(Equal([]float64{0.125, 0.25, 0.375}))
	})

	It("keeps the padding slot zero when the derivative leaves it alone", func() {
		traj, err := Integrate3D(x0, 1, 0.125, identity3)
		Expect(err).NotTo(HaveOccurred())
		for _, l := range traj.Lanes() {
			Expect(l[3]).To(BeZero())
		}
	})

	It("carries a written padding slot forward without touching x, y, z", func() {
		dirty := func(t float64, x, out []float64) {
			identity3(t, x, out)
			out[3] = 1
		}
		traj, err := Integrate3D(x0, 1, 0.125, dirty)
		Expect(err).NotTo(HaveOccurred())
		clean, err := Integrate3D(x0, 1, 0.125, identity3)
		Expect(err).NotTo(HaveOccurred())

		lanes := traj.Lanes()
		for i := 1; i < traj.Len(); i++ {
			Expect(lanes[i][3]).To(Equal(lanes[i-1][3] + 0.125))
			Expect(traj.State(i)).To(Equal(clean.State(i)))
		}
	})

	It("scales a stale scratch slot again on every step", func() {
		traj, err := Integrate3D([3]float64{}, 2, 0.5, func(_ float64, _, out []float64) {
			out[0], out[1], out[2] = 0, 0, 0
			if out[3] == 0 {
				out[3] = 4
			}
		})
		Expect(err).NotTo(HaveOccurred())
		lanes := traj.Lanes()
		Expect(lanes[1][3]).To(Equal(2.0))
		Expect(lanes[2][3]).To(Equal(3.0))
		Expect(lanes[3][3]).To(Equal(3.5))
	})

	It("returns an empty trajectory below one step", func() {
		traj, err := Integrate3D(x0, 0.01, 0.1, identity3)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Len()).To(BeZero())
	})

	DescribeTable("rejects invalid input",
		func(horizon, stepsize float64, f dynamo.VectorFunc, want error) {
			traj, err := Integrate3D(x0, horizon, stepsize, f)
			Expect(err).To(MatchError(want))
			Expect(traj).To(BeNil())
		},
		Entry("negative horizon", -1.0, 0.1, dynamo.VectorFunc(identity3), dynamo.ErrInvalidHorizon),
		Entry("zero step", 10.0, 0.0, dynamo.VectorFunc(identity3), dynamo.ErrInvalidStepSize),
		Entry("negative step", 10.0, -0.5, dynamo.VectorFunc(identity3), dynamo.ErrInvalidStepSize),
		Entry("step too small", 1e18, 1e-10, dynamo.VectorFunc(identity3), dynamo.ErrStepCountOverflow),
		Entry("nil derivative", 10.0, 0.1, nil, dynamo.ErrMissingDerivative),
	)
})

var _ = Describe("lane kernels", func() {
	It("scales every slot", func() {
		l := dynamo.Lane{1, 2, 3, 4}
		scaleLane(&l, 0.5)
		Expect(l).To(Equal(dynamo.Lane{0.5, 1, 1.5, 2}))
	})

	It("adds every slot", func() {
		var dst dynamo.Lane
		addLane(&dst, &dynamo.Lane{1, 2, 3, 4}, &dynamo.Lane{10, 20, 30, 40})
		Expect(dst).To(Equal(dynamo.Lane{11, 22, 33, 44}))
	})

	It("matches the generic kernels bit for bit", func() {
		a := dynamo.Lane{0.1, -3.7e-9, 1e300, math.Inf(-1)}
		b := dynamo.Lane{1.0 / 3, 2.5e-320, -1e300, 7}

		got, want := a, a
		scaleLane(&got, 0.0001)
		scaleLaneGeneric(&want, 0.0001)
		Expect(got).To(Equal(want))

		var sum, sumGeneric dynamo.Lane
		addLane(&sum, &a, &b)
		addLaneGeneric(&sumGeneric, &a, &b)
		Expect(sum).To(Equal(sumGeneric))
	})

	It("names the active kernel", func() {
		Expect(LaneKernel()).To(BeElementOf("generic", "avx-f64x4"))
	})
})
