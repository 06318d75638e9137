package dynamo

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Trajectory3D", func() {
	// Slot j of the buffer holds the value j, so every read reveals its offset.
	numbered := func(n int) *Trajectory3D {
		lanes := make([]Lane, n)
		for i := range lanes {
			for s := 0; s < LaneWidth; s++ {
				lanes[i][s] = float64(LaneWidth*i + s)
			}
		}
		return NewTrajectory3D(lanes)
	}

	It("reads component k of step i from slot 4i+k", func() {
		tr := numbered(5)
		for i := 0; i < tr.Len(); i++ {
			for k := 0; k < Dim3; k++ {
				Expect(tr.At(i, k)).To(Equal(float64(LaneWidth*i + k)))
			}
		}
	})

	It("never exposes the padding slot through State or Component", func() {
		tr := numbered(3)
		Expect(tr.State(2)).To(Equal([Dim3]float64{8, 9, 10}))
		Expect(tr.Component(2)).To(Equal([]float64{2, 6, 10}))
		for i := 0; i < tr.Len(); i++ {
			for _, v := range tr.State(i) {
				Expect(int(v) % LaneWidth).NotTo(Equal(LaneWidth - 1))
			}
		}
	})

	It("panics on the padding index", func() {
		tr := numbered(1)
		Expect(func() { tr.At(0, 3) }).To(Panic())
		Expect(func() { tr.At(0, -1) }).To(Panic())
	})

	It("has zero length when nil", func() {
		var tr *Trajectory3D
		Expect(tr.Len()).To(BeZero())
	})
})

var _ = Describe("Trajectory", func() {
	It("reports its length", func() {
		Expect(Trajectory{1, 2, 3}.Len()).To(Equal(3))
	})
})
