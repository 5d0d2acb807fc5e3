package meanfield_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/latgas/internal/meanfield"
)

var _ = Describe("Sweep", func() {
	cfg := meanfield.DefaultScanConfig()

	It("emits exactly one row per cell in a single-phase window", func() {
		grid := meanfield.GridSpec{
			TempMin: 0.5, TempMax: 2.0, TempSteps: 10,
			MuMin: 0, MuMax: 0, MuSteps: 1,
		}
		points, err := meanfield.Sweep(grid, 0.5, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(10))

		for i, pt := range points {
			Expect(pt.ChemPotential).To(Equal(0.0))
			Expect(pt.Density).To(BeNumerically(">", 0))
			Expect(pt.Density).To(BeNumerically("<", 1))
			if i > 0 {
				Expect(pt.Temperature).To(BeNumerically(">", points[i-1].Temperature))
			}
		}
		Expect(points[0].Temperature).To(Equal(0.5))
	})

	It("orders rows by temperature first, chemical potential second", func() {
		grid := meanfield.GridSpec{
			TempMin: 1.0, TempMax: 2.0, TempSteps: 2,
			MuMin: -1.0, MuMax: 0.5, MuSteps: 3,
		}
		points, err := meanfield.Sweep(grid, 0.5, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(6))

		for i := 1; i < len(points); i++ {
			prev, cur := points[i-1], points[i]
			Expect(cur.Temperature).To(BeNumerically(">=", prev.Temperature))
			if cur.Temperature == prev.Temperature {
				Expect(cur.ChemPotential).To(BeNumerically(">", prev.ChemPotential))
			}
		}
	})

	It("lists coexisting densities of one cell in ascending order", func() {
		grid := meanfield.GridSpec{
			TempMin: 0.2, TempMax: 0.4, TempSteps: 1,
			MuMin: -1.0, MuMax: -1.0, MuSteps: 1,
		}
		points, err := meanfield.Sweep(grid, 0.5, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(3))
		Expect(points[0].Density).To(BeNumerically("<", points[1].Density))
		Expect(points[1].Density).To(BeNumerically("<", points[2].Density))
	})

	It("skips cells where the scan brackets nothing", func() {
		grid := meanfield.GridSpec{
			TempMin: 0.2, TempMax: 0.4, TempSteps: 1,
			MuMin: -2.0, MuMax: -2.0, MuSteps: 1,
		}
		points, err := meanfield.Sweep(grid, 0.5, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(BeEmpty())
	})

	It("produces identical output for serial and parallel runs", func() {
		grid := meanfield.GridSpec{
			TempMin: 0.2, TempMax: 0.6, TempSteps: 4,
			MuMin: -2.0, MuMax: 0, MuSteps: 4,
		}
		serial := cfg
		serial.Workers = 1
		parallel := cfg
		parallel.Workers = 4

		a, err := meanfield.Sweep(grid, 0.5, serial)
		Expect(err).NotTo(HaveOccurred())
		b, err := meanfield.Sweep(grid, 0.5, parallel)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(a))
	})

	It("rejects invalid grids", func() {
		_, err := meanfield.Sweep(meanfield.GridSpec{TempMin: 0.5, TempMax: 1, TempSteps: 0, MuSteps: 1}, 0.5, cfg)
		Expect(err).To(MatchError(meanfield.ErrGrid))

		_, err = meanfield.Sweep(meanfield.GridSpec{TempMin: -0.5, TempMax: 1, TempSteps: 2, MuSteps: 1}, 0.5, cfg)
		Expect(err).To(MatchError(meanfield.ErrGrid))

		_, err = meanfield.Sweep(meanfield.GridSpec{TempMin: 1, TempMax: 0.5, TempSteps: 2, MuSteps: 1}, 0.5, cfg)
		Expect(err).To(MatchError(meanfield.ErrGrid))
	})
})

var _ = Describe("Diagram", func() {
	cfg := meanfield.DefaultScanConfig()

	It("stores the selected equilibrium per cell and NaN where there is none", func() {
		grid := meanfield.GridSpec{
			TempMin: 0.25, TempMax: 0.75, TempSteps: 2,
			MuMin: -2.0, MuMax: -1.0, MuSteps: 2,
		}
		d, err := meanfield.Diagram(grid, 0.5, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Temps).To(HaveLen(2))
		Expect(d.Mus).To(HaveLen(2))
		Expect(d.Density).To(HaveLen(2))

		Expect(math.IsNaN(d.Density[0][0])).To(BeTrue())

		rho, ok := meanfield.Equilibrium(d.Temps[1], d.Mus[1], 0.5, cfg)
		Expect(ok).To(BeTrue())
		Expect(d.Density[1][1]).To(Equal(rho))
	})
})
