package meanfield_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/latgas/internal/meanfield"
)

var _ = Describe("FreeEnergy", func() {
	It("matches the closed form at the symmetric point", func() {
		f, err := meanfield.FreeEnergy(0.5, 1.0, 0.0, 1.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(BeNumerically("~", 1.1931471805599454, 1e-3))
	})

	It("rejects densities outside the unit interval", func() {
		_, err := meanfield.FreeEnergy(-0.1, 1.0, 0.0, 0.5)
		Expect(err).To(MatchError(meanfield.ErrDomain))

		_, err = meanfield.FreeEnergy(1.1, 1.0, 0.0, 0.5)
		Expect(err).To(MatchError(meanfield.ErrDomain))
	})

	It("rejects non-positive temperatures", func() {
		_, err := meanfield.FreeEnergy(0.5, 0, -1.0, 0.5)
		Expect(err).To(MatchError(meanfield.ErrTemperature))

		_, err = meanfield.FreeEnergy(0.5, -1.0, -1.0, 0.5)
		Expect(err).To(MatchError(meanfield.ErrTemperature))
	})

	It("stays continuous at the boundaries", func() {
		f0, err := meanfield.FreeEnergy(0, 0.7, -1.0, 0.5)
		Expect(err).NotTo(HaveOccurred())
		fEps, err := meanfield.FreeEnergy(1e-9, 0.7, -1.0, 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(fEps).To(BeNumerically("~", f0, 1e-6))

		f1, err := meanfield.FreeEnergy(1, 0.7, -1.0, 0.5)
		Expect(err).NotTo(HaveOccurred())
		fNear, err := meanfield.FreeEnergy(1-1e-9, 0.7, -1.0, 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(fNear).To(BeNumerically("~", f1, 1e-6))
	})
})

var _ = Describe("StationaryDensities", func() {
	cfg := meanfield.DefaultScanConfig()

	It("finds the single symmetric root above the critical temperature", func() {
		roots := meanfield.StationaryDensities(1.0, -1.0, 0.5, cfg)
		Expect(roots).To(HaveLen(1))
		Expect(roots[0]).To(BeNumerically("~", 0.5, 1e-6))
	})

	It("finds three roots on the coexistence line below the critical temperature", func() {
		roots := meanfield.StationaryDensities(0.3, -1.0, 0.5, cfg)
		Expect(roots).To(HaveLen(3))
		Expect(roots[0]).To(BeNumerically("<", roots[1]))
		Expect(roots[1]).To(BeNumerically("<", roots[2]))
		Expect(roots[1]).To(BeNumerically("~", 0.5, 1e-6))
		Expect(roots[0] + roots[2]).To(BeNumerically("~", 1.0, 1e-6))
	})

	It("refines every root until the slope vanishes", func() {
		for _, root := range meanfield.StationaryDensities(0.3, -1.0, 0.5, cfg) {
			Expect(math.Abs(meanfield.Slope(root, 0.3, -1.0, 0.5))).To(BeNumerically("<", 1e-6))
		}
	})

	It("returns nothing when the scan cannot bracket a root", func() {
		Expect(meanfield.StationaryDensities(0.01, -1000, 0.5, cfg)).To(BeEmpty())
	})

	It("returns nothing for non-positive temperatures", func() {
		Expect(meanfield.StationaryDensities(0, -1.0, 0.5, cfg)).To(BeEmpty())
	})
})

var _ = Describe("Equilibrium", func() {
	cfg := meanfield.DefaultScanConfig()

	It("selects the dense branch when the chemical potential favors it", func() {
		rho, ok := meanfield.Equilibrium(0.3, -0.98, 0.5, cfg)
		Expect(ok).To(BeTrue())
		Expect(rho).To(BeNumerically(">", 0.9))
	})

	It("selects the dilute branch when the chemical potential opposes it", func() {
		rho, ok := meanfield.Equilibrium(0.3, -1.02, 0.5, cfg)
		Expect(ok).To(BeTrue())
		Expect(rho).To(BeNumerically("<", 0.1))
	})

	It("never selects the unstable middle root on the coexistence line", func() {
		rho, ok := meanfield.Equilibrium(0.3, -1.0, 0.5, cfg)
		Expect(ok).To(BeTrue())
		Expect(math.Abs(rho - 0.5)).To(BeNumerically(">", 0.4))
	})

	It("keeps the lower branch when the two extrema tie at coexistence", func() {
		// At µ = -2J the functional is symmetric, f(ρ) = f(1-ρ), so the
		// dilute and dense extrema tie in exact arithmetic and only
		// rounding noise separates the bisected roots.
		roots := meanfield.StationaryDensities(0.3, -1.0, 0.5, cfg)
		Expect(roots).To(HaveLen(3))
		fLo, err := meanfield.FreeEnergy(roots[0], 0.3, -1.0, 0.5)
		Expect(err).NotTo(HaveOccurred())
		fHi, err := meanfield.FreeEnergy(roots[2], 0.3, -1.0, 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(fHi).To(BeNumerically("~", fLo, 1e-9))

		rho, ok := meanfield.Equilibrium(0.3, -1.0, 0.5, cfg)
		Expect(ok).To(BeTrue())
		Expect(rho).To(BeNumerically("~", roots[0], 1e-12))
		Expect(rho).To(BeNumerically("<", 0.1))
	})

	It("reports no equilibrium when the scan is empty", func() {
		_, ok := meanfield.Equilibrium(0.01, -1000, 0.5, cfg)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Curve", func() {
	It("samples both boundaries inclusively", func() {
		rhos, f, err := meanfield.Curve(0.3, -1.0, 0.5, 200)
		Expect(err).NotTo(HaveOccurred())
		Expect(rhos).To(HaveLen(201))
		Expect(f).To(HaveLen(201))
		Expect(rhos[0]).To(Equal(0.0))
		Expect(rhos[200]).To(Equal(1.0))
		for _, v := range f {
			Expect(math.IsInf(v, 0) || math.IsNaN(v)).To(BeFalse())
		}
	})

	It("rejects non-positive temperatures", func() {
		_, _, err := meanfield.Curve(0, -1.0, 0.5, 100)
		Expect(err).To(MatchError(meanfield.ErrTemperature))
	})
})
