package wirebox_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wirebox/wirebox"
)

var _ = Describe("Stats", func() {
	var c *wirebox.Container

	BeforeEach(func() {
		c = wirebox.New()
	})

	It("should count registrations per lifetime", func() {
		Expect(c.RegisterSingleton(nameServiceConstructor)).Should(Succeed())
		Expect(c.RegisterTransient(configConstructor)).Should(Succeed())
		Expect(c.RegisterTransient(databaseConstructor)).Should(Succeed())
		Expect(c.RegisterScoped(cacheConstructor)).Should(Succeed())

		stats := c.Stats()

		Expect(stats.TotalRegistrations).To(Equal(int64(4)))
		Expect(stats.SingletonRegistrations).To(Equal(int64(1)))
		Expect(stats.TransientRegistrations).To(Equal(int64(2)))
		Expect(stats.ScopedRegistrations).To(Equal(int64(1)))
	})

	It("should count resolutions in total and per service", func() {
		Expect(c.RegisterTransient(configConstructor)).Should(Succeed())
		Expect(c.RegisterTransient(databaseConstructor)).Should(Succeed())

		_, err := wirebox.Get[*Database](c)
		Expect(err).ShouldNot(HaveOccurred())

		_, err = wirebox.Get[*Config](c)
		Expect(err).ShouldNot(HaveOccurred())

		stats := c.Stats()

		Expect(stats.TotalResolutions).To(Equal(int64(3)))
		Expect(stats.ResolutionsByService).To(Equal(map[string]int64{
			wirebox.ServiceName[*Config]():   2,
			wirebox.ServiceName[*Database](): 1,
		}))
	})

	It("should count a Singleton instance as created exactly once", func() {
		Expect(c.RegisterSingleton(nameServiceConstructor)).Should(Succeed())

		for i := 0; i < 3; i++ {
			_, err := wirebox.Get[NameService](c)
			Expect(err).ShouldNot(HaveOccurred())
		}

		stats := c.Stats()

		Expect(stats.SingletonInstancesCreated).To(Equal(int64(1)))
		Expect(stats.TotalResolutions).To(Equal(int64(3)))
		Expect(stats.ResolutionsByService).To(
			HaveKeyWithValue(wirebox.ServiceName[NameService](), int64(3)),
		)
	})

	It("should count a registered instance as created without any resolution", func() {
		Expect(c.RegisterInstance(&Config{DSN: "postgres://localhost:5432/app"})).Should(Succeed())

		stats := c.Stats()

		Expect(stats.SingletonInstancesCreated).To(Equal(int64(1)))
		Expect(stats.TotalResolutions).To(Equal(int64(0)))
		Expect(stats.ResolutionsByService).To(
			HaveKeyWithValue(wirebox.ServiceName[*Config](), int64(0)),
		)
	})

	It("should count resolutions made through Scopes", func() {
		Expect(c.RegisterScoped(cacheConstructor)).Should(Succeed())

		err := c.WithScope(func(s *wirebox.Scope) error {
			for i := 0; i < 2; i++ {
				if _, err := wirebox.Get[*Cache](s); err != nil {
					return err
				}
			}

			return nil
		})
		Expect(err).ShouldNot(HaveOccurred())

		stats := c.Stats()

		Expect(stats.TotalResolutions).To(Equal(int64(2)))
		Expect(stats.ResolutionsByService).To(
			HaveKeyWithValue(wirebox.ServiceName[*Cache](), int64(2)),
		)
	})

	It("should not count failed resolutions", func() {
		Expect(c.RegisterTransient(configConstructor)).Should(Succeed())

		_, err := wirebox.Get[*Database](c)
		Expect(err).Should(HaveOccurred())

		stats := c.Stats()

		Expect(stats.TotalResolutions).To(Equal(int64(0)))
	})

	It("should hand out snapshots detached from the live counters", func() {
		Expect(c.RegisterSingleton(nameServiceConstructor)).Should(Succeed())

		_, err := wirebox.Get[NameService](c)
		Expect(err).ShouldNot(HaveOccurred())

		before := c.Stats()
		before.ResolutionsByService[wirebox.ServiceName[NameService]()] = 42
		before.TotalResolutions = 42

		after := c.Stats()

		Expect(after.TotalResolutions).To(Equal(int64(1)))
		Expect(after.ResolutionsByService).To(
			HaveKeyWithValue(wirebox.ServiceName[NameService](), int64(1)),
		)
	})
})
