package category

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Category internals", func() {
	Describe("normalize", func() {
		now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

		It("should fill is_active and created_at", func() {
			resolved := Properties{Name: "test-name"}.normalize(now)

			Expect(resolved.Name).To(Equal("test-name"))
			Expect(resolved.Description).To(BeNil())
			Expect(*resolved.IsActive).To(BeTrue())
			Expect(*resolved.CreatedAt).To(Equal(now))
		})

		It("should prefer supplied values over defaults", func() {
			inactive := false
			createdAt := now.Add(-time.Hour)
			description := ""

			resolved := Properties{
				Name:        "test-name",
				Description: &description,
				IsActive:    &inactive,
				CreatedAt:   &createdAt,
			}.normalize(now)

			Expect(*resolved.IsActive).To(BeFalse())
			Expect(*resolved.CreatedAt).To(Equal(createdAt))
			Expect(resolved.Description).NotTo(BeNil())
			Expect(*resolved.Description).To(BeEmpty())
		})
	})

	Describe("setDescription", func() {
		var c *Category

		BeforeEach(func() {
			description := "test-description"
			c = New(Properties{Name: "test-name", Description: &description}, "")
		})

		It("should replace the description", func() {
			Expect(*c.Description()).To(Equal("test-description"))

			updated := "updated-description"
			c.setDescription(&updated)

			Expect(*c.Description()).To(Equal("updated-description"))
			Expect(*c.Props().Description).To(Equal("updated-description"))
		})

		It("should store nil for a nil description", func() {
			c.setDescription(nil)
			Expect(c.Description()).To(BeNil())
		})

		It("should store nil for an empty description", func() {
			empty := ""
			c.setDescription(&empty)
			Expect(c.Description()).To(BeNil())
		})
	})

	Describe("setActive", func() {
		var c *Category

		BeforeEach(func() {
			description := "test-description"
			c = New(Properties{Name: "test-name", Description: &description}, "")
		})

		It("should store false", func() {
			Expect(c.IsActive()).To(BeTrue())

			inactive := false
			c.setActive(&inactive)

			Expect(c.IsActive()).To(BeFalse())
			Expect(*c.Props().IsActive).To(BeFalse())
		})

		It("should fall back to true for nil", func() {
			inactive := false
			c.setActive(&inactive)

			c.setActive(nil)

			Expect(c.IsActive()).To(BeTrue())
		})
	})
})
