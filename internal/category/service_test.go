package category_test

import (
	"io"
	"log/slog"

	"github.com/frahmantamala/category/internal"
	"github.com/frahmantamala/category/internal/category"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Category Service", func() {
	var (
		logger  *slog.Logger
		service *category.Service
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
		service = category.NewService(logger, internal.CategoryConfig{})
	})

	Describe("Create", func() {
		It("should build a category with defaults", func() {
			c, err := service.Create(category.Properties{Name: "makan"}, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Name()).To(Equal("makan"))
			Expect(c.IsActive()).To(BeTrue())
			Expect(category.IsValidID(c.ID())).To(BeTrue())
		})

		It("should accept a non-UUID id by default", func() {
			c, err := service.Create(category.Properties{Name: "makan"}, "legacy-42")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.ID()).To(Equal("legacy-42"))
		})

		Context("with strict ids", func() {
			BeforeEach(func() {
				service = category.NewService(logger, internal.CategoryConfig{StrictIDs: true, MaxNameLength: 10})
			})

			It("should accept a version 4 id", func() {
				c, err := service.Create(category.Properties{Name: "makan"}, "1824ec3b-49a7-42f9-91d2-f979d45f5540")
				Expect(err).NotTo(HaveOccurred())
				Expect(c.ID()).To(Equal("1824ec3b-49a7-42f9-91d2-f979d45f5540"))
			})

			It("should still generate an id when none is given", func() {
				c, err := service.Create(category.Properties{Name: "makan"}, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(category.IsValidID(c.ID())).To(BeTrue())
			})

			It("should reject a malformed id", func() {
				c, err := service.Create(category.Properties{Name: "makan"}, "legacy-42")
				Expect(c).To(BeNil())
				Expect(err).To(HaveOccurred())

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
				details, ok := appErr.Details.(internal.ValidationErrors)
				Expect(ok).To(BeTrue())
				Expect(details.Errors).To(HaveLen(1))
				Expect(details.Errors[0].Field).To(Equal("id"))
				Expect(details.Errors[0].Code).To(Equal(string(internal.ErrCodeInvalidCategoryID)))
			})

			It("should reject a missing name", func() {
				_, err := service.Create(category.Properties{}, "")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("name is required"))
			})

			It("should reject a name over the configured length", func() {
				_, err := service.Create(category.Properties{Name: "perjalanan-dinas"}, "")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("must not exceed 10 characters"))
			})
		})
	})

	Describe("UpdateDescription", func() {
		var c *category.Category

		BeforeEach(func() {
			description := "test-description"
			c = category.New(category.Properties{Name: "test-name", Description: &description}, "")
		})

		It("should store the new description", func() {
			service.UpdateDescription(c, "updated-description")
			Expect(*c.Description()).To(Equal("updated-description"))
		})

		It("should clear the description on empty input", func() {
			service.UpdateDescription(c, "")
			Expect(c.Description()).To(BeNil())
		})
	})

	Describe("Activate and Deactivate", func() {
		It("should toggle the activation flag", func() {
			c := category.New(category.Properties{Name: "test-name"}, "")
			createdAt := c.CreatedAt()

			Expect(service.Deactivate(c).IsActive()).To(BeFalse())
			Expect(service.Activate(c).IsActive()).To(BeTrue())
			Expect(c.CreatedAt()).To(Equal(createdAt))
		})
	})
})
