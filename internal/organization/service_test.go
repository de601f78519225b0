package organization_test

import (
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/organization"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
)

func TestOrganization(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Organization Service Suite")
}

var _ = Describe("OrganizationService", func() {
	var (
		db      *tenant.Database
		service *organization.Service
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))
		manager, err := tenant.New(GinkgoT().TempDir(), "default", logger)
		Expect(err).ToNot(HaveOccurred())
		db = manager.Database()
		service = organization.NewService(db, logger)
	})

	Describe("Create", func() {
		It("should reject an empty name", func() {
			_, err := service.Create(organization.CreateOrganizationDTO{})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeValidationFailed))
		})

		It("should reject a duplicate name", func() {
			_, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme"})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.Create(organization.CreateOrganizationDTO{Name: "Acme"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateName))
		})
	})

	Describe("Update", func() {
		It("should reject renaming onto an existing name", func() {
			_, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme"})
			Expect(err).ToNot(HaveOccurred())
			other, err := service.Create(organization.CreateOrganizationDTO{Name: "Globex"})
			Expect(err).ToNot(HaveOccurred())

			name := "Acme"
			_, err = service.Update(organization.UpdateOrganizationDTO{ID: other.ID, Name: &name})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateName))
		})

		It("should apply partial updates", func() {
			org, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme"})
			Expect(err).ToNot(HaveOccurred())

			desc := "widgets"
			updated, err := service.Update(organization.UpdateOrganizationDTO{ID: org.ID, Description: &desc})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Name).To(Equal("Acme"))
			Expect(*updated.Description).To(Equal("widgets"))
		})
	})

	Describe("Delete", func() {
		It("should refuse while departments still belong to it", func() {
			org, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme"})
			Expect(err).ToNot(HaveOccurred())
			ws := db.Workspace()
			ws.Departments = append(ws.Departments, datamodel.Department{ID: "dept-1", Name: "Engineering", OrganizationID: org.ID})

			err = service.Delete(org.ID)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeDependentRecords))
		})

		It("should report a missing organization", func() {
			err := service.Delete("no-such-org")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeRecordNotFound))
		})

		It("should remove an unreferenced organization", func() {
			org, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme"})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.Delete(org.ID)).To(Succeed())
			Expect(service.List()).To(BeEmpty())
		})
	})
})
