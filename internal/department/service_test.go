package department

import (
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
)

func TestDepartment(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Department Module Suite")
}

var _ = ginkgo.Describe("DepartmentService", func() {
	var (
		db      *tenant.Database
		service *Service
	)

	create := func(name, orgID string, parentID *string) *datamodel.Department {
		dept, err := service.Create(CreateDepartmentDTO{
			Name:               name,
			OrganizationID:     orgID,
			ParentDepartmentID: parentID,
		})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return dept
	}

	ginkgo.BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(ginkgo.GinkgoWriter, nil))
		manager, err := tenant.New(ginkgo.GinkgoT().TempDir(), "default", logger)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		db = manager.Database()
		service = NewService(db, logger)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should scope duplicate names per organization", func() {
			create("Engineering", "org-1", nil)

			_, err := service.Create(CreateDepartmentDTO{Name: "Engineering", OrganizationID: "org-1"})
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDuplicateName))

			// same name under another organization is fine
			_, err = service.Create(CreateDepartmentDTO{Name: "Engineering", OrganizationID: "org-2"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Parent guard", func() {
		ginkgo.It("should reject an unknown parent", func() {
			missing := "no-such-dept"
			_, err := service.Create(CreateDepartmentDTO{
				Name:               "Engineering",
				OrganizationID:     "org-1",
				ParentDepartmentID: &missing,
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeRecordNotFound))
		})

		ginkgo.It("should reject a parent from another organization", func() {
			other := create("Platform", "org-2", nil)
			dept := create("Engineering", "org-1", nil)

			_, err := service.Update(UpdateDepartmentDTO{ID: dept.ID, ParentDepartmentID: &other.ID})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrCrossOrganizationReference))
		})

		ginkgo.It("should reject a department naming itself as parent", func() {
			dept := create("Engineering", "org-1", nil)

			_, err := service.Update(UpdateDepartmentDTO{ID: dept.ID, ParentDepartmentID: &dept.ID})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrCircularDepartmentReference))
		})

		ginkgo.It("should reject closing a parent chain into a cycle", func() {
			// root <- mid <- leaf; pointing root at leaf would close the loop.
			root := create("Root", "org-1", nil)
			mid := create("Mid", "org-1", &root.ID)
			leaf := create("Leaf", "org-1", &mid.ID)

			_, err := service.Update(UpdateDepartmentDTO{ID: root.ID, ParentDepartmentID: &leaf.ID})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrCircularDepartmentReference))
		})

		ginkgo.It("should allow reparenting within the same organization", func() {
			root := create("Root", "org-1", nil)
			other := create("Other", "org-1", nil)
			mid := create("Mid", "org-1", &root.ID)

			updated, err := service.Update(UpdateDepartmentDTO{ID: mid.ID, ParentDepartmentID: &other.ID})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(*updated.ParentDepartmentID).To(gomega.Equal(other.ID))
		})

		ginkgo.It("should leave the tree untouched after a rejected assignment", func() {
			root := create("Root", "org-1", nil)
			mid := create("Mid", "org-1", &root.ID)

			_, err := service.Update(UpdateDepartmentDTO{ID: root.ID, ParentDepartmentID: &mid.ID})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrCircularDepartmentReference))

			stored, err := service.Get(root.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(stored.ParentDepartmentID).To(gomega.BeNil())
		})

		ginkgo.It("should apply no field of a combined update when the parent is rejected", func() {
			root := create("Root", "org-1", nil)
			mid := create("Mid", "org-1", &root.ID)

			renamed := "Root Renamed"
			desc := "reorganized"
			_, err := service.Update(UpdateDepartmentDTO{
				ID:                 root.ID,
				Name:               &renamed,
				Description:        &desc,
				ParentDepartmentID: &mid.ID,
			})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrCircularDepartmentReference))

			stored, err := service.Get(root.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(stored.Name).To(gomega.Equal("Root"))
			gomega.Expect(stored.Description).To(gomega.BeNil())
			gomega.Expect(stored.ParentDepartmentID).To(gomega.BeNil())
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should refuse while staff members still belong to it", func() {
			dept := create("Engineering", "org-1", nil)
			ws := db.Workspace()
			ws.Staff = append(ws.Staff, datamodel.Staff{
				ID:             "staff-1",
				FirstName:      "Test",
				LastName:       "Member",
				Email:          "a@example.com",
				OrganizationID: "org-1",
				DepartmentID:   dept.ID,
			})

			err := service.Delete(dept.ID)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDependentRecords))
		})

		ginkgo.It("should refuse while child departments still reference it", func() {
			root := create("Root", "org-1", nil)
			create("Mid", "org-1", &root.ID)

			err := service.Delete(root.ID)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDependentRecords))
		})

		ginkgo.It("should remove an unreferenced department", func() {
			dept := create("Engineering", "org-1", nil)

			gomega.Expect(service.Delete(dept.ID)).To(gomega.Succeed())
			gomega.Expect(service.List()).To(gomega.BeEmpty())
		})
	})
})
