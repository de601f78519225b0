package task

import (
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
)

func TestTask(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Task Module Suite")
}

var _ = ginkgo.Describe("TaskService", func() {
	var (
		db      *tenant.Database
		service *Service
	)

	create := func(name, projectID string) *datamodel.Task {
		created, err := service.Create(CreateTaskDTO{Name: name, ProjectID: projectID})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return created
	}

	ginkgo.BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(ginkgo.GinkgoWriter, nil))
		manager, err := tenant.New(ginkgo.GinkgoT().TempDir(), "default", logger)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		db = manager.Database()
		service = NewService(db, logger)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should scope duplicate names per project", func() {
			create("Design", "proj-1")

			_, err := service.Create(CreateTaskDTO{Name: "Design", ProjectID: "proj-1"})
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDuplicateName))

			_, err = service.Create(CreateTaskDTO{Name: "Design", ProjectID: "proj-2"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Predecessors", func() {
		ginkgo.It("should reject a task as its own predecessor", func() {
			task := create("Design", "proj-1")

			_, err := service.AddPredecessor(task.ID, task.ID)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeValidationFailed))
		})

		ginkgo.It("should link two existing tasks", func() {
			design := create("Design", "proj-1")
			build := create("Build", "proj-1")

			link, err := service.AddPredecessor(build.ID, design.ID)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(link.TaskID).To(gomega.Equal(build.ID))
			gomega.Expect(link.PredecessorID).To(gomega.Equal(design.ID))
		})
	})

	ginkgo.Describe("Assignees", func() {
		ginkgo.It("should reject assigning the same staff member twice", func() {
			task := create("Design", "proj-1")

			_, err := service.AssignStaff(task.ID, "staff-1")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.AssignStaff(task.ID, "staff-1")
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDuplicateName))
		})
	})

	ginkgo.Describe("Progress reports", func() {
		ginkgo.It("should reject a percentage outside 0-100", func() {
			task := create("Design", "proj-1")

			_, err := service.RecordProgress(ProgressReportDTO{TaskID: task.ID, ReportDate: "2026-08-30", Percent: 101})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeValidationFailed))
		})

		ginkgo.It("should record and list reports per task", func() {
			design := create("Design", "proj-1")
			build := create("Build", "proj-1")

			_, err := service.RecordProgress(ProgressReportDTO{TaskID: design.ID, ReportDate: "2026-08-29", Percent: 40})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.RecordProgress(ProgressReportDTO{TaskID: design.ID, ReportDate: "2026-08-30", Percent: 60})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.ListProgress(design.ID)).To(gomega.HaveLen(2))
			gomega.Expect(service.ListProgress(build.ID)).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should refuse while child tasks still reference it", func() {
			parent := create("Design", "proj-1")
			_, err := service.Create(CreateTaskDTO{Name: "Wireframes", ProjectID: "proj-1", ParentTaskID: &parent.ID})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			err = service.Delete(parent.ID)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDependentRecords))
		})

		ginkgo.It("should refuse while progress reports exist", func() {
			task := create("Design", "proj-1")
			_, err := service.RecordProgress(ProgressReportDTO{TaskID: task.ID, ReportDate: "2026-08-30", Percent: 10})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			err = service.Delete(task.ID)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDependentRecords))
		})

		ginkgo.It("should remove an unreferenced task", func() {
			task := create("Design", "proj-1")

			gomega.Expect(service.Delete(task.ID)).To(gomega.Succeed())
			gomega.Expect(service.List()).To(gomega.BeEmpty())
		})
	})
})
