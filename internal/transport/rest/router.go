package rest

import (
	"log/slog"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/auth"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/department"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/organization"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/project"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/refdata"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/staff"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/task"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/team"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/transport/middleware"
)

type Handlers struct {
	Auth         *auth.Handler
	Tenant       *tenant.Handler
	Organization *organization.Handler
	Department   *department.Handler
	Staff        *staff.Handler
	Team         *team.Handler
	Project      *project.Handler
	Task         *task.Handler
	RefData      *refdata.Handler
}

func RegisterAllRoutes(router *chi.Mux, h Handlers, dataDir string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(dataDir)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", h.Auth.Register)
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// The active tag is readable without authentication.
		r.Get("/tag", h.Tenant.CurrentTag)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Post("/tag", h.Tenant.SwitchTag)
			pr.Post("/backup", h.Tenant.Backup)

			pr.Route("/users", func(er chi.Router) {
				er.Get("/", h.Auth.ListUsers)
				er.Get("/me", h.Auth.CurrentUser)
				er.Post("/me/password", h.Auth.ChangePassword)
				er.Get("/{id}", h.Auth.GetUser)
				er.Patch("/{id}", h.Auth.UpdateProfile)
				er.Delete("/{id}", h.Auth.DeleteUser)
			})

			pr.Route("/organizations", func(er chi.Router) {
				er.Get("/", h.Organization.List)
				er.Post("/", h.Organization.Create)
				er.Get("/{id}", h.Organization.Get)
				er.Patch("/{id}", h.Organization.Update)
				er.Delete("/{id}", h.Organization.Delete)
			})

			pr.Route("/departments", func(er chi.Router) {
				er.Get("/", h.Department.List)
				er.Post("/", h.Department.Create)
				er.Get("/{id}", h.Department.Get)
				er.Patch("/{id}", h.Department.Update)
				er.Delete("/{id}", h.Department.Delete)
			})

			pr.Route("/staff", func(er chi.Router) {
				er.Get("/", h.Staff.List)
				er.Post("/", h.Staff.Create)
				er.Get("/{id}", h.Staff.Get)
				er.Patch("/{id}", h.Staff.Update)
				er.Delete("/{id}", h.Staff.Delete)
			})

			pr.Route("/teams", func(er chi.Router) {
				er.Get("/", h.Team.List)
				er.Post("/", h.Team.Create)
				er.Get("/{id}", h.Team.Get)
				er.Patch("/{id}", h.Team.Update)
				er.Delete("/{id}", h.Team.Delete)
				er.Get("/{id}/members", h.Team.Members)
				er.Post("/{id}/members", h.Team.AddMember)
				er.Delete("/{id}/members/{memberId}", h.Team.RemoveMember)
			})

			pr.Route("/projects", func(er chi.Router) {
				er.Get("/", h.Project.List)
				er.Post("/", h.Project.Create)
				er.Get("/{id}", h.Project.Get)
				er.Patch("/{id}", h.Project.Update)
				er.Delete("/{id}", h.Project.Delete)
				er.Get("/{id}/status-reports", h.Project.ListStatusReports)
				er.Post("/{id}/status-reports", h.Project.RecordStatusReport)
				er.Delete("/{id}/status-reports/{reportId}", h.Project.RemoveStatusReport)
			})

			pr.Route("/tasks", func(er chi.Router) {
				er.Get("/", h.Task.List)
				er.Post("/", h.Task.Create)
				er.Get("/{id}", h.Task.Get)
				er.Patch("/{id}", h.Task.Update)
				er.Delete("/{id}", h.Task.Delete)
				er.Post("/{id}/assignees", h.Task.Assign)
				er.Delete("/{id}/assignees/{assigneeId}", h.Task.Unassign)
				er.Post("/{id}/predecessors", h.Task.AddPredecessor)
				er.Get("/{id}/progress", h.Task.ListProgress)
				er.Post("/{id}/progress", h.Task.RecordProgress)
				er.Delete("/{id}/progress/{reportId}", h.Task.RemoveProgress)
				er.Get("/{id}/evaluations", h.Task.ListEvaluations)
				er.Post("/{id}/evaluations", h.Task.RecordEvaluation)
				er.Delete("/{id}/evaluations/{evaluationId}", h.Task.RemoveEvaluation)
				er.Get("/{id}/status-reports", h.Task.ListStatusReports)
				er.Post("/{id}/status-reports", h.Task.RecordStatusReport)
				er.Delete("/{id}/status-reports/{reportId}", h.Task.RemoveStatusReport)
			})

			pr.Route("/statuses", func(er chi.Router) {
				er.Get("/", h.RefData.ListStatuses)
				er.Post("/", h.RefData.CreateStatus)
				er.Delete("/{id}", h.RefData.DeleteStatus)
			})
			pr.Route("/priorities", func(er chi.Router) {
				er.Get("/", h.RefData.ListPriorities)
				er.Post("/", h.RefData.CreatePriority)
				er.Delete("/{id}", h.RefData.DeletePriority)
			})
			pr.Route("/complexities", func(er chi.Router) {
				er.Get("/", h.RefData.ListComplexities)
				er.Post("/", h.RefData.CreateComplexity)
				er.Delete("/{id}", h.RefData.DeleteComplexity)
			})
		})
	})
}
