package tenant

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/datamodel"
)

func TestTenant(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Tenant Module Suite")
}

var _ = ginkgo.Describe("Manager", func() {
	var (
		dir     string
		manager *Manager
	)

	ginkgo.BeforeEach(func() {
		dir = ginkgo.GinkgoT().TempDir()
		var err error
		manager, err = New(dir, "default", slog.New(slog.NewTextHandler(ginkgo.GinkgoWriter, nil)))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	ginkgo.Describe("New", func() {
		ginkgo.It("should start on the default tag with both files on disk", func() {
			gomega.Expect(manager.CurrentTag()).To(gomega.Equal("default"))
			gomega.Expect(filepath.Join(dir, "auth.json")).To(gomega.BeAnExistingFile())
			gomega.Expect(filepath.Join(dir, "db-default.json")).To(gomega.BeAnExistingFile())
		})
	})

	ginkgo.Describe("ValidateTag", func() {
		ginkgo.It("should reject tags with characters outside the allowed set", func() {
			gomega.Expect(ValidateTag("bad tag!")).To(gomega.MatchError(internal.ErrInvalidTagFormat))
			gomega.Expect(ValidateTag("")).To(gomega.MatchError(internal.ErrInvalidTagFormat))
			gomega.Expect(ValidateTag("spaces here")).To(gomega.MatchError(internal.ErrInvalidTagFormat))
		})

		ginkgo.It("should reject the reserved identity store name", func() {
			gomega.Expect(ValidateTag("auth")).To(gomega.MatchError(internal.ErrReservedTagName))
		})

		ginkgo.It("should accept alphanumeric tags with dash and underscore", func() {
			gomega.Expect(ValidateTag("tenant-1_a")).To(gomega.Succeed())
		})
	})

	ginkgo.Describe("SwitchTag", func() {
		ginkgo.It("should fail validation before touching disk", func() {
			err := manager.SwitchTag("bad tag!")

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidTagFormat))
			gomega.Expect(manager.CurrentTag()).To(gomega.Equal("default"))
		})

		ginkgo.It("should create a never-seen tag instead of failing", func() {
			gomega.Expect(manager.SwitchTag("fresh")).To(gomega.Succeed())

			gomega.Expect(manager.CurrentTag()).To(gomega.Equal("fresh"))
			gomega.Expect(filepath.Join(dir, "db-fresh.json")).To(gomega.BeAnExistingFile())
		})

		ginkgo.It("should isolate workspace data per tag and round-trip on switch back", func() {
			gomega.Expect(manager.SwitchTag("t1")).To(gomega.Succeed())
			ws := manager.WorkspaceStore().Data()
			ws.Organizations = append(ws.Organizations, datamodel.Organization{ID: "org-1", Name: "Acme"})
			gomega.Expect(manager.WorkspaceStore().Write()).To(gomega.Succeed())

			gomega.Expect(manager.SwitchTag("t2")).To(gomega.Succeed())
			gomega.Expect(manager.WorkspaceStore().Data().Organizations).To(gomega.BeEmpty())

			gomega.Expect(manager.SwitchTag("t1")).To(gomega.Succeed())
			orgs := manager.WorkspaceStore().Data().Organizations
			gomega.Expect(orgs).To(gomega.HaveLen(1))
			gomega.Expect(orgs[0].Name).To(gomega.Equal("Acme"))
		})

		ginkgo.It("should leave the identity store untouched across switches", func() {
			authData := manager.AuthStore().Data()
			authData.Users = append(authData.Users, datamodel.User{ID: "u1", Email: "u1@example.com"})
			gomega.Expect(manager.AuthStore().Write()).To(gomega.Succeed())

			gomega.Expect(manager.SwitchTag("other")).To(gomega.Succeed())

			gomega.Expect(manager.AuthStore().Data().Users).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Describe("Database facade", func() {
		ginkgo.It("should expose both stores and persist both on Write", func() {
			db := manager.Database()

			db.Auth().Users = append(db.Auth().Users, datamodel.User{ID: "u1", Email: "u1@example.com"})
			db.Workspace().Teams = append(db.Workspace().Teams, datamodel.Team{ID: "t1", Name: "Core"})
			gomega.Expect(db.Write()).To(gomega.Succeed())

			reopened, err := New(dir, "default", slog.New(slog.NewTextHandler(ginkgo.GinkgoWriter, nil)))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(reopened.AuthStore().Data().Users).To(gomega.HaveLen(1))
			gomega.Expect(reopened.WorkspaceStore().Data().Teams).To(gomega.HaveLen(1))
		})

		ginkgo.It("should follow the active workspace after a switch", func() {
			db := manager.Database()

			gomega.Expect(manager.SwitchTag("t9")).To(gomega.Succeed())
			db.Workspace().Projects = append(db.Workspace().Projects, datamodel.Project{ID: "p1", Name: "Apollo"})
			gomega.Expect(db.WriteWorkspace()).To(gomega.Succeed())

			raw, err := os.ReadFile(filepath.Join(dir, "db-t9.json"))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(string(raw)).To(gomega.ContainSubstring("Apollo"))
		})
	})

	ginkgo.Describe("Backup", func() {
		ginkgo.It("should write a timestamped archive with both stores inside", func() {
			db := manager.Database()
			db.Auth().Users = append(db.Auth().Users, datamodel.User{ID: "u1", Email: "u1@example.com"})
			db.Workspace().Organizations = append(db.Workspace().Organizations, datamodel.Organization{ID: "o1", Name: "Acme"})

			path, err := manager.Backup()

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(path).To(gomega.BeAnExistingFile())

			raw, err := os.ReadFile(path)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			var archive BackupArchive
			gomega.Expect(json.Unmarshal(raw, &archive)).To(gomega.Succeed())
			gomega.Expect(archive.Version).To(gomega.Equal("1"))
			gomega.Expect(archive.Tag).To(gomega.Equal("default"))
			gomega.Expect(archive.Auth.Users).To(gomega.HaveLen(1))
			gomega.Expect(archive.Data.Organizations).To(gomega.HaveLen(1))
		})

		ginkgo.It("should capture the state at the time of the call", func() {
			db := manager.Database()
			db.Workspace().Organizations = append(db.Workspace().Organizations, datamodel.Organization{ID: "o1", Name: "Acme"})

			path, err := manager.Backup()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// Mutations after the call must not leak into the archive.
			db.Workspace().Organizations = append(db.Workspace().Organizations, datamodel.Organization{ID: "o2", Name: "Globex"})

			raw, err := os.ReadFile(path)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			var archive BackupArchive
			gomega.Expect(json.Unmarshal(raw, &archive)).To(gomega.Succeed())
			gomega.Expect(archive.Data.Organizations).To(gomega.HaveLen(1))
			gomega.Expect(archive.Data.Organizations[0].ID).To(gomega.Equal("o1"))
		})
	})
})
