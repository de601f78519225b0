package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestDatastore(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Datastore Suite")
}

type testDoc struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

func newTestDoc() *testDoc {
	return &testDoc{Items: []string{}}
}

var _ = ginkgo.Describe("Store", func() {
	var dir string

	ginkgo.BeforeEach(func() {
		dir = ginkgo.GinkgoT().TempDir()
	})

	ginkgo.Describe("Open", func() {
		ginkgo.Context("when the file does not exist", func() {
			ginkgo.It("should materialize the empty shape and create the file", func() {
				path := filepath.Join(dir, "doc.json")

				store, err := Open(path, newTestDoc)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(store.Data().Items).To(gomega.BeEmpty())
				gomega.Expect(path).To(gomega.BeAnExistingFile())
			})
		})

		ginkgo.Context("when the file exists", func() {
			ginkgo.It("should load the persisted document", func() {
				path := filepath.Join(dir, "doc.json")
				err := os.WriteFile(path, []byte(`{"items":["a","b"],"count":2}`), 0o644)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				store, err := Open(path, newTestDoc)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(store.Data().Items).To(gomega.Equal([]string{"a", "b"}))
				gomega.Expect(store.Data().Count).To(gomega.Equal(2))
			})
		})

		ginkgo.Context("when the file holds invalid JSON", func() {
			ginkgo.It("should fail", func() {
				path := filepath.Join(dir, "doc.json")
				err := os.WriteFile(path, []byte("not json"), 0o644)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				_, err = Open(path, newTestDoc)

				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("Write", func() {
		ginkgo.It("should persist in-memory mutations so a reopen sees them", func() {
			path := filepath.Join(dir, "doc.json")
			store, err := Open(path, newTestDoc)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			store.Data().Items = append(store.Data().Items, "x")
			store.Data().Count = 1
			gomega.Expect(store.Write()).To(gomega.Succeed())

			reopened, err := Open(path, newTestDoc)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(reopened.Data().Items).To(gomega.Equal([]string{"x"}))
			gomega.Expect(reopened.Data().Count).To(gomega.Equal(1))
		})

		ginkgo.It("should overwrite the whole file on every call", func() {
			path := filepath.Join(dir, "doc.json")
			store, err := Open(path, newTestDoc)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			store.Data().Items = []string{"a", "b", "c"}
			gomega.Expect(store.Write()).To(gomega.Succeed())

			store.Data().Items = []string{"z"}
			gomega.Expect(store.Write()).To(gomega.Succeed())

			reopened, err := Open(path, newTestDoc)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(reopened.Data().Items).To(gomega.Equal([]string{"z"}))
		})

		ginkgo.It("should not leave a temp file behind", func() {
			path := filepath.Join(dir, "doc.json")
			store, err := Open(path, newTestDoc)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(store.Write()).To(gomega.Succeed())

			gomega.Expect(path + ".tmp").ToNot(gomega.BeAnExistingFile())
		})
	})
})
