package integration

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ktane-web/filter-server/test-integration/filter-api/helpers"
)

var _ = Describe("Catalog Reload", Label("reload"), func() {
	var (
		tempDir      string
		serverHelper *helpers.ServerTestHelper
		modules      []helpers.TestModule
	)

	BeforeEach(func() {
		tempDir = createTempDir("filter-reload-test-")
		modules = helpers.CreateTestModules()

		catalogPath := helpers.WriteCatalog(tempDir, "1.0.0", modules)
		configFile := helpers.WriteConfigYAML(tempDir, catalogPath, helpers.ConfigOptions{Watch: true})

		var err error
		serverHelper, err = helpers.NewServerTestHelper(ctx, configFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(serverHelper.StartServer()).To(Succeed())
		serverHelper.WaitForServerReady(10 * time.Second)
	})

	AfterEach(func() {
		Expect(serverHelper.StopServer()).To(Succeed())
		cleanupTempDir(tempDir)
	})

	It("should serve a newer catalog written over the file", func() {
		Eventually(func() (string, error) {
			helpers.WriteCatalog(tempDir, "1.1.0", modules[:2])
			return serverHelper.CatalogVersion()
		}, 10*time.Second, 200*time.Millisecond).Should(Equal("1.1.0"))

		Expect(serverHelper.SearchModuleIDs(`{}`)).To(ConsistOf("Wires", "MemoryV2"))
	})

	It("should keep the current catalog when an older one is written", func() {
		helpers.WriteCatalog(tempDir, "0.9.0", modules[:1])

		Consistently(func() (string, error) {
			return serverHelper.CatalogVersion()
		}, time.Second, 100*time.Millisecond).Should(Equal("1.0.0"))
		Expect(serverHelper.SearchModuleIDs(`{}`)).To(HaveLen(len(modules)))
	})
})
