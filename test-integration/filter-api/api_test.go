package integration

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ktane-web/filter-server/test-integration/filter-api/helpers"
)

var _ = Describe("Filter API", Label("api"), func() {
	var (
		tempDir      string
		serverHelper *helpers.ServerTestHelper
	)

	BeforeEach(func() {
		tempDir = createTempDir("filter-api-test-")

		catalogPath := helpers.WriteCatalog(tempDir, "1.0.0", helpers.CreateTestModules())
		translationsDir := filepath.Join(tempDir, "translations")
		helpers.WriteTranslation(translationsDir, "de", map[string]string{
			"filterType":        "Modultyp",
			"moduleTypeRegular": "Reguläres Modul",
		})
		configFile := helpers.WriteConfigYAML(tempDir, catalogPath, helpers.ConfigOptions{
			TranslationsDir: translationsDir,
		})

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

	Context("Health endpoints", func() {
		It("should report health, readiness and version", func() {
			for _, path := range []string{"/health", "/readiness", "/version"} {
				resp, err := serverHelper.Get(path)
				Expect(err).NotTo(HaveOccurred())
				helpers.ReadBody(resp)
				Expect(resp.StatusCode).To(Equal(http.StatusOK), path)
			}
		})
	})

	Context("Catalog information", func() {
		It("should report the served catalog", func() {
			version, err := serverHelper.CatalogVersion()
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal("1.0.0"))
		})
	})

	Context("Filter descriptors", func() {
		It("should list every filter by default", func() {
			resp, err := serverHelper.Get("/api/v1/filters")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var descriptors []map[string]any
			Expect(json.Unmarshal([]byte(helpers.ReadBody(resp)), &descriptors)).To(Succeed())
			Expect(descriptors).To(HaveLen(12))
			Expect(descriptors[0]).To(HaveKeyWithValue("id", "defdiff"))
		})

		It("should serve the descriptor script", func() {
			resp, err := serverHelper.Get("/api/v1/filters.js?group=primary")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Header.Get("Content-Type")).To(Equal("text/javascript; charset=utf-8"))

			body := helpers.ReadBody(resp)
			Expect(body).To(HavePrefix("window.filters = ["))
			Expect(body).To(ContainSubstring("mod=>mod.Compatibility"))
		})

		It("should reject an unknown group", func() {
			resp, err := serverHelper.Get("/api/v1/filters?group=tertiary")
			Expect(err).NotTo(HaveOccurred())
			helpers.ReadBody(resp)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Context("Rendered filters", func() {
		It("should render English labels without preferences", func() {
			resp, err := serverHelper.Get("/api/v1/filters/html?group=primary")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Header.Get("Content-Language")).To(Equal("en"))
			Expect(helpers.ReadBody(resp)).To(ContainSubstring("<h4>Type</h4>"))
		})

		It("should negotiate the language from Accept-Language", func() {
			resp, err := serverHelper.Get("/api/v1/filters/html?group=primary", "Accept-Language", "de-AT, en;q=0.5")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Header.Get("Content-Language")).To(Equal("de"))
			Expect(helpers.ReadBody(resp)).To(ContainSubstring("<h4>Modultyp</h4>"))
		})

		It("should prefer the lang query over Accept-Language", func() {
			resp, err := serverHelper.Get("/api/v1/filters/html?group=primary&lang=en", "Accept-Language", "de")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Header.Get("Content-Language")).To(Equal("en"))
			Expect(helpers.ReadBody(resp)).To(ContainSubstring("<h4>Type</h4>"))
		})
	})
})
