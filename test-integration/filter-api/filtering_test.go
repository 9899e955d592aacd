package integration

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ktane-web/filter-server/test-integration/filter-api/helpers"
)

var _ = Describe("Module Search", Label("filtering"), func() {
	var (
		tempDir      string
		serverHelper *helpers.ServerTestHelper
	)

	BeforeEach(func() {
		tempDir = createTempDir("filter-search-test-")

		catalogPath := helpers.WriteCatalog(tempDir, "1.0.0", helpers.CreateTestModules())
		configFile := helpers.WriteConfigYAML(tempDir, catalogPath, helpers.ConfigOptions{})

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

	DescribeTable("filter state",
		func(state string, expected []string) {
			Expect(serverHelper.SearchModuleIDs(state)).To(ConsistOf(expected))
		},
		Entry("empty state matches everything", `{}`,
			[]string{"Wires", "MemoryV2", "NeedyKnob", "Broken"}),
		Entry("unknown filter ids are ignored", `{"nonsense":{"a":true}}`,
			[]string{"Wires", "MemoryV2", "NeedyKnob", "Broken"}),
		Entry("checked types restrict the result", `{"type":{"Needy":true}}`,
			[]string{"NeedyKnob"}),
		Entry("nothing checked allows everything", `{"type":{"Regular":false,"Needy":false}}`,
			[]string{"Wires", "MemoryV2", "NeedyKnob", "Broken"}),
		Entry("difficulty range keeps modules without a difficulty", `{"defdiff":{"min":1,"max":3}}`,
			[]string{"MemoryV2", "NeedyKnob"}),
		Entry("required quirk", `{"quirks":{"SolvesAtEnd":"y"}}`,
			[]string{"MemoryV2"}),
		Entry("forbidden quirk", `{"quirks":{"TimeDependent":"n"}}`,
			[]string{"Wires", "MemoryV2", "NeedyKnob"}),
		Entry("filters combine as a conjunction", `{"origin":{"Mods":true},"compatibility":{"Compatible":true}}`,
			[]string{"MemoryV2"}),
		Entry("twitch plays support is derived from the score", `{"twitchplays":{"Supported":true}}`,
			[]string{"Wires"}),
	)

	It("should reject a malformed state", func() {
		resp, err := serverHelper.Search(`{"type":`)
		Expect(err).NotTo(HaveOccurred())
		helpers.ReadBody(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("should reject a state that is not an object", func() {
		resp, err := serverHelper.Search(`[1, 2]`)
		Expect(err).NotTo(HaveOccurred())
		helpers.ReadBody(resp)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})
})
