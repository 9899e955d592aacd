// Package helpers provides fixtures and a server harness for the filter API
// integration tests.
package helpers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onsi/gomega"
)

// TestModule is the catalog entry shape written by the fixtures
type TestModule struct {
	Name              string `json:"Name"`
	ModuleID          string `json:"ModuleID"`
	Type              string `json:"Type"`
	Origin            string `json:"Origin"`
	Compatibility     string `json:"Compatibility"`
	DefuserDifficulty string `json:"DefuserDifficulty,omitempty"`
	ExpertDifficulty  string `json:"ExpertDifficulty,omitempty"`
	TwitchPlaysScore  *int   `json:"TwitchPlaysScore,omitempty"`
	Quirks            string `json:"Quirks,omitempty"`
}

// TestCatalog is the catalog file shape written by the fixtures
type TestCatalog struct {
	Version string       `json:"version"`
	Modules []TestModule `json:"modules"`
}

// CreateTestModules returns a small catalog covering every module type
func CreateTestModules() []TestModule {
	score := 8
	return []TestModule{
		{
			Name: "Wires", ModuleID: "Wires", Type: "Regular", Origin: "Vanilla", Compatibility: "Compatible",
			DefuserDifficulty: "VeryEasy", ExpertDifficulty: "Easy", TwitchPlaysScore: &score,
		},
		{
			Name: "Forget Me Not", ModuleID: "MemoryV2", Type: "Regular", Origin: "Mods", Compatibility: "Compatible",
			DefuserDifficulty: "Hard", ExpertDifficulty: "Medium", Quirks: "SolvesAtEnd, NeedsOtherSolves",
		},
		{
			Name: "Knob", ModuleID: "NeedyKnob", Type: "Needy", Origin: "Vanilla", Compatibility: "Compatible",
		},
		{
			Name: "Broken Module", ModuleID: "Broken", Type: "Regular", Origin: "Mods", Compatibility: "Unplayable",
			DefuserDifficulty: "VeryHard", ExpertDifficulty: "VeryHard", Quirks: "TimeDependent",
		},
	}
}

// WriteCatalog writes a catalog file into dir and returns its path
func WriteCatalog(dir, version string, modules []TestModule) string {
	path := filepath.Join(dir, "modules.json")
	data, err := json.MarshalIndent(TestCatalog{Version: version, Modules: modules}, "", "  ")
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	gomega.Expect(os.WriteFile(path, data, 0600)).To(gomega.Succeed())
	return path
}

// WriteTranslation writes a <lang>.yaml translation file into dir
func WriteTranslation(dir, lang string, strs map[string]string) {
	content := fmt.Sprintf("language: %s\nstrings:\n", lang)
	for ref, text := range strs {
		content += fmt.Sprintf("  %s: %q\n", ref, text)
	}
	gomega.Expect(os.MkdirAll(dir, 0750)).To(gomega.Succeed())
	gomega.Expect(os.WriteFile(filepath.Join(dir, lang+".yaml"), []byte(content), 0600)).To(gomega.Succeed())
}

// ConfigOptions holds the optional sections written by WriteConfigYAML
type ConfigOptions struct {
	Watch           bool
	TranslationsDir string
	DefaultLanguage string
}

// WriteConfigYAML writes a configuration file for the catalog at catalogPath
func WriteConfigYAML(dir, catalogPath string, opts ConfigOptions) string {
	content := fmt.Sprintf("catalog:\n  path: %s\n  watch: %t\n", catalogPath, opts.Watch)
	if opts.TranslationsDir != "" {
		content += fmt.Sprintf("translations:\n  dir: %s\n", opts.TranslationsDir)
		if opts.DefaultLanguage != "" {
			content += fmt.Sprintf("  defaultLanguage: %s\n", opts.DefaultLanguage)
		}
	}

	path := filepath.Join(dir, "config.yaml")
	gomega.Expect(os.WriteFile(path, []byte(content), 0600)).To(gomega.Succeed())
	return path
}
