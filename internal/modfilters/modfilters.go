// Package modfilters declares the filters shown on the module listing page.
//
// Filter ids and client expressions are part of the page contract: the ids key
// the client filter state and the expressions are evaluated by the page
// against its own copy of each module.
package modfilters

import (
	"github.com/ktane-web/filter-server/internal/catalog"
	"github.com/ktane-web/filter-server/internal/filtering"
)

// Filter ids.
const (
	DefuserDifficulty = "defdiff"
	ExpertDifficulty  = "expdiff"
	Type              = "type"
	Origin            = "origin"
	Compatibility     = "compatibility"
	TwitchPlays       = "twitchplays"
	RuleSeed          = "ruleseed"
	Souvenir          = "souvenir"
	MysteryModule     = "mysterymodule"
	BossStatus        = "bossstatus"
	Tutorial          = "hastutorial"
	Quirks            = "quirks"
)

// Primary returns the filters of the main filter panel.
func Primary() []filtering.Filter[*catalog.Module] {
	return []filtering.Filter[*catalog.Module]{
		filtering.Slider(DefuserDifficulty, "filterDefuserDifficulty", catalog.Difficulties,
			func(m *catalog.Module) (catalog.Difficulty, bool) { return optional(m.DefuserDifficulty) },
			"mod=>mod.DefuserDifficulty"),
		filtering.Slider(ExpertDifficulty, "filterExpertDifficulty", catalog.Difficulties,
			func(m *catalog.Module) (catalog.Difficulty, bool) { return optional(m.ExpertDifficulty) },
			"mod=>mod.ExpertDifficulty"),
		filtering.Checkboxes(Type, "filterType", catalog.ModuleTypes,
			func(m *catalog.Module) (catalog.ModuleType, bool) { return m.Type, true },
			"mod=>mod.Type"),
		filtering.Checkboxes(Origin, "filterOrigin", catalog.Origins,
			func(m *catalog.Module) (catalog.Origin, bool) { return m.Origin, true },
			"mod=>mod.Origin"),
		filtering.Checkboxes(Compatibility, "filterCompatibility", catalog.Compatibilities,
			func(m *catalog.Module) (catalog.Compatibility, bool) { return m.Compatibility, true },
			"mod=>mod.Compatibility"),
		filtering.Checkboxes(TwitchPlays, "filterTP", catalog.Supports,
			func(m *catalog.Module) (catalog.Support, bool) { return m.TwitchPlays(), true },
			"mod=>mod.TwitchPlays?'Supported':'NotSupported'"),
		filtering.Checkboxes(RuleSeed, "filterRuleSeed", catalog.Supports,
			func(m *catalog.Module) (catalog.Support, bool) { return optional(m.RuleSeedSupport) },
			"mod=>mod.RuleSeedSupport||'NotSupported'"),
		filtering.Checkboxes(Souvenir, "filterSouvenir", catalog.SouvenirStatuses,
			func(m *catalog.Module) (catalog.SouvenirStatus, bool) { return m.SouvenirState(), true },
			"mod=>mod.Souvenir?mod.Souvenir.Status:mod.Type==='Regular'?'Unexamined':'NotACandidate'"),
	}
}

// Secondary returns the filters of the additional filter panel.
func Secondary() []filtering.Filter[*catalog.Module] {
	return []filtering.Filter[*catalog.Module]{
		filtering.Checkboxes(MysteryModule, "filterMysteryModule", catalog.MysteryModuleCompatibilities,
			func(m *catalog.Module) (catalog.MysteryModuleCompatibility, bool) { return optional(m.MysteryModule) },
			"mod=>mod.MysteryModule||'NoConflict'"),
		filtering.Checkboxes(BossStatus, "filterBossStatus", catalog.BossStatuses,
			func(m *catalog.Module) (catalog.BossStatus, bool) { return optional(m.BossStatus) },
			"mod=>mod.BossStatus||'NotABoss'"),
		filtering.Checkboxes(Tutorial, "filterTutorial", catalog.TutorialStatuses,
			func(m *catalog.Module) (catalog.TutorialStatus, bool) { return m.Tutorial(), true },
			"mod=>mod.TutorialVideos?'HasTutorial':'NoTutorial'"),
		filtering.Flags(Quirks, "filterQuirks", catalog.QuirkFlags,
			func(m *catalog.Module) catalog.Quirks { return m.Quirks },
			"mod=>mod.Quirks||''"),
	}
}

// NewRegistry builds the registry of module filters.
func NewRegistry() (*filtering.Registry[*catalog.Module], error) {
	return filtering.NewRegistry(Primary(), Secondary())
}

// optional reads a nullable attribute. Modules without it pass the filter
// whatever the state; only the client expression substitutes a default.
func optional[E any](v *E) (E, bool) {
	if v == nil {
		var zero E
		return zero, false
	}
	return *v, true
}
