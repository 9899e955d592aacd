package i18n

// english is the built-in string table. Every other translation falls back
// to it for references it does not define.
var english = map[string]string{
	"filterDefuserDifficulty": "Defuser difficulty",
	"filterExpertDifficulty":  "Expert difficulty",
	"filterType":              "Type",
	"filterOrigin":            "Origin",
	"filterCompatibility":     "Compatibility",
	"filterTP":                "Twitch Plays",
	"filterRuleSeed":          "Rule seed",
	"filterSouvenir":          "Souvenir",
	"filterMysteryModule":     "Mystery Module",
	"filterBossStatus":        "Boss Status",
	"filterTutorial":          "Tutorial",
	"filterQuirks":            "Quirks",

	"moduleDiffVeryEasy": "very easy",
	"moduleDiffEasy":     "easy",
	"moduleDiffMedium":   "medium",
	"moduleDiffHard":     "hard",
	"moduleDiffVeryHard": "very hard",

	"moduleTypeRegular":  "Regular module",
	"moduleTypeNeedy":    "Needy module",
	"moduleTypeHoldable": "Holdable",
	"moduleTypeWidget":   "Widget",

	"originVanilla": "Vanilla",
	"originMods":    "Mods",

	"compatibilityCompatible":  "Compatible",
	"compatibilityProblematic": "Problematic",
	"compatibilityUnplayable":  "Unplayable",

	"filterNotSupported": "Not supported",
	"filterSupported":    "Supported",
	"filterUnexamined":   "Unexamined",
	"filterNotCandidate": "Not a candidate",
	"filterConsidered":   "Considered",

	"filterMMNoConflict": "No conflict",
	"filterMMNotHide":    "MM must not hide this",
	"filterMMNotRequire": "MM must not require this",
	"filterMMNotUse":     "MM must not use this at all",
	"filterMMAutoSolve":  "MM must auto-solve",

	"bossStatusFullBoss": "Full Boss",
	"bossStatusSemiBoss": "Semi-boss",
	"bossStatusNotBoss":  "Not a boss",

	"tutorialAvailable": "Has tutorial",
	"tutorialMissing":   "No tutorial",

	"quirkSolvesLater":                    "Solves at end",
	"quirkSolvesLaterExplain":             "The module is only solvable after all non-ignored modules are solved (at the end of the bomb). In general, bosses have this quirk and all bosses should ignore modules with this quirk.",
	"quirkNeedsSolves":                    "Needs other solves",
	"quirkNeedsSolvesExplain":             "The module cannot be solved until some, but not necessarily all, other non-ignored regular modules are solved first. In general, semi-bosses ignore modules with this quirk and often have this quirk.",
	"quirkSolvesBefore":                   "Must solve before some",
	"quirkSolvesBeforeExplain":            "The module must be solved before some other non-ignored modules. In general, all modules with this quirk should ignore each other.",
	"quirkSolvesWithOthers":               "May solve with others",
	"quirkSolvesWithOthersExplain":        "The module may disarm itself immediately in response to another module being solved.",
	"quirkWillSolveSuddenly":              "Will solve suddenly",
	"quirkWillSolveSuddenlyExplain":       "The module will suddenly present a small window of time in which it will solve even if the solution is incorrect or if strikes are generated.",
	"quirkPseudoNeedy":                    "Pseudo-needy",
	"quirkPseudoNeedyExplain":             "The module poses a recurring hazard in a similar fashion to a needy before it can be solved.",
	"quirkTimeDependent":                  "Heavily time-dependent",
	"quirkTimeDependentExplain":           "The module has very precise timing requirements or can only be solved at an exact time.",
	"quirkNeedsImmediateAttention":        "Needs immediate attention",
	"quirkNeedsImmediateAttentionExplain": "The module must be solved (or is significantly easier to solve) within a short window of time at bomb start.",
	"quirkInstantDeath":                   "Instant death",
	"quirkInstantDeathExplain":            "Failing to solve or striking on the module ends the bomb, often the bomb will immediately detonate or the whole game will exit.",

	"flagYes":    "Yes",
	"flagNo":     "No",
	"flagEither": "Either",
}
