package catalog

import (
	"github.com/ktane-web/filter-server/internal/enum"
)

// Difficulty is the defuser or expert difficulty of a module.
type Difficulty int

// Difficulty values, easiest first. The order is the slider order.
const (
	VeryEasy Difficulty = iota
	Easy
	Medium
	Hard
	VeryHard
)

// Difficulties lists the Difficulty members.
var Difficulties = enum.Table[Difficulty]{
	{Value: VeryEasy, Name: "VeryEasy", Filter: &enum.Marker{Label: "moduleDiffVeryEasy"}},
	{Value: Easy, Name: "Easy", Filter: &enum.Marker{Label: "moduleDiffEasy"}},
	{Value: Medium, Name: "Medium", Filter: &enum.Marker{Label: "moduleDiffMedium"}},
	{Value: Hard, Name: "Hard", Filter: &enum.Marker{Label: "moduleDiffHard"}},
	{Value: VeryHard, Name: "VeryHard", Filter: &enum.Marker{Label: "moduleDiffVeryHard"}},
}

func (d Difficulty) String() string               { return Difficulties.String(d) }
func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }
func (d *Difficulty) UnmarshalText(b []byte) error {
	return Difficulties.UnmarshalText(b, d)
}

// ModuleType distinguishes regular modules from needies and the rest.
type ModuleType int

// ModuleType values.
const (
	Regular ModuleType = iota
	Needy
	Holdable
	Widget
)

// ModuleTypes lists the ModuleType members.
var ModuleTypes = enum.Table[ModuleType]{
	{Value: Regular, Name: "Regular", Filter: &enum.Marker{Label: "moduleTypeRegular", Accel: 'R'}},
	{Value: Needy, Name: "Needy", Filter: &enum.Marker{Label: "moduleTypeNeedy", Accel: 'N'}},
	{Value: Holdable, Name: "Holdable", Filter: &enum.Marker{Label: "moduleTypeHoldable", Accel: 'H'}},
	{Value: Widget, Name: "Widget", Filter: &enum.Marker{Label: "moduleTypeWidget", Accel: 'W'}},
}

func (t ModuleType) String() string               { return ModuleTypes.String(t) }
func (t ModuleType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *ModuleType) UnmarshalText(b []byte) error {
	return ModuleTypes.UnmarshalText(b, t)
}

// Origin tells base game modules from modded ones.
type Origin int

// Origin values.
const (
	Vanilla Origin = iota
	Mods
)

// Origins lists the Origin members.
var Origins = enum.Table[Origin]{
	{Value: Vanilla, Name: "Vanilla", Filter: &enum.Marker{Label: "originVanilla", Accel: 'V'}},
	{Value: Mods, Name: "Mods", Filter: &enum.Marker{Label: "originMods", Accel: 'o'}},
}

func (o Origin) String() string               { return Origins.String(o) }
func (o Origin) MarshalText() ([]byte, error) { return []byte(o.String()), nil }
func (o *Origin) UnmarshalText(b []byte) error {
	return Origins.UnmarshalText(b, o)
}

// Compatibility is how well a module works with the current game.
type Compatibility int

// Compatibility values.
const (
	Compatible Compatibility = iota
	Problematic
	Unplayable
	Untested
)

// Compatibilities lists the Compatibility members. Untested is a valid value
// but is never offered as a filter option.
var Compatibilities = enum.Table[Compatibility]{
	{Value: Compatible, Name: "Compatible", Filter: &enum.Marker{Label: "compatibilityCompatible", Accel: 'C'}},
	{Value: Problematic, Name: "Problematic", Filter: &enum.Marker{Label: "compatibilityProblematic", Accel: 'P'}},
	{Value: Unplayable, Name: "Unplayable", Filter: &enum.Marker{Label: "compatibilityUnplayable", Accel: 'U'}},
	{Value: Untested, Name: "Untested"},
}

func (c Compatibility) String() string               { return Compatibilities.String(c) }
func (c Compatibility) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (c *Compatibility) UnmarshalText(b []byte) error {
	return Compatibilities.UnmarshalText(b, c)
}

// Support is a yes/no capability such as Twitch Plays or rule seed support.
type Support int

// Support values.
const (
	NotSupported Support = iota
	Supported
)

// Supports lists the Support members.
var Supports = enum.Table[Support]{
	{Value: NotSupported, Name: "NotSupported", Filter: &enum.Marker{Label: "filterNotSupported"}},
	{Value: Supported, Name: "Supported", Filter: &enum.Marker{Label: "filterSupported"}},
}

func (s Support) String() string               { return Supports.String(s) }
func (s Support) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *Support) UnmarshalText(b []byte) error {
	return Supports.UnmarshalText(b, s)
}

// SouvenirStatus is the state of Souvenir support for a module.
type SouvenirStatus int

// SouvenirStatus values.
const (
	SouvenirUnexamined SouvenirStatus = iota
	SouvenirNotACandidate
	SouvenirConsidered
	SouvenirSupported
)

// SouvenirStatuses lists the SouvenirStatus members.
var SouvenirStatuses = enum.Table[SouvenirStatus]{
	{Value: SouvenirUnexamined, Name: "Unexamined", Filter: &enum.Marker{Label: "filterUnexamined"}},
	{Value: SouvenirNotACandidate, Name: "NotACandidate", Filter: &enum.Marker{Label: "filterNotCandidate"}},
	{Value: SouvenirConsidered, Name: "Considered", Filter: &enum.Marker{Label: "filterConsidered"}},
	{Value: SouvenirSupported, Name: "Supported", Filter: &enum.Marker{Label: "filterSupported"}},
}

func (s SouvenirStatus) String() string               { return SouvenirStatuses.String(s) }
func (s SouvenirStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *SouvenirStatus) UnmarshalText(b []byte) error {
	return SouvenirStatuses.UnmarshalText(b, s)
}

// MysteryModuleCompatibility restricts what Mystery Module may do with a module.
type MysteryModuleCompatibility int

// MysteryModuleCompatibility values.
const (
	NoConflict MysteryModuleCompatibility = iota
	MustNotBeHidden
	MustNotBeKey
	MustNotBeHiddenOrKey
	RequiresAutoSolve
)

// MysteryModuleCompatibilities lists the MysteryModuleCompatibility members.
var MysteryModuleCompatibilities = enum.Table[MysteryModuleCompatibility]{
	{Value: NoConflict, Name: "NoConflict", Filter: &enum.Marker{Label: "filterMMNoConflict"}},
	{Value: MustNotBeHidden, Name: "MustNotBeHidden", Filter: &enum.Marker{Label: "filterMMNotHide"}},
	{Value: MustNotBeKey, Name: "MustNotBeKey", Filter: &enum.Marker{Label: "filterMMNotRequire"}},
	{Value: MustNotBeHiddenOrKey, Name: "MustNotBeHiddenOrKey", Filter: &enum.Marker{Label: "filterMMNotUse"}},
	{Value: RequiresAutoSolve, Name: "RequiresAutoSolve", Filter: &enum.Marker{Label: "filterMMAutoSolve"}},
}

func (m MysteryModuleCompatibility) String() string {
	return MysteryModuleCompatibilities.String(m)
}
func (m MysteryModuleCompatibility) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
func (m *MysteryModuleCompatibility) UnmarshalText(b []byte) error {
	return MysteryModuleCompatibilities.UnmarshalText(b, m)
}

// BossStatus tells whether a module ignores other modules.
type BossStatus int

// BossStatus values.
const (
	NotABoss BossStatus = iota
	SemiBoss
	FullBoss
)

// BossStatuses lists the BossStatus members.
var BossStatuses = enum.Table[BossStatus]{
	{Value: NotABoss, Name: "NotABoss", Filter: &enum.Marker{Label: "bossStatusNotBoss"}},
	{Value: SemiBoss, Name: "SemiBoss", Filter: &enum.Marker{Label: "bossStatusSemiBoss"}},
	{Value: FullBoss, Name: "FullBoss", Filter: &enum.Marker{Label: "bossStatusFullBoss"}},
}

func (b BossStatus) String() string               { return BossStatuses.String(b) }
func (b BossStatus) MarshalText() ([]byte, error) { return []byte(b.String()), nil }
func (b *BossStatus) UnmarshalText(t []byte) error {
	return BossStatuses.UnmarshalText(t, b)
}

// TutorialStatus is derived from the presence of tutorial videos.
type TutorialStatus int

// TutorialStatus values.
const (
	HasTutorial TutorialStatus = iota
	NoTutorial
)

// TutorialStatuses lists the TutorialStatus members.
var TutorialStatuses = enum.Table[TutorialStatus]{
	{Value: HasTutorial, Name: "HasTutorial", Filter: &enum.Marker{Label: "tutorialAvailable"}},
	{Value: NoTutorial, Name: "NoTutorial", Filter: &enum.Marker{Label: "tutorialMissing"}},
}

func (s TutorialStatus) String() string { return TutorialStatuses.String(s) }

// Quirks is a set of gameplay peculiarities a module may have.
type Quirks int

// Quirk bits.
const (
	SolvesAtEnd Quirks = 1 << iota
	NeedsOtherSolves
	SolvesBeforeSome
	SolvesWithOthers
	WillSolveSuddenly
	PseudoNeedy
	TimeDependent
	NeedsImmediateAttention
	InstantDeath
)

// QuirkFlags lists the Quirks bits.
var QuirkFlags = enum.Table[Quirks]{
	{Value: SolvesAtEnd, Name: "SolvesAtEnd", Filter: &enum.Marker{Label: "quirkSolvesLater", Explain: "quirkSolvesLaterExplain"}},
	{Value: NeedsOtherSolves, Name: "NeedsOtherSolves", Filter: &enum.Marker{Label: "quirkNeedsSolves", Explain: "quirkNeedsSolvesExplain"}},
	{Value: SolvesBeforeSome, Name: "SolvesBeforeSome", Filter: &enum.Marker{Label: "quirkSolvesBefore", Explain: "quirkSolvesBeforeExplain"}},
	{Value: SolvesWithOthers, Name: "SolvesWithOthers", Filter: &enum.Marker{Label: "quirkSolvesWithOthers", Explain: "quirkSolvesWithOthersExplain"}},
	{Value: WillSolveSuddenly, Name: "WillSolveSuddenly", Filter: &enum.Marker{Label: "quirkWillSolveSuddenly", Explain: "quirkWillSolveSuddenlyExplain"}},
	{Value: PseudoNeedy, Name: "PseudoNeedy", Filter: &enum.Marker{Label: "quirkPseudoNeedy", Explain: "quirkPseudoNeedyExplain"}},
	{Value: TimeDependent, Name: "TimeDependent", Filter: &enum.Marker{Label: "quirkTimeDependent", Explain: "quirkTimeDependentExplain"}},
	{Value: NeedsImmediateAttention, Name: "NeedsImmediateAttention", Filter: &enum.Marker{Label: "quirkNeedsImmediateAttention", Explain: "quirkNeedsImmediateAttentionExplain"}},
	{Value: InstantDeath, Name: "InstantDeath", Filter: &enum.Marker{Label: "quirkInstantDeath", Explain: "quirkInstantDeathExplain"}},
}

func (q Quirks) String() string { return QuirkFlags.FormatFlags(q) }

// MarshalText writes the quirks as a comma separated list of names.
func (q Quirks) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

// UnmarshalText parses a comma separated list of quirk names.
func (q *Quirks) UnmarshalText(b []byte) error {
	mask, err := QuirkFlags.ParseFlags(string(b))
	if err != nil {
		return err
	}
	*q = mask
	return nil
}
