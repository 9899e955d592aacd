// Package catalog holds the module catalog that the filters evaluate.
package catalog

// Module is one entry of the catalog.
type Module struct {
	Name          string        `json:"Name"`
	ModuleID      string        `json:"ModuleID"`
	Type          ModuleType    `json:"Type"`
	Origin        Origin        `json:"Origin"`
	Compatibility Compatibility `json:"Compatibility"`

	DefuserDifficulty *Difficulty `json:"DefuserDifficulty,omitempty"`
	ExpertDifficulty  *Difficulty `json:"ExpertDifficulty,omitempty"`

	TwitchPlaysScore *float64                    `json:"TwitchPlaysScore,omitempty"`
	RuleSeedSupport  *Support                    `json:"RuleSeedSupport,omitempty"`
	Souvenir         *SouvenirInfo               `json:"Souvenir,omitempty"`
	MysteryModule    *MysteryModuleCompatibility `json:"MysteryModule,omitempty"`
	BossStatus       *BossStatus                 `json:"BossStatus,omitempty"`
	TutorialVideos   []TutorialVideo             `json:"TutorialVideos,omitempty"`
	Quirks           Quirks                      `json:"Quirks,omitempty"`
}

// SouvenirInfo describes Souvenir support for a module.
type SouvenirInfo struct {
	Status      SouvenirStatus `json:"Status"`
	Explanation string         `json:"Explanation,omitempty"`
}

// TutorialVideo links to a tutorial in some language.
type TutorialVideo struct {
	Language string `json:"Language"`
	URL      string `json:"Url"`
}

// TwitchPlays reports Twitch Plays support. A module supports Twitch Plays
// exactly when it has a score.
func (m *Module) TwitchPlays() Support {
	if m.TwitchPlaysScore == nil {
		return NotSupported
	}
	return Supported
}

// SouvenirState returns the Souvenir status. Modules without Souvenir
// information are Unexamined when regular and NotACandidate otherwise.
func (m *Module) SouvenirState() SouvenirStatus {
	if m.Souvenir != nil {
		return m.Souvenir.Status
	}
	if m.Type == Regular {
		return SouvenirUnexamined
	}
	return SouvenirNotACandidate
}

// Tutorial reports whether the module has any tutorial video.
func (m *Module) Tutorial() TutorialStatus {
	if len(m.TutorialVideos) == 0 {
		return NoTutorial
	}
	return HasTutorial
}
