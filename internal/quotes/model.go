package quotes

import "strings"

// Occasion is a top-level category or a SPECIAL subcategory.
type Occasion string

const (
	Birthday        Occasion = "BIRTHDAY"
	Marriage        Occasion = "MARRIAGE"
	Relationship    Occasion = "RELATIONSHIP"
	Jyanti          Occasion = "JYANTI"
	Divas           Occasion = "DIVAS"
	Festivals       Occasion = "FESTIVALS"
	NewMembers      Occasion = "NEW_MEMBERS"
	MarriageDateFix Occasion = "MARRIAGE_DATE_FIX"
)

// HasSelfTemplates reports whether the occasion has first-person templates
// used when the story is written about oneself.
func (o Occasion) HasSelfTemplates() bool {
	return o == Birthday || o == Marriage || o == Relationship
}

// SplitsAudience reports whether the occasion has separate forMe/forOther sets.
func (o Occasion) SplitsAudience() bool {
	return o == NewMembers || o == MarriageDateFix
}

type Audience string

const (
	Self  Audience = "self"
	Other Audience = "other"
)

// AudienceFor maps the isForSelf flag of a celebration.
func AudienceFor(isForSelf bool) Audience {
	if isForSelf {
		return Self
	}
	return Other
}

type Language string

const (
	Hindi   Language = "hindi"
	English Language = "english"
)

// ParseLanguage defaults to Hindi for anything that is not English.
func ParseLanguage(s string) Language {
	if strings.EqualFold(strings.TrimSpace(s), string(English)) {
		return English
	}
	return Hindi
}

// Template indexes run from MinIndex to MaxIndex; AIIndex selects the
// generated quote instead of a template.
const (
	MinIndex = 1
	MaxIndex = 3
	AIIndex  = 4
)

// Key addresses one template.
type Key struct {
	Occasion Occasion `json:"occasion"`
	Audience Audience `json:"audience"`
	Index    int      `json:"index"`
	Language Language `json:"language"`
}

type Template struct {
	Key
	Text string `json:"text"`
}

// PartnerRole is who the creator is in a self-written anniversary story.
type PartnerRole string

const (
	Husband       PartnerRole = "HUSBAND"
	Wife          PartnerRole = "WIFE"
	MalePartner   PartnerRole = "MALE_PARTNER"
	FemalePartner PartnerRole = "FEMALE_PARTNER"
)
