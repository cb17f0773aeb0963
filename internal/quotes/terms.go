package quotes

import (
	"math/rand/v2"
	"slices"
)

var (
	wifeTerms = []string{
		"My Beautiful Wife", "My Better Half", "My Life Partner",
		"My Soulmate", "My Queen", "My Everything",
		"My World", "My Love", "My Beloved Wife",
	}
	husbandTerms = []string{
		"My Handsome Husband", "My Better Half", "My Life Partner",
		"My Soulmate", "My King", "My Everything",
		"My World", "My Love", "My Beloved Husband",
	}
	girlfriendTerms = []string{
		"My Cute Girl", "My Pretty Love", "My Heart's Beat",
		"My Sweetheart", "My Jaan", "My Sunshine",
		"My Forever Crush", "My Princess", "My Baby",
	}
	boyfriendTerms = []string{
		"My Cute Boy", "My Handsome Love", "My Heart's Beat",
		"My Sweetheart", "My Jaan", "My Sunshine",
		"My Forever Crush", "My Prince", "My Baby",
	}
	babyTerms = []string{
		"My Baby", "Little One", "Tiny Human", "Sweet One", "Small Joy",
		"Pure Love", "New Life", "Little Soul", "Mini Human", "Baby Love",
		"Tiny Joy", "Little Smile", "Small Wonder", "Pure Joy", "Little Miracle",
	}
	coupleTerms = []string{
		"Baby On Way", "Baby Coming Soon", "Little One Coming",
		"New Member Coming", "Mini Human Loading", "Tiny Boss Coming",
		"Sleep Gone Soon", "Parents Upgrade Loading",
	}
)

// EmotionalTerms lists the pet names for a self-written anniversary story.
// The creator's role picks the partner's list.
func EmotionalTerms(o Occasion, role PartnerRole) []string {
	switch o {
	case Marriage:
		if role == Husband {
			return wifeTerms
		}
		return husbandTerms
	case Relationship:
		if role == MalePartner {
			return girlfriendTerms
		}
		return boyfriendTerms
	}
	return nil
}

// TermPicker draws display terms. Emotional terms never repeat the previous
// pick; baby and couple terms do not repeat until their list is exhausted.
// A TermPicker is not safe for concurrent use.
type TermPicker struct {
	intn          func(n int) int
	lastEmotional string
	usedBaby      []string
	usedCouple    []string
}

// NewTermPicker uses intn as its random source; nil means math/rand/v2.
func NewTermPicker(intn func(n int) int) *TermPicker {
	if intn == nil {
		intn = rand.IntN
	}
	return &TermPicker{intn: intn}
}

// EmotionalTerm returns "" for occasions without pet names.
func (p *TermPicker) EmotionalTerm(o Occasion, role PartnerRole) string {
	terms := EmotionalTerms(o, role)
	if len(terms) == 0 {
		return ""
	}
	available := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != p.lastEmotional {
			available = append(available, t)
		}
	}
	term := terms[0]
	if len(available) > 0 {
		term = available[p.intn(len(available))]
	}
	p.lastEmotional = term
	return term
}

func (p *TermPicker) BabyTerm() string {
	return p.drawFresh(babyTerms, &p.usedBaby)
}

func (p *TermPicker) CoupleTerm() string {
	return p.drawFresh(coupleTerms, &p.usedCouple)
}

func (p *TermPicker) drawFresh(terms []string, used *[]string) string {
	available := make([]string, 0, len(terms))
	for _, t := range terms {
		if !slices.Contains(*used, t) {
			available = append(available, t)
		}
	}
	if len(available) == 0 {
		*used = (*used)[:0]
		available = append(available, terms...)
	}
	term := available[p.intn(len(available))]
	*used = append(*used, term)
	return term
}
