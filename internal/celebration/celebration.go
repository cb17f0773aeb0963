package celebration

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/youruser/jashn/internal/ai"
	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/quotes"
)

// Special is the umbrella category whose concrete occasion lives in
// Data.SpecialSubcategory.
const Special quotes.Occasion = "SPECIAL"

type Mode string

const (
	ModeFree    Mode = "FREE"
	ModePremium Mode = "PREMIUM"
)

// PreviewPlaceholder is what CurrentQuote returns when no template set
// matches the record yet.
const PreviewPlaceholder = "Enter details to preview"

// Data is the celebration record filled in by the wizard and read by the
// presentation session.
type Data struct {
	Category           quotes.Occasion    `json:"category"`
	Mode               Mode               `json:"mode"`
	IsForSelf          bool               `json:"isForSelf"`
	Names              string             `json:"names"`
	Count              string             `json:"count"`
	RelationLabel      string             `json:"relationLabel"`
	Occasion           string             `json:"occasion"`
	CreatorName        string             `json:"creatorName"`
	CreatorPhoto       string             `json:"creatorPhoto,omitempty"`
	Photos             []string           `json:"photos"`
	Music              string             `json:"music,omitempty"`
	CustomMessage      string             `json:"customMessage"`
	Theme              string             `json:"theme"`
	SelectedLanguage   string             `json:"selectedLanguage"`
	SelectedTemplate   int                `json:"selectedTemplate"`
	GeneratedAIQuote   string             `json:"generatedAIQuote"`
	SpecialSubcategory quotes.Occasion    `json:"specialSubcategory"`
	OccasionName       string             `json:"occasionName"`
	OccasionDate       string             `json:"occasionDate"`
	OccasionTime       string             `json:"occasionTime"`
	FatherName         string             `json:"fatherName"`
	MotherName         string             `json:"motherName"`
	Name1              string             `json:"name1"`
	Name2              string             `json:"name2"`
	WhoAreYou          quotes.PartnerRole `json:"whoAreYou"`
	StoryID            string             `json:"storyId,omitempty"`

	EmotionalTerm string `json:"emotionalTerm,omitempty"`
	BabyTerm      string `json:"babyTerm,omitempty"`
	CoupleTerm    string `json:"coupleTerm,omitempty"`
}

// New returns a record with the wizard's starting values. An empty category
// means SPECIAL.
func New(category quotes.Occasion) *Data {
	if category == "" {
		category = Special
	}
	return &Data{
		Category:         category,
		Mode:             ModeFree,
		IsForSelf:        true,
		Photos:           []string{},
		Theme:            "ROYAL",
		SelectedLanguage: string(quotes.Hindi),
		SelectedTemplate: quotes.MinIndex,
		WhoAreYou:        quotes.Husband,
	}
}

func (d *Data) isSpecial(sub quotes.Occasion) bool {
	return d.Category == Special && d.SpecialSubcategory == sub
}

func (d *Data) isAnniversary() bool {
	return d.Category == quotes.Marriage || d.Category == quotes.Relationship
}

// TemplateOccasion is the key into the template library.
func (d *Data) TemplateOccasion() quotes.Occasion {
	if d.Category == Special {
		return d.SpecialSubcategory
	}
	return d.Category
}

// Values is the placeholder substitution table for this record.
func (d *Data) Values() quotes.Values {
	name := d.Names
	if d.isAnniversary() && !d.IsForSelf && d.RelationLabel != "" {
		name = d.RelationLabel
	}
	return quotes.Values{
		quotes.TokenName:       name,
		quotes.TokenYears:      d.Count,
		quotes.TokenAge:        d.Count,
		quotes.TokenNaam:       d.OccasionName,
		quotes.TokenDivasName:  d.OccasionName,
		quotes.TokenFestival:   d.OccasionName,
		quotes.TokenDate:       d.OccasionDate,
		quotes.TokenTime:       d.OccasionTime,
		quotes.TokenFatherName: d.FatherName,
		quotes.TokenMotherName: d.MotherName,
		quotes.TokenName1:      d.Name1,
		quotes.TokenName2:      d.Name2,
	}
}

// TemplatePreview fills template n (1..3) for this record.
func (d *Data) TemplatePreview(lib *quotes.Library, n int) string {
	t, ok := lib.Lookup(quotes.Key{
		Occasion: d.TemplateOccasion(),
		Audience: quotes.AudienceFor(d.IsForSelf),
		Index:    n,
		Language: quotes.ParseLanguage(d.SelectedLanguage),
	})
	if !ok {
		if n < quotes.MinIndex || n > quotes.MaxIndex {
			return ""
		}
		return PreviewPlaceholder
	}
	return quotes.Fill(t.Text, d.Values())
}

// CurrentQuote is the message selected in the wizard: a filled template or
// the filled generated quote.
func (d *Data) CurrentQuote(lib *quotes.Library) string {
	if d.SelectedTemplate == quotes.AIIndex {
		return quotes.Fill(d.GeneratedAIQuote, d.Values())
	}
	return d.TemplatePreview(lib, d.SelectedTemplate)
}

// SyncMessage copies the current quote into CustomMessage unless nothing
// matches yet. It reports whether the message changed.
func (d *Data) SyncMessage(lib *quotes.Library) bool {
	q := d.CurrentQuote(lib)
	if q == "" || q == PreviewPlaceholder || q == d.CustomMessage {
		return false
	}
	d.CustomMessage = q
	return true
}

// Finalize applies the defaults taken when the wizard completes: the term
// picks and the creator name for self-written stories.
func (d *Data) Finalize(p *quotes.TermPicker) {
	d.EmotionalTerm, d.BabyTerm, d.CoupleTerm = "", "", ""
	if d.isAnniversary() && d.IsForSelf {
		d.EmotionalTerm = p.EmotionalTerm(d.Category, d.WhoAreYou)
	}
	switch d.SpecialSubcategory {
	case quotes.NewMembers:
		d.BabyTerm = p.BabyTerm()
	case quotes.MarriageDateFix:
		d.CoupleTerm = p.CoupleTerm()
	}

	if !d.IsForSelf || d.CreatorName != "" {
		return
	}
	switch {
	case d.Category == quotes.Birthday:
		d.CreatorName = d.Names
	case d.SpecialSubcategory == quotes.NewMembers:
		d.CreatorName = firstNonEmpty(d.FatherName, d.MotherName)
	case d.SpecialSubcategory == quotes.MarriageDateFix:
		d.CreatorName = firstNonEmpty(d.Name1, d.Name2)
	}
}

// Destination is where the client goes after the wizard: "premium" for
// premium non-special stories, otherwise "preview".
func (d *Data) Destination() string {
	if d.Mode == ModePremium && d.Category != Special {
		return "premium"
	}
	return "preview"
}

// Title is the poster heading.
func (d *Data) Title() string {
	if d.Category == Special {
		switch d.SpecialSubcategory {
		case quotes.NewMembers, quotes.MarriageDateFix:
			if quotes.Language(d.SelectedLanguage) == quotes.Hindi {
				return "जश्न करने का समय"
			}
			return "Let's Celebration Time"
		case quotes.Festivals:
			return festivalTitle(d.OccasionName)
		}
		return d.OccasionName
	}
	if d.Category == quotes.Birthday && d.IsForSelf {
		return ""
	}

	count := ""
	if d.Count != "" {
		count = Ordinal(d.Count)
	}
	switch {
	case d.Category == quotes.Birthday:
		return "Happy " + count + " Birthday"
	case d.isAnniversary():
		return "Happy " + count + " Anniversary"
	}
	return firstNonEmpty(d.Occasion, "Celebration")
}

func festivalTitle(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(name), "happy") {
		return name
	}
	return "Happy " + name
}

// DisplayName is who the poster is for.
func (d *Data) DisplayName() string {
	if d.Category == quotes.Birthday && d.IsForSelf {
		return ""
	}
	if d.Category == Special {
		switch d.SpecialSubcategory {
		case quotes.NewMembers:
			return joinPair(d.FatherName, d.MotherName, "Our Family")
		case quotes.MarriageDateFix:
			return joinPair(d.Name1, d.Name2, "The Couple")
		}
		return ""
	}
	return d.Names
}

func joinPair(a, b, none string) string {
	switch {
	case a != "" && b != "":
		return a + " & " + b
	case a != "":
		return a
	case b != "":
		return b
	}
	return none
}

// TermLine is the small line under the display name.
func (d *Data) TermLine() string {
	if d.isAnniversary() {
		if d.IsForSelf {
			return d.EmotionalTerm
		}
		return d.RelationLabel
	}
	if d.Category == Special {
		switch d.SpecialSubcategory {
		case quotes.NewMembers:
			return d.BabyTerm
		case quotes.MarriageDateFix:
			return d.CoupleTerm
		}
	}
	return ""
}

// SelfProfileText labels the creator of a self-written anniversary story.
func (d *Data) SelfProfileText() string {
	if !d.IsForSelf {
		return ""
	}
	switch {
	case d.Category == quotes.Marriage && d.WhoAreYou == quotes.Wife:
		return "From your wife"
	case d.Category == quotes.Marriage && d.WhoAreYou == quotes.Husband:
		return "From your husband"
	case d.Category == quotes.Relationship && d.WhoAreYou == quotes.FemalePartner:
		return "Your dear"
	case d.Category == quotes.Relationship && d.WhoAreYou == quotes.MalePartner:
		return "Your love"
	}
	return ""
}

// Layout picks the single panel poster for tributes, days and festivals.
func (d *Data) Layout() imagepkg.Layout {
	if d.Category == Special {
		switch d.SpecialSubcategory {
		case quotes.Jyanti, quotes.Divas, quotes.Festivals:
			return imagepkg.LayoutSinglePanel
		}
	}
	return imagepkg.LayoutCollage
}

func (d *Data) PaletteKind() ai.PaletteKind {
	return ai.PaletteKindFor(d.Layout())
}

// PaletteRequest is what the export asks the styling endpoint for.
func (d *Data) PaletteRequest() ai.PaletteRequest {
	title := d.Title()
	return ai.PaletteRequest{
		Occasion: title,
		Name:     firstNonEmpty(d.DisplayName(), title),
		Message:  d.CustomMessage,
		Quote:    d.CustomMessage,
	}
}

// PosterContent is the text part of the export request; images are added
// by the caller once loaded.
func (d *Data) PosterContent() imagepkg.Content {
	return imagepkg.Content{
		Title:        d.Title(),
		Subtitle:     d.CustomMessage,
		RelationName: d.DisplayName(),
		TermLine:     d.TermLine(),
	}
}

// PosterFilename is the download name of the exported JPEG. It is always a
// single path element.
func (d *Data) PosterFilename() string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '/' || r == '\\' || r == 0 {
			return '-'
		}
		return r
	}, d.DisplayName())
	return "Jashn-" + firstNonEmpty(name, "Celebration") + ".jpg"
}

// QuoteRequest builds the generation request for the current record.
func (d *Data) QuoteRequest(previous []string) ai.QuoteRequest {
	target := d.RelationLabel
	if d.IsForSelf {
		target = d.Names
	}
	return ai.QuoteRequest{
		Occasion:       string(d.Category),
		Language:       d.SelectedLanguage,
		IsForSelf:      d.IsForSelf,
		Subcategory:    string(d.SpecialSubcategory),
		TargetName:     target,
		Years:          ai.FlexString(d.Count),
		Age:            ai.FlexString(d.Count),
		OccasionName:   d.OccasionName,
		PreviousQuotes: previous,
	}
}

var ordinalSuffixes = [4]string{"th", "st", "nd", "rd"}

// Ordinal appends the English ordinal suffix to n as typed, e.g. "25th".
// Text that does not start with a number gets "th".
func Ordinal(n string) string {
	v := leadingInt(n)
	if i := (v%100 - 20) % 10; i > 0 && i < 4 {
		return n + ordinalSuffixes[i]
	}
	if i := v % 100; i > 0 && i < 4 {
		return n + ordinalSuffixes[i]
	}
	return n + ordinalSuffixes[0]
}

func leadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
