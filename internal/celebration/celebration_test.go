package celebration

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/jashn/internal/ai"
	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/quotes"
)

func TestNewDefaults(t *testing.T) {
	d := New("")
	assert.Equal(t, Special, d.Category)
	assert.Equal(t, ModeFree, d.Mode)
	assert.True(t, d.IsForSelf)
	assert.Equal(t, "hindi", d.SelectedLanguage)
	assert.Equal(t, 1, d.SelectedTemplate)
	assert.Equal(t, quotes.Husband, d.WhoAreYou)
}

func TestOrdinal(t *testing.T) {
	cases := map[string]string{
		"1": "1st", "2": "2nd", "3": "3rd", "4": "4th",
		"11": "11th", "12": "12th", "13": "13th",
		"21": "21st", "22": "22nd", "23": "23rd", "25": "25th",
		"100": "100th", "101": "101st", "111": "111th", "112": "112th",
		"0": "0th", "abc": "abcth", "3rd": "3rdrd",
	}
	for in, want := range cases {
		assert.Equal(t, want, Ordinal(in), in)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		data Data
		want string
	}{
		{"anniversary", Data{Category: quotes.Marriage, Count: "25"}, "Happy 25th Anniversary"},
		{"relationship", Data{Category: quotes.Relationship, Count: "2"}, "Happy 2nd Anniversary"},
		{"birthday", Data{Category: quotes.Birthday, Count: "21"}, "Happy 21st Birthday"},
		{"birthday without count", Data{Category: quotes.Birthday}, "Happy  Birthday"},
		{"self birthday", Data{Category: quotes.Birthday, IsForSelf: true, Count: "30"}, ""},
		{"festival", Data{Category: Special, SpecialSubcategory: quotes.Festivals, OccasionName: " Diwali "}, "Happy Diwali"},
		{"festival with happy", Data{Category: Special, SpecialSubcategory: quotes.Festivals, OccasionName: "happy holi"}, "happy holi"},
		{"jayanti", Data{Category: Special, SpecialSubcategory: quotes.Jyanti, OccasionName: "Gandhi Jayanti"}, "Gandhi Jayanti"},
		{"new member hindi", Data{Category: Special, SpecialSubcategory: quotes.NewMembers, SelectedLanguage: "hindi"}, "जश्न करने का समय"},
		{"wedding date english", Data{Category: Special, SpecialSubcategory: quotes.MarriageDateFix, SelectedLanguage: "english"}, "Let's Celebration Time"},
		{"unknown category", Data{Category: "GRADUATION", Occasion: "Graduation"}, "Graduation"},
		{"unknown empty", Data{Category: "GRADUATION"}, "Celebration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.data.Title())
		})
	}
}

func TestDisplayNameAndFilename(t *testing.T) {
	d := Data{Category: Special, SpecialSubcategory: quotes.NewMembers, FatherName: "Ravi", MotherName: "Sita"}
	assert.Equal(t, "Ravi & Sita", d.DisplayName())
	assert.Equal(t, "Jashn-Ravi-&-Sita.jpg", d.PosterFilename())

	d = Data{Category: Special, SpecialSubcategory: quotes.NewMembers}
	assert.Equal(t, "Our Family", d.DisplayName())

	d = Data{Category: Special, SpecialSubcategory: quotes.MarriageDateFix, Name2: "Meera"}
	assert.Equal(t, "Meera", d.DisplayName())
	d.Name2 = ""
	assert.Equal(t, "The Couple", d.DisplayName())

	d = Data{Category: Special, SpecialSubcategory: quotes.Festivals, OccasionName: "Diwali"}
	assert.Equal(t, "", d.DisplayName())
	assert.Equal(t, "Jashn-Celebration.jpg", d.PosterFilename())

	d = Data{Category: quotes.Birthday, IsForSelf: true, Names: "Asha"}
	assert.Equal(t, "", d.DisplayName())

	d = Data{Category: quotes.Marriage, Names: "Asha  Rao"}
	assert.Equal(t, "Jashn-Asha--Rao.jpg", d.PosterFilename())
}

func TestPosterFilenameStaysInDirectory(t *testing.T) {
	for names, want := range map[string]string{
		"../../etc/passwd": "Jashn-..-..-etc-passwd.jpg",
		`..\boot\ini`:      "Jashn-..-boot-ini.jpg",
		"/abs":             "Jashn--abs.jpg",
	} {
		d := Data{Category: quotes.Birthday, Names: names}
		got := d.PosterFilename()
		assert.Equal(t, want, got, names)
		assert.Equal(t, got, filepath.Base(filepath.Join("out", got)), names)
	}
}

func TestTermLineAndProfile(t *testing.T) {
	d := Data{Category: quotes.Marriage, IsForSelf: true, EmotionalTerm: "My Queen", WhoAreYou: quotes.Wife}
	assert.Equal(t, "My Queen", d.TermLine())
	assert.Equal(t, "From your wife", d.SelfProfileText())

	d = Data{Category: quotes.Relationship, RelationLabel: "Best Friends", WhoAreYou: quotes.MalePartner}
	assert.Equal(t, "Best Friends", d.TermLine())
	assert.Equal(t, "", d.SelfProfileText())
	d.IsForSelf = true
	assert.Equal(t, "Your love", d.SelfProfileText())

	d = Data{Category: Special, SpecialSubcategory: quotes.MarriageDateFix, CoupleTerm: "Baby On Way", BabyTerm: "My Baby"}
	assert.Equal(t, "Baby On Way", d.TermLine())

	d = Data{Category: quotes.Birthday, BabyTerm: "My Baby"}
	assert.Equal(t, "", d.TermLine())
}

func TestLayout(t *testing.T) {
	for _, sub := range []quotes.Occasion{quotes.Jyanti, quotes.Divas, quotes.Festivals} {
		d := Data{Category: Special, SpecialSubcategory: sub}
		assert.Equal(t, imagepkg.LayoutSinglePanel, d.Layout())
		assert.Equal(t, ai.PaletteSinglePanel, d.PaletteKind())
	}
	for _, d := range []Data{
		{Category: Special, SpecialSubcategory: quotes.NewMembers},
		{Category: quotes.Marriage},
		{Category: quotes.Birthday, SpecialSubcategory: quotes.Festivals},
	} {
		assert.Equal(t, imagepkg.LayoutCollage, d.Layout())
		assert.Equal(t, ai.PaletteCollage, d.PaletteKind())
	}
}

func TestCurrentQuote(t *testing.T) {
	lib := quotes.NewLibrary()

	d := Data{Category: quotes.Marriage, RelationLabel: "Mom & Dad", Names: "Asha", Count: "25", SelectedLanguage: "english", SelectedTemplate: 1}
	assert.Equal(t, "Heartfelt congratulations and best wishes to Mom & Dad on 25 years of this sacred bond.", d.CurrentQuote(lib))

	d = Data{Category: Special, SpecialSubcategory: quotes.NewMembers, IsForSelf: true, SelectedLanguage: "english", SelectedTemplate: 1, OccasionDate: "1 May"}
	assert.Equal(t, "Welcoming a new member to our family on 1 May at [Time]. Delighted to share this joy with you.", d.CurrentQuote(lib))

	d = Data{Category: Special, SelectedTemplate: 1}
	assert.Equal(t, PreviewPlaceholder, d.CurrentQuote(lib))
	assert.False(t, d.SyncMessage(lib))

	d = Data{Category: quotes.Birthday, Names: "Asha", SelectedTemplate: quotes.AIIndex, GeneratedAIQuote: "Cheers to [Name]!"}
	assert.Equal(t, "Cheers to Asha!", d.CurrentQuote(lib))
	assert.True(t, d.SyncMessage(lib))
	assert.Equal(t, "Cheers to Asha!", d.CustomMessage)
}

func TestFinalize(t *testing.T) {
	p := quotes.NewTermPicker(func(int) int { return 0 })

	d := Data{Category: quotes.Marriage, IsForSelf: true, WhoAreYou: quotes.Husband}
	d.Finalize(p)
	assert.Equal(t, "My Beautiful Wife", d.EmotionalTerm)
	assert.Empty(t, d.BabyTerm)

	d = Data{Category: quotes.Birthday, IsForSelf: true, Names: "Asha"}
	d.Finalize(p)
	assert.Equal(t, "Asha", d.CreatorName)

	d = Data{Category: Special, SpecialSubcategory: quotes.NewMembers, IsForSelf: true, MotherName: "Sita"}
	d.Finalize(p)
	assert.Equal(t, "Sita", d.CreatorName)
	assert.Equal(t, "My Baby", d.BabyTerm)

	d = Data{Category: Special, SpecialSubcategory: quotes.MarriageDateFix, IsForSelf: true, CreatorName: "Me", Name1: "A"}
	d.Finalize(p)
	assert.Equal(t, "Me", d.CreatorName)
	assert.Equal(t, "Baby On Way", d.CoupleTerm)

	d = Data{Category: quotes.Marriage, Names: "Asha", EmotionalTerm: "stale"}
	d.Finalize(p)
	assert.Empty(t, d.EmotionalTerm)
	assert.Empty(t, d.CreatorName)
}

func TestDestination(t *testing.T) {
	assert.Equal(t, "premium", (&Data{Category: quotes.Birthday, Mode: ModePremium}).Destination())
	assert.Equal(t, "preview", (&Data{Category: Special, Mode: ModePremium}).Destination())
	assert.Equal(t, "preview", (&Data{Category: quotes.Birthday, Mode: ModeFree}).Destination())
}

func TestExportRequests(t *testing.T) {
	d := Data{Category: quotes.Marriage, Names: "Asha & Ravi", Count: "25", CustomMessage: "Together forever"}
	req := d.PaletteRequest()
	assert.Equal(t, ai.PaletteRequest{Occasion: "Happy 25th Anniversary", Name: "Asha & Ravi", Message: "Together forever", Quote: "Together forever"}, req)

	c := d.PosterContent()
	assert.Equal(t, "Happy 25th Anniversary", c.Title)
	assert.Equal(t, "Together forever", c.Subtitle)
	assert.Equal(t, "Asha & Ravi", c.RelationName)

	festival := Data{Category: Special, SpecialSubcategory: quotes.Festivals, OccasionName: "Diwali"}
	assert.Equal(t, "Happy Diwali", festival.PaletteRequest().Name)
}

func TestQuoteRequest(t *testing.T) {
	d := Data{Category: quotes.Relationship, RelationLabel: "Bhaiya", Names: "Asha", Count: "3", SelectedLanguage: "english"}
	req := d.QuoteRequest([]string{"old"})
	assert.Equal(t, "Bhaiya", req.TargetName)
	assert.Equal(t, ai.FlexString("3"), req.Years)
	assert.Equal(t, []string{"old"}, req.PreviousQuotes)
}

func TestDataJSONRoundTrip(t *testing.T) {
	var d Data
	require.NoError(t, json.Unmarshal([]byte(`{"category":"SPECIAL","specialSubcategory":"FESTIVALS","occasionName":"Holi","selectedTemplate":4,"photos":["a.jpg"]}`), &d))
	assert.Equal(t, quotes.Festivals, d.SpecialSubcategory)
	assert.Equal(t, 4, d.SelectedTemplate)
	assert.Equal(t, []string{"a.jpg"}, d.Photos)
}
