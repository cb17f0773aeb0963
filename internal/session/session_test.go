package session

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/jashn/internal/ai"
	"github.com/youruser/jashn/internal/celebration"
	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/quotes"
	"github.com/youruser/jashn/internal/store"
)

var fixedNow = time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func saved(t *testing.T, d *celebration.Data) store.Store {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(store.KeyCelebration, d))
	return st
}

func TestOpenWithoutCelebration(t *testing.T) {
	_, err := Open(store.NewMemoryStore(), clock)
	assert.ErrorIs(t, err, ErrNoCelebration)
}

func TestOpenAssignsStoryID(t *testing.T) {
	st := saved(t, celebration.New(quotes.Marriage))
	s, err := Open(st, clock)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^story-1771061400000-[0-9a-z]{9}$`), s.StoryID())

	var d celebration.Data
	require.NoError(t, st.Get(store.KeyCelebration, &d))
	assert.Equal(t, s.StoryID(), d.StoryID)

	again, err := Open(st, clock)
	require.NoError(t, err)
	assert.Equal(t, s.StoryID(), again.StoryID())
}

func TestOpenLoadsTermsAndCounters(t *testing.T) {
	d := celebration.New(quotes.Marriage)
	d.StoryID = "story-a"
	st := saved(t, d)
	require.NoError(t, st.Set(store.KeyEmotionalTerm, "My Queen"))
	require.NoError(t, st.Set(store.KeyBalloonCount, 300))
	require.NoError(t, st.Set(store.KeyVisitorName, "Ravi"))

	s, err := Open(st, clock)
	require.NoError(t, err)
	assert.Equal(t, "My Queen", s.Data.TermLine())
	assert.Equal(t, 300, s.BalloonCount())
	assert.Equal(t, "Ravi", s.VisitorName())

	v := s.View()
	require.NotNil(t, v.Achievement)
	assert.Equal(t, "Enthusiast", v.Achievement.Name)
	assert.Equal(t, "Happy  Anniversary", v.Title)
}

func TestBirthdaySelfLineRotatesPerSession(t *testing.T) {
	d := celebration.New(quotes.Birthday)
	d.StoryID = "story-b"
	st := saved(t, d)

	s1, err := Open(st, clock)
	require.NoError(t, err)
	s2, err := Open(st, clock)
	require.NoError(t, err)
	assert.Equal(t, "It's my birthday", s1.BirthdayLine())
	assert.Equal(t, "It's my birthday", s2.BirthdayLine())

	assert.Equal(t, "My birthday today", s1.NextBirthdaySelfLine())
	for range 8 {
		s1.NextBirthdaySelfLine()
	}
	assert.Equal(t, "It's my birthday", s1.NextBirthdaySelfLine())

	d.IsForSelf = false
	s3, err := Open(saved(t, d), clock)
	require.NoError(t, err)
	assert.Empty(t, s3.BirthdayLine())
}

func TestCommentsAreScopedToStory(t *testing.T) {
	base := store.NewMemoryStore()
	a := celebration.New(quotes.Birthday)
	a.StoryID = "story-a"
	b := celebration.New(quotes.Birthday)
	b.StoryID = "story-b"

	stA := store.Prefixed(base, "a/", SharedKeys...)
	stB := store.Prefixed(base, "b/", SharedKeys...)
	require.NoError(t, stA.Set(store.KeyCelebration, a))
	require.NoError(t, stB.Set(store.KeyCelebration, b))

	sa, err := Open(stA, clock)
	require.NoError(t, err)
	sb, err := Open(stB, clock)
	require.NoError(t, err)

	_, err = sa.AddComment("   ")
	assert.ErrorIs(t, err, ErrEmptyComment)

	c, err := sa.AddComment(" Happy birthday! ")
	require.NoError(t, err)
	assert.Equal(t, Comment{
		ID:        "1771061400000",
		Name:      "Guest",
		Message:   "Happy birthday!",
		Timestamp: "2026-02-14T09:30:00.000Z",
		StoryID:   "story-a",
	}, c)

	require.NoError(t, sb.SaveVisitorName("  Meera "))
	_, err = sb.AddComment("Many happy returns")
	require.NoError(t, err)

	assert.Len(t, sa.Comments(), 1)
	require.Len(t, sb.Comments(), 1)
	assert.Equal(t, "Meera", sb.Comments()[0].Name)

	var all []Comment
	require.NoError(t, base.Get(store.KeyComments, &all))
	assert.Len(t, all, 2)

	reopened, err := Open(stA, clock)
	require.NoError(t, err)
	assert.Len(t, reopened.Comments(), 1)
}

func TestDropComments(t *testing.T) {
	st := store.NewMemoryStore()
	n, err := DropComments(st, "story-a")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, st.Set(store.KeyComments, []Comment{
		{ID: "1", Message: "hi", StoryID: "story-a"},
		{ID: "2", Message: "hey", StoryID: "story-b"},
		{ID: "3", Message: "yo", StoryID: "story-a"},
	}))
	n, err = DropComments(st, "story-a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var all []Comment
	require.NoError(t, st.Get(store.KeyComments, &all))
	require.Len(t, all, 1)
	assert.Equal(t, "story-b", all[0].StoryID)
}

func TestSaveVisitorNameRejectsBlank(t *testing.T) {
	s, err := Open(saved(t, celebration.New(quotes.Birthday)), clock)
	require.NoError(t, err)
	assert.ErrorIs(t, s.SaveVisitorName("  "), ErrEmptyName)
	assert.Empty(t, s.VisitorName())
}

func TestPopBalloon(t *testing.T) {
	st := saved(t, celebration.New(quotes.Birthday))
	s1, err := Open(st, clock)
	require.NoError(t, err)
	s2, err := Open(st, clock)
	require.NoError(t, err)

	n, err := s1.PopBalloon()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s2.PopBalloon()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAchievement(t *testing.T) {
	assert.Nil(t, Achievement(0))
	assert.Nil(t, Achievement(99))
	assert.Equal(t, "Beginner", Achievement(100).Name)
	assert.Equal(t, "Expert", Achievement(4599).Name)
	assert.Equal(t, "Ultimate", Achievement(255600).Name)
	top := Achievement(255601)
	assert.Equal(t, 10, top.Level)
	assert.True(t, top.Special)
}

type fakePalettes struct {
	kind ai.PaletteKind
	req  ai.PaletteRequest
	out  imagepkg.Palette
}

func (f *fakePalettes) GeneratePalette(_ context.Context, kind ai.PaletteKind, req ai.PaletteRequest) imagepkg.Palette {
	f.kind, f.req = kind, req
	return f.out
}

type fakeLoader struct {
	n       int
	sources []string
	limit   int
}

func (f *fakeLoader) Load(_ context.Context, sources []string, limit int) []image.Image {
	f.sources, f.limit = sources, limit
	out := make([]image.Image, 0, f.n)
	for range f.n {
		img := image.NewRGBA(image.Rect(0, 0, 40, 60))
		for i := range img.Pix {
			img.Pix[i] = 200
		}
		out = append(out, img)
	}
	return out
}

func TestExportCollage(t *testing.T) {
	d := celebration.New(quotes.Marriage)
	d.IsForSelf = false
	d.Names = "Asha & Ravi"
	d.Count = "25"
	d.CustomMessage = "We love you"
	d.Photos = []string{"a", "b", "c", "d"}
	d.StoryID = "story-x"
	s, err := Open(saved(t, d), clock)
	require.NoError(t, err)

	palettes := &fakePalettes{out: imagepkg.Palette{imagepkg.RoleBackground: "#102030"}}
	loader := &fakeLoader{n: 3}
	res, err := s.Export(context.Background(), ExportDeps{Palettes: palettes, Images: loader})
	require.NoError(t, err)

	assert.Equal(t, "Jashn-Asha-&-Ravi.jpg", res.Filename)
	assert.Equal(t, ai.PaletteCollage, palettes.kind)
	assert.Equal(t, "Happy 25th Anniversary", palettes.req.Occasion)
	assert.Equal(t, "We love you", palettes.req.Quote)
	assert.Equal(t, 5, loader.limit)
	// three loaded photos are padded with the first one to a full collage
	assert.Equal(t, imagepkg.PlacementsFor(5), res.Poster.Polaroids)

	img, err := jpeg.Decode(bytes.NewReader(res.JPEG))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1080, 1920), img.Bounds())

	r, g, b, _ := img.At(5, 5).RGBA()
	assert.InDelta(t, 0x10, r>>8, 6)
	assert.InDelta(t, 0x20, g>>8, 6)
	assert.InDelta(t, 0x30, b>>8, 6)
}

func TestExportCollageWithoutLoadedPhotos(t *testing.T) {
	d := celebration.New(quotes.Birthday)
	d.IsForSelf = false
	d.Names = "Asha"
	d.Photos = []string{"broken"}
	s, err := Open(saved(t, d), clock)
	require.NoError(t, err)

	res, err := s.Export(context.Background(), ExportDeps{Images: &fakeLoader{n: 0}})
	require.NoError(t, err)
	assert.Len(t, res.Poster.Polaroids, 2)
}

func TestPadWithFirst(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewRGBA(image.Rect(0, 0, 2, 2))

	got := padWithFirst([]image.Image{a, b}, 5)
	require.Len(t, got, 5)
	assert.Same(t, b, got[1])
	for _, img := range got[2:] {
		assert.Same(t, a, img)
	}
	assert.Empty(t, padWithFirst(nil, 5))
	assert.Len(t, padWithFirst([]image.Image{a, b, a, b, a}, 5), 5)
}

func TestExportSinglePanelWithoutDeps(t *testing.T) {
	d := celebration.New(celebration.Special)
	d.SpecialSubcategory = quotes.Festivals
	d.OccasionName = "Diwali"
	d.StoryID = "story-y"
	s, err := Open(saved(t, d), clock)
	require.NoError(t, err)

	res, err := s.Export(context.Background(), ExportDeps{})
	require.NoError(t, err)
	assert.Equal(t, "Jashn-Celebration.jpg", res.Filename)
	assert.Equal(t, imagepkg.LayoutSinglePanel, res.Poster.Layout)
	assert.Equal(t, 1080, res.Poster.Height)

	titles := res.Poster.LinesFor(imagepkg.LineTitle)
	require.NotEmpty(t, titles)
	assert.Equal(t, "Happy Diwali", titles[0].Text)

	img, err := jpeg.Decode(bytes.NewReader(res.JPEG))
	require.NoError(t, err)
	want := color.NRGBA{0xE5, 0xE5, 0xE5, 0xFF}
	r, g, b, _ := img.At(540, 400).RGBA()
	assert.InDelta(t, want.R, uint8(r>>8), 4)
	assert.InDelta(t, want.G, uint8(g>>8), 4)
	assert.InDelta(t, want.B, uint8(b>>8), 4)
}
