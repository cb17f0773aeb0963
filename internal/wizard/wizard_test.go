package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/jashn/internal/celebration"
	"github.com/youruser/jashn/internal/quotes"
	"github.com/youruser/jashn/internal/store"
)

type recordingPersister struct {
	got []celebration.Data
	err error
}

func (p *recordingPersister) Persist(_ context.Context, d *celebration.Data) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.got = append(p.got, *d)
	return "story-1", nil
}

func newWizard(t *testing.T, category quotes.Occasion) (*Wizard, *History, *recordingPersister) {
	t.Helper()
	h := NewHistory(Marker{}, Marker{})
	p := &recordingPersister{}
	w := New(celebration.New(category), h, quotes.NewLibrary(), quotes.NewTermPicker(func(int) int { return 0 }), p)
	return w, h, p
}

func TestStepFlow(t *testing.T) {
	assert.Equal(t, []int{0, 2, 3, 4, 5}, StepFlow(celebration.Special))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, StepFlow(quotes.Birthday))
}

func TestHistoryPushTruncatesForwardEntries(t *testing.T) {
	h := NewHistory(Marker{})
	var popped []Marker
	h.Listen(func(m Marker) { popped = append(popped, m) })

	h.Push(Marker{Wizard: true, Step: 0})
	h.Push(Marker{Wizard: true, Step: 1})
	h.Push(Marker{Wizard: true, Step: 2})
	require.True(t, h.Back())
	require.True(t, h.Back())
	h.Push(Marker{Wizard: true, Step: 1})

	assert.Equal(t, 3, h.Len())
	assert.False(t, h.Forward())
	assert.Equal(t, []Marker{{Wizard: true, Step: 1}, {Wizard: true, Step: 0}}, popped)

	require.True(t, h.Back())
	require.True(t, h.Back())
	assert.False(t, h.Back())
	assert.Equal(t, Marker{}, h.Current())
}

func TestWizardMountStampsStepZero(t *testing.T) {
	_, h, _ := newWizard(t, quotes.Birthday)
	assert.Equal(t, Marker{Wizard: true, Step: 0}, h.Current())
	assert.Equal(t, 2, h.Len())
}

func TestWizardAdvanceAndBack(t *testing.T) {
	w, h, _ := newWizard(t, quotes.Birthday)
	ctx := context.Background()

	s, err := w.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, StepDetails, s.StepValue)

	_, err = w.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, Marker{Wizard: true, Step: 2}, h.Current())

	s, err = w.RequestBack()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Step)

	// back then advance again must not leave a duplicate marker behind
	_, err = w.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Len())

	s, err = w.Forward()
	assert.ErrorIs(t, err, ErrNoHistory)
	assert.Equal(t, 2, s.Step)
}

func TestWizardOscillationKeepsOneMarkerPerStep(t *testing.T) {
	w, h, _ := newWizard(t, celebration.Special)
	ctx := context.Background()
	for range 3 {
		_, err := w.Advance(ctx)
		require.NoError(t, err)
	}
	for range 10 {
		_, err := w.RequestBack()
		require.NoError(t, err)
		_, err = w.Forward()
		require.NoError(t, err)
		_, err = w.RequestBack()
		require.NoError(t, err)
		_, err = w.Advance(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, w.State().Step)
	assert.Equal(t, 5, h.Len())
}

func TestWizardBackFromFirstStepExits(t *testing.T) {
	w, _, _ := newWizard(t, quotes.Birthday)
	s, err := w.RequestBack()
	require.NoError(t, err)
	assert.True(t, s.Exited)

	_, err = w.Advance(context.Background())
	assert.ErrorIs(t, err, ErrFinished)
}

func TestWizardStepChangesOnlyThroughHistory(t *testing.T) {
	w, h, _ := newWizard(t, quotes.Birthday)
	_, err := w.Advance(context.Background())
	require.NoError(t, err)

	// a pop signal from any source moves the wizard
	require.True(t, h.Back())
	assert.Equal(t, 0, w.State().Step)
}

func TestWizardFinishPersists(t *testing.T) {
	w, _, p := newWizard(t, quotes.Marriage)
	_, err := w.Update(func(d *celebration.Data) error {
		d.Names = "Asha"
		d.Mode = celebration.ModePremium
		return nil
	})
	require.NoError(t, err)

	ctx := context.Background()
	var s State
	for range 5 {
		s, err = w.Advance(ctx)
		require.NoError(t, err)
	}
	assert.True(t, s.Finished)
	assert.Equal(t, "premium", s.Destination)
	assert.Equal(t, "story-1", s.StoryID)
	require.Len(t, p.got, 1)
	assert.Equal(t, "My Beautiful Wife", p.got[0].EmotionalTerm)

	_, err = w.Advance(ctx)
	assert.ErrorIs(t, err, ErrFinished)
	_, err = w.RequestBack()
	assert.ErrorIs(t, err, ErrFinished)
}

func TestWizardPersistFailureKeepsLastStep(t *testing.T) {
	w, _, p := newWizard(t, quotes.Birthday)
	p.err = errors.New("disk full")
	ctx := context.Background()
	for range 4 {
		_, err := w.Advance(ctx)
		require.NoError(t, err)
	}
	s, err := w.Advance(ctx)
	assert.Error(t, err)
	assert.False(t, s.Finished)
	assert.Equal(t, 4, s.Step)
}

func TestWizardMessageStepSyncsQuote(t *testing.T) {
	w, _, _ := newWizard(t, quotes.Birthday)
	_, err := w.Update(func(d *celebration.Data) error {
		d.IsForSelf = false
		d.Names = "Asha"
		d.SelectedLanguage = "english"
		return nil
	})
	require.NoError(t, err)

	ctx := context.Background()
	for range 3 {
		_, err = w.Advance(ctx)
		require.NoError(t, err)
	}
	s := w.State()
	assert.Equal(t, StepMessage, s.StepValue)
	assert.Equal(t, "Heartiest congratulations to Asha on this special birthday, with wishes for happiness and a bright future ahead.", s.Data.CustomMessage)

	s, err = w.Update(func(d *celebration.Data) error {
		d.SelectedTemplate = quotes.AIIndex
		d.GeneratedAIQuote = "Shine on, [Name]!"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Shine on, Asha!", s.Data.CustomMessage)
}

func TestWizardUpdateErrorLeavesDataUntouched(t *testing.T) {
	w, _, _ := newWizard(t, quotes.Birthday)
	_, err := w.Update(func(d *celebration.Data) error {
		d.Names = "half written"
		return errors.New("bad input")
	})
	assert.Error(t, err)
	assert.Empty(t, w.State().Data.Names)
}

func TestCategoryChangeRederivesFlow(t *testing.T) {
	w, _, _ := newWizard(t, celebration.Special)
	s := w.State()
	assert.Equal(t, StepSubcategory, s.StepValue)

	s, err := w.Update(func(d *celebration.Data) error {
		d.Category = quotes.Birthday
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StepStyle, s.StepValue)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Flow)
}

func TestStorePersister(t *testing.T) {
	st := store.NewMemoryStore()
	d := celebration.New(celebration.Special)
	d.BabyTerm = "Little One"
	_, err := StorePersister{Store: st}.Persist(context.Background(), d)
	require.NoError(t, err)

	var term string
	require.NoError(t, st.Get(store.KeyBabyTerm, &term))
	assert.Equal(t, "Little One", term)
	var got celebration.Data
	require.NoError(t, st.Get(store.KeyCelebration, &got))
	assert.Equal(t, celebration.Special, got.Category)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(quotes.NewLibrary(), nil, time.Hour)
	id, w := r.Start(quotes.Relationship)
	require.NotEmpty(t, id)

	got, ok := r.Get(id)
	require.True(t, ok)
	assert.Same(t, w, got)
	assert.Equal(t, quotes.Relationship, got.State().Data.Category)

	r.Remove(id)
	_, ok = r.Get(id)
	assert.False(t, ok)
}

func TestGeneratedQuotesFeedNextRequest(t *testing.T) {
	w, _, _ := newWizard(t, quotes.Birthday)
	_, err := w.Update(func(d *celebration.Data) error {
		d.IsForSelf = false
		d.RelationLabel = "Didi"
		d.SelectedTemplate = quotes.AIIndex
		return nil
	})
	require.NoError(t, err)

	assert.Empty(t, w.QuoteRequest().PreviousQuotes)
	_, err = w.SetGeneratedQuote("first")
	require.NoError(t, err)
	s, err := w.SetGeneratedQuote("second")
	require.NoError(t, err)
	assert.Equal(t, "second", s.Data.GeneratedAIQuote)

	req := w.QuoteRequest()
	assert.Equal(t, []string{"first", "second"}, req.PreviousQuotes)
	assert.Equal(t, "Didi", req.TargetName)
	assert.Equal(t, "BIRTHDAY", req.Occasion)
}
