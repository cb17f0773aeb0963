package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/youruser/jashn/internal/ai"
	"github.com/youruser/jashn/internal/celebration"
	"github.com/youruser/jashn/internal/logger"
	"github.com/youruser/jashn/internal/quotes"
	"github.com/youruser/jashn/internal/store"
)

var (
	// ErrFinished is returned by navigation after the last step completed
	// or the user left the wizard.
	ErrFinished = errors.New("wizard finished")
	// ErrNoHistory is returned when there is no entry to move to.
	ErrNoHistory = errors.New("no history entry in that direction")
)

// Step values shown by the wizard. Only SPECIAL stories start at
// StepSubcategory; the rest start at StepStyle.
const (
	StepSubcategory = 0
	StepStyle       = 1
	StepDetails     = 2
	StepMedia       = 3
	StepMessage     = 4
	StepReview      = 5
)

// StepFlow lists the step values for a category in order.
func StepFlow(category quotes.Occasion) []int {
	if category == celebration.Special {
		return []int{StepSubcategory, StepDetails, StepMedia, StepMessage, StepReview}
	}
	return []int{StepStyle, StepDetails, StepMedia, StepMessage, StepReview}
}

// Persister stores a finished celebration. It may return the id of a
// shared story created from it.
type Persister interface {
	Persist(ctx context.Context, d *celebration.Data) (string, error)
}

// StorePersister writes the record and its chosen terms under the
// well-known keys.
type StorePersister struct {
	Store store.Store
}

func (p StorePersister) Persist(_ context.Context, d *celebration.Data) (string, error) {
	for key, v := range map[string]any{
		store.KeyCelebration:   d,
		store.KeyEmotionalTerm: d.EmotionalTerm,
		store.KeyBabyTerm:      d.BabyTerm,
		store.KeyCoupleTerm:    d.CoupleTerm,
	} {
		if err := p.Store.Set(key, v); err != nil {
			return "", fmt.Errorf("persist %s: %w", key, err)
		}
	}
	return d.StoryID, nil
}

// State is a snapshot of a wizard.
type State struct {
	Step        int              `json:"step"`
	StepValue   int              `json:"stepValue"`
	Flow        []int            `json:"flow"`
	Data        celebration.Data `json:"data"`
	Finished    bool             `json:"finished"`
	Exited      bool             `json:"exited"`
	Destination string           `json:"destination,omitempty"`
	StoryID     string           `json:"storyId,omitempty"`
}

// Wizard walks a celebration record through its step flow. The current
// index only ever changes in the history listener, so every kind of back
// navigation goes through one path.
type Wizard struct {
	mu          sync.Mutex
	data        *celebration.Data
	history     *History
	current     int
	finished    bool
	exited      bool
	destination string
	storyID     string
	quotes      []string

	lib       *quotes.Library
	picker    *quotes.TermPicker
	persister Persister
}

// New stamps the current history entry as step 0 and starts listening.
func New(data *celebration.Data, h *History, lib *quotes.Library, picker *quotes.TermPicker, p Persister) *Wizard {
	if data == nil {
		data = celebration.New("")
	}
	if picker == nil {
		picker = quotes.NewTermPicker(nil)
	}
	w := &Wizard{data: data, history: h, lib: lib, picker: picker, persister: p}
	h.Replace(Marker{Wizard: true, Step: 0})
	h.Listen(w.onPop)
	return w
}

func (w *Wizard) onPop(m Marker) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !m.Wizard {
		w.exited = true
		return
	}
	w.current = m.Step
	w.syncMessage()
}

// stepValue maps an index past the end of the flow to step 0, which can
// happen after the category changes.
func (w *Wizard) stepValue() int {
	flow := StepFlow(w.data.Category)
	if w.current < 0 || w.current >= len(flow) {
		return StepSubcategory
	}
	return flow[w.current]
}

func (w *Wizard) syncMessage() {
	if w.lib != nil && w.stepValue() == StepMessage {
		w.data.SyncMessage(w.lib)
	}
}

// Advance moves to the next step, or on the last step finalizes and
// persists the record.
func (w *Wizard) Advance(ctx context.Context) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.finished || w.exited {
		return w.state(), ErrFinished
	}

	flow := StepFlow(w.data.Category)
	if w.current < len(flow)-1 {
		w.current++
		w.history.Push(Marker{Wizard: true, Step: w.current})
		w.syncMessage()
		return w.state(), nil
	}

	w.data.Finalize(w.picker)
	if w.persister != nil {
		id, err := w.persister.Persist(ctx, w.data)
		if err != nil {
			return w.state(), err
		}
		w.storyID = id
	}
	w.finished = true
	w.destination = w.data.Destination()
	logger.Infof("wizard finished: category=%s destination=%s", w.data.Category, w.destination)
	return w.state(), nil
}

// RequestBack asks the history to move back; the step changes when the
// history reports the pop. Backing out of step 0 exits the wizard.
func (w *Wizard) RequestBack() (State, error) {
	return w.navigate(w.history.Back)
}

// Forward replays a step that was backed out of.
func (w *Wizard) Forward() (State, error) {
	return w.navigate(w.history.Forward)
}

func (w *Wizard) navigate(move func() bool) (State, error) {
	w.mu.Lock()
	done := w.finished || w.exited
	w.mu.Unlock()
	if done {
		return w.State(), ErrFinished
	}
	if !move() {
		return w.State(), ErrNoHistory
	}
	return w.State(), nil
}

// Update applies fn to the record. Changes on the message step refresh the
// selected message.
func (w *Wizard) Update(fn func(d *celebration.Data) error) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.finished || w.exited {
		return w.state(), ErrFinished
	}
	next := *w.data
	next.Photos = append([]string(nil), w.data.Photos...)
	if err := fn(&next); err != nil {
		return w.state(), err
	}
	*w.data = next
	w.syncMessage()
	return w.state(), nil
}

// QuoteRequest asks for a quote unlike the ones already generated here.
func (w *Wizard) QuoteRequest() ai.QuoteRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.data.QuoteRequest(append([]string(nil), w.quotes...))
}

// SetGeneratedQuote stores a generated quote and remembers it so the next
// request avoids it.
func (w *Wizard) SetGeneratedQuote(q string) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.finished || w.exited {
		return w.state(), ErrFinished
	}
	w.data.GeneratedAIQuote = q
	w.quotes = append(w.quotes, q)
	w.syncMessage()
	return w.state(), nil
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state()
}

func (w *Wizard) state() State {
	d := *w.data
	d.Photos = append([]string(nil), w.data.Photos...)
	return State{
		Step:        w.current,
		StepValue:   w.stepValue(),
		Flow:        StepFlow(w.data.Category),
		Data:        d,
		Finished:    w.finished,
		Exited:      w.exited,
		Destination: w.destination,
		StoryID:     w.storyID,
	}
}
