package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/youruser/jashn/internal/celebration"
	"github.com/youruser/jashn/internal/quotes"
	"github.com/youruser/jashn/internal/store"
)

var (
	// ErrNoCelebration is returned by Open when no record was saved yet.
	ErrNoCelebration = errors.New("no celebration saved")
	ErrEmptyComment  = errors.New("comment is empty")
	ErrEmptyName     = errors.New("visitor name is empty")
)

const guestName = "Guest"

// StoryKeys are the keys that belong to one story; the rest are shared.
var StoryKeys = []string{
	store.KeyCelebration,
	store.KeyVisitorName,
	store.KeyEmotionalTerm,
	store.KeyBabyTerm,
	store.KeyCoupleTerm,
}

// SharedKeys are kept across stories.
var SharedKeys = []string{store.KeyBalloonCount, store.KeyComments}

var birthdaySelfLines = []string{
	"It's my birthday", "My birthday today", "Birthday day today", "Birthday time", "My special day",
	"Birthday vibes", "Birthday mood", "Feeling birthday", "Born today", "My big day",
}

// Comment is one guestbook entry.
type Comment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	StoryID   string `json:"storyId,omitempty"`
}

// Session is one playback of a saved celebration. It is not safe for
// concurrent use; callers sharing a store serialize writes.
type Session struct {
	st   store.Store
	now  func() time.Time
	intn func(n int) int

	Data *celebration.Data

	visitorName  string
	balloons     int
	comments     []Comment
	lineIndex    int
	birthdayLine string
}

// Open loads the saved celebration and the state around it. A record
// without a story id gets one and is written back.
func Open(st store.Store, now func() time.Time) (*Session, error) {
	if now == nil {
		now = time.Now
	}
	s := &Session{st: st, now: now, intn: rand.IntN}

	var d celebration.Data
	if err := st.Get(store.KeyCelebration, &d); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoCelebration
		}
		return nil, fmt.Errorf("load celebration: %w", err)
	}
	s.Data = &d

	if d.StoryID == "" {
		d.StoryID = s.newStoryID()
		if err := st.Set(store.KeyCelebration, &d); err != nil {
			return nil, fmt.Errorf("save story id: %w", err)
		}
	}

	comments, err := s.allComments()
	if err != nil {
		return nil, err
	}
	s.comments = filterComments(comments, d.StoryID)

	if err := getOptional(st, store.KeyVisitorName, &s.visitorName); err != nil {
		return nil, err
	}
	if err := getOptional(st, store.KeyBalloonCount, &s.balloons); err != nil {
		return nil, err
	}
	for key, dst := range map[string]*string{
		store.KeyEmotionalTerm: &d.EmotionalTerm,
		store.KeyBabyTerm:      &d.BabyTerm,
		store.KeyCoupleTerm:    &d.CoupleTerm,
	} {
		var term string
		if err := getOptional(st, key, &term); err != nil {
			return nil, err
		}
		if term != "" {
			*dst = term
		}
	}

	if d.Category == quotes.Birthday && d.IsForSelf {
		s.birthdayLine = s.NextBirthdaySelfLine()
	}
	return s, nil
}

func getOptional(st store.Store, key string, v any) error {
	if err := st.Get(key, v); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("load %s: %w", key, err)
	}
	return nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func (s *Session) newStoryID() string {
	var b strings.Builder
	b.WriteString("story-")
	b.WriteString(strconv.FormatInt(s.now().UnixMilli(), 10))
	b.WriteByte('-')
	for range 9 {
		b.WriteByte(base36[s.intn(len(base36))])
	}
	return b.String()
}

func (s *Session) StoryID() string { return s.Data.StoryID }

// NextBirthdaySelfLine rotates through the self-birthday lines. The
// rotation starts over for every session.
func (s *Session) NextBirthdaySelfLine() string {
	line := birthdaySelfLines[s.lineIndex%len(birthdaySelfLines)]
	s.lineIndex++
	return line
}

// BirthdayLine is the line picked when the session opened, "" unless the
// story is a self-written birthday.
func (s *Session) BirthdayLine() string { return s.birthdayLine }

func (s *Session) VisitorName() string { return s.visitorName }

func (s *Session) SaveVisitorName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := s.st.Set(store.KeyVisitorName, name); err != nil {
		return fmt.Errorf("save visitor name: %w", err)
	}
	s.visitorName = name
	return nil
}

// Comments returns this story's guestbook in posting order.
func (s *Session) Comments() []Comment {
	return append([]Comment(nil), s.comments...)
}

// AddComment signs msg with the saved visitor name.
func (s *Session) AddComment(msg string) (Comment, error) {
	return s.AddCommentFrom(s.visitorName, msg)
}

// AddCommentFrom appends a comment to the shared guestbook. An empty name
// signs it as Guest.
func (s *Session) AddCommentFrom(name, msg string) (Comment, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return Comment{}, ErrEmptyComment
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = guestName
	}
	now := s.now()
	c := Comment{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      name,
		Message:   msg,
		Timestamp: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		StoryID:   s.Data.StoryID,
	}

	all, err := s.allComments()
	if err != nil {
		return Comment{}, err
	}
	all = append(all, c)
	if err := s.st.Set(store.KeyComments, all); err != nil {
		return Comment{}, fmt.Errorf("save comments: %w", err)
	}
	s.comments = filterComments(all, s.Data.StoryID)
	return c, nil
}

func (s *Session) allComments() ([]Comment, error) {
	var all []Comment
	if err := getOptional(s.st, store.KeyComments, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// DropComments removes a story's entries from the shared guestbook and
// reports how many were removed.
func DropComments(st store.Store, storyID string) (int, error) {
	var all []Comment
	if err := getOptional(st, store.KeyComments, &all); err != nil {
		return 0, err
	}
	kept := make([]Comment, 0, len(all))
	for _, c := range all {
		if c.StoryID != storyID {
			kept = append(kept, c)
		}
	}
	removed := len(all) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := st.Set(store.KeyComments, kept); err != nil {
		return 0, fmt.Errorf("save comments: %w", err)
	}
	return removed, nil
}

func filterComments(all []Comment, storyID string) []Comment {
	out := []Comment{}
	for _, c := range all {
		if c.StoryID == storyID {
			out = append(out, c)
		}
	}
	return out
}

func (s *Session) BalloonCount() int { return s.balloons }

// PopBalloon bumps the shared counter and returns the new value.
func (s *Session) PopBalloon() (int, error) {
	if err := getOptional(s.st, store.KeyBalloonCount, &s.balloons); err != nil {
		return s.balloons, err
	}
	next := s.balloons + 1
	if err := s.st.Set(store.KeyBalloonCount, next); err != nil {
		return s.balloons, fmt.Errorf("save balloon count: %w", err)
	}
	s.balloons = next
	return next, nil
}

// View is what the playback screen shows.
type View struct {
	StoryID         string           `json:"storyId"`
	Title           string           `json:"title"`
	DisplayName     string           `json:"displayName"`
	TermLine        string           `json:"termLine"`
	SelfProfileText string           `json:"selfProfileText"`
	BirthdayLine    string           `json:"birthdayLine,omitempty"`
	VisitorName     string           `json:"visitorName,omitempty"`
	BalloonCount    int              `json:"balloonCount"`
	Achievement     *Milestone       `json:"achievement"`
	Comments        []Comment        `json:"comments"`
	Data            celebration.Data `json:"data"`
}

func (s *Session) View() View {
	return View{
		StoryID:         s.Data.StoryID,
		Title:           s.Data.Title(),
		DisplayName:     s.Data.DisplayName(),
		TermLine:        s.Data.TermLine(),
		SelfProfileText: s.Data.SelfProfileText(),
		BirthdayLine:    s.birthdayLine,
		VisitorName:     s.visitorName,
		BalloonCount:    s.balloons,
		Achievement:     Achievement(s.balloons),
		Comments:        s.Comments(),
		Data:            *s.Data,
	}
}
