package panel

import (
	"slices"
	"sync"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

type Field struct {
	Name  string
	Value string
}

// Draft is an in-progress announcement embed. Every attribute stays unset
// until the wizard fills it in; publishing never consumes the draft.
type Draft struct {
	Title       string
	Description string
	Color       int
	ImageURL    string
	Fields      []Field
	Mention     string
}

// Embed renders the accumulated draft.
func (d Draft) Embed() discord.Embed {
	embedBuilder := discord.NewEmbedBuilder()
	embedBuilder.SetTitle(d.Title)
	embedBuilder.SetDescription(d.Description)
	embedBuilder.SetColor(d.Color)
	embedBuilder.SetImage(d.ImageURL)
	for _, field := range d.Fields {
		embedBuilder.AddField(field.Name, field.Value, false)
	}
	embedBuilder.SetTimestamp(time.Now())
	return embedBuilder.Build()
}

type RemoveOutcome int

const (
	// RemoveUnknown means the user has no draft (stale panel buttons).
	RemoveUnknown RemoveOutcome = iota
	RemoveEmpty
	RemoveDone
)

// Store owns every in-progress draft, keyed by the initiating user ID.
// One draft per user; abandoned drafts stay around until the process exits.
type Store struct {
	mu     sync.Mutex
	drafts map[snowflake.ID]*Draft
}

func NewStore() *Store {
	return &Store{
		drafts: map[snowflake.ID]*Draft{},
	}
}

// Open creates a fresh draft for the user, silently replacing any prior one.
func (s *Store) Open(userID snowflake.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = &Draft{}
}

func (s *Store) Exists(userID snowflake.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drafts[userID]
	return ok
}

// SetTitle sets title and description together.
func (s *Store) SetTitle(userID snowflake.ID, title string, description string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	if !ok {
		return false
	}
	draft.Title = title
	draft.Description = description
	return true
}

func (s *Store) SetColor(userID snowflake.ID, color int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	if !ok {
		return false
	}
	draft.Color = color
	return true
}

// SetImage updates the image URL; an empty URL leaves the draft unchanged.
func (s *Store) SetImage(userID snowflake.ID, imageURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	if !ok {
		return false
	}
	if imageURL != "" {
		draft.ImageURL = imageURL
	}
	return true
}

func (s *Store) AddField(userID snowflake.ID, name string, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	if !ok {
		return false
	}
	draft.Fields = append(draft.Fields, Field{Name: name, Value: value})
	return true
}

// RemoveField drops the most recently added field.
func (s *Store) RemoveField(userID snowflake.ID) RemoveOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	if !ok {
		return RemoveUnknown
	}
	if len(draft.Fields) == 0 {
		return RemoveEmpty
	}
	draft.Fields = draft.Fields[:len(draft.Fields)-1]
	return RemoveDone
}

// SetMention stores the mention text verbatim; an empty string clears it.
func (s *Store) SetMention(userID snowflake.ID, mention string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	if !ok {
		return false
	}
	draft.Mention = mention
	return true
}

// Snapshot returns a copy of the draft for publishing.
func (s *Store) Snapshot(userID snowflake.ID) (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	if !ok {
		return Draft{}, false
	}
	snapshot := *draft
	snapshot.Fields = slices.Clone(draft.Fields)
	return snapshot, true
}
