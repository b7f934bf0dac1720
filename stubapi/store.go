// Package stubapi is a development double of the tour backend: the full REST
// surface the console talks to, backed by an in-memory store. It exists so
// the toolkit can be exercised end-to-end without the production API.
package stubapi

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tourdesk/models"
)

type User struct {
	ID           string
	Email        string
	PasswordHash []byte
}

type Store struct {
	mu           sync.RWMutex
	tours        map[string]*models.Tour
	categories   map[string][]models.Category
	facts        map[string][]models.FactDefinition
	faqs         map[string][]models.FAQDefinition
	destinations []models.Destination
	users        map[string]User // by email
}

func NewStore() *Store {
	return &Store{
		tours:      make(map[string]*models.Tour),
		categories: make(map[string][]models.Category),
		facts:      make(map[string][]models.FactDefinition),
		faqs:       make(map[string][]models.FAQDefinition),
		users:      make(map[string]User),
	}
}

// Seed loads the fixture data the console is developed against.
func (s *Store) Seed() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("tourdesk"), bcrypt.DefaultCost)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users["demo@tourdesk.local"] = User{
		ID:           "u-demo",
		Email:        "demo@tourdesk.local",
		PasswordHash: hash,
	}
	s.categories["u-demo"] = []models.Category{
		{ID: "c1", Name: "Trekking", IsActive: true},
		{ID: "c2", Name: "Safari", IsActive: true},
		{ID: "c3", Name: "City Break", IsActive: false},
	}
	s.facts["u-demo"] = []models.FactDefinition{
		{ID: "f1", Title: "Tour Availability", FieldType: models.FactMultiSelect, Icon: "calendar"},
		{ID: "f2", Title: "Difficulty", FieldType: models.FactSingleSelect, Icon: "mountain"},
		{ID: "f3", Title: "Group Size", FieldType: models.FactPlainText, Icon: "users"},
	}
	s.faqs["u-demo"] = []models.FAQDefinition{
		{ID: "q1", Question: "What gear do I need?", Answer: "Layers and broken-in boots."},
		{ID: "q2", Question: "Is insurance included?", Answer: "No, arrange your own."},
	}
	s.destinations = []models.Destination{
		{ID: "d1", Name: "Kathmandu", Country: "Nepal"},
		{ID: "d2", Name: "Arusha", Country: "Tanzania"},
	}
}

func (s *Store) UserByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	return u, ok
}

func (s *Store) GetTour(id string) (*models.Tour, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tours[id]
	if !ok {
		return nil, false
	}
	cp := *t
	return &cp, true
}

func (s *Store) ListTours(userID string) []models.Tour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tour, 0, len(s.tours))
	for _, t := range s.tours {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) InsertTour(t *models.Tour) {
	if t.TourID == "" {
		t.TourID = uuid.NewString()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.mu.Lock()
	s.tours[t.TourID] = t
	s.mu.Unlock()
}

// UpdateTour applies fn to the stored record under the write lock.
func (s *Store) UpdateTour(id string, fn func(*models.Tour)) (*models.Tour, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tours[id]
	if !ok {
		return nil, false
	}
	fn(t)
	t.UpdatedAt = time.Now().UTC()
	cp := *t
	return &cp, true
}

func (s *Store) DeleteTour(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tours[id]; !ok {
		return false
	}
	delete(s.tours, id)
	return true
}

func (s *Store) Categories(userID string) []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category{}, s.categories[userID]...)
}

func (s *Store) Facts(userID string) []models.FactDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.FactDefinition{}, s.facts[userID]...)
}

func (s *Store) FAQs(userID string) []models.FAQDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.FAQDefinition{}, s.faqs[userID]...)
}

func (s *Store) Destinations() []models.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Destination{}, s.destinations...)
}
