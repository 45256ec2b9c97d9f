package api

import (
	"database/sql"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/color-game/swatch/datastore"
	"github.com/color-game/swatch/models"
)

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]models.User{}}
}

func noRows() error {
	return datastore.NoRowsError{NoRows: true, Err: sql.ErrNoRows}
}

func (m *memoryUsers) Create(user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.UserID] = user
	return user, nil
}

func (m *memoryUsers) Get(userID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return models.User{}, noRows()
	}
	return user, nil
}

func (m *memoryUsers) find(match func(models.User) bool) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if match(user) {
			return user, nil
		}
	}
	return models.User{}, noRows()
}

func (m *memoryUsers) GetUserByEmail(email string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.Email == email })
}

func (m *memoryUsers) GetUserByUsername(username string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.Username == username })
}

func (m *memoryUsers) ValidateAndGetUser(creds models.Credentials) (models.User, error) {
	user, err := m.GetUserByEmail(creds.Email)
	if err != nil {
		return models.User{}, err
	}
	if err := user.CheckPassword(creds.Password); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (m *memoryUsers) GetAllUsers() ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []models.User
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

type memoryDaily struct {
	entries []models.DailyPalette
	err     error
}

func (m *memoryDaily) Create(d models.DailyPalette) (models.DailyPalette, error) {
	d.ID = len(m.entries) + 1
	m.entries = append(m.entries, d)
	return d, nil
}

func (m *memoryDaily) GetByDate(date time.Time) (models.DailyPalette, error) {
	if m.err != nil {
		return models.DailyPalette{}, m.err
	}
	for _, d := range m.entries {
		if d.Date.Equal(datastore.NormalizeDate(date)) {
			return d, nil
		}
	}
	return models.DailyPalette{}, noRows()
}

func (m *memoryDaily) GetToday() (models.DailyPalette, error) {
	return m.GetByDate(time.Now())
}

func (m *memoryDaily) GetAll() ([]models.DailyPalette, error) {
	return m.entries, m.err
}

type memorySwatches struct {
	mu       sync.Mutex
	swatches map[string]models.Swatch
}

func newMemorySwatches() *memorySwatches {
	return &memorySwatches{swatches: map[string]models.Swatch{}}
}

func (m *memorySwatches) Create(s models.Swatch) (models.Swatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.swatches[s.ID] = s
	return s, nil
}

func (m *memorySwatches) ListByUser(userID string) ([]models.Swatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Swatch{}
	for _, s := range m.swatches {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memorySwatches) Delete(id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.swatches[id]
	if !ok || s.UserID != userID {
		return noRows()
	}
	delete(m.swatches, id)
	return nil
}

type stubGenerator struct {
	daily models.DailyPalette
	err   error
	calls int
}

func (g *stubGenerator) GenerateDailyPalette() (models.DailyPalette, error) {
	g.calls++
	if g.err != nil {
		return models.DailyPalette{}, g.err
	}
	return g.daily, nil
}

var errBoom = errors.New("boom")
