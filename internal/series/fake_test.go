package series_test

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
	"github.com/saulo-duarte/testseries-lambda/internal/user"
)

type memRepo struct {
	mu     sync.Mutex
	series map[uuid.UUID]*series.Series
}

func newMemRepo() *memRepo {
	return &memRepo{series: map[uuid.UUID]*series.Series{}}
}

func clone(s *series.Series) *series.Series {
	c := *s
	c.Questions = append([]series.Question(nil), s.Questions...)
	return &c
}

func (m *memRepo) Create(s *series.Series) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.series[s.ID] = clone(s)
	return nil
}

func (m *memRepo) GetByID(id uuid.UUID) (*series.Series, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.series[id]
	if !ok {
		return nil, nil
	}
	c := clone(s)
	sort.Slice(c.Questions, func(i, j int) bool { return c.Questions[i].OrderIndex < c.Questions[j].OrderIndex })
	return c, nil
}

func (m *memRepo) GetByIDs(ids []uuid.UUID) (map[uuid.UUID]*series.Series, error) {
	out := map[uuid.UUID]*series.Series{}
	for _, id := range ids {
		if s, _ := m.GetByID(id); s != nil {
			out[id] = s
		}
	}
	return out, nil
}

func (m *memRepo) List() ([]*series.Series, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*series.Series, 0, len(m.series))
	for _, s := range m.series {
		out = append(out, clone(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) Update(s *series.Series) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := m.series[s.ID]
	c := clone(s)
	c.Questions = existing.Questions
	m.series[s.ID] = c
	return nil
}

func (m *memRepo) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.series, id)
	return nil
}

func (m *memRepo) AddQuestion(q *series.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.series[q.SeriesID]
	s.Questions = append(s.Questions, *q)
	return nil
}

func (m *memRepo) UpdateQuestion(q *series.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.series[q.SeriesID]
	for i := range s.Questions {
		if s.Questions[i].ID == q.ID {
			s.Questions[i] = *q
		}
	}
	return nil
}

func (m *memRepo) DeleteQuestion(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.series {
		kept := s.Questions[:0]
		for _, q := range s.Questions {
			if q.ID != id {
				kept = append(kept, q)
			}
		}
		s.Questions = kept
	}
	return nil
}

type memUsers map[uuid.UUID]*user.User

func (m memUsers) GetByID(id uuid.UUID) (*user.User, error) {
	return m[id], nil
}

func (m memUsers) GetByIDs(ids []uuid.UUID) (map[uuid.UUID]*user.User, error) {
	out := map[uuid.UUID]*user.User{}
	for _, id := range ids {
		if u, ok := m[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}
