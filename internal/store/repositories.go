package store

import (
	"sort"

	"gitops-dashboard/internal/model"
	"gitops-dashboard/pkg/constants"
)

// CreateRepository assigns a fresh id, stamps the immutable createdAt
// and applies the branch default.
func (s *Store) CreateRepository(repo *model.Repository) *model.Repository {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := *repo
	r.ID = s.repoID
	s.repoID++
	r.CreatedAt = s.now()
	if r.Branch == "" {
		r.Branch = constants.DefaultBranch
	}
	s.repositories[r.ID] = &r

	out := r
	return &out
}

// GetRepository returns the repository or ok=false.
func (s *Store) GetRepository(id int64) (*model.Repository, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.repositories[id]
	if !ok {
		return nil, false
	}
	out := *r
	return &out, true
}

// ListRepositories returns all repositories ordered by id.
func (s *Store) ListRepositories() []*model.Repository {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repos := make([]*model.Repository, 0, len(s.repositories))
	for _, r := range s.repositories {
		out := *r
		repos = append(repos, &out)
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].ID < repos[j].ID })
	return repos
}

// UpdateRepository shallow-merges the patch into the stored record.
// Returns ok=false when the id is unknown.
func (s *Store) UpdateRepository(id int64, patch *model.RepositoryPatch) (*model.Repository, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.repositories[id]
	if !ok {
		return nil, false
	}
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.URL != nil {
		r.URL = *patch.URL
	}
	if patch.Branch != nil {
		r.Branch = *patch.Branch
	}

	out := *r
	return &out, true
}

// DeleteRepository removes the record and reports whether it existed.
// The id counter is not rewound; ids are never reused.
func (s *Store) DeleteRepository(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.repositories[id]
	delete(s.repositories, id)
	return ok
}
