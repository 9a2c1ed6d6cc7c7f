// Package testutil provides hand-written mocks for the repository and
// blob-store interfaces used across service and handler tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/natureshield/natureshield-backend/internal/domain"
)

// MockUserRepository is an in-memory domain.UserRepository
type MockUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by lowercased email
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

// Create inserts a user, enforcing case-insensitive email uniqueness
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := m.users[key]; ok {
		return nil, domain.ErrUserAlreadyExists
	}
	stored := *user
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	m.users[key] = &stored
	return &stored, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[strings.ToLower(email)]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// MockProfileRepository is an in-memory domain.ProfileRepository
type MockProfileRepository struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*domain.Profile // keyed by user ID
	FailWith error
}

// NewMockProfileRepository creates a new MockProfileRepository
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{profiles: make(map[uuid.UUID]*domain.Profile)}
}

// Upsert fully replaces the profile for fields.UserID
func (m *MockProfileRepository) Upsert(ctx context.Context, fields *domain.Profile) (*domain.Profile, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *fields
	if existing, ok := m.profiles[fields.UserID]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = uuid.New()
	}
	m.profiles[fields.UserID] = &stored
	return &stored, nil
}

// GetOrCreateDefault returns the stored profile or materializes a default
func (m *MockProfileRepository) GetOrCreateDefault(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if profile, ok := m.profiles[userID]; ok {
		return profile, nil
	}
	profile := &domain.Profile{ID: uuid.New(), UserID: userID}
	m.profiles[userID] = profile
	return profile, nil
}

// Count reports how many profiles exist for a user (0 or 1)
func (m *MockProfileRepository) Count(userID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[userID]; ok {
		return 1
	}
	return 0
}

// MockReportRepository is an in-memory domain.ReportRepository
type MockReportRepository struct {
	mu       sync.Mutex
	reports  []*domain.Report
	FailWith error
}

// NewMockReportRepository creates a new MockReportRepository
func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{}
}

// Create appends a new report
func (m *MockReportRepository) Create(ctx context.Context, fields *domain.Report) (*domain.Report, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *fields
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	m.reports = append(m.reports, &stored)
	return &stored, nil
}

// ListOrdered returns the user's reports in descending lexical date order,
// materializing a blank placeholder when there are none
func (m *MockReportRepository) ListOrdered(ctx context.Context, userID uuid.UUID) ([]*domain.Report, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	var result []*domain.Report
	for _, report := range m.reports {
		if report.UserID == userID {
			result = append(result, report)
		}
	}
	m.mu.Unlock()

	if len(result) == 0 {
		return m.createPlaceholder(ctx, userID)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result, nil
}

func (m *MockReportRepository) createPlaceholder(ctx context.Context, userID uuid.UUID) ([]*domain.Report, error) {
	placeholder, err := m.Create(ctx, &domain.Report{UserID: userID})
	if err != nil {
		return nil, err
	}
	return []*domain.Report{placeholder}, nil
}

// CountFor reports how many reports a user has
func (m *MockReportRepository) CountFor(userID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, report := range m.reports {
		if report.UserID == userID {
			n++
		}
	}
	return n
}

// MockBlobStore is an in-memory storage.BlobStore. Uploaded files are
// removed like the real adapter removes them, and each call records the
// folder it was given.
type MockBlobStore struct {
	mu       sync.Mutex
	BaseURL  string
	Folders  []string
	FailWith error
}

// NewMockBlobStore creates a MockBlobStore serving URLs under baseURL
func NewMockBlobStore(baseURL string) *MockBlobStore {
	return &MockBlobStore{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// UploadFile records the call and returns a deterministic URL containing
// the "/upload/" root marker
func (m *MockBlobStore) UploadFile(ctx context.Context, localPath, folder string) (string, error) {
	defer os.Remove(localPath)

	if m.FailWith != nil {
		return "", m.FailWith
	}

	m.mu.Lock()
	m.Folders = append(m.Folders, folder)
	m.mu.Unlock()

	return fmt.Sprintf("%s/upload/%s/%s", m.BaseURL, folder, filepath.Base(localPath)), nil
}
