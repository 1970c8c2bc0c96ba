// Package store is the client's persisted state: the auth token plus
// serialized identity (the reload-survival slot), and autosaved loan
// application drafts. Everything lives in one local sqlite database.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ajcoder580/loanapp-client/internal/domain/session"
)

// ErrNoCredentials means nothing is persisted: the anonymous state.
var ErrNoCredentials = errors.New("no persisted credentials")

// credentialRow is a single-row table; id is always 1.
type credentialRow struct {
	ID        int    `gorm:"primaryKey"`
	Token     string `gorm:"type:text"`
	Identity  string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (credentialRow) TableName() string { return "credentials" }

type draftRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	OwnerEmail string `gorm:"size:255;index"`
	Step       int
	Payload    string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (draftRow) TableName() string { return "drafts" }

type Store struct{ db *gorm.DB }

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&credentialRow{}, &draftRow{}); err != nil {
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveCredentials persists the token and identity after a successful
// login, replacing whatever was held before.
func (s *Store) SaveCredentials(token string, id session.Identity) error {
	blob, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	row := credentialRow{ID: 1, Token: token, Identity: string(blob), UpdatedAt: time.Now().UTC()}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

// LoadCredentials returns the persisted token and identity, or
// ErrNoCredentials when the slot is empty.
func (s *Store) LoadCredentials() (string, *session.Identity, error) {
	var row credentialRow
	err := s.db.First(&row, 1).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", nil, ErrNoCredentials
	case err != nil:
		return "", nil, err
	}
	if row.Token == "" {
		return "", nil, ErrNoCredentials
	}
	var id session.Identity
	if row.Identity != "" {
		if err := json.Unmarshal([]byte(row.Identity), &id); err != nil {
			// Treat a corrupted identity like an empty slot; the token
			// is useless without knowing who it belongs to.
			return "", nil, ErrNoCredentials
		}
	}
	return row.Token, &id, nil
}

// Clear empties the credential slot. Used on logout and on any 401.
func (s *Store) Clear() error {
	return s.db.Delete(&credentialRow{}, 1).Error
}

// BearerToken satisfies the HTTP pipeline's credential stage. A load
// failure reads as anonymous rather than failing the request.
func (s *Store) BearerToken() string {
	tok, _, err := s.LoadCredentials()
	if err != nil {
		if !errors.Is(err, ErrNoCredentials) {
			log.Printf("store: loading token: %v", err)
		}
		return ""
	}
	return tok
}

// Draft is an autosaved, in-progress application.
type Draft struct {
	ID         string
	OwnerEmail string
	Step       int
	Payload    json.RawMessage
	UpdatedAt  time.Time
}

// SaveDraft upserts an autosave. Payload is the serialized draft record
// exactly as the form engine holds it.
func (s *Store) SaveDraft(d Draft) error {
	row := draftRow{
		ID:         d.ID,
		OwnerEmail: d.OwnerEmail,
		Step:       d.Step,
		Payload:    string(d.Payload),
		UpdatedAt:  time.Now().UTC(),
	}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

func (s *Store) LoadDraft(id string) (*Draft, error) {
	var row draftRow
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return rowToDraft(row), nil
}

// LatestDraft returns the newest autosave for an owner, or nil when
// there is nothing to resume.
func (s *Store) LatestDraft(ownerEmail string) (*Draft, error) {
	var row draftRow
	err := s.db.Where("owner_email = ?", ownerEmail).Order("updated_at DESC").First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return rowToDraft(row), nil
}

// DeleteDraft removes an autosave, typically after a successful submit.
func (s *Store) DeleteDraft(id string) error {
	return s.db.Delete(&draftRow{}, "id = ?", id).Error
}

func rowToDraft(row draftRow) *Draft {
	return &Draft{
		ID:         row.ID,
		OwnerEmail: row.OwnerEmail,
		Step:       row.Step,
		Payload:    json.RawMessage(row.Payload),
		UpdatedAt:  row.UpdatedAt,
	}
}
