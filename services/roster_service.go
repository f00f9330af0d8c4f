package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/voleisexta/roster-system/live"
	"github.com/voleisexta/roster-system/models"
	"github.com/voleisexta/roster-system/repositories"
	"github.com/voleisexta/roster-system/storage"
)

type ConfirmInput struct {
	Name     string          `json:"name"`
	Category models.Category `json:"category"`
	Gender   models.Gender   `json:"gender,omitempty"`
	IsTest   bool            `json:"test,omitempty"`
}

type ConfirmResult struct {
	Confirmation *models.Confirmation `json:"confirmation"`
	Position     int                  `json:"position"`
	Waitlisted   bool                 `json:"is_waitlisted"`
}

// RosterService is the admission engine: it decides per confirmation whether
// the requester is seated or waitlisted, rejects duplicates, and owns the
// destructive roster operations.
type RosterService struct {
	repo     repositories.ConfirmationRepository
	archiver storage.FileUploader
	hub      *live.Hub
}

// NewRosterService wires the admission engine. archiver and hub may be nil;
// a nil archiver disables the clear-all archive, a nil hub disables live
// notifications.
func NewRosterService(
	repo repositories.ConfirmationRepository,
	archiver storage.FileUploader,
	hub *live.Hub,
) *RosterService {
	return &RosterService{
		repo:     repo,
		archiver: archiver,
		hub:      hub,
	}
}

// Confirm validates the request against the current roster snapshot and
// appends a new confirmation. The returned position is 1-based within the
// ordered roster; positions past models.MaxSeats are waitlisted. Seed
// records (IsTest) bypass the cap but stay out of public listings.
func (s *RosterService) Confirm(ctx context.Context, input ConfirmInput) (*ConfirmResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	switch input.Category {
	case models.CategoryMonthlyMember, models.CategoryDropIn:
	case "":
		return nil, ErrCategoryRequired
	default:
		return nil, ErrInvalidCategory
	}
	switch input.Gender {
	case models.GenderMale, models.GenderFemale, "":
	default:
		return nil, ErrInvalidGender
	}

	active, err := s.repo.ListActive(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for admission: %w", err)
	}

	// Name uniqueness is case-insensitive across the whole active set,
	// seed records included.
	for _, c := range active {
		if strings.EqualFold(c.Name, input.Name) {
			return nil, ErrNameAlreadyConfirmed
		}
	}

	publicCount := 0
	for _, c := range active {
		if !c.IsTest {
			publicCount++
		}
	}
	if !input.IsTest && publicCount >= models.MaxSeats {
		return nil, ErrRosterFull
	}

	confirmation := &models.Confirmation{
		Name:     input.Name,
		Category: input.Category,
		Gender:   input.Gender,
		IsTest:   input.IsTest,
	}
	if err := s.repo.Insert(ctx, confirmation); err != nil {
		if errors.Is(err, repositories.ErrConfirmationNameConflict) {
			return nil, ErrNameAlreadyConfirmed
		}
		return nil, fmt.Errorf("failed to persist confirmation: %w", err)
	}

	// Seed records rank within the full set; everyone else within the
	// public roster they appear on.
	position := publicCount + 1
	if input.IsTest {
		position = len(active) + 1
	}

	s.notify(live.EventRosterUpdated)

	return &ConfirmResult{
		Confirmation: confirmation,
		Position:     position,
		Waitlisted:   position > models.MaxSeats,
	}, nil
}

// GetRoster returns the public roster split into its confirmed and waitlist
// segments.
func (s *RosterService) GetRoster(ctx context.Context) (*models.Roster, error) {
	records, err := s.repo.ListActive(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmations: %w", err)
	}
	return SplitRoster(records), nil
}

// SplitRoster cuts an ordered record set at models.MaxSeats. Concatenating
// the two segments reproduces the input exactly.
func SplitRoster(records []*models.Confirmation) *models.Roster {
	cut := len(records)
	if cut > models.MaxSeats {
		cut = models.MaxSeats
	}
	return &models.Roster{
		Confirmed: records[:cut],
		Waitlist:  records[cut:],
	}
}

// Remove deletes one confirmation by id. Ordering and ids of the remaining
// records are untouched.
func (s *RosterService) Remove(ctx context.Context, id int) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrConfirmationNotFound) {
			return ErrConfirmationNotFound
		}
		return fmt.Errorf("failed to remove confirmation: %w", err)
	}
	s.notify(live.EventRosterUpdated)
	return nil
}

// RemoveByName deletes every confirmation matching the name
// case-insensitively and returns how many were removed.
func (s *RosterService) RemoveByName(ctx context.Context, name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrNameRequired
	}
	deleted, err := s.repo.DeleteByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to remove confirmation by name: %w", err)
	}
	if deleted == 0 {
		return 0, ErrConfirmationNotFound
	}
	s.notify(live.EventRosterUpdated)
	return deleted, nil
}

// Clear wipes the active roster for the next week. When an archiver is
// configured the outgoing roster is stored first; an archive failure aborts
// the clear so no week is lost.
func (s *RosterService) Clear(ctx context.Context) (int, error) {
	if s.archiver != nil {
		if err := s.archiveRoster(ctx); err != nil {
			return 0, err
		}
	}

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear confirmations: %w", err)
	}
	s.notify(live.EventRosterCleared)
	return deleted, nil
}

func (s *RosterService) archiveRoster(ctx context.Context) error {
	records, err := s.repo.ListActive(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to load roster for archiving: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode roster archive: %w", err)
	}

	key := fmt.Sprintf("archives/roster-%s.json", time.Now().Format("2006-01-02"))
	if _, err := s.archiver.Upload(ctx, key, "application/json", bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("failed to archive roster before clearing: %w", err)
	}
	return nil
}

func (s *RosterService) notify(eventType string) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(live.Event{Type: eventType})
}
