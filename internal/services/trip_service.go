package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context) ([]entities.Trip, error)
	GetTrip(ctx context.Context, tripID string) (*entities.Trip, error)
	AddTrip(ctx context.Context, req request_models.CreateTripRequest) (*entities.Trip, error)
	EditTrip(ctx context.Context, tripID string, req request_models.UpdateTripRequest) (*entities.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
	AddActivity(ctx context.Context, tripID string, req request_models.CreateActivityRequest) (*entities.Activity, error)
	EditActivity(ctx context.Context, tripID string, activityID string, req request_models.UpdateActivityRequest) (*entities.Activity, error)
	DeleteActivity(ctx context.Context, tripID string, activityID string) error
	ReorderActivity(ctx context.Context, tripID string, req request_models.ReorderActivityRequest) (*entities.Trip, error)
	AddGeneratedTrip(ctx context.Context, trip entities.Trip) (*entities.Trip, error)
	ImportTrip(ctx context.Context, doc entities.ExportableTrip) (*entities.Trip, error)
	ExportTrip(ctx context.Context, tripID string) (*entities.ExportableTrip, error)
}

// TripService owns the canonical in-memory trip collection. Every
// mutation rewrites the whole persisted document; a failed write is
// logged and the in-memory state stays authoritative for the session.
type TripService struct {
	repo      repositories.TripRepository
	imagesDir string

	mu    sync.Mutex
	trips []entities.Trip
}

// NewTripService loads the persisted collection up front. When the store
// comes up empty and seedMock is set, a sample trip is seeded so a fresh
// install has something to show.
func NewTripService(repo repositories.TripRepository, imagesDir string, seedMock bool) TripServiceInterface {
	trips, err := repo.LoadAll()
	if err != nil {
		logger.GetLogger().Warnw("failed to load trips, starting empty", "error", err)
		trips = []entities.Trip{}
	}

	if len(trips) == 0 && seedMock {
		trips = append(trips, mockTrip())
	}

	return &TripService{
		repo:      repo,
		imagesDir: imagesDir,
		trips:     trips,
	}
}

func mockTrip() entities.Trip {
	now := time.Now()
	return entities.Trip{
		ID:         uuid.New(),
		Name:       "Summer Vacation in Italy",
		StartDate:  now,
		EndDate:    now.AddDate(0, 0, 10),
		Country:    "Italy",
		Mock:       true,
		Activities: []entities.Activity{},
	}
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidInput
	}
	return id, nil
}

// persist must be called with the lock held. Durability failures do not
// roll back the mutation the caller already sees.
func (s *TripService) persist() {
	if err := s.repo.SaveAll(s.trips); err != nil {
		logger.GetLogger().Errorw("failed to persist trips, in-memory state remains authoritative", "error", err)
	}
}

func (s *TripService) findTrip(id uuid.UUID) int {
	for i := range s.trips {
		if s.trips[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTrip(t entities.Trip) entities.Trip {
	out := t
	out.Activities = make([]entities.Activity, len(t.Activities))
	copy(out.Activities, t.Activities)
	return out
}

func (s *TripService) ListTrips(ctx context.Context) ([]entities.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, cloneTrip(t))
	}
	return out, nil
}

func (s *TripService) GetTrip(ctx context.Context, tripID string) (*entities.Trip, error) {
	id, err := parseID(tripID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTrip(id)
	if idx < 0 {
		return nil, utils.ErrTripNotFound
	}
	t := cloneTrip(s.trips[idx])
	return &t, nil
}

func (s *TripService) AddTrip(ctx context.Context, req request_models.CreateTripRequest) (*entities.Trip, error) {
	trip := entities.Trip{
		ID:         uuid.New(),
		Name:       req.Name,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Country:    req.Country,
		ImageURL:   req.ImageURL,
		Activities: []entities.Activity{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.trips = append(s.trips, trip)
	s.persist()

	out := cloneTrip(trip)
	return &out, nil
}

// EditTrip replaces the trip's own fields; its activity collection is
// untouched, activities are edited through their own operations.
func (s *TripService) EditTrip(ctx context.Context, tripID string, req request_models.UpdateTripRequest) (*entities.Trip, error) {
	id, err := parseID(tripID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTrip(id)
	if idx < 0 {
		return nil, utils.ErrTripNotFound
	}

	t := &s.trips[idx]
	t.Name = req.Name
	t.Country = req.Country
	t.StartDate = req.StartDate
	t.EndDate = req.EndDate
	if req.ImageURL != "" {
		t.SetRemoteImage(req.ImageURL)
	}
	s.persist()

	out := cloneTrip(*t)
	return &out, nil
}

// DeleteTrip is a no-op when the id is absent. Locally cached cover
// images are left behind; orphan cleanup is a known open issue.
func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	id, err := parseID(tripID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTrip(id)
	if idx < 0 {
		return nil
	}

	s.trips = append(s.trips[:idx], s.trips[idx+1:]...)
	s.persist()
	return nil
}

func (s *TripService) AddActivity(ctx context.Context, tripID string, req request_models.CreateActivityRequest) (*entities.Activity, error) {
	id, err := parseID(tripID)
	if err != nil {
		return nil, err
	}

	typ := entities.ActivityType(req.Type)
	if !typ.Valid() {
		return nil, utils.ErrInvalidInput
	}
	meal := entities.MealType(req.MealType)
	if meal != "" && !meal.Valid() {
		return nil, utils.ErrInvalidInput
	}

	activity := entities.NewActivity(req.Name, req.Description, req.Date, req.Location, typ, meal)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTrip(id)
	if idx < 0 {
		return nil, utils.ErrTripNotFound
	}

	s.trips[idx].Activities = append(s.trips[idx].Activities, activity)
	s.persist()
	return &activity, nil
}

func (s *TripService) EditActivity(ctx context.Context, tripID string, activityID string, req request_models.UpdateActivityRequest) (*entities.Activity, error) {
	id, err := parseID(tripID)
	if err != nil {
		return nil, err
	}
	aid, err := parseID(activityID)
	if err != nil {
		return nil, err
	}

	typ := entities.ActivityType(req.Type)
	if !typ.Valid() {
		return nil, utils.ErrInvalidInput
	}
	meal := entities.MealType(req.MealType)
	if meal != "" && !meal.Valid() {
		return nil, utils.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTrip(id)
	if idx < 0 {
		return nil, utils.ErrTripNotFound
	}

	activities := s.trips[idx].Activities
	for i := range activities {
		if activities[i].ID != aid {
			continue
		}
		activities[i].Name = req.Name
		activities[i].Description = req.Description
		activities[i].Date = req.Date
		activities[i].Location = req.Location
		activities[i].Type = typ
		activities[i].MealType = meal
		activities[i].NormalizeMealType()
		s.persist()

		out := activities[i]
		return &out, nil
	}
	return nil, utils.ErrActivityNotFound
}

// DeleteActivity is a no-op when the activity id is absent.
func (s *TripService) DeleteActivity(ctx context.Context, tripID string, activityID string) error {
	id, err := parseID(tripID)
	if err != nil {
		return err
	}
	aid, err := parseID(activityID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTrip(id)
	if idx < 0 {
		return utils.ErrTripNotFound
	}

	activities := s.trips[idx].Activities
	for i := range activities {
		if activities[i].ID == aid {
			s.trips[idx].Activities = append(activities[:i], activities[i+1:]...)
			s.persist()
			return nil
		}
	}
	return nil
}

func (s *TripService) ReorderActivity(ctx context.Context, tripID string, req request_models.ReorderActivityRequest) (*entities.Trip, error) {
	id, err := parseID(tripID)
	if err != nil {
		return nil, err
	}
	movedID, err := parseID(req.ActivityID)
	if err != nil {
		return nil, err
	}

	target := ReorderTarget{}
	switch {
	case req.TargetActivityID != "":
		targetID, err := parseID(req.TargetActivityID)
		if err != nil {
			return nil, err
		}
		target.ActivityID = &targetID
	case req.TargetDay != nil:
		target.Day = req.TargetDay
	default:
		return nil, utils.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTrip(id)
	if idx < 0 {
		return nil, utils.ErrTripNotFound
	}

	reordered, err := ReorderActivities(s.trips[idx].Activities, movedID, target)
	if err != nil {
		return nil, err
	}

	s.trips[idx].Activities = reordered
	s.persist()

	out := cloneTrip(s.trips[idx])
	return &out, nil
}

// AddGeneratedTrip appends a trip the planner already validated and
// stamped with fresh ids.
func (s *TripService) AddGeneratedTrip(ctx context.Context, trip entities.Trip) (*entities.Trip, error) {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if trip.Activities == nil {
		trip.Activities = []entities.Activity{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.trips = append(s.trips, trip)
	s.persist()

	out := cloneTrip(trip)
	return &out, nil
}

// ImportTrip brings in a shared trip document. The imported trip always
// receives a fresh id so a colliding id can never overwrite an existing
// trip, and loses the flags marking it as a template.
func (s *TripService) ImportTrip(ctx context.Context, doc entities.ExportableTrip) (*entities.Trip, error) {
	trip := doc.Trip
	trip.ID = uuid.New()
	trip.Mock = false
	if trip.Activities == nil {
		trip.Activities = []entities.Activity{}
	}
	for i := range trip.Activities {
		if trip.Activities[i].ID == uuid.Nil {
			trip.Activities[i].ID = uuid.New()
		}
		trip.Activities[i].NormalizeMealType()
	}

	if doc.ImageBase64 != "" {
		if path, err := s.storeImportedImage(trip.ID, doc.ImageBase64); err != nil {
			logger.GetLogger().Warnw("failed to store imported cover image", "trip", trip.ID, "error", err)
			trip.LocalImagePath = ""
		} else {
			trip.SetLocalImage(path)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.trips = append(s.trips, trip)
	s.persist()

	out := cloneTrip(trip)
	return &out, nil
}

func (s *TripService) storeImportedImage(tripID uuid.UUID, encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode image payload: %w", err)
	}
	if err := os.MkdirAll(s.imagesDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.imagesDir, tripID.String()+".jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ExportTrip builds the share-file document. A missing local image file
// degrades to an export without the payload.
func (s *TripService) ExportTrip(ctx context.Context, tripID string) (*entities.ExportableTrip, error) {
	id, err := parseID(tripID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findTrip(id)
	if idx < 0 {
		return nil, utils.ErrTripNotFound
	}

	doc := entities.ExportableTrip{Trip: cloneTrip(s.trips[idx])}
	if doc.Trip.LocalImagePath != "" {
		data, err := os.ReadFile(doc.Trip.LocalImagePath)
		if err != nil {
			logger.GetLogger().Warnw("failed to read cover image for export", "trip", id, "error", err)
		} else {
			doc.ImageBase64 = base64.StdEncoding.EncodeToString(data)
		}
	}
	return &doc, nil
}
