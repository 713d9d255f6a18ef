package objective

import (
	"context"
	"errors"
	"time"

	"github.com/example/perfdash/internal/auth"
	"github.com/example/perfdash/internal/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrObjectiveNotFound = errors.New("objective not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidID         = errors.New("invalid id format")
)

type ObjectiveService interface {
	List(ctx context.Context, f Filters) ([]*Objective, error)
	Get(ctx context.Context, id string) (*Objective, error)
	Create(ctx context.Context, dto CreateObjectiveDTO) (*Objective, error)
	Update(ctx context.Context, id string, dto UpdateObjectiveDTO) (*Objective, error)
	UpdateProgress(ctx context.Context, id string, dto ProgressUpdateDTO) (*Objective, error)
	ListProgressUpdates(ctx context.Context, id string) ([]*ProgressUpdate, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*Stats, error)
}

type objectiveService struct {
	repo ObjectiveRepository
}

func NewService(repo ObjectiveRepository) ObjectiveService {
	return &objectiveService{repo: repo}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	return uuid.MustParse(claims.UserID), nil
}

func parseObjectiveID(log logrus.FieldLogger, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warn("Invalid objective ID")
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

func (s *objectiveService) List(ctx context.Context, f Filters) ([]*Objective, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "list objectives")
	if err != nil {
		return nil, err
	}

	objectives, err := s.repo.ListByUser(userID, f)
	if err != nil {
		log.WithError(err).Error("Failed to list objectives")
		return nil, err
	}
	return objectives, nil
}

func (s *objectiveService) Get(ctx context.Context, id string) (*Objective, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "get objective")
	if err != nil {
		return nil, err
	}

	objectiveID, err := parseObjectiveID(log, id)
	if err != nil {
		return nil, err
	}

	o, err := s.repo.FindByIDAndUserID(objectiveID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithFields(logrus.Fields{
				"objective_id": id,
				"user_id":      userID,
			}).Warn("Objective not found or does not belong to user")
			return nil, ErrObjectiveNotFound
		}
		log.WithError(err).Error("Error finding objective by ID")
		return nil, err
	}
	return o, nil
}

func (s *objectiveService) Create(ctx context.Context, dto CreateObjectiveDTO) (*Objective, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "create objective")
	if err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	o := &Objective{
		ID:          uuid.New(),
		Title:       dto.Title,
		Description: dto.Description,
		KPI:         dto.KPI,
		Weight:      dto.Weight,
		Target:      dto.Target,
		Progress:    0,
		Status:      dto.Status,
		DueDate:     dto.DueDate,
		UserID:      userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(o); err != nil {
		log.WithError(err).Error("Failed to create objective")
		return nil, err
	}

	log.WithField("objective_id", o.ID).Info("Objective created successfully")
	return o, nil
}

func (s *objectiveService) Update(ctx context.Context, id string, dto UpdateObjectiveDTO) (*Objective, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "update objective")
	if err != nil {
		return nil, err
	}

	objectiveID, err := parseObjectiveID(log, id)
	if err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByIDAndUserID(objectiveID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithFields(logrus.Fields{
				"objective_id": id,
				"user_id":      userID,
			}).Warn("Objective not found for update")
			return nil, ErrObjectiveNotFound
		}
		log.WithError(err).Error("Error finding objective for update")
		return nil, err
	}

	// Full edits never touch progress; that field only moves through the
	// progress-update path.
	if dto.Title != nil {
		existing.Title = *dto.Title
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.KPI != nil {
		existing.KPI = *dto.KPI
	}
	if dto.Weight != nil {
		existing.Weight = *dto.Weight
	}
	if dto.Target != nil {
		existing.Target = *dto.Target
	}
	if dto.DueDate != nil {
		existing.DueDate = *dto.DueDate
	}
	if dto.Status != nil {
		existing.Status = *dto.Status
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Failed to update objective")
		return nil, err
	}

	log.WithField("objective_id", id).Info("Objective updated successfully")
	return existing, nil
}

func (s *objectiveService) UpdateProgress(ctx context.Context, id string, dto ProgressUpdateDTO) (*Objective, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "update objective progress")
	if err != nil {
		return nil, err
	}

	objectiveID, err := parseObjectiveID(log, id)
	if err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByIDAndUserID(objectiveID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithFields(logrus.Fields{
				"objective_id": id,
				"user_id":      userID,
			}).Warn("Objective not found for progress update")
			return nil, ErrObjectiveNotFound
		}
		log.WithError(err).Error("Error finding objective for progress update")
		return nil, err
	}

	existing.Progress = dto.Progress
	existing.Status = dto.Status
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Failed to update objective progress")
		return nil, err
	}

	history := &ProgressUpdate{
		ID:          uuid.New(),
		ObjectiveID: existing.ID,
		Progress:    dto.Progress,
		Status:      dto.Status,
		Note:        dto.Note,
	}
	if err := s.repo.CreateProgressUpdate(history); err != nil {
		// The objective row is already current; a lost history entry is
		// not worth failing the mutation over.
		log.WithError(err).Warnf("Failed to record progress history for objective %s", id)
	}

	log.WithFields(logrus.Fields{
		"objective_id": id,
		"progress":     dto.Progress,
	}).Info("Objective progress updated")
	return existing, nil
}

func (s *objectiveService) ListProgressUpdates(ctx context.Context, id string) ([]*ProgressUpdate, error) {
	log := config.WithContext(ctx)

	// Ownership check rides on Get.
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates, err := s.repo.ListProgressUpdates(o.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list progress updates")
		return nil, err
	}
	return updates, nil
}

func (s *objectiveService) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "delete objective")
	if err != nil {
		return err
	}

	objectiveID, err := parseObjectiveID(log, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(objectiveID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithFields(logrus.Fields{
				"objective_id": id,
				"user_id":      userID,
			}).Warn("Objective not found for deletion")
			return ErrObjectiveNotFound
		}
		log.WithError(err).Error("Failed to delete objective")
		return err
	}

	log.WithField("objective_id", id).Info("Objective deleted successfully")
	return nil
}

func (s *objectiveService) Stats(ctx context.Context) (*Stats, error) {
	objectives, err := s.List(ctx, Filters{})
	if err != nil {
		return nil, err
	}
	return ComputeStats(objectives), nil
}

// ComputeStats derives the aggregate counts from a loaded listing.
func ComputeStats(objectives []*Objective) *Stats {
	stats := &Stats{Total: len(objectives)}

	progressSum := 0
	weightedSum := 0
	for _, o := range objectives {
		switch o.Status {
		case StatusCompleted:
			stats.Completed++
		case StatusAtRisk:
			stats.AtRisk++
		case StatusDelayed:
			stats.Delayed++
		}
		if o.Status != StatusCompleted {
			stats.InProgress++
		}
		stats.WeightTotal += o.Weight
		progressSum += o.Progress
		weightedSum += o.Weight * o.Progress
	}

	if stats.Total > 0 {
		stats.AvgProgress = progressSum / stats.Total
	}
	if stats.WeightTotal > 0 {
		stats.Score = weightedSum / stats.WeightTotal
	}
	return stats
}
