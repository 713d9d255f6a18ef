package contract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/perfdash/internal/auth"
	"github.com/example/perfdash/internal/config"
	"github.com/example/perfdash/internal/objective"
	"github.com/google/uuid"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidRole  = errors.New("invalid signature role")
)

type ContractService interface {
	// Get returns the caller's contract, provisioning a draft from the
	// current objectives when none exists yet.
	Get(ctx context.Context) (*ContractView, error)
	Sign(ctx context.Context, role string) (*ContractView, error)
}

type contractService struct {
	repo       ContractRepository
	objectives objective.ObjectiveService
}

func NewService(repo ContractRepository, objectives objective.ObjectiveService) ContractService {
	return &contractService{repo: repo, objectives: objectives}
}

func (s *contractService) Get(ctx context.Context) (*ContractView, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Warn("Attempt to read contract without authentication")
		return nil, ErrUnauthorized
	}
	userID := uuid.MustParse(claims.UserID)

	c, err := s.repo.FindByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load contract")
		return nil, err
	}
	if c == nil {
		c, err = s.provision(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return s.buildView(ctx, c)
}

func (s *contractService) Sign(ctx context.Context, role string) (*ContractView, error) {
	log := config.WithContext(ctx)

	view, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	c := view.Contract

	sigs := view.Signatures
	switch role {
	case "employee":
		sigs.Employee = true
	case "supervisor":
		sigs.Supervisor = true
	case "reviewer":
		sigs.Reviewer = true
	default:
		return nil, ErrInvalidRole
	}

	raw, err := json.Marshal(sigs)
	if err != nil {
		return nil, err
	}
	c.Signatures = raw
	if sigs.Employee && sigs.Supervisor && sigs.Reviewer {
		c.Status = "Active"
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(c); err != nil {
		log.WithError(err).Error("Failed to record contract signature")
		return nil, err
	}

	log.WithField("role", role).Info("Contract signed")
	view.Signatures = sigs
	return view, nil
}

// provision freezes the caller's current objectives into contract terms.
func (s *contractService) provision(ctx context.Context, userID uuid.UUID) (*Contract, error) {
	log := config.WithContext(ctx)

	objectives, err := s.objectives.List(ctx, objective.Filters{})
	if err != nil {
		return nil, err
	}

	terms := make([]Term, 0, len(objectives))
	for _, o := range objectives {
		terms = append(terms, Term{
			Objective: o.Title,
			KPI:       o.KPI,
			Weight:    o.Weight,
			Target:    o.Target,
			Timeline:  o.DueDate.String(),
		})
	}

	rawTerms, err := json.Marshal(terms)
	if err != nil {
		return nil, err
	}
	rawSigs, err := json.Marshal(Signatures{})
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	c := &Contract{
		ID:         uuid.New(),
		UserID:     userID,
		Period:     fmt.Sprintf("January %d - December %d", year, year),
		Status:     "In Progress",
		Terms:      rawTerms,
		Signatures: rawSigs,
	}
	if err := s.repo.Create(c); err != nil {
		log.WithError(err).Error("Failed to provision contract")
		return nil, err
	}

	log.WithField("user_id", userID).Info("Contract provisioned from current objectives")
	return c, nil
}

func (s *contractService) buildView(ctx context.Context, c *Contract) (*ContractView, error) {
	log := config.WithContext(ctx)

	var terms []Term
	if err := json.Unmarshal(c.Terms, &terms); err != nil {
		return nil, fmt.Errorf("decode contract terms: %w", err)
	}
	var sigs Signatures
	if err := json.Unmarshal(c.Signatures, &sigs); err != nil {
		return nil, fmt.Errorf("decode contract signatures: %w", err)
	}

	view := &ContractView{
		Contract:   c,
		Terms:      terms,
		Signatures: sigs,
	}

	stats, err := s.objectives.Stats(ctx)
	if err != nil {
		// Completion is advisory; the document itself still renders.
		log.WithError(err).Warn("Failed to compute contract completion")
		return view, nil
	}
	view.Completion = stats.AvgProgress
	view.Rating = RatingFor(stats.Score)
	return view, nil
}
