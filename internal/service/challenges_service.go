package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/internal/repository"
	"github.com/limbo/progressly/pkg/entity"
	"github.com/limbo/progressly/pkg/logger"
)

const defaultSuccessThreshold = 80

type ChallengesService struct {
	repo repository.ChallengesRepositoryI
	log  *logger.Logger
}

func NewChallengesService(challengesRepo repository.ChallengesRepositoryI, lg *logger.Logger) *ChallengesService {
	if challengesRepo == nil {
		log.Fatal("provided nil challengesRepo")
	}
	if lg == nil {
		lg = logger.Nop()
	}
	return &ChallengesService{
		repo: challengesRepo,
		log:  lg.With("service", "ChallengesService"),
	}
}

func (cs *ChallengesService) CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.StartDate.IsZero() {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("start date is required"))
	}
	commitments := make([]entity.Commitment, 0, len(req.Commitments))
	for i, c := range req.Commitments {
		if !c.Target.Complete && c.Target.Value <= 0 {
			return nil, errors.Join(errorvalues.ErrValidation, fmt.Errorf("commitment %d: target must be positive or \"complete\"", i))
		}
		unit := entity.Unit(c.Unit)
		if unit == "" {
			unit = entity.UnitHours
		}
		commitments = append(commitments, entity.Commitment{
			ID:       commitmentID(c.ID, i),
			Habit:    c.Habit,
			Category: c.Category,
			Target:   c.Target,
			Unit:     unit,
			Frequency: entity.Frequency{
				Type: entity.FrequencyType(c.Frequency.Type),
				Days: c.Frequency.Days,
			},
		})
	}
	challenge := entity.NewChallenge(uid, req.Name, req.StartDate, req.DurationDays, commitments)
	challenge.IdentityStatement = req.IdentityStatement
	challenge.WhyStatement = req.WhyStatement
	challenge.ObstaclePrediction = req.ObstaclePrediction
	challenge.SuccessThreshold = defaultSuccessThreshold
	if req.SuccessThreshold != nil {
		challenge.SuccessThreshold = *req.SuccessThreshold
	}

	id, err := cs.repo.Create(ctx, challenge)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActiveChallengeExists) {
			return nil, err
		}
		return nil, fmt.Errorf("challenges repository error: %w", err)
	}
	challenge.ID = id
	cs.log.Info("challenge created", "challenge_id", id.String(), "uid", uid.String(), "days", challenge.DurationDays)
	return challenge, nil
}

// commitmentID keeps client supplied ids so stored day statuses stay
// addressable; otherwise ids are positional.
func commitmentID(given string, i int) string {
	if given != "" {
		return given
	}
	return "c" + strconv.Itoa(i+1)
}

func (cs *ChallengesService) GetChallenge(ctx context.Context, uid, challengeID uuid.UUID) (*entity.Challenge, error) {
	return ownedChallenge(ctx, cs.repo, uid, challengeID)
}

func (cs *ChallengesService) GetActiveChallenge(ctx context.Context, uid uuid.UUID) (*entity.Challenge, error) {
	challenge, err := cs.repo.GetActiveByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("challenges repository error: %w", err)
	}
	return challenge, nil
}

func (cs *ChallengesService) UpdateStatus(ctx context.Context, uid, challengeID uuid.UUID, status entity.ChallengeStatus) error {
	switch status {
	case entity.ChallengeActive, entity.ChallengeCompleted, entity.ChallengeAbandoned:
	default:
		return errorvalues.ErrInvalidStatus
	}
	if _, err := ownedChallenge(ctx, cs.repo, uid, challengeID); err != nil {
		return err
	}
	err := cs.repo.UpdateStatus(ctx, challengeID, status)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound), errors.Is(err, errorvalues.ErrActiveChallengeExists):
			return err
		}
		return fmt.Errorf("challenges repository error: %w", err)
	}
	return nil
}

// ownedChallenge loads a challenge and makes sure uid owns it.
func ownedChallenge(ctx context.Context, repo repository.ChallengesRepositoryI, uid, challengeID uuid.UUID) (*entity.Challenge, error) {
	challenge, err := repo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("challenges repository error: %w", err)
	}
	if challenge.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return challenge, nil
}
