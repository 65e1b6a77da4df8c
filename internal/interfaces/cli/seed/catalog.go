// Package seed loads a catalog of plan types, seat limits and plans from YAML.
package seed

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// Catalog is the document read by the seed command.
type Catalog struct {
	PlanTypes []PlanTypeSeed `yaml:"plan_types"`
}

type PlanTypeSeed struct {
	TypeName    string          `yaml:"type_name"`
	Description string          `yaml:"description"`
	IsActive    *bool           `yaml:"is_active"`
	SeatLimits  []SeatLimitSeed `yaml:"seat_limits"`
	Plans       []PlanSeed      `yaml:"plans"`
}

type SeatLimitSeed struct {
	Admin          bool  `yaml:"admin"`
	MaxSeats       int   `yaml:"max_seats"`
	ExtraSeatPrice int64 `yaml:"extra_seat_price"`
}

type PlanSeed struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	DefaultAmount int64  `yaml:"default_amount"`
	Duration      string `yaml:"duration"`
}

// Parse decodes a catalog and rejects unknown fields and unnamed entries.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	for i, pt := range c.PlanTypes {
		if strings.TrimSpace(pt.TypeName) == "" {
			return nil, fmt.Errorf("plan_types[%d]: type_name is required", i)
		}
		for j, p := range pt.Plans {
			if strings.TrimSpace(p.Name) == "" {
				return nil, fmt.Errorf("plan_types[%d].plans[%d]: name is required", i, j)
			}
		}
	}
	return &c, nil
}

type planTypeUseCase interface {
	Create(ctx context.Context, cmd usecases.PlanTypeCommand) (*dto.PlanTypeDTO, error)
	List(ctx context.Context) ([]*dto.PlanTypeDTO, error)
}

type planUseCase interface {
	Create(ctx context.Context, cmd usecases.PlanCommand) (*dto.PlanDTO, error)
	List(ctx context.Context) ([]*dto.PlanDTO, error)
}

type seatLimitUseCase interface {
	Create(ctx context.Context, cmd usecases.CreateSeatLimitCommand) (*dto.SeatLimitDTO, error)
}

// Result counts what a seed run created and what it found already present.
type Result struct {
	PlanTypes  int
	SeatLimits int
	Plans      int
	Skipped    int
}

// Seeder applies a catalog through the catalog use cases, so every row goes
// through the same validation as the admin API. Existing plan types and plans
// are matched by name and left untouched.
type Seeder struct {
	planTypes  planTypeUseCase
	plans      planUseCase
	seatLimits seatLimitUseCase
	actorID    uint64
	logger     logger.Interface
}

func NewSeeder(planTypes planTypeUseCase, plans planUseCase, seatLimits seatLimitUseCase, actorID uint64, logger logger.Interface) *Seeder {
	return &Seeder{
		planTypes:  planTypes,
		plans:      plans,
		seatLimits: seatLimits,
		actorID:    actorID,
		logger:     logger,
	}
}

func (s *Seeder) Apply(ctx context.Context, c *Catalog) (*Result, error) {
	existingTypes, err := s.planTypes.List(ctx)
	if err != nil {
		return nil, err
	}
	typeIDs := make(map[string]int64, len(existingTypes))
	for _, pt := range existingTypes {
		typeIDs[strings.ToLower(pt.TypeName)] = int64(pt.ID)
	}

	existingPlans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	planKeys := make(map[string]bool, len(existingPlans))
	for _, p := range existingPlans {
		planKeys[planKey(int64(p.PlanTypeID), p.Name)] = true
	}

	res := &Result{}
	for _, pt := range c.PlanTypes {
		typeID, ok := typeIDs[strings.ToLower(pt.TypeName)]
		if ok {
			res.Skipped++
		} else {
			active := pt.IsActive == nil || *pt.IsActive
			created, err := s.planTypes.Create(ctx, usecases.PlanTypeCommand{
				TypeName:    pt.TypeName,
				Description: pt.Description,
				IsActive:    active,
				ActorID:     s.actorID,
			})
			if err != nil {
				return res, fmt.Errorf("plan type %q: %w", pt.TypeName, err)
			}
			typeID = int64(created.ID)
			res.PlanTypes++
		}

		for _, sl := range pt.SeatLimits {
			_, err := s.seatLimits.Create(ctx, usecases.CreateSeatLimitCommand{
				PlanTypeID:     typeID,
				Admin:          sl.Admin,
				MaxSeats:       sl.MaxSeats,
				ExtraSeatPrice: sl.ExtraSeatPrice,
				ActorID:        s.actorID,
			})
			switch {
			case errors.IsConflictError(err):
				res.Skipped++
			case err != nil:
				return res, fmt.Errorf("seat limit of %q (admin=%t): %w", pt.TypeName, sl.Admin, err)
			default:
				res.SeatLimits++
			}
		}

		for _, p := range pt.Plans {
			if planKeys[planKey(typeID, p.Name)] {
				res.Skipped++
				continue
			}
			if _, err := s.plans.Create(ctx, usecases.PlanCommand{
				Name:          p.Name,
				Description:   p.Description,
				DefaultAmount: p.DefaultAmount,
				Duration:      p.Duration,
				PlanTypeID:    typeID,
				ActorID:       s.actorID,
			}); err != nil {
				return res, fmt.Errorf("plan %q: %w", p.Name, err)
			}
			res.Plans++
		}
	}

	s.logger.Infow("catalog seeded",
		"plan_types", res.PlanTypes,
		"seat_limits", res.SeatLimits,
		"plans", res.Plans,
		"skipped", res.Skipped)
	return res, nil
}

func planKey(planTypeID int64, name string) string {
	return fmt.Sprintf("%d/%s", planTypeID, strings.ToLower(name))
}
