package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangdaddy/hillclimber/pkg/metrics"
	"github.com/golangdaddy/hillclimber/pkg/models"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/rs/zerolog"
)

var upgradeNames = map[models.Track]string{
	models.Engine: "ENGINE",
	models.Fuel:   "FUEL TANK",
	models.Grip:   "TIRE GRIP",
}

// Shop runs purchases against the progression and tells the player how they went
type Shop struct {
	prog    *models.Progression
	notes   *sim.Notifier
	metrics *metrics.Recorder
	log     zerolog.Logger
}

// NewShop creates a shop. metrics may be nil.
func NewShop(prog *models.Progression, notes *sim.Notifier, m *metrics.Recorder, log zerolog.Logger) *Shop {
	return &Shop{
		prog:    prog,
		notes:   notes,
		metrics: m,
		log:     log.With().Str("component", "shop").Logger(),
	}
}

// Purchase buys a vehicle, or selects it when it is already owned
func (s *Shop) Purchase(id vehicle.ID) error {
	owned := s.prog.Owns(id)
	if err := s.prog.Purchase(id); err != nil {
		s.log.Warn().Err(err).Str("vehicle", string(id)).Msg("purchase refused")
		s.notes.Push(s.refusal(err, s.priceOf(id)), sim.NoteWarning)
		return err
	}
	if owned {
		s.log.Debug().Str("vehicle", string(id)).Msg("vehicle selected")
		return nil
	}

	name := strings.ToUpper(s.prog.Selected().Archetype().Name)
	s.notes.Push(fmt.Sprintf("%s PURCHASED!", name), sim.NoteInfo)
	s.log.Info().Str("vehicle", string(id)).Int("balance", s.prog.Balance()).Msg("vehicle purchased")
	if s.metrics != nil {
		s.metrics.Purchase(id)
	}
	return nil
}

// Upgrade buys one level on a track
func (s *Shop) Upgrade(t models.Track) error {
	if err := s.prog.Upgrade(t); err != nil {
		s.log.Warn().Err(err).Str("track", string(t)).Msg("upgrade refused")
		s.notes.Push(s.refusal(err, models.UpgradeCost[t]), sim.NoteWarning)
		return err
	}

	level := s.prog.Level(t)
	s.notes.Push(fmt.Sprintf("%s UPGRADED!", upgradeNames[t]), sim.NoteInfo)
	s.log.Info().Str("track", string(t)).Int("level", level).Int("balance", s.prog.Balance()).Msg("upgrade bought")
	if s.metrics != nil {
		s.metrics.Upgrade(string(t), level)
	}
	return nil
}

func (s *Shop) priceOf(id vehicle.ID) int {
	p, err := s.prog.Catalog().Profile(id)
	if err != nil {
		return 0
	}
	return p.Archetype().Price
}

// refusal turns a progression error into the message shown to the player
func (s *Shop) refusal(err error, price int) string {
	switch {
	case errors.Is(err, models.ErrInsufficientFunds):
		return fmt.Sprintf("Need %d more coins!", price-s.prog.Balance())
	case errors.Is(err, models.ErrMaxLevel):
		return "Already at max level!"
	case errors.Is(err, models.ErrUnknownVehicle):
		return "Unknown vehicle"
	}
	return "Not available"
}
