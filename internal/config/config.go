// Package config provides YAML-based game configuration loading and
// difficulty presets for the frogger platform.
package config

import (
	"errors"
	"fmt"
)

// Lane counts of the canonical board. The board itself is a fixed table in
// the game package; configs must describe exactly one lane per moving row.
const (
	RoadLaneCount  = 6
	RiverLaneCount = 5
)

// Lane directions.
const (
	DirLeft  = "left"
	DirRight = "right"
)

// FroggerConfig contains all configuration for the Frogger game.
type FroggerConfig struct {
	Board      BoardConfig    `yaml:"board"`
	Gameplay   GameplayConfig `yaml:"gameplay"`
	Spawn      SpawnConfig    `yaml:"spawn"`
	RoadLanes  []LaneConfig   `yaml:"road_lanes"`
	RiverLanes []LaneConfig   `yaml:"river_lanes"`
}

// BoardConfig defines board geometry.
type BoardConfig struct {
	Cols int `yaml:"cols"` // Board width in cells
}

// GameplayConfig defines lives, scoring, and goal slots.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	SlotPoints int `yaml:"slot_points"` // Points awarded per filled goal slot
	GoalSlots  int `yaml:"goal_slots"`
}

// SpawnConfig defines entity placement parameters.
type SpawnConfig struct {
	// MarginCells is the minimum gap between entities in a lane, in cells,
	// beyond the entity width.
	MarginCells int `yaml:"margin_cells"`
}

// LaneConfig describes one moving lane: entity size, speed range, direction,
// and how many entities populate it.
type LaneConfig struct {
	Width    int    `yaml:"width"`     // Entity width in cells
	SpeedMin int    `yaml:"speed_min"` // Milli-cells per tick
	SpeedMax int    `yaml:"speed_max"` // Milli-cells per tick
	Dir      string `yaml:"dir"`       // "left" or "right"
	CountMin int    `yaml:"count_min"`
	CountMax int    `yaml:"count_max"`
}

// Validate checks the configuration for defects. An invalid config is a
// configuration error, fatal at startup: the simulation has no recoverable
// path for it.
func (c FroggerConfig) Validate() error {
	if c.Board.Cols < 10 {
		return fmt.Errorf("config: board cols %d too small (minimum 10)", c.Board.Cols)
	}
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("config: lives must be positive, got %d", c.Gameplay.Lives)
	}
	if c.Gameplay.SlotPoints <= 0 {
		return fmt.Errorf("config: slot_points must be positive, got %d", c.Gameplay.SlotPoints)
	}
	if c.Gameplay.GoalSlots <= 0 {
		return fmt.Errorf("config: goal_slots must be positive, got %d", c.Gameplay.GoalSlots)
	}
	if c.Board.Cols/(c.Gameplay.GoalSlots+1) < 1 {
		return fmt.Errorf("config: %d goal slots do not fit in %d columns", c.Gameplay.GoalSlots, c.Board.Cols)
	}
	if c.Spawn.MarginCells < 0 {
		return fmt.Errorf("config: margin_cells must not be negative, got %d", c.Spawn.MarginCells)
	}
	if len(c.RoadLanes) != RoadLaneCount {
		return fmt.Errorf("config: expected %d road lanes, got %d", RoadLaneCount, len(c.RoadLanes))
	}
	if len(c.RiverLanes) != RiverLaneCount {
		return fmt.Errorf("config: expected %d river lanes, got %d", RiverLaneCount, len(c.RiverLanes))
	}

	for i, lane := range c.RoadLanes {
		if err := c.validateLane(lane); err != nil {
			return fmt.Errorf("config: road lane %d: %w", i, err)
		}
	}
	for i, lane := range c.RiverLanes {
		if err := c.validateLane(lane); err != nil {
			return fmt.Errorf("config: river lane %d: %w", i, err)
		}
	}
	return nil
}

func (c FroggerConfig) validateLane(lane LaneConfig) error {
	if lane.Width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", lane.Width)
	}
	if lane.SpeedMin <= 0 {
		return fmt.Errorf("speed_min must be positive, got %d", lane.SpeedMin)
	}
	if lane.SpeedMin > lane.SpeedMax {
		return fmt.Errorf("speed_min %d exceeds speed_max %d", lane.SpeedMin, lane.SpeedMax)
	}
	if lane.Dir != DirLeft && lane.Dir != DirRight {
		return fmt.Errorf("dir must be %q or %q, got %q", DirLeft, DirRight, lane.Dir)
	}
	if lane.CountMin < 1 {
		return fmt.Errorf("count_min must be at least 1, got %d", lane.CountMin)
	}
	if lane.CountMin > lane.CountMax {
		return fmt.Errorf("count_min %d exceeds count_max %d", lane.CountMin, lane.CountMax)
	}
	// Entities must fit in the lane with their minimum gap even at max count.
	if c.Board.Cols/lane.CountMax < lane.Width+c.Spawn.MarginCells {
		return errors.New("entities cannot fit in lane with required spacing")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level. Presets are static
// parameter sets applied once at load time; there is no in-play progression.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyFroggerPreset modifies the config based on a difficulty preset.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		scaleLaneSpeeds(cfg.RoadLanes, 80)
		scaleLaneSpeeds(cfg.RiverLanes, 80)
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		scaleLaneSpeeds(cfg.RoadLanes, 130)
		scaleLaneSpeeds(cfg.RiverLanes, 130)
	}
	// Normal keeps the config as loaded.
}

// scaleLaneSpeeds multiplies lane speed ranges by pct/100.
func scaleLaneSpeeds(lanes []LaneConfig, pct int) {
	for i := range lanes {
		lanes[i].SpeedMin = max(1, lanes[i].SpeedMin*pct/100)
		lanes[i].SpeedMax = max(lanes[i].SpeedMin, lanes[i].SpeedMax*pct/100)
	}
}
