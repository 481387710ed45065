package config

import (
	"fmt"

	"github.com/floorforge/floorforge/internal/assign"
	"github.com/floorforge/floorforge/internal/constraint"
	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/dungeon"
	"github.com/floorforge/floorforge/internal/graph"
	"github.com/floorforge/floorforge/internal/spatial"
	"github.com/floorforge/floorforge/internal/template"
)

// Build converts a parsed floor file into a generation config. Custom
// templates are layered on top of the builtin pool.
func Build(ff FloorFile) (dungeon.FloorConfig, error) {
	cfg := dungeon.FloorConfig{
		Seed:            ff.Floor.Seed,
		FloorIndex:      ff.Floor.FloorIndex,
		RoomCount:       ff.Floor.RoomCount,
		BranchingFactor: ff.Floor.BranchingFactor,
		ZoneMap:         ff.Zones,
	}

	mode, err := parseHallwayMode(ff.Floor.HallwayMode)
	if err != nil {
		return cfg, err
	}
	cfg.HallwayMode = mode

	cfg.Topology = buildTopology(ff.Topology)

	for _, rd := range ff.Requirements {
		req := assign.Requirement{
			Type:  core.RoomType(rd.Type),
			Count: rd.Count,
			Zone:  assign.NoZone,
		}
		if rd.Zone != nil {
			req.Zone = *rd.Zone
		}
		cfg.Requirements = append(cfg.Requirements, req)
	}

	for i, cd := range ff.Constraints {
		c, err := buildConstraint(cd)
		if err != nil {
			return cfg, fmt.Errorf("constraint %d: %w", i, err)
		}
		cfg.Constraints = append(cfg.Constraints, c)
	}

	if len(ff.Templates) > 0 {
		pool := template.Builtin()
		for _, td := range ff.Templates {
			tpl, err := buildTemplate(td)
			if err != nil {
				return cfg, fmt.Errorf("template %q: %w", td.ID, err)
			}
			pool.Add(tpl)
		}
		cfg.Pool = pool
	}

	return cfg, nil
}

func parseHallwayMode(s string) (spatial.HallwayMode, error) {
	switch s {
	case "", "when-needed":
		return spatial.HallwaysWhenNeeded, nil
	case "none":
		return spatial.HallwaysNone, nil
	case "always":
		return spatial.HallwaysAlways, nil
	default:
		return spatial.HallwaysWhenNeeded, fmt.Errorf("config: unknown hallway mode %q", s)
	}
}

func buildTopology(ts TopologySection) graph.Config {
	gc := graph.Config{Kind: graph.Kind(ts.Kind)}
	if ts.Kind == "" {
		gc.Kind = graph.KindSpanningTree
	}
	gc.Grid = graph.GridConfig{
		Width:    ts.Grid.Width,
		Height:   ts.Grid.Height,
		EightWay: ts.Grid.EightWay,
	}
	gc.Cellular = graph.CellularConfig{
		Width:         ts.Cellular.Width,
		Height:        ts.Cellular.Height,
		FillChance:    ts.Cellular.FillChance,
		Iterations:    ts.Cellular.Iterations,
		BirthLimit:    ts.Cellular.BirthLimit,
		SurvivalLimit: ts.Cellular.SurvivalLimit,
	}
	gc.Maze = graph.MazeConfig{
		Algorithm: graph.MazeAlgorithm(ts.Maze.Algorithm),
		Perfect:   ts.Maze.Perfect,
	}
	gc.HubSpoke = graph.HubSpokeConfig{
		HubCount:       ts.HubSpoke.HubCount,
		MaxSpokeLength: ts.HubSpoke.MaxSpokeLength,
	}
	return gc
}

func buildConstraint(cd ConstraintDef) (constraint.Constraint, error) {
	rt := core.RoomType(cd.Type)
	other := core.RoomType(cd.Other)
	switch cd.Kind {
	case "min_distance":
		return constraint.MinDistanceFromStart(rt, cd.Min), nil
	case "max_distance":
		return constraint.MaxDistanceFromStart(rt, cd.Max), nil
	case "min_connections":
		return constraint.MinConnections(rt, cd.Min), nil
	case "max_connections":
		return constraint.MaxConnections(rt, cd.Max), nil
	case "dead_end":
		return constraint.DeadEnd(rt), nil
	case "not_dead_end":
		return constraint.NotDeadEnd(rt), nil
	case "on_critical_path":
		return constraint.OnCriticalPath(rt), nil
	case "off_critical_path":
		return constraint.OffCriticalPath(rt), nil
	case "come_before":
		return constraint.ComeBefore(rt, other), nil
	case "come_after":
		return constraint.ComeAfter(rt, other), nil
	case "adjacent_to":
		return constraint.AdjacentToType(rt, other), nil
	case "not_adjacent_to":
		return constraint.NotAdjacentToType(rt, other), nil
	case "floor_range":
		return constraint.FloorRange(rt, cd.Min, cd.Max), nil
	case "floor_exclusive":
		return constraint.FloorExclusive(rt, cd.Floor), nil
	case "floor_cap":
		return constraint.FloorCap(rt, cd.Max), nil
	case "zone_only":
		return constraint.ZoneOnly(rt, cd.Zone), nil
	default:
		return constraint.Constraint{}, fmt.Errorf("config: unknown constraint kind %q", cd.Kind)
	}
}

// buildTemplate parses a row-drawn footprint. '#' marks a floor cell; any
// other rune is empty. Every floor cell may host doors on its exposed edges.
func buildTemplate(td TemplateDef) (*template.Template, error) {
	var cells []core.Cell
	doors := make(map[core.Cell]core.Edge)
	for y, row := range td.Rows {
		// Ranging over the string would step byte offsets, skewing cell
		// coordinates after any multi-byte rune.
		for x, r := range []rune(row) {
			if r != '#' {
				continue
			}
			c := core.C(x, y)
			cells = append(cells, c)
			doors[c] = core.EdgeAll
		}
	}

	weight := td.Weight
	if weight == 0 {
		weight = 1
	}
	types := make([]core.RoomType, 0, len(td.Types))
	for _, t := range td.Types {
		types = append(types, core.RoomType(t))
	}

	tpl, err := template.New(td.ID, cells, doors, weight, types...)
	if err != nil {
		return nil, err
	}
	tpl.MinDifficulty = td.MinDifficulty
	tpl.MaxDifficulty = td.MaxDifficulty
	return tpl, nil
}
