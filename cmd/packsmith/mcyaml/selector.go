package mcyaml

import (
	"fmt"
	"strconv"
	"strings"

	"packsmith/cmd/packsmith/mc"

	"gopkg.in/yaml.v3"
)

// parseSelector turns a YAML selector block into an mc.Selector.
//
// The block is a mapping. "target" names the glyph (default "@e"); "single"
// attaches the single-result capability. Every other key is a filter
// argument, applied in document order so the encoded output follows the
// author's ordering for the generic keys. Filter keys this loader does not
// model fall through to the generic key=value escape hatch when their value
// is a scalar.
func parseSelector(node *yaml.Node, path string) (mc.Selector, error) {
	if node.Kind != yaml.MappingNode {
		return mc.Selector{}, fmt.Errorf("phase=parse path=%s: selector must be a mapping", path)
	}

	glyph := "@e"
	single := false
	var args []mc.Arg

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		key := keyNode.Value
		keyPath := path + "." + key

		switch key {
		case "target":
			glyph = valNode.Value
		case "single":
			b, err := parseBool(valNode)
			if err != nil {
				return mc.Selector{}, fmt.Errorf("phase=parse path=%s: %w", keyPath, err)
			}
			single = b
		default:
			arg, err := parseSelectorArg(key, valNode, keyPath)
			if err != nil {
				return mc.Selector{}, err
			}
			args = append(args, arg)
		}
	}

	caps := mc.Caps{Single: single, PlayersOnly: playersOnlyGlyph(glyph)}
	sel, err := mc.Target(glyph, caps, args...)
	if err != nil {
		return mc.Selector{}, fmt.Errorf("phase=parse path=%s: %w", path, err)
	}
	return sel, nil
}

// playersOnlyGlyph reports whether the glyph inherently targets players.
func playersOnlyGlyph(glyph string) bool {
	switch glyph {
	case mc.GlyphNearestPlayer, mc.GlyphRandomPlayer, mc.GlyphAllPlayers:
		return true
	}
	return false
}

// parseSelectorArg maps one filter key to its mc.Arg.
func parseSelectorArg(key string, node *yaml.Node, path string) (mc.Arg, error) {
	fail := func(err error) (mc.Arg, error) {
		return nil, fmt.Errorf("phase=parse path=%s: %w", path, err)
	}

	switch key {
	case "limit":
		n, err := strconv.Atoi(node.Value)
		if err != nil {
			return fail(fmt.Errorf("limit must be an integer: %q", node.Value))
		}
		return mc.Limit(n), nil

	case "distance", "level", "x_rotation", "y_rotation":
		iv, err := parseInterval(node)
		if err != nil {
			return fail(err)
		}
		switch key {
		case "distance":
			return mc.Distance(iv), nil
		case "level":
			return mc.Level(iv), nil
		case "x_rotation":
			return mc.XRotation(iv), nil
		default:
			return mc.YRotation(iv), nil
		}

	case "gamemode":
		mode := mc.Gamemode(node.Value)
		switch mode {
		case mc.Survival, mc.Creative, mc.Adventure, mc.Spectator:
			return mc.Mode(mode), nil
		}
		return fail(fmt.Errorf("unknown gamemode %q", node.Value))

	case "sort":
		order := mc.Sort(node.Value)
		switch order {
		case mc.Nearest, mc.Furthest, mc.Random, mc.Arbitrary:
			return mc.SortBy(order), nil
		}
		return fail(fmt.Errorf("unknown sort order %q", node.Value))

	case "name":
		return mc.Named(node.Value), nil

	case "tag", "predicate", "type":
		values, err := parseOneOrMany(node)
		if err != nil {
			return fail(err)
		}
		switch key {
		case "tag":
			return mc.Tags(values...), nil
		case "predicate":
			return mc.Predicates(values...), nil
		default:
			return mc.Types(values...), nil
		}

	case "team":
		if node.Tag == "!!bool" {
			b, err := parseBool(node)
			if err != nil {
				return fail(err)
			}
			if b {
				return mc.AnyTeam(), nil
			}
			return mc.Teamless(), nil
		}
		return mc.Team(node.Value), nil

	case "scores":
		matches, err := parseScores(node)
		if err != nil {
			return fail(err)
		}
		return mc.Scores(matches...), nil

	case "advancements":
		matches, err := parseAdvancements(node)
		if err != nil {
			return fail(err)
		}
		return mc.Advancements(matches...), nil

	case "x", "y", "z", "dx", "dy", "dz":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fail(fmt.Errorf("%s must be a number: %q", key, node.Value))
		}
		return mc.KeyValue(key, trimFloat(f)), nil

	default:
		if node.Kind != yaml.ScalarNode {
			return fail(fmt.Errorf("unsupported value shape for filter key %q", key))
		}
		return mc.KeyValue(key, node.Value), nil
	}
}

// parseInterval accepts a scalar number, a range string ("2..", "..5",
// "1..3"), or a two-element sequence [min, max] where either element may be
// null to leave the bound open.
func parseInterval(node *yaml.Node) (mc.Interval, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		s := node.Value
		if !strings.Contains(s, "..") {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return mc.Interval{}, fmt.Errorf("range %q is not a number", s)
			}
			return mc.Exactly(f), nil
		}
		lo, hi, _ := strings.Cut(s, "..")
		return boundsInterval(lo, hi, s)

	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return mc.Interval{}, fmt.Errorf("range sequence must have exactly two elements")
		}
		lo, hi := node.Content[0], node.Content[1]
		loVal, hiVal := lo.Value, hi.Value
		if lo.Tag == "!!null" {
			loVal = ""
		}
		if hi.Tag == "!!null" {
			hiVal = ""
		}
		return boundsInterval(loVal, hiVal, "[min, max]")
	}
	return mc.Interval{}, fmt.Errorf("range must be a number, a \"min..max\" string, or a [min, max] pair")
}

func boundsInterval(lo, hi, orig string) (mc.Interval, error) {
	switch {
	case lo == "" && hi == "":
		return mc.Interval{}, fmt.Errorf("range %q has no bounds", orig)
	case hi == "":
		f, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return mc.Interval{}, fmt.Errorf("range %q: bad lower bound", orig)
		}
		return mc.AtLeast(f), nil
	case lo == "":
		f, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return mc.Interval{}, fmt.Errorf("range %q: bad upper bound", orig)
		}
		return mc.AtMost(f), nil
	default:
		min, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return mc.Interval{}, fmt.Errorf("range %q: bad lower bound", orig)
		}
		max, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return mc.Interval{}, fmt.Errorf("range %q: bad upper bound", orig)
		}
		return mc.Between(min, max), nil
	}
}

// parseScores reads an ordered mapping of objective name → range.
func parseScores(node *yaml.Node) ([]mc.ScoreMatch, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("scores must be a mapping of objective to range")
	}
	var out []mc.ScoreMatch
	for i := 0; i+1 < len(node.Content); i += 2 {
		iv, err := parseInterval(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("objective %q: %w", node.Content[i].Value, err)
		}
		out = append(out, mc.ScoreMatch{Objective: node.Content[i].Value, Value: iv})
	}
	return out, nil
}

// parseAdvancements reads an ordered mapping of advancement name → bool, or
// name → mapping of criterion → bool (one nesting level).
func parseAdvancements(node *yaml.Node) ([]mc.AdvancementMatch, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("advancements must be a mapping")
	}
	var out []mc.AdvancementMatch
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		val := node.Content[i+1]
		switch val.Kind {
		case yaml.ScalarNode:
			done, err := parseBool(val)
			if err != nil {
				return nil, fmt.Errorf("advancement %q: %w", name, err)
			}
			out = append(out, mc.AdvancementMatch{Name: name, Done: done})
		case yaml.MappingNode:
			var criteria []mc.CriterionMatch
			for j := 0; j+1 < len(val.Content); j += 2 {
				done, err := parseBool(val.Content[j+1])
				if err != nil {
					return nil, fmt.Errorf("advancement %q criterion %q: %w", name, val.Content[j].Value, err)
				}
				criteria = append(criteria, mc.CriterionMatch{Name: val.Content[j].Value, Done: done})
			}
			out = append(out, mc.AdvancementMatch{Name: name, Criteria: criteria})
		default:
			return nil, fmt.Errorf("advancement %q: value must be a bool or a criterion mapping", name)
		}
	}
	return out, nil
}

// parseOneOrMany accepts a scalar or a sequence of scalars.
func parseOneOrMany(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		out := make([]string, len(node.Content))
		for i, c := range node.Content {
			if c.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("list elements must be scalars")
			}
			out[i] = c.Value
		}
		return out, nil
	}
	return nil, fmt.Errorf("value must be a scalar or a list of scalars")
}

func parseBool(node *yaml.Node) (bool, error) {
	switch node.Value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("expected a bool, got %q", node.Value)
}

// trimFloat renders a float without trailing zeros (64 → "64").
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
