package mc

import (
	"strconv"
	"strings"
)

// phaseOneKeys is the fixed matcher order for the special-cased filter
// keys. The game parses arguments in any order, but a fixed order keeps
// encoded selectors stable and diffable, so it is part of the contract.
var phaseOneKeys = [...]string{"scores", "advancements", "tag", "predicate", "team"}

// String encodes the selector in the game's textual grammar.
//
// Encoding is a pure function of the argument sequence: special-cased keys
// are rendered first in their fixed order, every remaining argument follows
// in insertion order. Nothing is removed from the selector itself — matched
// arguments are copied into the output sequence — so repeated calls give
// identical strings.
func (s Selector) String() string {
	if len(s.args) == 0 {
		return s.glyph
	}

	parts := make([]string, 0, len(s.args))
	done := make([]bool, len(s.args))

	for _, key := range phaseOneKeys {
		for i, p := range s.args {
			if done[i] || p.key != key {
				continue
			}
			done[i] = true
			parts = appendSpecial(parts, p)
		}
	}

	for i, p := range s.args {
		if done[i] {
			continue
		}
		parts = appendGeneric(parts, p)
	}

	// One-or-many arguments with no elements emit no pairs at all; if that
	// leaves nothing, the bare glyph is the output.
	if len(parts) == 0 {
		return s.glyph
	}
	return s.glyph + "[" + strings.Join(parts, ", ") + "]"
}

// appendSpecial renders one phase-1 argument.
func appendSpecial(parts []string, p argPair) []string {
	switch val := p.val.(type) {
	case scoresValue:
		inner := make([]string, len(val))
		for i, m := range val {
			inner[i] = m.Objective + "=" + m.Value.String()
		}
		return append(parts, p.key+"={"+strings.Join(inner, ",")+"}")

	case advancementsValue:
		inner := make([]string, len(val))
		for i, m := range val {
			inner[i] = m.Name + "=" + advancementLeaf(m)
		}
		return append(parts, p.key+"={"+strings.Join(inner, ",")+"}")

	case listValue:
		// tag / predicate: one repeated pair per element, order preserved.
		for _, v := range val {
			parts = append(parts, p.key+"="+v)
		}
		return parts

	case teamValue:
		switch {
		case val.any:
			return append(parts, p.key+"=!")
		case val.none:
			return append(parts, p.key+"=")
		default:
			return append(parts, p.key+"="+val.name)
		}
	}
	return appendGeneric(parts, p)
}

// advancementLeaf renders the value side of one advancement entry: a bare
// boolean, or a nested criterion group one level deep.
func advancementLeaf(m AdvancementMatch) string {
	if len(m.Criteria) == 0 {
		return strconv.FormatBool(m.Done)
	}
	inner := make([]string, len(m.Criteria))
	for i, c := range m.Criteria {
		inner[i] = c.Name + "=" + strconv.FormatBool(c.Done)
	}
	return "{" + strings.Join(inner, ",") + "}"
}

// appendGeneric renders a phase-2 argument: key=value with no further
// interpretation, expanding one-or-many values into repeated pairs.
func appendGeneric(parts []string, p argPair) []string {
	switch val := p.val.(type) {
	case listValue:
		for _, v := range val {
			parts = append(parts, p.key+"="+v)
		}
		return parts
	case stringValue:
		return append(parts, p.key+"="+string(val))
	case intValue:
		return append(parts, p.key+"="+strconv.Itoa(int(val)))
	case numberValue:
		return append(parts, p.key+"="+formatNum(float64(val)))
	case intervalValue:
		return append(parts, p.key+"="+Interval(val).String())
	}
	return parts
}
