package mc

import "fmt"

// Target glyphs understood by the game's selector grammar.
const (
	GlyphSelf          = "@s"
	GlyphNearestPlayer = "@p"
	GlyphRandomPlayer  = "@r"
	GlyphAllPlayers    = "@a"
	GlyphAllEntities   = "@e"
)

// Caps are the construction-time capability tags of a selector: they narrow
// which filter shapes an instance may legally carry. They are checked when
// the selector is built, never during encoding, and are not part of the
// serialized output.
//
//   - Single: the argument position expects at most one entity, so the
//     selector must carry a limit of exactly 0 or 1.
//   - PlayersOnly: the type filter may only name the player type.
type Caps struct {
	Single      bool
	PlayersOnly bool
}

// Selector is an immutable entity target selector. Build one with the
// glyph constructors (Self, NearestPlayer, AllEntities, …) or Target;
// String renders the exact textual form the game parses.
type Selector struct {
	glyph string
	caps  Caps
	args  []argPair
}

// argPair is one filter argument. Arguments keep their insertion order so
// encoding is deterministic; a re-set scalar key keeps its original slot.
type argPair struct {
	key string
	val argValue
}

// argValue is the sealed set of filter value shapes.
type argValue interface{ isArgValue() }

type stringValue string
type intValue int
type numberValue float64
type intervalValue Interval
type listValue []string
type teamValue struct {
	name string
	any  bool
	none bool
}
type scoresValue []ScoreMatch
type advancementsValue []AdvancementMatch

func (stringValue) isArgValue()       {}
func (intValue) isArgValue()          {}
func (numberValue) isArgValue()       {}
func (intervalValue) isArgValue()     {}
func (listValue) isArgValue()         {}
func (teamValue) isArgValue()         {}
func (scoresValue) isArgValue()       {}
func (advancementsValue) isArgValue() {}

// ScoreMatch filters on one objective's value.
type ScoreMatch struct {
	Objective string
	Value     Interval
}

// AdvancementMatch filters on an advancement: either completed as a whole
// (Done, with no Criteria) or on individual criteria.
type AdvancementMatch struct {
	Name     string
	Done     bool
	Criteria []CriterionMatch
}

// CriterionMatch filters on a single advancement criterion.
type CriterionMatch struct {
	Name string
	Done bool
}

// Gamemode is an enumerated game-mode token.
type Gamemode string

const (
	Survival  Gamemode = "survival"
	Creative  Gamemode = "creative"
	Adventure Gamemode = "adventure"
	Spectator Gamemode = "spectator"
)

// Sort is an enumerated result-ordering token.
type Sort string

const (
	Nearest   Sort = "nearest"
	Furthest  Sort = "furthest"
	Random    Sort = "random"
	Arbitrary Sort = "arbitrary"
)

// Arg sets one filter argument on a selector under construction.
type Arg func(*Selector)

// ---------------------------------------------------------------------------
// Constructors — one per legal (glyph, cardinality, players-only) combination
// ---------------------------------------------------------------------------

// Self targets the executing entity (@s).
func Self(args ...Arg) (Selector, error) {
	return Target(GlyphSelf, Caps{}, args...)
}

// NearestPlayer targets the nearest player (@p).
func NearestPlayer(args ...Arg) (Selector, error) {
	return Target(GlyphNearestPlayer, Caps{PlayersOnly: true}, args...)
}

// RandomPlayer targets a random player (@r).
func RandomPlayer(args ...Arg) (Selector, error) {
	return Target(GlyphRandomPlayer, Caps{PlayersOnly: true}, args...)
}

// AllPlayers targets every matching player (@a).
func AllPlayers(args ...Arg) (Selector, error) {
	return Target(GlyphAllPlayers, Caps{PlayersOnly: true}, args...)
}

// AllEntities targets every matching entity (@e).
func AllEntities(args ...Arg) (Selector, error) {
	return Target(GlyphAllEntities, Caps{}, args...)
}

// SingleEntity targets at most one entity (@e with the Single capability):
// the arguments must include Limit(0) or Limit(1).
func SingleEntity(args ...Arg) (Selector, error) {
	return Target(GlyphAllEntities, Caps{Single: true}, args...)
}

// SinglePlayer targets at most one player (@a with the Single capability).
func SinglePlayer(args ...Arg) (Selector, error) {
	return Target(GlyphAllPlayers, Caps{Single: true, PlayersOnly: true}, args...)
}

// Target is the escape hatch: an arbitrary glyph with explicit capability
// tags, for selector extensions the shorthand constructors do not cover.
func Target(glyph string, caps Caps, args ...Arg) (Selector, error) {
	s := Selector{glyph: glyph, caps: caps}
	for _, apply := range args {
		apply(&s)
	}
	if err := s.checkCaps(); err != nil {
		return Selector{}, err
	}
	return s, nil
}

// checkCaps enforces the capability tags before any encoding can happen.
func (s Selector) checkCaps() error {
	if s.caps.Single {
		limit, ok := s.lookupInt("limit")
		if !ok || (limit != 0 && limit != 1) {
			return fmt.Errorf("selector %s: %w", s.glyph, ErrLimitRequired)
		}
	}
	if s.caps.PlayersOnly {
		for _, p := range s.args {
			if p.key != "type" {
				continue
			}
			for _, t := range typeTokens(p.val) {
				if !isPlayerType(t) {
					return fmt.Errorf("selector %s: %w: %q", s.glyph, ErrNonPlayerType, t)
				}
			}
		}
	}
	return nil
}

func (s Selector) lookupInt(key string) (int, bool) {
	for _, p := range s.args {
		if p.key != key {
			continue
		}
		if n, ok := p.val.(intValue); ok {
			return int(n), true
		}
	}
	return 0, false
}

// typeTokens flattens a type filter value into its token list.
func typeTokens(v argValue) []string {
	switch val := v.(type) {
	case stringValue:
		return []string{string(val)}
	case listValue:
		return val
	}
	return nil
}

func isPlayerType(t string) bool {
	return t == "player" || t == "minecraft:player"
}

// Glyph returns the target glyph.
func (s Selector) Glyph() string { return s.glyph }

// ---------------------------------------------------------------------------
// Filter arguments
// ---------------------------------------------------------------------------

// Limit caps the number of matched entities.
func Limit(n int) Arg {
	return func(s *Selector) { s.set("limit", intValue(n)) }
}

// Distance filters on the distance from the execution position.
func Distance(iv Interval) Arg {
	return func(s *Selector) { s.set("distance", intervalValue(iv)) }
}

// Level filters on experience level.
func Level(iv Interval) Arg {
	return func(s *Selector) { s.set("level", intervalValue(iv)) }
}

// XRotation filters on pitch.
func XRotation(iv Interval) Arg {
	return func(s *Selector) { s.set("x_rotation", intervalValue(iv)) }
}

// YRotation filters on yaw.
func YRotation(iv Interval) Arg {
	return func(s *Selector) { s.set("y_rotation", intervalValue(iv)) }
}

// Mode filters on game mode.
func Mode(m Gamemode) Arg {
	return func(s *Selector) { s.set("gamemode", stringValue(m)) }
}

// SortBy sets the result ordering.
func SortBy(order Sort) Arg {
	return func(s *Selector) { s.set("sort", stringValue(order)) }
}

// Named filters on the entity's name.
func Named(name string) Arg {
	return func(s *Selector) { s.set("name", stringValue(name)) }
}

// Tags filters on scoreboard tags. Each tag expands to its own repeated
// tag=value pair, in the given order.
func Tags(tags ...string) Arg {
	return func(s *Selector) { s.set("tag", listValue(tags)) }
}

// Predicates filters through the given predicates, one repeated pair each.
func Predicates(ids ...string) Arg {
	return func(s *Selector) { s.set("predicate", listValue(ids)) }
}

// Types filters on entity type.
func Types(types ...string) Arg {
	return func(s *Selector) {
		if len(types) == 1 {
			s.set("type", stringValue(types[0]))
			return
		}
		s.set("type", listValue(types))
	}
}

// Team filters on membership of the named team.
func Team(name string) Arg {
	return func(s *Selector) { s.set("team", teamValue{name: name}) }
}

// AnyTeam filters on having a team, whichever it is.
func AnyTeam() Arg {
	return func(s *Selector) { s.set("team", teamValue{any: true}) }
}

// Teamless filters on having no team.
func Teamless() Arg {
	return func(s *Selector) { s.set("team", teamValue{none: true}) }
}

// Scores filters on scoreboard objective values.
func Scores(matches ...ScoreMatch) Arg {
	return func(s *Selector) { s.set("scores", scoresValue(matches)) }
}

// Advancements filters on advancement completion.
func Advancements(matches ...AdvancementMatch) Arg {
	return func(s *Selector) { s.set("advancements", advancementsValue(matches)) }
}

// At anchors the selector at an absolute position.
func At(x, y, z float64) Arg {
	return func(s *Selector) {
		s.set("x", numberValue(x))
		s.set("y", numberValue(y))
		s.set("z", numberValue(z))
	}
}

// Volume filters on the box spanned from the anchor by the given deltas.
func Volume(dx, dy, dz float64) Arg {
	return func(s *Selector) {
		s.set("dx", numberValue(dx))
		s.set("dy", numberValue(dy))
		s.set("dz", numberValue(dz))
	}
}

// KeyValue is the generic escape hatch for filter keys this package does
// not model. The value is emitted verbatim.
func KeyValue(key, value string) Arg {
	return func(s *Selector) { s.set(key, stringValue(value)) }
}

// set stores a filter argument, replacing an existing pair with the same
// key in place so insertion order stays stable.
func (s *Selector) set(key string, val argValue) {
	for i, p := range s.args {
		if p.key == key {
			s.args[i].val = val
			return
		}
	}
	s.args = append(s.args, argPair{key: key, val: val})
}
