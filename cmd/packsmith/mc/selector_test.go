package mc

import (
	"errors"
	"testing"
)

// mustSelector adapts a constructor's (Selector, error) result pair so it
// can be passed through directly: mustSelector(t)(AllEntities(...)).
func mustSelector(t *testing.T) func(Selector, error) Selector {
	return func(s Selector, err error) Selector {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected selector error: %v", err)
		}
		return s
	}
}

func TestEncode_FastPath(t *testing.T) {
	s := mustSelector(t)(AllEntities())
	if got := s.String(); got != "@e" {
		t.Fatalf("expected @e, got %q", got)
	}
}

func TestEncode_Glyphs(t *testing.T) {
	cases := []struct {
		name string
		make func(...Arg) (Selector, error)
		want string
	}{
		{"self", Self, "@s"},
		{"nearest player", NearestPlayer, "@p"},
		{"random player", RandomPlayer, "@r"},
		{"all players", AllPlayers, "@a"},
		{"all entities", AllEntities, "@e"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustSelector(t)(tc.make())
			if got := s.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEncode_RepeatedPairs(t *testing.T) {
	t.Run("tags preserve order", func(t *testing.T) {
		s := mustSelector(t)(AllEntities(Tags("a", "b")))
		if got := s.String(); got != "@e[tag=a, tag=b]" {
			t.Fatalf("unexpected encoding %q", got)
		}
	})

	t.Run("predicates expand the same way", func(t *testing.T) {
		s := mustSelector(t)(AllEntities(Predicates("pack:p1", "pack:p2")))
		if got := s.String(); got != "@e[predicate=pack:p1, predicate=pack:p2]" {
			t.Fatalf("unexpected encoding %q", got)
		}
	})

	t.Run("absent values emit nothing", func(t *testing.T) {
		s := mustSelector(t)(AllEntities(Tags()))
		if got := s.String(); got != "@e" {
			t.Fatalf("unexpected encoding %q", got)
		}
	})
}

func TestEncode_Team(t *testing.T) {
	t.Run("any team", func(t *testing.T) {
		s := mustSelector(t)(AllEntities(AnyTeam()))
		if got := s.String(); got != "@e[team=!]" {
			t.Fatalf("unexpected encoding %q", got)
		}
	})
	t.Run("teamless", func(t *testing.T) {
		s := mustSelector(t)(AllEntities(Teamless()))
		if got := s.String(); got != "@e[team=]" {
			t.Fatalf("unexpected encoding %q", got)
		}
	})
	t.Run("named team", func(t *testing.T) {
		s := mustSelector(t)(AllEntities(Team("red")))
		if got := s.String(); got != "@e[team=red]" {
			t.Fatalf("unexpected encoding %q", got)
		}
	})
}

func TestEncode_Intervals(t *testing.T) {
	cases := []struct {
		name string
		iv   Interval
		want string
	}{
		{"min only", AtLeast(2), "@e[distance=2..]"},
		{"max only", AtMost(5), "@e[distance=..5]"},
		{"bounded", Between(1, 3), "@e[distance=1..3]"},
		{"exact", Exactly(4), "@e[distance=4]"},
		{"fractional", AtLeast(0.5), "@e[distance=0.5..]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustSelector(t)(AllEntities(Distance(tc.iv)))
			if got := s.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEncode_Scores(t *testing.T) {
	s := mustSelector(t)(AllEntities(Scores(
		ScoreMatch{Objective: "kills", Value: AtLeast(3)},
		ScoreMatch{Objective: "deaths", Value: Exactly(0)},
	)))
	want := "@e[scores={kills=3..,deaths=0}]"
	if got := s.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncode_Advancements(t *testing.T) {
	s := mustSelector(t)(AllPlayers(Advancements(
		AdvancementMatch{Name: "story/root", Done: true},
		AdvancementMatch{Name: "pack:custom", Criteria: []CriterionMatch{
			{Name: "step_one", Done: true},
			{Name: "step_two", Done: false},
		}},
	)))
	want := "@a[advancements={story/root=true,pack:custom={step_one=true,step_two=false}}]"
	if got := s.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncode_PhaseOrderIsFixed(t *testing.T) {
	// Special-cased keys come out in their fixed order no matter the
	// insertion order; everything else follows in insertion order.
	s := mustSelector(t)(AllEntities(
		Distance(AtMost(10)),
		Tags("guard"),
		Scores(ScoreMatch{Objective: "hp", Value: AtLeast(1)}),
		SortBy(Nearest),
	))
	want := "@e[scores={hp=1..}, tag=guard, distance=..10, sort=nearest]"
	if got := s.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncode_GenericArguments(t *testing.T) {
	s := mustSelector(t)(AllEntities(
		Types("creeper"),
		At(0, 64, 0),
		Volume(10, 5, 10),
		Mode(Survival),
		Named("boss"),
		Limit(5),
	))
	want := "@e[type=creeper, x=0, y=64, z=0, dx=10, dy=5, dz=10, gamemode=survival, name=boss, limit=5]"
	if got := s.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncode_SettingKeyTwiceKeepsSlot(t *testing.T) {
	s := mustSelector(t)(AllEntities(Limit(5), Types("zombie"), Limit(3)))
	want := "@e[limit=3, type=zombie]"
	if got := s.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncode_Idempotent(t *testing.T) {
	s := mustSelector(t)(AllEntities(Tags("a", "b"), Scores(ScoreMatch{Objective: "o", Value: Exactly(1)})))
	first := s.String()
	second := s.String()
	if first != second {
		t.Fatalf("encoding not idempotent: %q then %q", first, second)
	}
}

func TestCaps_SingleRequiresLimit(t *testing.T) {
	t.Run("missing limit fails", func(t *testing.T) {
		_, err := SingleEntity(Tags("boss"))
		if !errors.Is(err, ErrLimitRequired) {
			t.Fatalf("expected ErrLimitRequired, got %v", err)
		}
	})

	t.Run("limit out of range fails", func(t *testing.T) {
		_, err := SingleEntity(Limit(2))
		if !errors.Is(err, ErrLimitRequired) {
			t.Fatalf("expected ErrLimitRequired, got %v", err)
		}
	})

	t.Run("limit 1 passes", func(t *testing.T) {
		s := mustSelector(t)(SingleEntity(Limit(1), Tags("boss")))
		if got := s.String(); got != "@e[tag=boss, limit=1]" {
			t.Fatalf("unexpected encoding %q", got)
		}
	})

	t.Run("limit 0 passes", func(t *testing.T) {
		mustSelector(t)(SinglePlayer(Limit(0)))
	})
}

func TestCaps_PlayersOnly(t *testing.T) {
	t.Run("non-player type fails", func(t *testing.T) {
		_, err := AllPlayers(Types("creeper"))
		if !errors.Is(err, ErrNonPlayerType) {
			t.Fatalf("expected ErrNonPlayerType, got %v", err)
		}
	})

	t.Run("player type passes", func(t *testing.T) {
		mustSelector(t)(AllPlayers(Types("minecraft:player")))
		mustSelector(t)(NearestPlayer(Types("player")))
	})

	t.Run("no type filter passes", func(t *testing.T) {
		mustSelector(t)(AllPlayers(Tags("team_red")))
	})

	t.Run("failure yields zero selector, not a string", func(t *testing.T) {
		s, err := AllPlayers(Types("creeper"))
		if err == nil {
			t.Fatal("expected error")
		}
		if s.Glyph() != "" {
			t.Fatalf("expected zero selector on error, got glyph %q", s.Glyph())
		}
	})
}

func TestTarget_EscapeHatch(t *testing.T) {
	s := mustSelector(t)(Target("@initiator", Caps{}, Tags("npc")))
	if got := s.String(); got != "@initiator[tag=npc]" {
		t.Fatalf("unexpected encoding %q", got)
	}
}

func TestExistsCondition(t *testing.T) {
	s := mustSelector(t)(AllEntities(Tags("boss")))
	c := s.Exists()
	if got := c.String(); got != "entity @e[tag=boss]" {
		t.Fatalf("unexpected condition %q", got)
	}

	data, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"entity @e[tag=boss]"` {
		t.Fatalf("unexpected JSON %s", data)
	}
}
