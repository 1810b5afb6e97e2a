package recipe2doc

// Notes:
// - Parse: tag classification, duplicate suppression, stage/step bookkeeping
// - ParseFile: missing file sentinel, on-disk round trip
// - All parsing is order-sensitive; tests assert exact slice contents

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string) *Recipe {
	t.Helper()
	rec, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return rec
}

func TestParse_Pancakes(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"title: Pancakes",
		"time: 20 min",
		"ingredient: flour",
		"ingredient: flour",
		"stage: Mix",
		"step: combine dry ingredients",
		"stage: Cook",
		"step: pour batter",
	}, "\n")

	rec := mustParse(t, text)

	want := &Recipe{
		Title:       "Pancakes",
		Time:        "20 min",
		Ingredients: []string{"flour"},
		Stages: []Stage{
			{Name: "Mix", Steps: []string{"combine dry ingredients"}},
			{Name: "Cook", Steps: []string{"pour batter"}},
		},
		Comments: []string{},
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("Parse() = %+v, want %+v", rec, want)
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	rec := mustParse(t, "just a note\n\nanother line")

	if rec.Title != "" {
		t.Errorf("Title = %q, want empty", rec.Title)
	}
	if rec.Time != DefaultTime {
		t.Errorf("Time = %q, want %q", rec.Time, DefaultTime)
	}
	if len(rec.Ingredients) != 0 || len(rec.Stages) != 0 || len(rec.Comments) != 0 {
		t.Errorf("expected empty collections, got %+v", rec)
	}
}

func TestParse_DuplicateSuppression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		check func(t *testing.T, rec *Recipe)
	}{
		{
			name: "repeated ingredient keeps first position",
			lines: []string{
				"ingredient: flour",
				"ingredient: milk",
				"ingredient: flour",
			},
			check: func(t *testing.T, rec *Recipe) {
				want := []string{"flour", "milk"}
				if !reflect.DeepEqual(rec.Ingredients, want) {
					t.Errorf("Ingredients = %v, want %v", rec.Ingredients, want)
				}
			},
		},
		{
			name: "repeated step within a stage",
			lines: []string{
				"stage: Mix",
				"step: whisk",
				"step: fold",
				"step: whisk",
			},
			check: func(t *testing.T, rec *Recipe) {
				steps, ok := rec.StageSteps("Mix")
				if !ok {
					t.Fatal("stage Mix missing")
				}
				want := []string{"whisk", "fold"}
				if !reflect.DeepEqual(steps, want) {
					t.Errorf("Steps = %v, want %v", steps, want)
				}
			},
		},
		{
			name: "same step allowed in different stages",
			lines: []string{
				"stage: Mix",
				"step: rest 5 min",
				"stage: Cook",
				"step: rest 5 min",
			},
			check: func(t *testing.T, rec *Recipe) {
				for _, stage := range []string{"Mix", "Cook"} {
					steps, _ := rec.StageSteps(stage)
					if !reflect.DeepEqual(steps, []string{"rest 5 min"}) {
						t.Errorf("stage %s steps = %v", stage, steps)
					}
				}
			},
		},
		{
			name: "repeated comment",
			lines: []string{
				"comment: serve warm",
				"comment: serve warm",
			},
			check: func(t *testing.T, rec *Recipe) {
				if !reflect.DeepEqual(rec.Comments, []string{"serve warm"}) {
					t.Errorf("Comments = %v", rec.Comments)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, mustParse(t, strings.Join(tt.lines, "\n")))
		})
	}
}

func TestParse_OrphanStepDropped(t *testing.T) {
	t.Parallel()

	rec := mustParse(t, "step: too early\nstage: Mix\nstep: whisk")

	if len(rec.Stages) != 1 {
		t.Fatalf("Stages = %v, want exactly one", rec.Stages)
	}
	steps, _ := rec.StageSteps("Mix")
	if !reflect.DeepEqual(steps, []string{"whisk"}) {
		t.Errorf("Steps = %v, want [whisk]", steps)
	}
	for _, stage := range rec.Stages {
		for _, step := range stage.Steps {
			if step == "too early" {
				t.Errorf("orphan step leaked into stage %s", stage.Name)
			}
		}
	}
}

func TestParse_StageReuse(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"stage: Mix",
		"step: whisk",
		"stage: Cook",
		"step: fry",
		"stage: Mix",
		"step: fold",
		"step: whisk",
	}, "\n")

	rec := mustParse(t, text)

	if len(rec.Stages) != 2 {
		t.Fatalf("Stages = %v, want two entries", rec.Stages)
	}
	if rec.Stages[0].Name != "Mix" || rec.Stages[1].Name != "Cook" {
		t.Errorf("stage order = %v, want [Mix Cook]", rec.Stages)
	}
	steps, _ := rec.StageSteps("Mix")
	want := []string{"whisk", "fold"}
	if !reflect.DeepEqual(steps, want) {
		t.Errorf("Mix steps = %v, want %v", steps, want)
	}
}

func TestParse_LastTitleAndTimeWin(t *testing.T) {
	t.Parallel()

	rec := mustParse(t, "title: Draft\ntime: 5 min\ntitle: Final\ntime: 10 min")

	if rec.Title != "Final" {
		t.Errorf("Title = %q, want Final", rec.Title)
	}
	if rec.Time != "10 min" {
		t.Errorf("Time = %q, want 10 min", rec.Time)
	}
}

func TestParse_SplitsOnFirstTagToken(t *testing.T) {
	t.Parallel()

	rec := mustParse(t, "title: title: My Recipe")

	if rec.Title != "title: My Recipe" {
		t.Errorf("Title = %q, want %q", rec.Title, "title: My Recipe")
	}
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"title: Stew",
		"ingredient: beef",
		"stage: Prep",
		"step: dice beef",
		"comment: better the next day",
	}, "\n")

	first := mustParse(t, text)
	second := mustParse(t, text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parses differ: %+v vs %+v", first, second)
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
		if !errors.Is(err, ErrRecipeNotFound) {
			t.Errorf("error = %v, want ErrRecipeNotFound", err)
		}
	})

	t.Run("reads and parses", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tea.txt")
		if err := os.WriteFile(path, []byte("title: Tea\nstage: Brew\nstep: steep"), 0o644); err != nil {
			t.Fatal(err)
		}

		rec, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile() error = %v", err)
		}
		if rec.Title != "Tea" {
			t.Errorf("Title = %q, want Tea", rec.Title)
		}
		steps, ok := rec.StageSteps("Brew")
		if !ok || !reflect.DeepEqual(steps, []string{"steep"}) {
			t.Errorf("Brew steps = %v (ok=%v)", steps, ok)
		}
	})
}
