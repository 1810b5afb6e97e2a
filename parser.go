package recipe2doc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Recognized tag prefixes, checked in priority order.
const (
	tagTitle      = "title:"
	tagTime       = "time:"
	tagIngredient = "ingredient:"
	tagStage      = "stage:"
	tagStep       = "step:"
	tagComment    = "comment:"
)

// parseState is the accumulator threaded through a single parse pass.
// currentStage tracks the most recently declared stage name; steps seen
// before any stage declaration have nowhere to go and are dropped.
type parseState struct {
	rec          *Recipe
	currentStage string
	stageIndex   map[string]int
}

// ParseFile reads and parses the recipe file at path.
// Returns ErrRecipeNotFound if the path does not exist.
func ParseFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-provided recipe path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, path)
		}
		return nil, fmt.Errorf("reading recipe file: %w", err)
	}
	return Parse(strings.NewReader(string(data)))
}

// Parse consumes tagged recipe text line by line and builds the record.
// Lines not starting with a recognized tag are ignored; malformed input is
// never an error.
func Parse(r io.Reader) (*Recipe, error) {
	st := &parseState{
		rec:        NewRecipe(),
		stageIndex: make(map[string]int),
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		st.consume(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning recipe text: %w", err)
	}

	return st.rec, nil
}

// consume classifies one line by prefix and folds it into the record.
func (s *parseState) consume(line string) {
	switch {
	case strings.HasPrefix(line, tagTitle):
		s.rec.Title = tagValue(line, tagTitle)
	case strings.HasPrefix(line, tagTime):
		s.rec.Time = tagValue(line, tagTime)
	case strings.HasPrefix(line, tagIngredient):
		s.rec.Ingredients = appendUnique(s.rec.Ingredients, tagValue(line, tagIngredient))
	case strings.HasPrefix(line, tagStage):
		s.declareStage(tagValue(line, tagStage))
	case strings.HasPrefix(line, tagStep):
		s.addStep(tagValue(line, tagStep))
	case strings.HasPrefix(line, tagComment):
		s.rec.Comments = appendUnique(s.rec.Comments, tagValue(line, tagComment))
	}
}

// tagValue extracts the text after the first occurrence of tag, trimmed of
// surrounding whitespace. Splitting on the first occurrence only means a line
// like "title: title: Tea" keeps "title: Tea" as its value.
func tagValue(line, tag string) string {
	return strings.TrimSpace(strings.SplitN(line, tag, 2)[1])
}

// declareStage creates the stage on first sight and makes it current either
// way. Re-declaring a stage reuses its existing step list.
func (s *parseState) declareStage(name string) {
	if _, ok := s.stageIndex[name]; !ok {
		s.stageIndex[name] = len(s.rec.Stages)
		s.rec.Stages = append(s.rec.Stages, Stage{Name: name, Steps: []string{}})
	}
	s.currentStage = name
}

// addStep appends a step to the current stage, suppressing duplicates within
// that stage. Steps with no declared stage are discarded.
func (s *parseState) addStep(step string) {
	idx, ok := s.stageIndex[s.currentStage]
	if !ok {
		return
	}
	s.rec.Stages[idx].Steps = appendUnique(s.rec.Stages[idx].Steps, step)
}

// appendUnique appends v unless an identical entry is already present.
func appendUnique(items []string, v string) []string {
	for _, it := range items {
		if it == v {
			return items
		}
	}
	return append(items, v)
}
