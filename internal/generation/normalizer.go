package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/logger"
)

// GeneratedProgramName names programs the model returned without any wrapper object.
const GeneratedProgramName = "Generated Program"

// Fallback supplies the program fields used when the model leaves them out.
type Fallback struct {
	Goal  string
	Level string
}

// Normalizer coerces the generator's loosely-shaped JSON into a WorkoutProgram.
// Only unparseable text and non-object values are fatal; every structural
// anomaly past that point degrades toward an empty program.
type Normalizer struct {
	log *logger.Logger
}

func NewNormalizer(log *logger.Logger) *Normalizer {
	if log == nil {
		log = logger.Nop()
	}
	return &Normalizer{log: log.With("component", "Normalizer")}
}

// Normalize parses text (optionally wrapped in a markdown code fence) into a program.
// The returned program has no ID or CreatedAt; Days is never nil.
func (n *Normalizer) Normalize(text string, fb Fallback) (*domain.WorkoutProgram, error) {
	raw := []byte(stripCodeFence(text))

	var probe json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationParse, err)
	}
	raw = bytes.TrimSpace(probe)

	switch raw[0] {
	case '{':
		members, err := decodeObject(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationParse, err)
		}
		return n.fromObject(members, fb), nil
	case '[':
		var items []any
		if err := decodeNumbers(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationParse, err)
		}
		for i, item := range items {
			if nested, ok := item.(map[string]any); ok && hasDays(nested) {
				n.log.Warn("promoting program object from array", "index", i)
				return build(nested, fb), nil
			}
		}
		n.log.Warn("model returned a bare array, wrapping it as days", "days", len(items))
		return &domain.WorkoutProgram{
			ProgramName: GeneratedProgramName,
			TargetGoal:  fb.Goal,
			Difficulty:  fb.Level,
			Days:        toDays(items),
		}, nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrGenerationFormat, jsonKind(raw[0]))
	}
}

func (n *Normalizer) fromObject(members []member, fb Fallback) *domain.WorkoutProgram {
	source := toMap(members)
	if !hasDays(source) {
		promoted := false
		for _, m := range members {
			nested, ok := m.value.(map[string]any)
			if ok && hasDays(nested) {
				n.log.Warn("promoting nested program object", "key", m.key)
				source = nested
				promoted = true
				break
			}
		}
		if !promoted {
			n.log.Warn("missing days array in response, defaulting to empty", "keys", len(members))
		}
	}
	return build(source, fb)
}

// build reads program fields from source, filling the ones the model left out.
func build(source map[string]any, fb Fallback) *domain.WorkoutProgram {
	p := &domain.WorkoutProgram{
		ProgramName: asString(source["programName"]),
		TargetGoal:  asString(source["targetGoal"]),
		Difficulty:  asString(source["difficulty"]),
		Days:        toDays(source["days"]),
	}
	if p.ProgramName == "" {
		p.ProgramName = GeneratedProgramName
	}
	if p.TargetGoal == "" {
		p.TargetGoal = fb.Goal
	}
	if p.Difficulty == "" {
		p.Difficulty = fb.Level
	}
	return p
}

func hasDays(m map[string]any) bool {
	_, ok := m["days"].([]any)
	return ok
}

// stripCodeFence removes a ``` or ```json wrapper the model sometimes adds.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

type member struct {
	key   string
	value any
}

// decodeObject reads the top-level object keeping key order, which a map would lose.
func decodeObject(raw []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		members = append(members, member{key: key, value: value})
	}
	return members, nil
}

func decodeNumbers(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func toMap(members []member) map[string]any {
	m := make(map[string]any, len(members))
	for _, mb := range members {
		m[mb.key] = mb.value
	}
	return m
}

func jsonKind(first byte) string {
	switch first {
	case 'n':
		return "null"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}

// asString accepts strings and numbers; sets: 3 and sets: "3" both become "3".
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func toDays(v any) []domain.WorkoutDay {
	items, _ := v.([]any)
	days := make([]domain.WorkoutDay, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		days = append(days, domain.WorkoutDay{
			DayName:   asString(m["dayName"]),
			Exercises: toExercises(m["exercises"]),
		})
	}
	return days
}

func toExercises(v any) []domain.Exercise {
	items, _ := v.([]any)
	exercises := make([]domain.Exercise, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		exercises = append(exercises, domain.Exercise{
			Name:  asString(m["name"]),
			Sets:  asString(m["sets"]),
			Reps:  asString(m["reps"]),
			Rest:  asString(m["rest"]),
			Notes: asString(m["notes"]),
			Guide: toGuide(m["guide"]),
		})
	}
	return exercises
}

func toGuide(v any) *domain.ExerciseGuide {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	g := &domain.ExerciseGuide{HowTo: asString(m["howTo"])}
	links, _ := m["videoLinks"].([]any)
	for _, l := range links {
		lm, ok := l.(map[string]any)
		if !ok {
			continue
		}
		link := domain.VideoLink{Title: asString(lm["title"]), URI: asString(lm["uri"])}
		if link.Valid() {
			g.VideoLinks = append(g.VideoLinks, link)
		}
	}
	return g
}
