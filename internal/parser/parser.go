// Package parser extracts structured signals from free-text model output.
// The upstream model is asked for a fixed format but does not always follow
// it, so everything here is best effort: malformed input degrades to partial
// or zero-value results instead of failing. Callers apply their own policy.
package parser

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrScoreNotFound is returned by ExtractScoreStrict when the response does
// not contain a "Score: X/100" line.
var ErrScoreNotFound = errors.New("no score found in response")

var (
	scorePattern    = regexp.MustCompile(`(?i)score:\s*(\d+)\s*/\s*100`)
	optionPattern   = regexp.MustCompile(`^([A-Da-d])[).]\s*(.+)$`)
	keywordsPattern = regexp.MustCompile(`(?i)keywords:\s*(.+)`)
)

// question block marker requested by the mock-test prompt
const questionMarker = "Question:"

// ExtractScore locates a "Score: X/100" pattern and returns the raw 0-100
// value. Absent or unparsable scores yield 0; evaluation flows must not
// block a session on a malformed model response.
func ExtractScore(text string) int {
	score, err := ExtractScoreStrict(text)
	if err != nil {
		return 0
	}
	return score
}

// ExtractScoreStrict is the hard-failure variant used by single-score flows
// such as the resume scorer, where a missing score makes the whole result
// unusable.
func ExtractScoreStrict(text string) (int, error) {
	match := scorePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, ErrScoreNotFound
	}
	score, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, ErrScoreNotFound
	}
	return score, nil
}

// NormalizeScore maps a 0-100 raw score onto the 0-10 scale, rounding half
// away from zero (85 -> 9, 84 -> 8). Out-of-range input is clamped.
func NormalizeScore(raw int) int {
	normalized := int(math.Round(float64(raw) / 10))
	if normalized < 0 {
		return 0
	}
	if normalized > 10 {
		return 10
	}
	return normalized
}

// ExtractKeywords pulls the comma-separated "Keywords:" line out of a resume
// evaluation response. Missing line yields an empty slice.
func ExtractKeywords(text string) []string {
	match := keywordsPattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	var keywords []string
	for _, kw := range strings.Split(match[1], ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// MCQ is one decoded multiple-choice question. Fields that could not be
// matched in the raw text are left empty; deciding whether that makes the
// question unusable is the orchestrator's call, not the parser's.
type MCQ struct {
	Question string   `json:"question" bson:"question"`
	Options  []string `json:"options" bson:"options"`
	Correct  string   `json:"correct" bson:"correct"`
	Level    string   `json:"level" bson:"level"`
}

// ParseMCQBlocks splits raw model output into one block per "Question:"
// marker and decodes each block's question text, option lines, "Correct:"
// line and "Level:" line. It never fails on malformed text.
func ParseMCQBlocks(text string) []MCQ {
	var questions []MCQ

	var current *MCQ
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if idx := strings.Index(line, questionMarker); idx >= 0 {
			if current != nil {
				questions = append(questions, *current)
			}
			current = &MCQ{
				Question: strings.TrimSpace(line[idx+len(questionMarker):]),
			}
			continue
		}
		if current == nil {
			continue
		}

		if match := optionPattern.FindStringSubmatch(line); match != nil {
			if len(current.Options) < 4 {
				current.Options = append(current.Options, strings.TrimSpace(match[2]))
			}
			continue
		}
		if value, ok := fieldValue(line, "Correct:"); ok {
			current.Correct = value
			continue
		}
		if value, ok := fieldValue(line, "Level:"); ok {
			current.Level = value
		}
	}
	if current != nil {
		questions = append(questions, *current)
	}

	return questions
}

func fieldValue(line, prefix string) (string, bool) {
	if !strings.HasPrefix(strings.ToLower(line), strings.ToLower(prefix)) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}
