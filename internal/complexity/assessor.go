// Package complexity scores how involved a filer's tax situation is based on
// expense descriptions and an optional business profile, and maps that score
// to a service tier and a list of likely tax forms.
package complexity

import (
	"log/slog"
	"strings"

	"github.com/fylr/fylr-engine/internal/model"
)

// Score thresholds are product policy, tuned alongside the trigger weights.
const (
	highComplexityThreshold   = 30
	mediumComplexityThreshold = 15
)

// Assessor evaluates business complexity against static trigger tables. The
// tables are read-only after construction, so a single Assessor is safe for
// concurrent use.
type Assessor struct {
	triggers     []Trigger
	profileRules []ProfileRule
	logger       *slog.Logger
}

// NewAssessor creates an Assessor with the built-in trigger tables.
func NewAssessor(logger *slog.Logger) *Assessor {
	return NewAssessorWithTriggers(DefaultTriggers(), DefaultProfileRules(), logger)
}

// NewAssessorWithTriggers creates an Assessor with custom trigger tables,
// used by tests that need a smaller table.
func NewAssessorWithTriggers(triggers []Trigger, rules []ProfileRule, logger *slog.Logger) *Assessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assessor{
		triggers:     triggers,
		profileRules: rules,
		logger:       logger,
	}
}

// Assess scans the descriptions against every keyword trigger, folds in the
// profile-derived rules, and maps the cumulative score to a complexity level.
// Each trigger fires at most once per batch, and flags come out in trigger
// declaration order so the result is stable under input permutation.
func (a *Assessor) Assess(descriptions []string, profile model.BusinessProfile) model.ComplexityResult {
	allText := strings.ToLower(strings.Join(descriptions, " "))

	score := 0
	flags := make([]model.ComplexityFlag, 0)
	forms := newFormSet()

	for _, trigger := range a.triggers {
		matched := ""
		for _, kw := range trigger.Keywords {
			if strings.Contains(allText, kw) {
				matched = kw
				break
			}
		}
		if matched == "" {
			continue
		}

		flags = append(flags, model.ComplexityFlag{
			Trigger:        matched,
			Category:       trigger.Category,
			Recommendation: trigger.Recommendation,
		})
		score += trigger.Weight
		forms.add(trigger.Forms...)
	}

	for _, rule := range a.profileRules {
		if !rule.Applies(profile) {
			continue
		}

		flags = append(flags, model.ComplexityFlag{
			Trigger:        rule.Trigger,
			Category:       rule.Category,
			Recommendation: rule.Recommendation,
		})
		score += rule.Weight
		forms.add(rule.Forms...)
	}

	level := levelForScore(score)

	a.logger.Debug("complexity assessed",
		"score", score,
		"level", level,
		"flags", len(flags))

	return model.ComplexityResult{
		ComplexityLevel:               level,
		ComplexityScore:               score,
		Flags:                         flags,
		RequiresAdvancedQuestionnaire: level != model.ComplexityLow,
		RecommendedTier:               tierForLevel(level),
		EstimatedForms:                forms.ordered(),
	}
}

func levelForScore(score int) model.ComplexityLevel {
	switch {
	case score >= highComplexityThreshold:
		return model.ComplexityHigh
	case score >= mediumComplexityThreshold:
		return model.ComplexityMedium
	default:
		return model.ComplexityLow
	}
}

func tierForLevel(level model.ComplexityLevel) model.Tier {
	switch level {
	case model.ComplexityHigh:
		return model.TierPremium
	case model.ComplexityMedium:
		return model.TierGuided
	default:
		return model.TierTrial
	}
}

// formSet accumulates estimated forms with insertion-order deduplication.
// Every sole proprietor needs Schedule C, so it is always first.
type formSet struct {
	seen  map[string]struct{}
	order []string
}

func newFormSet() *formSet {
	s := &formSet{seen: make(map[string]struct{})}
	s.add("Schedule C")
	return s
}

func (s *formSet) add(forms ...string) {
	for _, f := range forms {
		if _, ok := s.seen[f]; ok {
			continue
		}
		s.seen[f] = struct{}{}
		s.order = append(s.order, f)
	}
}

func (s *formSet) ordered() []string {
	return s.order
}
