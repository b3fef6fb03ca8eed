package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// Amount candidate patterns, in preference order: explicit currency markers
// first, then the "N dollars" form, then bare magnitude shorthand like "3k".
var (
	currencyAmountRe = regexp.MustCompile(`(?i)\$\s*(\d+(?:,\d{3})*(?:\.\d+)?)\s*(k\b|thousand\b)?`)
	dollarsWordRe    = regexp.MustCompile(`(?i)\b(\d+(?:,\d{3})*(?:\.\d+)?)\s*(k\b\s*|thousand\b\s*)?dollars\b`)
	shorthandRe      = regexp.MustCompile(`(?i)\b(\d+(?:,\d{3})*(?:\.\d+)?)\s*(?:k\b|thousand\b)`)
	bareNumberRe     = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?`)
)

// ExtractAmount pulls the most plausible dollar amount out of free text.
// The boolean is false when no numeric token qualifies; callers must treat
// that as "amount unknown", never as zero cost.
//
// Preference: a value adjacent to a currency marker wins; among several
// marked values the largest magnitude wins. A bare number with no marker is
// accepted only when it is the sole number in the string.
func ExtractAmount(text string) (float64, bool) {
	if best, ok := largestMatch(currencyAmountRe, text); ok {
		return best, true
	}
	if best, ok := largestMatch(dollarsWordRe, text); ok {
		return best, true
	}
	if best, ok := largestMatch(shorthandRe, text); ok {
		return best, true
	}

	// No marker anywhere: accept a bare number only when unambiguous.
	bare := bareNumberRe.FindAllString(text, -1)
	if len(bare) == 1 {
		if v, err := parseAmountToken(bare[0], ""); err == nil {
			return v, true
		}
	}

	return 0, false
}

// largestMatch returns the largest value matched by re in text.
func largestMatch(re *regexp.Regexp, text string) (float64, bool) {
	matches := re.FindAllStringSubmatch(text, -1)
	var best float64
	found := false
	for _, m := range matches {
		suffix := ""
		if len(m) > 2 {
			suffix = m[2]
		}
		v, err := parseAmountToken(m[1], suffix)
		if err != nil {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}

// parseAmountToken normalizes a numeric token, applying comma grouping and
// the k/thousand magnitude suffix.
func parseAmountToken(token, suffix string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
	if err != nil {
		return 0, err
	}
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if suffix == "k" || suffix == "thousand" {
		v *= 1000
	}
	return v, nil
}
