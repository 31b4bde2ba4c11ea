package core

import (
	"fmt"
	"strings"

	"github.com/gerbilkit/distill/pkg/models"
)

// SecurityAdapter converts security rules into training pairs about
// safe Gerbil coding.
type SecurityAdapter struct {
	src CorpusSource
}

// NewSecurityAdapter creates the security-rule adapter.
func NewSecurityAdapter(src CorpusSource) *SecurityAdapter {
	return &SecurityAdapter{src: src}
}

// Name implements Adapter.
func (a *SecurityAdapter) Name() string { return "security" }

// Extract emits two variants per rule: a risk/fix question and an "is
// this safe" question framed around the rule's tags.
func (a *SecurityAdapter) Extract() ([]models.ExtractedPair, error) {
	rules, err := a.src.SecurityRules()
	if err != nil {
		return nil, fmt.Errorf("loading security rules: %w", err)
	}

	var pairs []models.ExtractedPair
	for _, rule := range rules {
		pairs = append(pairs, models.ExtractedPair{
			Question: fmt.Sprintf("What is the security risk of %s in Gerbil Scheme?", strings.ToLower(rule.Title)),
			Answer: fmt.Sprintf("**Severity:** %s\n**Scope:** %s\n\n**Risk:** %s\n\n**Fix:** %s",
				rule.Severity, rule.Scope, rule.Message, rule.Remediation),
			Source: fmt.Sprintf("security:%s", rule.ID),
		})

		tags := rule.Tags
		if len(tags) > 3 {
			tags = tags[:3]
		}
		pairs = append(pairs, models.ExtractedPair{
			Question: fmt.Sprintf("Is it safe to use %s in Gerbil FFI code? What should I watch out for?",
				strings.Join(tags, " ")),
			Answer: fmt.Sprintf("%s\n\n**Remediation:** %s", rule.Message, rule.Remediation),
			Source: fmt.Sprintf("security:%s:safe", rule.ID),
		})
	}

	return pairs, nil
}
