package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Validate checks the configuration and reports every problem at once. The
// returned error wraps ErrInvalidConfig and a *ValidationErrors.
func Validate(c *Config) error {
	errs := &ValidationErrors{}

	errs.Add(validateURL(c.APIURL))

	if strings.TrimSpace(c.MenuEndpoint) == "" {
		errs.Add(NewFieldError("", "menu_endpoint", c.MenuEndpoint, ErrRequired))
	}

	if c.Timeout <= 0 {
		errs.Add(NewFieldError("", "timeout", c.Timeout.String(), ErrNotPositive))
	}

	if c.JournalKeep <= 0 {
		errs.Add(NewFieldError("", "journal_keep", strconv.Itoa(c.JournalKeep), ErrNotPositive))
	}

	seen := make(map[string]bool, len(c.Allergies))
	for i, rule := range c.Allergies {
		section := fmt.Sprintf("allergies[%d]", i)
		name := strings.TrimSpace(rule.Name)

		if name == "" {
			errs.Add(NewFieldError(section, "name", rule.Name, ErrRequired))
		} else if seen[name] {
			errs.Add(NewFieldError(section, "name", rule.Name, ErrDuplicateName))
		}
		seen[name] = true

		if len(rule.Ingredients) == 0 {
			errs.Add(NewFieldError(section, "ingredients", "", ErrRequired))
		}
		// A blank ingredient is a substring of every recipe.
		for j, ing := range rule.Ingredients {
			if strings.TrimSpace(ing) == "" {
				errs.Add(NewFieldError(section, fmt.Sprintf("ingredients[%d]", j), ing, ErrRequired))
			}
		}
	}

	if errs.HasErrors() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}

	return nil
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return NewFieldError("", "api_url", raw, ErrRequired)
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewFieldError("", "api_url", raw, ErrInvalidURL)
	}

	return nil
}
