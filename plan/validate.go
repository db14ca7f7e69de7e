// SPDX-License-Identifier: MIT
// Package: geokg/plan
//
// validate.go - structural validation of a decoded plan.
//
// Field rules live in struct tags (go-playground/validator); cross-field
// rules that tags cannot express are checked by hand afterwards. Geometry
// names and shapes are checked later, at Resolve time, against a registry.

package plan

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidPlan indicates a plan that cannot be decoded or fails validation.
var ErrInvalidPlan = errors.New("plan: invalid plan")

var validate = validator.New()

// Validate checks tags, then instance-name safety and uniqueness,
// geometry/factors exclusivity and periodic flag counts.
func (p *Plan) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("Validate: %s: %w", formatValidationError(err), ErrInvalidPlan)
	}
	seen := make(map[string]bool, len(p.Instances))
	for i, in := range p.Instances {
		if err := checkName(i, in.Name); err != nil {
			return err
		}
		if seen[in.Name] {
			return fmt.Errorf("Validate: instance %d: duplicate name %q: %w", i, in.Name, ErrInvalidPlan)
		}
		seen[in.Name] = true
		if len(in.Factors) > 0 && (in.Geometry != "" || len(in.Extents) > 0) {
			return fmt.Errorf("Validate: instance %q: geometry/extents and factors are exclusive: %w",
				in.Name, ErrInvalidPlan)
		}
		if err := checkPeriodic(in.Name, in.Extents, in.Periodic); err != nil {
			return err
		}
		for k, f := range in.Factors {
			if err := checkPeriodic(fmt.Sprintf("%s.factors[%d]", in.Name, k), f.Extents, f.Periodic); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkName rejects instance names that would not land in their own
// directory directly under the output directory.
func checkName(i int, name string) error {
	switch {
	case name == "." || name == "..":
	case filepath.Base(name) != name || !filepath.IsLocal(name):
	case name == ManifestFile:
	default:
		return nil
	}

	return fmt.Errorf("Validate: instance %d: name %q is not a plain directory name: %w",
		i, name, ErrInvalidPlan)
}

func checkPeriodic(where string, extents []int, periodic []bool) error {
	if len(periodic) != 0 && len(periodic) != len(extents) {
		return fmt.Errorf("Validate: %s: %d periodic flags for %d extents: %w",
			where, len(periodic), len(extents), ErrInvalidPlan)
	}

	return nil
}

// formatValidationError joins field errors into one readable message.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "excludesall":
		return fmt.Sprintf("%s must not contain any of %q", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}
