package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/panelkit/panelkit/internal/animation"
	panelkiterrors "github.com/panelkit/panelkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	identPattern  = regexp.MustCompile(`^[a-z0-9_]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
			return identPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("interpolator", func(fl validator.FieldLevel) bool {
			_, ok := animation.ByName(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-reference validation on a definition
// document. It returns the first problem found as a ValidationError whose
// field names the offending document path.
func Validate(doc *Document) error {
	if doc == nil {
		return panelkiterrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	panelIndex := make(map[string]struct{}, len(doc.Panels))
	for i, p := range doc.Panels {
		if _, exists := panelIndex[p.ID]; exists {
			return panelkiterrors.NewValidationError(fieldForPanel(i, "id"), fmt.Sprintf("duplicate panel id %q", p.ID), nil)
		}
		panelIndex[p.ID] = struct{}{}

		if err := validatePanel(i, p); err != nil {
			return err
		}
	}

	return nil
}

func validatePanel(i int, p PanelDef) error {
	// Static and keyframe variants share one id namespace per panel.
	variantIDs := make(map[string]struct{}, len(p.Variants)+len(p.KeyFrameVariants))
	staticIDs := make(map[string]struct{}, len(p.Variants))

	for j, vd := range p.Variants {
		if _, exists := variantIDs[vd.ID]; exists {
			return panelkiterrors.NewValidationError(
				fieldForVariant(i, j, "id"),
				fmt.Sprintf("duplicate variant id %q", vd.ID), nil)
		}
		if vd.Parent != "" {
			if _, ok := staticIDs[vd.Parent]; !ok {
				return panelkiterrors.NewValidationError(
					fieldForVariant(i, j, "parent"),
					fmt.Sprintf("references unknown variant %q (parents must be declared earlier in the list)", vd.Parent), nil)
			}
		}
		variantIDs[vd.ID] = struct{}{}
		staticIDs[vd.ID] = struct{}{}
	}

	for j, kd := range p.KeyFrameVariants {
		if _, exists := variantIDs[kd.ID]; exists {
			return panelkiterrors.NewValidationError(
				fieldForKeyFrameVariant(i, j, "id"),
				fmt.Sprintf("duplicate variant id %q", kd.ID), nil)
		}
		variantIDs[kd.ID] = struct{}{}

		positions := make(map[int]struct{}, len(kd.Frames))
		for k, frame := range kd.Frames {
			if _, ok := staticIDs[frame.Variant]; !ok {
				return panelkiterrors.NewValidationError(
					fieldForFrame(i, j, k),
					fmt.Sprintf("references unknown static variant %q", frame.Variant), nil)
			}
			if _, dup := positions[frame.At]; dup {
				return panelkiterrors.NewValidationError(
					fieldForFrame(i, j, k),
					fmt.Sprintf("duplicate frame position %d", frame.At), nil)
			}
			positions[frame.At] = struct{}{}
		}
	}

	if p.DefaultVariant != "" {
		if _, ok := variantIDs[p.DefaultVariant]; !ok {
			return panelkiterrors.NewValidationError(
				fieldForPanel(i, "default_variant"),
				fmt.Sprintf("references unknown variant %q", p.DefaultVariant), nil)
		}
	}

	for j, tr := range p.Transitions.Items {
		if tr.From != "" {
			if _, ok := variantIDs[tr.From]; !ok {
				return panelkiterrors.NewValidationError(
					fieldForTransition(i, j, "from"),
					fmt.Sprintf("references unknown variant %q", tr.From), nil)
			}
		}
		if _, ok := variantIDs[tr.To]; !ok {
			return panelkiterrors.NewValidationError(
				fieldForTransition(i, j, "to"),
				fmt.Sprintf("references unknown variant %q", tr.To), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into panelkit
// validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return panelkiterrors.NewValidationError(field, msg, err)
	}

	return panelkiterrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPanel(index int, field string) string {
	return fmt.Sprintf("panels[%d].%s", index, field)
}

func fieldForVariant(panel, index int, field string) string {
	return fmt.Sprintf("panels[%d].variants[%d].%s", panel, index, field)
}

func fieldForKeyFrameVariant(panel, index int, field string) string {
	return fmt.Sprintf("panels[%d].keyframe_variants[%d].%s", panel, index, field)
}

func fieldForFrame(panel, variant, index int) string {
	return fmt.Sprintf("panels[%d].keyframe_variants[%d].frames[%d].variant", panel, variant, index)
}

func fieldForTransition(panel, index int, field string) string {
	return fmt.Sprintf("panels[%d].transitions.items[%d].%s", panel, index, field)
}
