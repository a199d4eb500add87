package calc

import (
	"fmt"
	"strings"
)

// FieldError points at the offending input so forms can highlight it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the failed rules for one dimension set. It is
// returned as data so callers can render per-field messages without special
// control flow.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid dimensions: " + strings.Join(msgs, "; ")
}

// Validate checks the shape-specific dimension rules. It returns nil on
// success, a *ValidationError when rules fail, and an ErrUnknownShape-wrapped
// error for a shape outside the closed vocabulary.
func Validate(shape Shape, d Dimensions) error {
	var fields []FieldError
	require := func(field string, v float64, label string) {
		if v <= 0 {
			fields = append(fields, FieldError{Field: field, Message: label + " is required and must be positive"})
		}
	}

	switch shape {
	case Plate, PlateImperial:
		require("length", d.Length, "length")
		require("width", d.Width, "width")
		require("thickness", d.Thickness, "thickness")
	case Pipe:
		require("length", d.Length, "length")
		require("outerDiameter", d.OuterDiameter, "outer diameter")
		require("wallThickness", d.WallThickness, "wall thickness")
		if d.OuterDiameter > 0 && d.WallThickness > 0 && d.WallThickness >= d.OuterDiameter/2 {
			fields = append(fields, FieldError{Field: "wallThickness", Message: "wall thickness must be less than half the outer diameter"})
		}
	case Girder:
		require("length", d.Length, "length")
		require("flangeWidth", d.FlangeWidth, "flange width")
		require("flangeThickness", d.FlangeThickness, "flange thickness")
		require("webHeight", d.WebHeight, "web height")
		require("webThickness", d.WebThickness, "web thickness")
	case Circular:
		require("thickness", d.Thickness, "thickness")
		require("diameter", d.Diameter, "diameter")
		if d.InnerDiameter < 0 {
			fields = append(fields, FieldError{Field: "innerDiameter", Message: "inner diameter must be positive when supplied"})
		}
		if d.Diameter > 0 && d.InnerDiameter > 0 && d.InnerDiameter >= d.Diameter {
			fields = append(fields, FieldError{Field: "innerDiameter", Message: "inner diameter must be smaller than outer diameter"})
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
