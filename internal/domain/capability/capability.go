// Package capability defines the declarative catalog entry for an invocable
// operation: its name, JSON parameter schema, target service, and how to
// synthesize the arguments of its compensating operation.
package capability

import (
	"strings"

	"github.com/conductorhq/conductor/internal/domain"
)

// Capability describes one named, schema-described effectful operation
// exposed to the intent resolver.
type Capability struct {
	Name        string
	Description string

	// Service the operation targets. ServiceNone marks in-process
	// capabilities that need no credential.
	Service domain.Service

	// Parameters is the JSON-schema object describing the arguments, in the
	// shape tool-calling models expect.
	Parameters map[string]any

	// Compensation declares the inverse operation, nil for non-reversible
	// capabilities.
	Compensation *Compensation
}

// Compensation declares how to undo a capability's effect: the name of the
// compensating operation and a synthesizer that derives its arguments from
// the original intent arguments and the adapter's response. The synthesis
// runs at dispatch time so the compensation data is captured with the result.
type Compensation struct {
	Function   string
	Synthesize func(args, response map[string]any) map[string]any
}

// Validate checks the catalog entry is complete enough to register.
func (c *Capability) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = "required"
	}
	if strings.TrimSpace(c.Description) == "" {
		fields["description"] = "required"
	}
	if c.Service != domain.ServiceNone && !c.Service.IsValid() {
		fields["service"] = "unknown service " + c.Service.String()
	}
	if c.Compensation != nil {
		if strings.TrimSpace(c.Compensation.Function) == "" {
			fields["compensation.function"] = "required"
		}
		if c.Compensation.Synthesize == nil {
			fields["compensation.synthesize"] = "required"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Reversible reports whether the capability declares a compensation.
func (c *Capability) Reversible() bool {
	return c.Compensation != nil
}
