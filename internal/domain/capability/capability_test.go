package capability

import (
	"errors"
	"testing"

	"github.com/conductorhq/conductor/internal/domain"
)

func validCapability() Capability {
	return Capability{
		Name:        "send_slack_message",
		Description: "Send a message to a Slack channel",
		Service:     domain.ServiceSlack,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"channel_name": map[string]any{"type": "string"},
				"text":         map[string]any{"type": "string"},
			},
		},
		Compensation: &Compensation{
			Function: "delete_slack_message",
			Synthesize: func(_, response map[string]any) map[string]any {
				return map[string]any{"channel": response["channel"], "ts": response["ts"]}
			},
		},
	}
}

func TestCapability_Validate(t *testing.T) {
	t.Parallel()

	cp := validCapability()
	if err := cp.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*Capability)
		field  string
	}{
		{
			name:   "missing name",
			mutate: func(c *Capability) { c.Name = "  " },
			field:  "name",
		},
		{
			name:   "missing description",
			mutate: func(c *Capability) { c.Description = "" },
			field:  "description",
		},
		{
			name:   "unknown service",
			mutate: func(c *Capability) { c.Service = domain.Service("ftp") },
			field:  "service",
		},
		{
			name:   "compensation without function",
			mutate: func(c *Capability) { c.Compensation.Function = "" },
			field:  "compensation.function",
		},
		{
			name:   "compensation without synthesizer",
			mutate: func(c *Capability) { c.Compensation.Synthesize = nil },
			field:  "compensation.synthesize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cp := validCapability()
			tt.mutate(&cp)

			err := cp.Validate()
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Validate() error = %v, want ErrValidation", err)
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("Fields missing %q, got %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestCapability_ServicelessIsValid(t *testing.T) {
	t.Parallel()

	cp := Capability{
		Name:        "analyze_text",
		Description: "Analyze text in-process",
		Service:     domain.ServiceNone,
	}
	if err := cp.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil for a serviceless capability", err)
	}
	if cp.Reversible() {
		t.Error("Reversible() = true without a compensation")
	}
}

func TestCapability_Reversible(t *testing.T) {
	t.Parallel()

	cp := validCapability()
	if !cp.Reversible() {
		t.Error("Reversible() = false with a compensation declared")
	}
}
