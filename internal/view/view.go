// Package view converts decoded reports into the flat form the CLI and
// the decode service serialize as JSON or YAML.
package view

import (
	"time"

	"github.com/gometar/gometar/report"
	"github.com/gometar/gometar/value"
)

// Report is the serialized form of one decoded report.
type Report struct {
	Raw        string     `json:"raw" yaml:"raw"`
	Type       string     `json:"type" yaml:"type"`
	Error      string     `json:"error,omitempty" yaml:"error,omitempty"`
	Location   string     `json:"location,omitempty" yaml:"location,omitempty"`
	ReportTime *time.Time `json:"reportTime,omitempty" yaml:"reportTime,omitempty"`
	ValidFrom  *time.Time `json:"validFrom,omitempty" yaml:"validFrom,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty" yaml:"validUntil,omitempty"`
	Flags      []string   `json:"flags,omitempty" yaml:"flags,omitempty"`
	Groups     []Group    `json:"groups" yaml:"groups"`
}

// Group is the serialized form of one decoded group.
type Group struct {
	Kind        string `json:"kind" yaml:"kind"`
	Part        string `json:"part" yaml:"part"`
	Raw         string `json:"raw" yaml:"raw"`
	Description string `json:"description" yaml:"description"`
}

// FromResult builds the view of r. Report and validity times carry only a
// day and time of day; they are resolved to absolute UTC times near ref,
// and left out when ref is the zero time.
func FromResult(raw string, r report.Result, ref time.Time) Report {
	md := r.Metadata
	v := Report{
		Raw:      raw,
		Type:     md.Type.String(),
		Location: md.Location,
		Flags:    Flags(md),
		Groups:   make([]Group, len(r.Groups)),
	}
	if !r.OK() {
		v.Error = md.Error.String()
	}
	if !ref.IsZero() {
		v.ReportTime = resolve(md.ReportTime, ref)
		v.ValidFrom = resolve(md.TimeSpanFrom, ref)
		if v.ValidFrom != nil {
			// Validity ends at most a few days after it starts.
			v.ValidUntil = resolve(md.TimeSpanUntil, v.ValidFrom.Add(24*time.Hour))
		}
	}
	for i, gi := range r.Groups {
		v.Groups[i] = Group{
			Kind:        gi.Kind().String(),
			Part:        gi.Part.String(),
			Raw:         gi.Raw,
			Description: report.Describe(gi),
		}
	}
	return v
}

// Flags lists the boolean metadata fields that are set, by name.
func Flags(md report.ReportMetadata) []string {
	var flags []string
	add := func(set bool, name string) {
		if set {
			flags = append(flags, name)
		}
	}
	add(md.IsSpeci, "speci")
	add(md.IsNospeci, "nospeci")
	add(md.IsAutomated, "auto")
	add(md.IsAO1, "ao1")
	add(md.IsAO1A, "ao1a")
	add(md.IsAO2, "ao2")
	add(md.IsAO2A, "ao2a")
	add(md.IsNil, "nil")
	add(md.IsCancelled, "cancelled")
	add(md.IsAmended, "amended")
	add(md.IsCorrectional, "correction")
	add(md.MaintenanceIndicator, "maintenance")
	return flags
}

func resolve(t *value.Time, ref time.Time) *time.Time {
	if t == nil {
		return nil
	}
	abs := t.Resolve(ref)
	return &abs
}
