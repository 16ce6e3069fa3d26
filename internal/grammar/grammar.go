// Package grammar implements report sequencing: it classifies accepted
// groups into syntax roles and runs the state machine that decides the
// report type, the current report part and report-level errors.
package grammar

import (
	"fmt"
	"log/slog"

	"github.com/gometar/gometar/internal/types"
	"github.com/gometar/gometar/report"
)

// SyntaxGroup is the structural role of a group. Only the role, never
// the group payload, drives state transitions.
type SyntaxGroup int

const (
	SyntaxOther SyntaxGroup = iota
	SyntaxMetar
	SyntaxSpeci
	SyntaxTaf
	SyntaxCor
	SyntaxAmd
	SyntaxLocation
	SyntaxReportTime
	SyntaxTimeSpan
	SyntaxCnl
	SyntaxNil
	SyntaxRmk
	SyntaxMaintenanceIndicator
)

var syntaxGroupNames = [...]string{
	"other", "METAR", "SPECI", "TAF", "COR", "AMD", "location", "report-time",
	"time-span", "CNL", "NIL", "RMK", "maintenance-indicator",
}

func (s SyntaxGroup) String() string {
	if s < 0 || int(s) >= len(syntaxGroupNames) {
		return fmt.Sprintf("SyntaxGroup(%d)", s)
	}
	return syntaxGroupNames[s]
}

// Classify returns the syntax role of g.
func Classify(g report.Group) SyntaxGroup {
	switch g := g.(type) {
	case report.KeywordGroup:
		switch g.Type {
		case report.KeywordMetar:
			return SyntaxMetar
		case report.KeywordSpeci:
			return SyntaxSpeci
		case report.KeywordTaf:
			return SyntaxTaf
		case report.KeywordCor:
			return SyntaxCor
		case report.KeywordAmd:
			return SyntaxAmd
		case report.KeywordCnl:
			return SyntaxCnl
		case report.KeywordNil:
			return SyntaxNil
		case report.KeywordRmk:
			return SyntaxRmk
		case report.KeywordMaintenanceIndicator:
			return SyntaxMaintenanceIndicator
		}
	case report.LocationGroup:
		return SyntaxLocation
	case report.ReportTimeGroup:
		return SyntaxReportTime
	case report.TrendGroup:
		if g.IsTimeSpanGroup() {
			return SyntaxTimeSpan
		}
	}
	return SyntaxOther
}

// State is a grammar state.
type State int

const (
	StateReportTypeOrLocation State = iota
	StateCorrection
	StateLocation
	StateReportTime
	StateTimeSpan
	StateReportBodyBeginMetar
	StateReportBodyBeginMetarRepeatParse
	StateReportBodyMetar
	StateReportBodyBeginTaf
	StateReportBodyTaf
	StateRemarkMetar
	StateRemarkTaf
	StateNil
	StateCnl
	StateError
)

var stateNames = [...]string{
	"report-type-or-location", "correction", "location", "report-time",
	"time-span", "report-body-begin-metar", "report-body-begin-metar-repeat-parse",
	"report-body-metar", "report-body-begin-taf", "report-body-taf",
	"remark-metar", "remark-taf", "nil", "cnl", "error",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", s)
	}
	return stateNames[s]
}

// Status is the grammar state machine for one report. The zero value is
// not usable; create one with New.
type Status struct {
	state      State
	reportType report.ReportType
	err        report.ReportError
	types.Logger
}

// New returns a Status in the initial state.
func New(logger *slog.Logger) *Status {
	return &Status{state: StateReportTypeOrLocation, Logger: types.Logger{L: logger}}
}

// State returns the current state.
func (s *Status) State() State { return s.state }

// ReportType returns the report type decided so far.
func (s *Status) ReportType() report.ReportType { return s.reportType }

// Error returns the report-level error, or ErrorNone.
func (s *Status) Error() report.ReportError { return s.err }

// IsReparseRequired reports that the group just fed to Transition must be
// classified again with the part returned by ReportPart.
func (s *Status) IsReparseRequired() bool {
	return s.state == StateReportBodyBeginMetarRepeatParse
}

// ReportPart returns the part in which the next token is interpreted.
func (s *Status) ReportPart() report.ReportPart {
	switch s.state {
	case StateReportTypeOrLocation, StateCorrection, StateLocation,
		StateReportTime, StateTimeSpan:
		return report.PartHeader
	case StateReportBodyBeginMetar, StateReportBodyBeginMetarRepeatParse,
		StateReportBodyMetar:
		return report.PartMetar
	case StateReportBodyBeginTaf, StateReportBodyTaf:
		return report.PartTaf
	case StateRemarkMetar, StateRemarkTaf:
		return report.PartRemark
	default:
		return report.PartUnknown
	}
}

// SetError records err and moves to the error state. A later error
// replaces an earlier one.
func (s *Status) SetError(err report.ReportError) {
	s.Log(slog.LevelDebug, "report error",
		slog.String("error", err.String()),
		slog.String("state", s.state.String()))
	s.err = err
	s.state = StateError
}

// Transition feeds the role of the group just accepted.
func (s *Status) Transition(group SyntaxGroup) {
	from := s.state
	s.transition(group)
	if s.TraceEnabled() {
		s.Trace("transition",
			slog.String("group", group.String()),
			slog.String("from", from.String()),
			slog.String("to", s.state.String()))
	}
}

func (s *Status) transition(group SyntaxGroup) {
	switch s.state {
	case StateReportTypeOrLocation:
		s.fromReportTypeOrLocation(group)
	case StateCorrection:
		s.fromCorrection(group)
	case StateLocation:
		if group != SyntaxLocation {
			s.SetError(report.ErrorExpectedLocation)
			return
		}
		s.state = StateReportTime
	case StateReportTime:
		s.fromReportTime(group)
	case StateTimeSpan:
		s.fromTimeSpan(group)
	case StateReportBodyBeginMetar, StateReportBodyBeginMetarRepeatParse:
		s.fromBodyBeginMetar(group)
	case StateReportBodyMetar:
		s.fromBody(group, StateRemarkMetar)
	case StateReportBodyBeginTaf:
		s.fromBodyBeginTaf(group)
	case StateReportBodyTaf:
		s.fromBody(group, StateRemarkTaf)
	case StateRemarkMetar:
	case StateRemarkTaf:
		if group == SyntaxMaintenanceIndicator {
			s.SetError(report.ErrorMaintenanceIndicatorAllowedInMetarOnly)
		}
	case StateNil:
		s.SetError(report.ErrorUnexpectedGroupAfterNil)
	case StateCnl:
		s.SetError(report.ErrorUnexpectedGroupAfterCnl)
	case StateError:
	}
}

func (s *Status) fromReportTypeOrLocation(group SyntaxGroup) {
	switch group {
	case SyntaxMetar, SyntaxSpeci:
		s.reportType = report.TypeMetar
		s.state = StateCorrection
	case SyntaxTaf:
		s.reportType = report.TypeTaf
		s.state = StateCorrection
	case SyntaxLocation:
		s.state = StateReportTime
	default:
		s.SetError(report.ErrorExpectedReportTypeOrLocation)
	}
}

func (s *Status) fromCorrection(group SyntaxGroup) {
	switch group {
	case SyntaxAmd:
		if s.reportType != report.TypeTaf {
			s.SetError(report.ErrorAmdAllowedInTafOnly)
			return
		}
		s.state = StateLocation
	case SyntaxCor:
		s.state = StateLocation
	case SyntaxLocation:
		s.state = StateReportTime
	default:
		s.SetError(report.ErrorExpectedLocation)
	}
}

func (s *Status) fromReportTime(group SyntaxGroup) {
	switch group {
	case SyntaxReportTime:
		if s.reportType == report.TypeMetar {
			s.state = StateReportBodyBeginMetar
			return
		}
		s.state = StateTimeSpan
	case SyntaxTimeSpan:
		if s.reportType != report.TypeTaf {
			s.SetError(report.ErrorExpectedReportTime)
			return
		}
		s.state = StateReportBodyBeginTaf
	case SyntaxNil:
		s.state = StateNil
	default:
		s.SetError(report.ErrorExpectedReportTime)
	}
}

func (s *Status) fromTimeSpan(group SyntaxGroup) {
	switch group {
	case SyntaxTimeSpan:
		s.reportType = report.TypeTaf
		s.state = StateReportBodyBeginTaf
	case SyntaxNil:
		s.state = StateNil
	default:
		if s.reportType != report.TypeUnknown {
			s.SetError(report.ErrorExpectedTimeSpan)
			return
		}
		// No report type keyword and no time span: this is a METAR, and the
		// group has to be classified again as part of the METAR body.
		s.reportType = report.TypeMetar
		s.state = StateReportBodyBeginMetarRepeatParse
	}
}

func (s *Status) fromBodyBeginMetar(group SyntaxGroup) {
	switch group {
	case SyntaxNil:
		s.state = StateNil
	case SyntaxCnl:
		s.SetError(report.ErrorCnlAllowedInTafOnly)
	case SyntaxRmk:
		s.state = StateRemarkMetar
	default:
		s.state = StateReportBodyMetar
	}
}

func (s *Status) fromBodyBeginTaf(group SyntaxGroup) {
	switch group {
	case SyntaxNil:
		s.state = StateNil
	case SyntaxCnl:
		s.state = StateCnl
	case SyntaxRmk:
		s.state = StateRemarkTaf
	case SyntaxMaintenanceIndicator:
		s.SetError(report.ErrorMaintenanceIndicatorAllowedInMetarOnly)
	default:
		s.state = StateReportBodyTaf
	}
}

func (s *Status) fromBody(group SyntaxGroup, remark State) {
	switch group {
	case SyntaxRmk:
		s.state = remark
	case SyntaxNil, SyntaxCnl:
		s.SetError(report.ErrorUnexpectedNilOrCnlInReportBody)
	case SyntaxMaintenanceIndicator:
		if s.state == StateReportBodyTaf {
			s.SetError(report.ErrorMaintenanceIndicatorAllowedInMetarOnly)
		}
	}
}

// Finalize runs the end-of-report transition.
func (s *Status) Finalize() {
	switch s.state {
	case StateReportTypeOrLocation:
		s.SetError(report.ErrorEmptyReport)
	case StateReportBodyMetar, StateReportBodyTaf, StateRemarkMetar,
		StateRemarkTaf, StateNil, StateCnl, StateError:
	default:
		s.SetError(report.ErrorUnexpectedReportEnd)
	}
}
