package report

import "fmt"

// ReportError is a report-level (grammar) failure. Token-level failures
// never produce a ReportError; unrecognized tokens become UnknownGroup.
type ReportError int

const (
	ErrorNone ReportError = iota
	ErrorEmptyReport
	ErrorExpectedReportTypeOrLocation
	ErrorExpectedLocation
	ErrorExpectedReportTime
	ErrorExpectedTimeSpan
	ErrorUnexpectedReportEnd
	ErrorUnexpectedGroupAfterNil
	ErrorUnexpectedGroupAfterCnl
	ErrorUnexpectedNilOrCnlInReportBody
	ErrorAmdAllowedInTafOnly
	ErrorCnlAllowedInTafOnly
	ErrorMaintenanceIndicatorAllowedInMetarOnly
	ErrorReportTooLarge
)

var reportErrorCodes = [...]string{
	ErrorNone:                                   "none",
	ErrorEmptyReport:                            "empty-report",
	ErrorExpectedReportTypeOrLocation:           "expected-report-type-or-location",
	ErrorExpectedLocation:                       "expected-location",
	ErrorExpectedReportTime:                     "expected-report-time",
	ErrorExpectedTimeSpan:                       "expected-time-span",
	ErrorUnexpectedReportEnd:                    "unexpected-report-end",
	ErrorUnexpectedGroupAfterNil:                "unexpected-group-after-nil",
	ErrorUnexpectedGroupAfterCnl:                "unexpected-group-after-cnl",
	ErrorUnexpectedNilOrCnlInReportBody:         "unexpected-nil-or-cnl-in-report-body",
	ErrorAmdAllowedInTafOnly:                    "amd-allowed-in-taf-only",
	ErrorCnlAllowedInTafOnly:                    "cnl-allowed-in-taf-only",
	ErrorMaintenanceIndicatorAllowedInMetarOnly: "maintenance-indicator-allowed-in-metar-only",
	ErrorReportTooLarge:                         "report-too-large",
}

// String returns the kebab-case error code.
func (e ReportError) String() string {
	if e < 0 || int(e) >= len(reportErrorCodes) {
		return fmt.Sprintf("ReportError(%d)", e)
	}
	return reportErrorCodes[e]
}

// AllReportErrors returns every defined error, ErrorNone first.
func AllReportErrors() []ReportError {
	all := make([]ReportError, len(reportErrorCodes))
	for i := range all {
		all[i] = ReportError(i)
	}
	return all
}
