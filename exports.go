package gometar

import "github.com/gometar/gometar/report"

// Type aliases for the public API. The decoded model lives in the report
// package; measurement values live in the value package.

// Result is the complete decode of one report.
type Result = report.Result

// ReportMetadata holds report-level information: type, error, location,
// report time and flags.
type ReportMetadata = report.ReportMetadata

// GroupInfo is one decoded group with its report part and raw text.
type GroupInfo = report.GroupInfo

// Group is implemented by every decoded group kind.
type Group = report.Group

// Kind identifies a group variant.
type Kind = report.Kind

// ReportType is METAR, TAF or unknown.
type ReportType = report.ReportType

// ReportPart is the section of the report a group was recognized in.
type ReportPart = report.ReportPart

// ReportError is a report-level grammar failure.
type ReportError = report.ReportError

// Visitor has one method per group kind.
type Visitor = report.Visitor

// BaseVisitor implements every Visitor method as a no-op.
type BaseVisitor = report.BaseVisitor

// Report type constants.
const (
	TypeUnknown = report.TypeUnknown
	TypeMetar   = report.TypeMetar
	TypeTaf     = report.TypeTaf
)

// Group kind constants, in recognition priority order.
const (
	KindKeyword           = report.KindKeyword
	KindLocation          = report.KindLocation
	KindReportTime        = report.KindReportTime
	KindTrend             = report.KindTrend
	KindWind              = report.KindWind
	KindVisibility        = report.KindVisibility
	KindCloud             = report.KindCloud
	KindWeather           = report.KindWeather
	KindTemperature       = report.KindTemperature
	KindPressure          = report.KindPressure
	KindRunwayState       = report.KindRunwayState
	KindSeaSurface        = report.KindSeaSurface
	KindMinMaxTemperature = report.KindMinMaxTemperature
	KindPrecipitation     = report.KindPrecipitation
	KindLayerForecast     = report.KindLayerForecast
	KindPressureTendency  = report.KindPressureTendency
	KindCloudTypes        = report.KindCloudTypes
	KindLowMidHighCloud   = report.KindLowMidHighCloud
	KindLightning         = report.KindLightning
	KindVicinity          = report.KindVicinity
	KindMisc              = report.KindMisc
	KindUnknown           = report.KindUnknown
)

// Report part constants.
const (
	PartUnknown = report.PartUnknown
	PartHeader  = report.PartHeader
	PartMetar   = report.PartMetar
	PartTaf     = report.PartTaf
	PartRemark  = report.PartRemark
)

// Report error constants.
const (
	ErrorNone                                   = report.ErrorNone
	ErrorEmptyReport                            = report.ErrorEmptyReport
	ErrorExpectedReportTypeOrLocation           = report.ErrorExpectedReportTypeOrLocation
	ErrorExpectedLocation                       = report.ErrorExpectedLocation
	ErrorExpectedReportTime                     = report.ErrorExpectedReportTime
	ErrorExpectedTimeSpan                       = report.ErrorExpectedTimeSpan
	ErrorUnexpectedReportEnd                    = report.ErrorUnexpectedReportEnd
	ErrorUnexpectedGroupAfterNil                = report.ErrorUnexpectedGroupAfterNil
	ErrorUnexpectedGroupAfterCnl                = report.ErrorUnexpectedGroupAfterCnl
	ErrorUnexpectedNilOrCnlInReportBody         = report.ErrorUnexpectedNilOrCnlInReportBody
	ErrorAmdAllowedInTafOnly                    = report.ErrorAmdAllowedInTafOnly
	ErrorCnlAllowedInTafOnly                    = report.ErrorCnlAllowedInTafOnly
	ErrorMaintenanceIndicatorAllowedInMetarOnly = report.ErrorMaintenanceIndicatorAllowedInMetarOnly
	ErrorReportTooLarge                         = report.ErrorReportTooLarge
)

// Describe returns a one-line English description of a decoded group.
func Describe(gi GroupInfo) string { return report.Describe(gi) }

// Visit dispatches gi to the matching Visitor method.
func Visit(v Visitor, gi GroupInfo) { report.Visit(v, gi) }

// VisitAll visits every group of r in order.
func VisitAll(v Visitor, r Result) { report.VisitAll(v, r) }
