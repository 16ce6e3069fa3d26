// Package report holds the decoded form of a METAR or TAF report: the
// report metadata, the ordered group list and the catalog of group kinds
// that tokens are recognized as.
package report

import (
	"fmt"

	"github.com/gometar/gometar/value"
)

// ReportPart is the grammatical section a token is interpreted in.
type ReportPart int

const (
	PartUnknown ReportPart = iota
	PartHeader
	PartMetar
	PartTaf
	PartRemark
)

func (p ReportPart) String() string {
	switch p {
	case PartUnknown:
		return "unknown"
	case PartHeader:
		return "header"
	case PartMetar:
		return "metar"
	case PartTaf:
		return "taf"
	case PartRemark:
		return "remark"
	default:
		return fmt.Sprintf("ReportPart(%d)", p)
	}
}

// ReportType is the kind of report once the header has been decoded.
type ReportType int

const (
	TypeUnknown ReportType = iota
	TypeMetar
	TypeTaf
)

func (t ReportType) String() string {
	switch t {
	case TypeUnknown:
		return "unknown"
	case TypeMetar:
		return "METAR"
	case TypeTaf:
		return "TAF"
	default:
		return fmt.Sprintf("ReportType(%d)", t)
	}
}

// AppendResult is returned by Group.Append.
type AppendResult int

const (
	// NotAppended: the token is not part of the group; the group is closed unchanged.
	NotAppended AppendResult = iota
	// Appended: the token was absorbed into the group.
	Appended
	// GroupInvalidated: the group needed a continuation that did not arrive
	// and is not valid as accumulated.
	GroupInvalidated
)

func (r AppendResult) String() string {
	switch r {
	case NotAppended:
		return "not-appended"
	case Appended:
		return "appended"
	case GroupInvalidated:
		return "group-invalidated"
	default:
		return fmt.Sprintf("AppendResult(%d)", r)
	}
}

// ReportMetadata accumulates report-level information while groups are
// accepted. Fields are only ever set, never cleared.
type ReportMetadata struct {
	Type  ReportType
	Error ReportError

	ReportTime    *value.Time
	TimeSpanFrom  *value.Time // TAF validity
	TimeSpanUntil *value.Time
	Location      string

	IsSpeci              bool
	IsNospeci            bool
	IsAutomated          bool
	IsAO1                bool
	IsAO1A               bool
	IsAO2                bool
	IsAO2A               bool
	IsNil                bool
	IsCancelled          bool
	IsAmended            bool
	IsCorrectional       bool
	CorrectionNumber     int // 1 for CCA, 2 for CCB, ...
	MaintenanceIndicator bool
}

// GroupInfo is one decoded group together with the report part it was
// recognized in and the raw tokens it absorbed, joined by single spaces.
type GroupInfo struct {
	Group Group
	Part  ReportPart
	Raw   string
}

// Kind returns the kind of the contained group.
func (gi GroupInfo) Kind() Kind {
	if gi.Group == nil {
		return KindUnknown
	}
	return gi.Group.Kind()
}

// Result is the complete decode of one report.
type Result struct {
	Metadata ReportMetadata
	Groups   []GroupInfo
}

// OK reports whether the report decoded without a report-level error.
func (r Result) OK() bool {
	return r.Metadata.Error == ErrorNone
}
