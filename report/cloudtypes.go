package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// CloudTypesGroup is the remark list of cloud layers by genus and okta,
// such as "SC1AC2" or "CF2CU1".
type CloudTypesGroup struct {
	Types []value.CloudType
}

func (CloudTypesGroup) isGroup()   {}
func (CloudTypesGroup) Kind() Kind { return KindCloudTypes }

func (g CloudTypesGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

func parseCloudTypesGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartRemark {
		return nil, false
	}
	var types []value.CloudType
	for s := token; s != ""; {
		ct, n, ok := value.CloudTypeFromString(s)
		if !ok {
			return nil, false
		}
		types = append(types, ct)
		s = s[n:]
	}
	if len(types) == 0 {
		return nil, false
	}
	return CloudTypesGroup{Types: types}, true
}

// LowMidHighCloudGroup is the remark "8/CLCMCH" cloud type group. Each
// code is 0-9, or -1 when not reported.
type LowMidHighCloudGroup struct {
	Low    int
	Middle int
	High   int
}

func (LowMidHighCloudGroup) isGroup()   {}
func (LowMidHighCloudGroup) Kind() Kind { return KindLowMidHighCloud }

func (g LowMidHighCloudGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

var lowMidHighRe = regexp.MustCompile(`^8/([0-9/])([0-9/])([0-9/])$`)

func parseLowMidHighCloudGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartRemark {
		return nil, false
	}
	m := match(lowMidHighRe, token)
	if m == nil {
		return nil, false
	}
	return LowMidHighCloudGroup{
		Low:    cloudCode(m[1]),
		Middle: cloudCode(m[2]),
		High:   cloudCode(m[3]),
	}, true
}

func cloudCode(s string) int {
	if s == "/" {
		return -1
	}
	return int(s[0] - '0')
}

var lowCloudNames = [...]string{
	"no low clouds", "cumulus humilis or fractus", "cumulus mediocris or congestus",
	"cumulonimbus calvus", "stratocumulus cumulogenitus", "stratocumulus",
	"stratus nebulosus or fractus", "stratus or cumulus fractus of bad weather",
	"cumulus and stratocumulus at different levels", "cumulonimbus capillatus",
}

var midCloudNames = [...]string{
	"no middle clouds", "altostratus translucidus", "altostratus opacus or nimbostratus",
	"altocumulus translucidus at one level", "patches of altocumulus translucidus",
	"bands of altocumulus translucidus", "altocumulus cumulogenitus",
	"altocumulus with altostratus or nimbostratus", "altocumulus castellanus or floccus",
	"altocumulus of a chaotic sky",
}

var highCloudNames = [...]string{
	"no high clouds", "cirrus fibratus or uncinus", "dense cirrus", "cirrus spissatus cumulonimbogenitus",
	"cirrus uncinus or fibratus thickening", "cirrus and cirrostratus below 45 degrees",
	"cirrus and cirrostratus above 45 degrees", "cirrostratus covering the whole sky",
	"cirrostratus not covering the whole sky", "cirrocumulus",
}

func cloudCodeName(names *[10]string, code int) string {
	if code < 0 {
		return "not reported"
	}
	if code >= len(names) {
		return fmt.Sprintf("code %d", code)
	}
	return names[code]
}

// LowDescription describes the low cloud code.
func (g LowMidHighCloudGroup) LowDescription() string {
	return cloudCodeName(&lowCloudNames, g.Low)
}

// MiddleDescription describes the middle cloud code.
func (g LowMidHighCloudGroup) MiddleDescription() string {
	return cloudCodeName(&midCloudNames, g.Middle)
}

// HighDescription describes the high cloud code.
func (g LowMidHighCloudGroup) HighDescription() string {
	return cloudCodeName(&highCloudNames, g.High)
}
