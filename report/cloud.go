package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// CloudGroupType is the kind of cloud group.
type CloudGroupType int

const (
	CloudNoClouds CloudGroupType = iota
	CloudLayer
	CloudVerticalVisibility
	CloudCeiling
	CloudVariableCover
)

var cloudGroupTypeNames = [...]string{
	"no clouds", "cloud layer", "vertical visibility", "ceiling", "variable cover",
}

func (t CloudGroupType) String() string {
	if t < 0 || int(t) >= len(cloudGroupTypeNames) {
		return fmt.Sprintf("CloudGroupType(%d)", t)
	}
	return cloudGroupTypeNames[t]
}

// CloudAmount is the sky cover of a layer, or the no-cloud code.
type CloudAmount int

const (
	AmountNotReported CloudAmount = iota
	AmountFew
	AmountScattered
	AmountBroken
	AmountOvercast
	AmountObscured
	AmountNCD
	AmountNSC
	AmountSKC
	AmountCLR
)

var cloudAmountCodes = [...]string{"///", "FEW", "SCT", "BKN", "OVC", "VV", "NCD", "NSC", "SKC", "CLR"}

var cloudAmountNames = [...]string{
	"not reported", "few", "scattered", "broken", "overcast", "sky obscured",
	"no cloud detected", "no significant cloud", "sky clear", "clear below 12000 ft",
}

func (a CloudAmount) String() string {
	if a < 0 || int(a) >= len(cloudAmountNames) {
		return fmt.Sprintf("CloudAmount(%d)", a)
	}
	return cloudAmountNames[a]
}

func cloudAmountFromCode(code string) (CloudAmount, bool) {
	for i, c := range cloudAmountCodes {
		if c == code {
			return CloudAmount(i), true
		}
	}
	return 0, false
}

// ConvectiveType is the convective cloud suffix of a layer.
type ConvectiveType int

const (
	ConvectiveNone ConvectiveType = iota
	ConvectiveCB
	ConvectiveTCU
	ConvectiveNotReported
)

func (c ConvectiveType) String() string {
	switch c {
	case ConvectiveNone:
		return ""
	case ConvectiveCB:
		return "cumulonimbus"
	case ConvectiveTCU:
		return "towering cumulus"
	case ConvectiveNotReported:
		return "convective type not reported"
	default:
		return fmt.Sprintf("ConvectiveType(%d)", c)
	}
}

type cloudNext int

const (
	cloudComplete     cloudNext = iota
	cloudExpectCeil             // "CIG": height must follow
	cloudExpectV                // remark "BKN014": "V" must follow
	cloudExpectAmount           // "BKN014 V": amount must follow
)

// CloudGroup is a cloud layer, vertical visibility, a no-cloud code, or a
// remark ceiling or variable cover.
type CloudGroup struct {
	Type       CloudGroupType
	Amount     CloudAmount
	Height     value.Distance
	MaxHeight  *value.Distance // variable ceiling upper bound
	Convective ConvectiveType
	// VariableAmount is the second amount of "BKN014 V OVC".
	VariableAmount *CloudAmount

	next cloudNext
}

func (CloudGroup) isGroup()   {}
func (CloudGroup) Kind() Kind { return KindCloud }

// IsCeiling reports a broken, overcast or obscured layer.
func (g CloudGroup) IsCeiling() bool {
	switch g.Type {
	case CloudCeiling, CloudVerticalVisibility:
		return true
	case CloudLayer:
		return g.Amount == AmountBroken || g.Amount == AmountOvercast
	}
	return false
}

var (
	cloudLayerRe     = regexp.MustCompile(`^(FEW|SCT|BKN|OVC|///)(\d{3}|///)(CB|TCU|///)?$`)
	verticalVisRe    = regexp.MustCompile(`^VV(\d{3}|///)$`)
	ceilingRe        = regexp.MustCompile(`^(\d{3})(?:V(\d{3}))?$`)
	variableAmountRe = regexp.MustCompile(`^(FEW|SCT|BKN|OVC)(\d{3})?$`)
)

func parseCloudGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	switch part {
	case PartMetar, PartTaf:
		switch token {
		case "NCD", "NSC", "SKC", "CLR":
			a, _ := cloudAmountFromCode(token)
			return CloudGroup{Type: CloudNoClouds, Amount: a}, true
		}
		if m := match(cloudLayerRe, token); m != nil {
			return parseCloudLayer(m)
		}
		if m := match(verticalVisRe, token); m != nil {
			h, ok := value.DistanceFromHeightString(m[1])
			if !ok {
				return nil, false
			}
			return CloudGroup{Type: CloudVerticalVisibility, Amount: AmountObscured, Height: h}, true
		}
	case PartRemark:
		if token == "CIG" {
			return CloudGroup{Type: CloudCeiling, next: cloudExpectCeil}, true
		}
		if m := match(variableAmountRe, token); m != nil {
			a, _ := cloudAmountFromCode(m[1])
			g := CloudGroup{Type: CloudVariableCover, Amount: a, next: cloudExpectV}
			if m[2] != "" {
				h, ok := value.DistanceFromHeightString(m[2])
				if !ok {
					return nil, false
				}
				g.Height = h
			}
			return g, true
		}
	}
	return nil, false
}

func parseCloudLayer(m []string) (Group, bool) {
	a, ok := cloudAmountFromCode(m[1])
	if !ok {
		return nil, false
	}
	h, ok := value.DistanceFromHeightString(m[2])
	if !ok {
		return nil, false
	}
	g := CloudGroup{Type: CloudLayer, Amount: a, Height: h}
	switch m[3] {
	case "CB":
		g.Convective = ConvectiveCB
	case "TCU":
		g.Convective = ConvectiveTCU
	case "///":
		g.Convective = ConvectiveNotReported
	}
	return g, true
}

func (g CloudGroup) Append(token string, _ ReportPart, _ *ReportMetadata) (Group, AppendResult) {
	switch g.next {
	case cloudExpectCeil:
		m := match(ceilingRe, token)
		if m == nil {
			return g, GroupInvalidated
		}
		h, ok := value.DistanceFromHeightString(m[1])
		if !ok {
			return g, GroupInvalidated
		}
		if m[2] != "" {
			maxh, ok := value.DistanceFromHeightString(m[2])
			if !ok {
				return g, GroupInvalidated
			}
			g.MaxHeight = &maxh
		}
		g.Height, g.next = h, cloudComplete
		return g, Appended
	case cloudExpectV:
		if token != "V" {
			return g, GroupInvalidated
		}
		g.next = cloudExpectAmount
		return g, Appended
	case cloudExpectAmount:
		switch token {
		case "FEW", "SCT", "BKN", "OVC":
			a, _ := cloudAmountFromCode(token)
			g.VariableAmount, g.next = &a, cloudComplete
			return g, Appended
		}
		return g, GroupInvalidated
	}
	return g, NotAppended
}
