package report

import "fmt"

// KeywordType is a fixed keyword.
type KeywordType int

const (
	KeywordMetar KeywordType = iota
	KeywordSpeci
	KeywordTaf
	KeywordAmd
	KeywordNil
	KeywordCnl
	KeywordCor
	KeywordAuto
	KeywordCavok
	KeywordRmk
	KeywordMaintenanceIndicator
	KeywordAO1
	KeywordAO2
	KeywordAO1A
	KeywordAO2A
	KeywordNospeci
	KeywordRvrno
	KeywordPwino
	KeywordPno
	KeywordFzrano
	KeywordTsno
	KeywordSlpno
	KeywordFroin
)

type keywordSpec struct {
	text  string
	typ   KeywordType
	parts []ReportPart
}

var keywords = []keywordSpec{
	{"METAR", KeywordMetar, []ReportPart{PartHeader}},
	{"SPECI", KeywordSpeci, []ReportPart{PartHeader}},
	{"TAF", KeywordTaf, []ReportPart{PartHeader}},
	{"AMD", KeywordAmd, []ReportPart{PartHeader}},
	{"NIL", KeywordNil, []ReportPart{PartHeader, PartMetar, PartTaf}},
	{"CNL", KeywordCnl, []ReportPart{PartHeader, PartMetar, PartTaf}},
	{"COR", KeywordCor, []ReportPart{PartHeader}},
	{"AUTO", KeywordAuto, []ReportPart{PartMetar}},
	{"CAVOK", KeywordCavok, []ReportPart{PartMetar, PartTaf}},
	{"RMK", KeywordRmk, []ReportPart{PartHeader, PartMetar, PartTaf}},
	{"$", KeywordMaintenanceIndicator, []ReportPart{PartMetar, PartTaf, PartRemark}},
	{"AO1", KeywordAO1, []ReportPart{PartRemark}},
	{"AO2", KeywordAO2, []ReportPart{PartRemark}},
	{"AO1A", KeywordAO1A, []ReportPart{PartRemark}},
	{"AO2A", KeywordAO2A, []ReportPart{PartRemark}},
	{"NOSPECI", KeywordNospeci, []ReportPart{PartRemark}},
	{"RVRNO", KeywordRvrno, []ReportPart{PartRemark}},
	{"PWINO", KeywordPwino, []ReportPart{PartRemark}},
	{"PNO", KeywordPno, []ReportPart{PartRemark}},
	{"FZRANO", KeywordFzrano, []ReportPart{PartRemark}},
	{"TSNO", KeywordTsno, []ReportPart{PartRemark}},
	{"SLPNO", KeywordSlpno, []ReportPart{PartRemark}},
	{"FROIN", KeywordFroin, []ReportPart{PartRemark}},
}

func (t KeywordType) String() string {
	for _, k := range keywords {
		if k.typ == t {
			return k.text
		}
	}
	return fmt.Sprintf("KeywordType(%d)", t)
}

// KeywordGroup is a single fixed keyword. COR also covers the numbered
// correction form "CCA", "CCB", ...
type KeywordGroup struct {
	Type             KeywordType
	CorrectionNumber int
}

func (KeywordGroup) isGroup()   {}
func (KeywordGroup) Kind() Kind { return KindKeyword }

// Append never absorbs a token: every keyword is a complete group.
func (g KeywordGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

func parseKeywordGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	for _, k := range keywords {
		if k.text == token && inParts(part, k.parts...) {
			return KeywordGroup{Type: k.typ}, true
		}
	}
	if part == PartHeader && len(token) == 3 && token[:2] == "CC" && token[2] >= 'A' && token[2] <= 'Z' {
		return KeywordGroup{Type: KeywordCor, CorrectionNumber: int(token[2]-'A') + 1}, true
	}
	return nil, false
}
