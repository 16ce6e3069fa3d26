package report

// UnknownGroup is the fallback for text no catalog entry recognizes. Text
// holds the raw tokens verbatim.
type UnknownGroup struct {
	Text string
}

func (UnknownGroup) isGroup()   {}
func (UnknownGroup) Kind() Kind { return KindUnknown }

// Append never absorbs a token. Adjacent unknown groups are merged by the
// parser, not here.
func (g UnknownGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}
