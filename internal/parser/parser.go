// Package parser decodes one METAR or TAF report into groups.
//
// Each token is first offered to the group accepted just before it. Only
// when that group declines (or turns out to be invalid) is the token
// classified on its own through the group catalog, in the report part the
// grammar state machine is currently in. The parser never fails: grammar
// problems are recorded as a report error and unrecognized text becomes
// unknown groups.
package parser

import (
	"log/slog"

	"github.com/gometar/gometar/internal/grammar"
	"github.com/gometar/gometar/internal/lexer"
	"github.com/gometar/gometar/internal/types"
	"github.com/gometar/gometar/report"
)

// DefaultGroupLimit is the number of tokens decoded before a report is
// rejected as too large.
const DefaultGroupLimit = 100

// Parser decodes a single report. A Parser is used once.
type Parser struct {
	lex        *lexer.Lexer
	status     *grammar.Status
	groupLimit int

	md       report.ReportMetadata
	groups   []report.GroupInfo
	lastOpen bool // the last group may still absorb tokens
	count    int  // tokens consumed, continuations included
	types.Logger
}

// New returns a Parser for source. A groupLimit of zero or less selects
// DefaultGroupLimit. Pass nil for logger to disable logging.
func New(source string, logger *slog.Logger, groupLimit int, opts ...lexer.Option) *Parser {
	if groupLimit <= 0 {
		groupLimit = DefaultGroupLimit
	}
	return &Parser{
		lex:        lexer.New(source, types.Component(logger, "lexer"), opts...),
		status:     grammar.New(types.Component(logger, "grammar")),
		groupLimit: groupLimit,
		Logger:     types.Logger{L: types.Component(logger, "parser")},
	}
}

// Parse decodes the whole report.
func (p *Parser) Parse() report.Result {
	for _, tok := range p.lex.Tokenize() {
		if tok.Kind == lexer.TokEnd {
			break
		}
		if p.count >= p.groupLimit {
			p.Log(slog.LevelDebug, "group limit reached", slog.Int("limit", p.groupLimit))
			p.status.SetError(report.ErrorReportTooLarge)
			break
		}
		p.count++
		if p.TraceEnabled() {
			p.Trace("token", slog.String("text", tok.Text), slog.Uint64("offset", uint64(tok.Span.Start)))
		}
		if p.appendToLast(tok.Text) {
			continue
		}
		p.add(tok.Text)
	}
	p.closeLast()
	p.status.Finalize()
	p.md.Type = p.status.ReportType()
	p.md.Error = p.status.Error()

	p.Log(slog.LevelDebug, "report decoded",
		slog.String("type", p.md.Type.String()),
		slog.String("error", p.md.Error.String()),
		slog.Int("groups", len(p.groups)),
		slog.Int("tokens", p.count))
	return report.Result{Metadata: p.md, Groups: p.groups}
}

// appendToLast offers token to the last group and reports whether it was
// absorbed. An invalidated group is reclassified before returning false.
func (p *Parser) appendToLast(token string) bool {
	if !p.lastOpen || len(p.groups) == 0 {
		return false
	}
	last := &p.groups[len(p.groups)-1]
	g, res := last.Group.Append(token, last.Part, &p.md)
	if p.TraceEnabled() {
		p.Trace("append",
			slog.String("token", token),
			slog.String("kind", last.Kind().String()),
			slog.String("result", res.String()))
	}
	switch res {
	case report.Appended:
		last.Group = g
		last.Raw += " " + token
		p.updateMetadata(g, last.Part)
		return true
	case report.GroupInvalidated:
		p.reparseLast()
	}
	p.lastOpen = false
	return false
}

// reparseLast reclassifies the raw text of the last group with its own
// kind excluded. The replacement is closed; if it is itself incomplete it
// degrades to an unknown group.
func (p *Parser) reparseLast() {
	i := len(p.groups) - 1
	last := p.groups[i]
	g := report.ReparseGroup(last.Raw, last.Part, &p.md, last.Kind())
	if _, res := g.Append("", last.Part, &p.md); res == report.GroupInvalidated {
		g = report.UnknownGroup{Text: last.Raw}
	}
	p.Log(slog.LevelDebug, "group invalidated",
		slog.String("raw", last.Raw),
		slog.String("was", last.Kind().String()),
		slog.String("now", g.Kind().String()))

	p.groups = p.groups[:i]
	p.updateMetadata(g, last.Part)
	p.push(report.GroupInfo{Group: g, Part: last.Part, Raw: last.Raw})
	p.lastOpen = false
}

// add classifies token on its own and feeds its syntax role to the
// grammar, repeating while the grammar asks for the token to be
// interpreted again in a different report part.
func (p *Parser) add(token string) {
	var (
		g    report.Group
		part report.ReportPart
	)
	for {
		part = p.status.ReportPart()
		g = report.ParseGroup(token, part, &p.md)
		p.status.Transition(grammar.Classify(g))
		p.md.Type = p.status.ReportType()
		if p.TraceEnabled() {
			p.Trace("group",
				slog.String("token", token),
				slog.String("part", part.String()),
				slog.String("kind", g.Kind().String()),
				slog.String("state", p.status.State().String()))
		}
		if !p.status.IsReparseRequired() {
			break
		}
	}
	p.updateMetadata(g, part)
	p.push(report.GroupInfo{Group: g, Part: part, Raw: token})
	p.lastOpen = true
}

// push appends gi to the result, merging it into a directly preceding
// unknown group when both are unknown. The merged group keeps the part of
// its first token.
func (p *Parser) push(gi report.GroupInfo) {
	if n := len(p.groups); n > 0 && gi.Kind() == report.KindUnknown &&
		p.groups[n-1].Kind() == report.KindUnknown {
		prev := &p.groups[n-1]
		prev.Raw += " " + gi.Raw
		prev.Group = report.UnknownGroup{Text: prev.Raw}
		return
	}
	p.groups = append(p.groups, gi)
}

// closeLast sends the end-of-report token to the last group so that a
// group still waiting for a required continuation is reclassified.
func (p *Parser) closeLast() {
	if !p.lastOpen || len(p.groups) == 0 {
		return
	}
	last := p.groups[len(p.groups)-1]
	if _, res := last.Group.Append("", last.Part, &p.md); res == report.GroupInvalidated {
		p.reparseLast()
	}
	p.lastOpen = false
}

func (p *Parser) updateMetadata(g report.Group, part report.ReportPart) {
	md := &p.md
	switch g := g.(type) {
	case report.KeywordGroup:
		switch g.Type {
		case report.KeywordSpeci:
			md.IsSpeci = true
		case report.KeywordAmd:
			md.IsAmended = true
		case report.KeywordCor:
			md.IsCorrectional = true
			md.CorrectionNumber = g.CorrectionNumber
		case report.KeywordNil:
			md.IsNil = true
		case report.KeywordCnl:
			md.IsCancelled = true
		case report.KeywordAuto:
			md.IsAutomated = true
		case report.KeywordAO1:
			md.IsAO1 = true
		case report.KeywordAO2:
			md.IsAO2 = true
		case report.KeywordAO1A:
			md.IsAO1A = true
		case report.KeywordAO2A:
			md.IsAO2A = true
		case report.KeywordNospeci:
			md.IsNospeci = true
		case report.KeywordMaintenanceIndicator:
			md.MaintenanceIndicator = true
		}
	case report.LocationGroup:
		if md.Location == "" {
			md.Location = g.ICAO
		}
	case report.ReportTimeGroup:
		if md.ReportTime == nil {
			t := g.Time
			md.ReportTime = &t
		}
	case report.TrendGroup:
		if part == report.PartHeader && g.IsTimeSpanGroup() && md.TimeSpanFrom == nil {
			from, until := *g.From, *g.Until
			md.TimeSpanFrom, md.TimeSpanUntil = &from, &until
		}
	}
}
