package gometar

import (
	"context"
	"testing"
)

const benchMetar = "METAR KJFK 121051Z 31008KT 10SM FEW050 SCT250 22/11 A3002 RMK AO2 SLP166 T02220111"

const benchTaf = "TAF EGLL 121100Z 1212/1318 24010KT 9999 SCT035 " +
	"PROB30 TEMPO 1214/1218 4000 SHRA BECMG 1300/1303 30015G25KT"

func BenchmarkParseMetar(b *testing.B) {
	for b.Loop() {
		r := Parse(benchMetar)
		if !r.OK() {
			b.Fatalf("Parse failed: %s", r.Metadata.Error)
		}
	}
}

func BenchmarkParseTaf(b *testing.B) {
	for b.Loop() {
		r := Parse(benchTaf)
		if !r.OK() {
			b.Fatalf("Parse failed: %s", r.Metadata.Error)
		}
	}
}

func BenchmarkParseSourceCorpus(b *testing.B) {
	src, err := DirTree("integration/testdata/reports")
	if err != nil {
		b.Fatalf("DirTree failed: %v", err)
	}

	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		decoded, err := ParseSource(ctx, src)
		if err != nil {
			b.Fatalf("ParseSource failed: %v", err)
		}
		_ = decoded
	}
}
