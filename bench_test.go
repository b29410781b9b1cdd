package jbind_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jbind"
)

type benchRecord struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Score float64  `json:"score"`
	OK    bool     `json:"ok"`
	Tags  []string `json:"tags"`
}

var benchSchema = jbind.NewSchema(
	jbind.Bind("id", jbind.IntValue[int64](), func(r *benchRecord, v int64) { r.ID = v }),
	jbind.Bind("name", jbind.StringValue(), func(r *benchRecord, v string) { r.Name = v }),
	jbind.Bind("score", jbind.FloatValue[float64](), func(r *benchRecord, v float64) { r.Score = v }),
	jbind.Bind("ok", jbind.BoolValue(), func(r *benchRecord, v bool) { r.OK = v }),
	jbind.Bind("tags", jbind.ArrayOf(jbind.StringValue()), func(r *benchRecord, v []string) { r.Tags = v }),
)

type benchDoc struct {
	Records []benchRecord `json:"records"`
}

var benchDocSchema = jbind.NewSchema(
	jbind.Bind("records", jbind.ArrayOf(jbind.ObjectOf(benchSchema)), func(d *benchDoc, v []benchRecord) { d.Records = v }),
)

func benchInput(n int) []byte {
	var buf strings.Builder
	buf.WriteString(`{"version": 3, "records": [`)
	for i := range n {
		if i > 0 {
			buf.WriteString(",\n")
		}
		fmt.Fprintf(&buf, `{"id": %d, "name": "record \"%d\"", "score": %d.%d, "ok": %v, `+
			`"tags": ["a", "bé"], "unused": {"x": [1, 2, {"y": null}]}}`, i, i, i, i%10, i%2 == 0)
	}
	buf.WriteString("]}")
	return []byte(buf.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(1000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			var doc benchDoc
			if err := json.Unmarshal(input, &doc); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Schema", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			if _, err := benchDocSchema.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("CheckDocument", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			if err := jbind.CheckDocument(input, 0); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func TestBenchInputAgrees(t *testing.T) {
	input := benchInput(25)
	var want benchDoc
	if err := json.Unmarshal(input, &want); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got, err := benchDocSchema.ParseAll(input)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(got.Records) != len(want.Records) {
		t.Fatalf("Got %d records, want %d", len(got.Records), len(want.Records))
	}
	for i, w := range want.Records {
		g := got.Records[i]
		if g.ID != w.ID || g.Name != w.Name || g.Score != w.Score || g.OK != w.OK ||
			strings.Join(g.Tags, "|") != strings.Join(w.Tags, "|") {
			t.Errorf("Record %d: got %+v, want %+v", i, g, w)
		}
	}
}
