package parser

import "testing"

func TestParseJSDoc(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		wantNil bool
		wantDoc string
		want    []JSDocTag
	}{
		{
			name:    "not a doc comment",
			comment: "/* plain block */",
			wantNil: true,
		},
		{
			name:    "empty doc comment",
			comment: "/** */",
			wantNil: true,
		},
		{
			name:    "summary only",
			comment: "/** Adds two numbers. */",
			wantDoc: "Adds two numbers.",
		},
		{
			name: "summary with tags",
			comment: `/**
 * Parses the input.
 *
 * @param input the raw text
 * @returns the parsed value
 * @deprecated
 */`,
			wantDoc: "Parses the input.",
			want: []JSDocTag{
				{Kind: "param", Name: "input", Doc: "the raw text"},
				{Kind: "returns", Doc: "the parsed value"},
				{Kind: "deprecated"},
			},
		},
		{
			name: "tag continuation lines",
			comment: `/**
 * @param x a value that needs
 * more than one line to describe
 */`,
			want: []JSDocTag{
				{Kind: "param", Name: "x", Doc: "a value that needs\nmore than one line to describe"},
			},
		},
		{
			name: "typeparam is named",
			comment: `/**
 * @typeparam T the element type
 */`,
			want: []JSDocTag{
				{Kind: "typeparam", Name: "T", Doc: "the element type"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseJSDoc(tt.comment)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Expected a parsed doc comment, got nil")
			}
			if got.Doc != tt.wantDoc {
				t.Errorf("Doc = %q, want %q", got.Doc, tt.wantDoc)
			}
			if len(got.Tags) != len(tt.want) {
				t.Fatalf("Got %d tags, want %d: %+v", len(got.Tags), len(tt.want), got.Tags)
			}
			for i, tag := range got.Tags {
				if tag != tt.want[i] {
					t.Errorf("Tag %d = %+v, want %+v", i, tag, tt.want[i])
				}
			}
		})
	}
}
