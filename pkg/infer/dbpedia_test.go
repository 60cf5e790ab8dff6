package infer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDbpediaToWikipedia_Apply(t *testing.T) {
	tests := []struct {
		name string
		lang string
		in   []string
		want []string
	}{
		{
			name: "empty list",
			lang: "en",
			in:   []string{},
			want: []string{},
		},
		{
			name: "language prefixed resource",
			lang: "en",
			in:   []string{"http://ru.dbpedia.org/resource/Россия"},
			want: []string{"http://ru.wikipedia.org/wiki/Россия"},
		},
		{
			name: "language assigned when missing",
			lang: "en",
			in:   []string{"http://dbpedia.org/resource/Montreal"},
			want: []string{"http://en.wikipedia.org/wiki/Montreal"},
		},
		{
			name: "other default language",
			lang: "fr",
			in:   []string{"http://dbpedia.org/resource/Montreal"},
			want: []string{"http://fr.wikipedia.org/wiki/Montreal"},
		},
		{
			name: "non dbpedia url untouched",
			lang: "en",
			in:   []string{"http://en.wikipedia.org/wiki/S-expression"},
			want: []string{"http://en.wikipedia.org/wiki/S-expression"},
		},
		{
			name: "two label non dbpedia host gets no language",
			lang: "en",
			in:   []string{"http://example.org/resource/X"},
			want: []string{"http://example.org/resource/X"},
		},
		{
			name: "two label non dbpedia host with port and userinfo gets no language",
			lang: "fr",
			in:   []string{"http://user@wikipedia.org:8080/wiki/X"},
			want: []string{"http://user@wikipedia.org:8080/wiki/X"},
		},
		{
			name: "only the resource type segment is replaced",
			lang: "en",
			in:   []string{"http://en.dbpedia.org/resource/resource"},
			want: []string{"http://en.wikipedia.org/wiki/resource"},
		},
		{
			name: "deeper paths keep their tail",
			lang: "en",
			in:   []string{"http://dbpedia.org/page/A/B"},
			want: []string{"http://en.wikipedia.org/wiki/A/B"},
		},
		{
			name: "port is preserved",
			lang: "en",
			in:   []string{"http://dbpedia.org:8890/resource/X"},
			want: []string{"http://en.wikipedia.org:8890/wiki/X"},
		},
		{
			name: "short path passes through unchanged",
			lang: "en",
			in:   []string{"http://dbpedia.org"},
			want: []string{"http://dbpedia.org"},
		},
		{
			name: "malformed url passes through",
			lang: "en",
			in:   []string{"dbpedia"},
			want: []string{"dbpedia"},
		},
		{
			name: "order is preserved",
			lang: "en",
			in:   []string{"http://dbpedia.org/resource/A", "http://en.wikipedia.org/wiki/B", "http://de.dbpedia.org/resource/C"},
			want: []string{"http://en.wikipedia.org/wiki/A", "http://en.wikipedia.org/wiki/B", "http://de.wikipedia.org/wiki/C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewDbpediaToWikipedia(tt.lang)
			assert.Equal(t, tt.want, rule.Apply(context.Background(), tt.in))
		})
	}
}
