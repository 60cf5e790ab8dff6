package infer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jopela/urlinfer/internal/domain"
)

func TestParseName(t *testing.T) {
	for _, n := range Names() {
		got, err := ParseName(string(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	got, err := ParseName(" WikiVoyage ")
	require.NoError(t, err)
	assert.Equal(t, NameWikivoyage, got)

	_, err = ParseName("wikidata")
	assert.ErrorIs(t, err, domain.ErrUnknownRule)
}

func TestBuild(t *testing.T) {
	rules, err := Build([]string{"wikivoyage", "dbpedia", "wikipedia-language-expand"}, Deps{
		Lang:     "en",
		Resolver: &fakeResolver{},
	})
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, NameWikivoyage, rules[0].Name())
	assert.Equal(t, NameDbpedia, rules[1].Name())
	assert.Equal(t, NameWikipediaLangExpand, rules[2].Name())
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build([]string{"wikivoyage", "bogus"}, Deps{})
	assert.ErrorIs(t, err, domain.ErrUnknownRule)

	_, err = Build([]string{"wikipedia-language-expand"}, Deps{})
	assert.Error(t, err)
}

func TestBuild_DefaultLanguageFlowsToDbpedia(t *testing.T) {
	rules, err := Build([]string{"dbpedia"}, Deps{Lang: "de"})
	require.NoError(t, err)

	got := Infer(context.Background(), []string{"http://dbpedia.org/resource/Berlin"}, rules)
	assert.Equal(t, []string{"http://de.wikipedia.org/wiki/Berlin"}, got)
}

func TestNeedsResolver(t *testing.T) {
	assert.False(t, NeedsResolver([]string{"wikivoyage", "dbpedia"}))
	assert.True(t, NeedsResolver([]string{"dbpedia", "wikipedia-language-expand"}))
}
