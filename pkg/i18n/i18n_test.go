package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle() Bundle {
	return Bundle{
		"en": {
			"greeting": "Hello, %s",
			"close":    "Close",
		},
		"de": {
			"greeting": "Hallo, %s",
		},
	}
}

func TestT_CurrentLocale(t *testing.T) {
	p := New(testBundle(), "de", "en")
	assert.Equal(t, "Hallo, Ada", p.T("greeting", "Ada"))
}

func TestT_FallbackLocale(t *testing.T) {
	p := New(testBundle(), "de", "en")
	// "close" only exists in the fallback locale.
	assert.Equal(t, "Close", p.T("close"))
}

func TestT_MissingKeyEchoesKey(t *testing.T) {
	p := New(testBundle(), "en", "en")
	assert.Equal(t, "does.not.exist", p.T("does.not.exist"))
}

func TestSetLocale_SwitchesLookup(t *testing.T) {
	p := New(testBundle(), "en", "en")
	assert.Equal(t, "Hello, Ada", p.T("greeting", "Ada"))

	p.SetLocale("de")
	assert.Equal(t, "de", p.Locale())
	assert.Equal(t, "Hallo, Ada", p.T("greeting", "Ada"))
}

func TestLoad_YAML(t *testing.T) {
	src := `
en:
  title: "Graph"
fr:
  title: "Graphe"
`
	p, err := Load(strings.NewReader(src), "fr", "en")
	require.NoError(t, err)

	assert.Equal(t, "Graphe", p.T("title"))
	assert.ElementsMatch(t, []string{"en", "fr"}, p.Locales())
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("en: [not a map"), "en", "en")
	assert.Error(t, err)
}

func TestMerge_OverwritesAndAdds(t *testing.T) {
	p := New(testBundle(), "en", "en")
	p.Merge(Bundle{
		"en": {"close": "Dismiss"},
		"es": {"close": "Cerrar"},
	})

	assert.Equal(t, "Dismiss", p.T("close"))
	p.SetLocale("es")
	assert.Equal(t, "Cerrar", p.T("close"))
}

func TestNew_NilBundle(t *testing.T) {
	p := New(nil, "en", "en")
	assert.Equal(t, "anything", p.T("anything"))
}
