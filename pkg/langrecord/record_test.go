package langrecord_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localized/pkg/langrecord"
)

func TestRecord_IsBlank(t *testing.T) {
	t.Parallel()

	require.True(t, langrecord.Record{Key: "en"}.IsBlank())
	require.True(t, langrecord.Record{Key: "en", Value: " \t\n"}.IsBlank())
	require.False(t, langrecord.Record{Key: "en", Value: "A"}.IsBlank())
}

func TestRecords_Lookup(t *testing.T) {
	t.Parallel()

	records := langrecord.Records{{Key: "en", Value: "A"}, {Key: "de", Value: "B"}}

	rec, ok := records.Lookup("de")
	require.True(t, ok)
	require.Equal(t, "B", rec.Value)

	_, ok = records.Lookup("fr")
	require.False(t, ok)
}

func TestRecords_With(t *testing.T) {
	t.Parallel()

	t.Run("replaces existing value without touching the source", func(t *testing.T) {
		t.Parallel()
		records := langrecord.Records{{Key: "en", Value: "A"}, {Key: "de", Value: "B"}}

		got := records.With("de", "C")
		require.Equal(t, langrecord.Records{{Key: "en", Value: "A"}, {Key: "de", Value: "C"}}, got)
		require.Equal(t, "B", records[1].Value)
	})

	t.Run("appends missing language", func(t *testing.T) {
		t.Parallel()
		got := langrecord.Records{{Key: "en", Value: "A"}}.With("fr", "F")
		require.Equal(t, langrecord.Records{{Key: "en", Value: "A"}, {Key: "fr", Value: "F"}}, got)
	})
}

func TestRecords_Map(t *testing.T) {
	t.Parallel()

	got := langrecord.Records{{Key: "en", Value: "A"}, {Key: "de", Value: "B"}}.Map()
	require.Equal(t, map[string]string{"en": "A", "de": "B"}, got)
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	t.Run("orders configured languages first", func(t *testing.T) {
		t.Parallel()
		got := langrecord.FromMap(
			map[string]string{"zz": "Z", "de": "Erde", "en": "Earth", "ar": "أرض"},
			[]string{"en", "de", "fr"},
		)
		require.Equal(t, []string{"en", "de", "ar", "zz"}, got.Languages())
		require.Equal(t, "Earth", got[0].Value)
	})

	t.Run("sorts keys without order", func(t *testing.T) {
		t.Parallel()
		got := langrecord.FromMap(map[string]string{"b": "2", "a": "1"}, nil)
		require.Equal(t, langrecord.Records{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, got)
	})

	t.Run("ignores repeated order entries", func(t *testing.T) {
		t.Parallel()
		got := langrecord.FromMap(map[string]string{"en": "A"}, []string{"en", "en"})
		require.Len(t, got, 1)
	})
}
