package localized_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localized"
)

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("writes encoded records", func(t *testing.T) {
		t.Parallel()
		p := &planet{}
		got, err := localized.Set(p, planetName,
			localized.Record{Key: "en", Value: "Earth"},
			localized.Record{Key: "ar", Value: "أرض"},
		)
		require.NoError(t, err)
		require.Same(t, p, got)
		assert.JSONEq(t, `[{"k":"en","v":"Earth"},{"k":"ar","v":"أرض"}]`, p.Name)
	})

	t.Run("rejects nil item", func(t *testing.T) {
		t.Parallel()
		_, err := localized.Set[*planet](nil, planetName, localized.Record{Key: "en", Value: "Earth"})
		require.ErrorIs(t, err, localized.ErrNotAddressable)
	})

	t.Run("rejects foreign selector", func(t *testing.T) {
		t.Parallel()
		other := &planet{}
		_, err := localized.Set(&planet{}, func(*planet) *string { return &other.Name })
		require.ErrorIs(t, err, localized.ErrInvalidSelector)
		assert.Empty(t, other.Name)
	})
}

func TestSetMap(t *testing.T) {
	t.Parallel()

	l := newLocalizer()
	p := &planet{}

	_, err := localized.SetMap(l, p, planetName, map[string]string{
		"zz": "Zed",
		"de": "Erde",
		"en": "Earth",
	})
	require.NoError(t, err)
	assert.Equal(t, `[{"k":"en","v":"Earth"},{"k":"de","v":"Erde"},{"k":"zz","v":"Zed"}]`, p.Name)
}

func TestSetLanguage(t *testing.T) {
	t.Parallel()

	l := newLocalizer()

	t.Run("replaces one language", func(t *testing.T) {
		t.Parallel()
		p := &planet{Name: `[{"k":"en","v":"Earth"},{"k":"de","v":""}]`}

		_, err := localized.SetLanguage(l, p, planetName, "de", "Erde")
		require.NoError(t, err)
		assert.Equal(t, `[{"k":"en","v":"Earth"},{"k":"de","v":"Erde"}]`, p.Name)
	})

	t.Run("lifts legacy value into default language", func(t *testing.T) {
		t.Parallel()
		p := &planet{Name: "Earth"}

		_, err := localized.SetLanguage(l, p, planetName, "ar", "أرض")
		require.NoError(t, err)
		assert.Equal(t, `[{"k":"en","v":"Earth"},{"k":"ar","v":"أرض"}]`, p.Name)
	})

	t.Run("starts empty field", func(t *testing.T) {
		t.Parallel()
		p := &planet{}

		_, err := localized.SetLanguage(l, p, planetName, "de", "Erde")
		require.NoError(t, err)
		assert.Equal(t, `[{"k":"de","v":"Erde"}]`, p.Name)
	})
}

func TestInitField(t *testing.T) {
	t.Parallel()

	l := newLocalizer()
	p := &planet{}

	_, err := localized.InitField(l, p, planetName)
	require.NoError(t, err)
	assert.Equal(t, `[{"k":"en","v":""},{"k":"ar","v":""},{"k":"de","v":""}]`, p.Name)

	_, err = localized.Localize(l, p, "ar", localized.Shallow)
	require.NoError(t, err)
	assert.Empty(t, p.Name)
}
