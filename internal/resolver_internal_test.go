package internal

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localized/pkg/langrecord"
)

func TestPick(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		records  langrecord.Records
		language string
		want     string
	}{
		{
			name:     "exact match preferred over default",
			records:  langrecord.Records{{Key: "en", Value: "A"}, {Key: "zz", Value: "B"}},
			language: "zz",
			want:     "B",
		},
		{
			name:     "default language when requested is default",
			records:  langrecord.Records{{Key: "en", Value: "A"}, {Key: "zz", Value: "B"}},
			language: "en",
			want:     "A",
		},
		{
			name:     "default language when requested is absent",
			records:  langrecord.Records{{Key: "en", Value: "A"}},
			language: "fr",
			want:     "A",
		},
		{
			name:     "first record when neither requested nor default present",
			records:  langrecord.Records{{Key: "zz", Value: "B"}, {Key: "qq", Value: "C"}},
			language: "xx",
			want:     "B",
		},
		{
			name:     "blank exact match falls back to default",
			records:  langrecord.Records{{Key: "zz", Value: ""}, {Key: "en", Value: "A"}},
			language: "zz",
			want:     "A",
		},
		{
			name:     "whitespace exact match falls back to default",
			records:  langrecord.Records{{Key: "zz", Value: "  "}, {Key: "en", Value: "A"}},
			language: "zz",
			want:     "A",
		},
		{
			name:     "blank default is still used",
			records:  langrecord.Records{{Key: "zz", Value: "B"}, {Key: "en", Value: ""}},
			language: "fr",
			want:     "",
		},
		{
			name:     "blank exact match and no default falls to first",
			records:  langrecord.Records{{Key: "qq", Value: "Q"}, {Key: "zz", Value: ""}},
			language: "zz",
			want:     "Q",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, err := pick(tt.records, tt.language, "en")
			require.NoError(t, err)
			require.Equal(t, tt.want, rec.Value)
		})
	}

	t.Run("empty record-set", func(t *testing.T) {
		t.Parallel()
		_, err := pick(langrecord.Records{}, "en", "en")
		require.ErrorIs(t, err, ErrNoLocalizedValues)
	})

	t.Run("duplicate requested language", func(t *testing.T) {
		t.Parallel()
		_, err := pick(langrecord.Records{{Key: "zz", Value: "B"}, {Key: "zz", Value: "C"}}, "zz", "en")
		require.ErrorIs(t, err, ErrDuplicateLanguage)
	})

	t.Run("duplicate blank requested language is ignored", func(t *testing.T) {
		t.Parallel()
		rec, err := pick(langrecord.Records{{Key: "zz", Value: ""}, {Key: "zz", Value: "C"}}, "zz", "en")
		require.NoError(t, err)
		require.Equal(t, "C", rec.Value)
	})

	t.Run("duplicate default language", func(t *testing.T) {
		t.Parallel()
		_, err := pick(langrecord.Records{{Key: "en", Value: "A"}, {Key: "en", Value: "B"}}, "fr", "en")
		require.ErrorIs(t, err, ErrDuplicateLanguage)
	})
}

func TestDepth_child(t *testing.T) {
	t.Parallel()

	require.Equal(t, Shallow, OneLevel.child())
	require.Equal(t, Deep, Deep.child())
	require.Equal(t, "one_level", OneLevel.String())
	require.Equal(t, "unknown", Depth(42).String())
}

type schemaBase struct {
	Slug string `localized:"true"`
}

type schemaChild struct {
	Name string `localized:"true"`
}

type schemaSubject struct {
	schemaBase
	Title    string `localized:"true"`
	Skipped  string `localized:"false"`
	Ignored  string `localized:"-"`
	Plain    string
	hidden   string `localized:"true"`
	Child    *schemaChild
	Value    schemaChild
	Any      any
	Children []*schemaChild
	ByKey    map[string]*schemaChild
	Tags     []string
	Count    int
	Payload  []byte
}

func TestBuildSchema(t *testing.T) {
	t.Parallel()

	s := newRegistry(DefaultTagName).schemaOf(reflect.TypeFor[schemaSubject]())

	names := func(slots []slot) []string {
		out := make([]string, 0, len(slots))
		for _, sl := range slots {
			out = append(out, sl.name)
		}
		return out
	}

	require.Equal(t, []string{"Slug", "Title"}, names(s.fields))
	require.Equal(t, []string{"Child", "Value", "Any"}, names(s.singles))
	require.Equal(t, []string{"Children", "ByKey"}, names(s.collections))

	t.Run("caches per type", func(t *testing.T) {
		t.Parallel()
		r := newRegistry(DefaultTagName)
		typ := reflect.TypeFor[schemaSubject]()
		require.Same(t, r.schemaOf(typ), r.schemaOf(typ))
	})

	t.Run("honors custom tag", func(t *testing.T) {
		t.Parallel()
		type custom struct {
			Name  string `i18n:"true"`
			Title string `localized:"true"`
		}
		s := newRegistry("i18n").schemaOf(reflect.TypeFor[custom]())
		require.Equal(t, []string{"Name"}, names(s.fields))
	})

	t.Run("drops slots that cannot hold localized data", func(t *testing.T) {
		t.Parallel()
		s := newRegistry(DefaultTagName).schemaOf(reflect.TypeFor[reachHolder]())
		require.Equal(t, []string{"Wrapped", "Ring", "Contract", "Any"}, names(s.singles))
		require.Equal(t, []string{"Wrappers"}, names(s.collections))
	})
}

type plainConn struct {
	Addr    string
	Session *plainSession
}

type plainSession struct {
	ID   string
	Conn *plainConn
}

type wrapper struct {
	Inner *wrapper
	Leaf  *schemaChild
}

type ring struct {
	Next *ring
	Back *wrapper
}

type contractOnly struct{}

func (*contractOnly) LocalizedFields() []Field { return nil }

type reachHolder struct {
	Conn     *plainConn
	Session  plainSession
	Wrapped  *wrapper
	Ring     *ring
	Contract *contractOnly
	Any      any
	Conns    []*plainConn
	Wrappers map[string]wrapper
	Opaque   struct{ Count int }
}

func TestRegistry_canReach(t *testing.T) {
	t.Parallel()

	r := newRegistry(DefaultTagName)

	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"marked field", reflect.TypeFor[schemaChild](), true},
		{"pointer to marked", reflect.TypeFor[*schemaChild](), true},
		{"promoted marked field", reflect.TypeFor[schemaSubject](), true},
		{"contract implementation", reflect.TypeFor[contractOnly](), true},
		{"recursive type reaching a leaf", reflect.TypeFor[wrapper](), true},
		{"through another recursive type", reflect.TypeFor[ring](), true},
		{"mutual back-pointers", reflect.TypeFor[plainConn](), false},
		{"other side of the cycle", reflect.TypeFor[plainSession](), false},
		{"scalar", reflect.TypeFor[int](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, r.canReach(tt.typ))
		})
	}
}
