package collections_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-types/collections"
)

type user struct {
	ID    int    `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// slug builds itself from the first field of a record.
type slug struct{ Value string }

func (s *slug) UnmarshalRecord(r collections.Record) error {
	v, ok := r.First()
	if !ok {
		return errors.New("empty record")
	}
	s.Value = strings.ToLower(strings.ReplaceAll(v.(string), " ", "-"))
	return nil
}

func TestCreateFromArrayIntegers(t *testing.T) {
	f := collections.NewDefaultFactory()
	c, err := collections.CreateFromArray[int](f, collections.IntCollectionKind, []collections.Record{
		collections.Row(1), collections.Row(2), collections.Row(3),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, c.All())
}

func TestCreateFromArrayCoercesNumericFirstField(t *testing.T) {
	f := collections.NewDefaultFactory()
	c, err := collections.CreateFromArray[int](f, collections.IntCollectionKind, []collections.Record{
		collections.Row("7", "ignored"),
		{{Key: "n", Value: 8.0}, {Key: "label", Value: "eight"}},
		collections.Row("1.0"),
		collections.Row(1.5),
		collections.Row("2.7"),
		collections.Row("1e3"),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 1, 1, 2, 1000}, c.All())
}

func TestCreateFromArrayStrings(t *testing.T) {
	f := collections.NewDefaultFactory()
	seq, err := f.CreateFromArray(collections.StringCollectionKind, []collections.Record{
		collections.Row("a", 1), collections.Row("b"),
	})
	require.NoError(t, err)
	assert.Equal(t, collections.StringKind, seq.Kind())
	assert.Equal(t, "a,b", seq.String())
}

func TestCreateFromArrayNilRecordsGivesEmpty(t *testing.T) {
	f := collections.NewDefaultFactory()
	seq, err := f.CreateFromArray(collections.StringCollectionKind, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Count())
}

func TestCreateFromArrayUnknownKind(t *testing.T) {
	f := collections.NewDefaultFactory()
	_, err := f.CreateFromArray("widgets", []collections.Record{collections.Row(1)})
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	assert.ErrorIs(t, err, collections.ErrKindNotRegistered)
}

func TestCreateFromArrayBadRecordAborts(t *testing.T) {
	f := collections.NewDefaultFactory()

	_, err := f.CreateFromArray(collections.IntCollectionKind, []collections.Record{
		collections.Row(1), collections.Row("one"),
	})
	require.ErrorIs(t, err, collections.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), "int:int")

	_, err = f.CreateFromArray(collections.StringCollectionKind, []collections.Record{
		collections.Row(42),
	})
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)

	_, err = f.CreateFromArray(collections.StringCollectionKind, []collections.Record{{}})
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestCreateFromArrayObjects(t *testing.T) {
	f := collections.NewDefaultFactory()
	require.NoError(t, collections.RegisterKind[user](f, "users"))
	require.NoError(t, collections.RegisterKind[*user](f, "user-refs"))

	records := []collections.Record{
		{{Key: "id", Value: 1}, {Key: "name", Value: "Ann"}, {Key: "email", Value: "ann@example.com"}},
		{{Key: "id", Value: "2"}, {Key: "name", Value: "Bob"}},
	}

	users, err := collections.CreateFromArray[user](f, "users", records)
	require.NoError(t, err)
	assert.Equal(t, []user{
		{ID: 1, Name: "Ann", Email: "ann@example.com"},
		{ID: 2, Name: "Bob"},
	}, users.All())

	refs, err := collections.CreateFromArray[*user](f, "user-refs", records)
	require.NoError(t, err)
	require.Equal(t, 2, refs.Count())
	first, _ := refs.First()
	assert.Equal(t, "Ann", first.Name)
}

func TestCreateFromArrayRecordUnmarshaler(t *testing.T) {
	f := collections.NewFactory()
	require.NoError(t, collections.RegisterKind[slug](f, "slugs"))

	c, err := collections.CreateFromArray[slug](f, "slugs", []collections.Record{
		collections.Row("Hello World"),
	})
	require.NoError(t, err)
	assert.Equal(t, []slug{{Value: "hello-world"}}, c.All())
}

func TestCreateFromArrayTypedMismatch(t *testing.T) {
	f := collections.NewDefaultFactory()
	_, err := collections.CreateFromArray[string](f, collections.IntCollectionKind, nil)
	assert.ErrorIs(t, err, collections.ErrTypeMismatch)
}

func TestRegisterKindRejectsUnbuildableTypes(t *testing.T) {
	f := collections.NewFactory()
	assert.ErrorIs(t, collections.RegisterKind[float64](f, "floats"), collections.ErrInvalidArgument)
	assert.ErrorIs(t, collections.RegisterKind[[]int](f, "lists"), collections.ErrInvalidArgument)
	assert.False(t, f.Has("floats"))
}

func TestRegister(t *testing.T) {
	f := collections.NewFactory()
	assert.ErrorIs(t, f.Register("", collections.Builder[int]("x")), collections.ErrEmptyKindName)
	assert.ErrorIs(t, f.Register("x", nil), collections.ErrNilConstructor)

	require.NoError(t, f.Register("b", collections.Builder[int]("b")))
	require.NoError(t, f.Register("a", collections.Builder[string]("a")))
	assert.Equal(t, []collections.KindName{"a", "b"}, f.Kinds())
	assert.True(t, f.Has("a"))
}

func TestFactoryConcurrentUse(t *testing.T) {
	f := collections.NewDefaultFactory()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.CreateFromArray(collections.IntCollectionKind, []collections.Record{collections.Row(i)})
			assert.NoError(t, err)
			_ = f.Register(collections.KindName("k"), collections.Builder[int]("k"))
		}()
	}
	wg.Wait()
}

func TestParseRecords(t *testing.T) {
	records, err := collections.ParseRecords([]byte(`
- {name: Ann, id: 1, email: ann@example.com}
- [3, "three"]
`))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "name", records[0][0].Key)
	assert.Equal(t, "id", records[0][1].Key)
	first, ok := records[0].First()
	assert.True(t, ok)
	assert.Equal(t, "Ann", first)

	first, _ = records[1].First()
	assert.Equal(t, 3, first)
	assert.Equal(t, "1", records[1][1].Key)
}

func TestParseRecordsJSONIntoFactory(t *testing.T) {
	records, err := collections.ParseRecords([]byte(`[{"id": 5, "name": "Cy"}]`))
	require.NoError(t, err)

	f := collections.NewDefaultFactory()
	require.NoError(t, collections.RegisterKind[user](f, "users"))
	users, err := collections.CreateFromArray[user](f, "users", records)
	require.NoError(t, err)
	assert.Equal(t, []user{{ID: 5, Name: "Cy"}}, users.All())
}

func TestParseRecordsInvalid(t *testing.T) {
	_, err := collections.ParseRecords([]byte(`{a: 1}`))
	assert.ErrorIs(t, err, collections.ErrInvalidRecord)

	_, err = collections.ParseRecords([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, collections.ErrInvalidRecord)

	_, err = collections.ParseRecords([]byte("- [1\n"))
	assert.ErrorIs(t, err, collections.ErrInvalidRecord)

	records, err := collections.ParseRecords(nil)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordMap(t *testing.T) {
	r := collections.Record{{Key: "a", Value: 1}, {Key: "a", Value: 2}, {Key: "b", Value: 3}}
	assert.Equal(t, map[string]any{"a": 2, "b": 3}, r.Map())

	_, ok := collections.Record{}.First()
	assert.False(t, ok)
}
