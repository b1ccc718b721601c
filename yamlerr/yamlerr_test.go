package yamlerr_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xgx-io/tmplerr"
	"github.com/xgx-io/tmplerr/yamlerr"
)

func TestCategoryRegistered(t *testing.T) {
	c, ok := tmplerr.Lookup(yamlerr.Kind)
	require.True(t, ok)
	assert.Same(t, yamlerr.Category, c)
	assert.Equal(t, "yaml conversion error", c.Prefix())

	// only yamlerr is linked into this test binary
	_, ok = tmplerr.Lookup("json")
	assert.False(t, ok)
}

func TestWrap_Text(t *testing.T) {
	e := yamlerr.Wrap(errors.New("mapping values are not allowed in this context"))
	assert.Equal(t, "yaml conversion error: mapping values are not allowed in this context", e.Error())
	assert.Equal(t, yamlerr.Kind, e.Kind())
	assert.Nil(t, e.Cause())
}

func TestUnmarshal_TypeError(t *testing.T) {
	var v struct {
		Count int `yaml:"count"`
	}
	err := yamlerr.Unmarshal([]byte("count: many\n"), &v)
	require.Error(t, err)

	var typeErr *yaml.TypeError
	require.ErrorAs(t, err, &typeErr)
	require.Len(t, typeErr.Errors, 1)
	assert.Contains(t, typeErr.Errors[0], "cannot unmarshal !!str `many` into int")

	assert.Equal(t, "yaml conversion error: "+typeErr.Error(), err.Error())
	assert.True(t, strings.HasPrefix(err.Error(), "yaml conversion error: yaml: unmarshal errors:"))
}

func TestUnmarshal_SyntaxError(t *testing.T) {
	var v map[string]any
	err := yamlerr.Unmarshal([]byte("a: [1, 2\n"), &v)
	require.Error(t, err)

	assert.True(t, yamlerr.Is(err))
	assert.True(t, strings.HasPrefix(err.Error(), "yaml conversion error: yaml: "), err.Error())
}

func TestUnmarshal_Success(t *testing.T) {
	var v struct {
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags"`
	}
	require.NoError(t, yamlerr.Unmarshal([]byte("title: Home\ntags: [a, b]\n"), &v))
	assert.Equal(t, "Home", v.Title)
	assert.Equal(t, []string{"a", "b"}, v.Tags)
}

type failingMarshaler struct{ err error }

func (f failingMarshaler) MarshalYAML() (any, error) { return nil, f.err }

func TestMarshal_MarshalerFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := yamlerr.Marshal(failingMarshaler{err: boom})
	require.Error(t, err)

	assert.Equal(t, "yaml conversion error: boom", err.Error())
	require.ErrorIs(t, err, boom)

	e, ok := tmplerr.AsError(err)
	require.True(t, ok)
	assert.Nil(t, e.Cause(), "payload is boom itself, which wraps nothing")
}

func TestMarshal_Success(t *testing.T) {
	data, err := yamlerr.Marshal(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))
}

func TestFrom_ClassifiesYAMLErrors(t *testing.T) {
	var v int
	raw := yaml.Unmarshal([]byte("nope"), &v)
	require.Error(t, raw)

	e, ok := tmplerr.From(raw)
	require.True(t, ok)
	assert.Equal(t, yamlerr.Kind, e.Kind())
	assert.Same(t, raw, e.Payload())

	_, ok = tmplerr.From(errors.New("no prefix here"))
	assert.False(t, ok)
}

func TestFrom_ClassifiesWrappedSyntaxError(t *testing.T) {
	var v map[string]any
	raw := yaml.Unmarshal([]byte("a: [1, 2\n"), &v)
	require.Error(t, raw)
	wrapped := fmt.Errorf("front matter: %w", raw)

	e, ok := tmplerr.From(wrapped)
	require.True(t, ok)
	assert.Equal(t, yamlerr.Kind, e.Kind())
	assert.Same(t, wrapped, e.Payload())
	assert.Equal(t, "yaml conversion error: front matter: "+raw.Error(), e.Error())
	assert.Equal(t, raw, e.Cause())
}
