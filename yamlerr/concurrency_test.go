package yamlerr_test

import (
	"errors"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xgx-io/tmplerr"
	"github.com/xgx-io/tmplerr/yamlerr"
)

type counter struct {
	N int `yaml:"n"`
}

func TestUnmarshal_CrossGoroutine(t *testing.T) {
	inputs := []string{"n: many\n", "n: [1, 2\n"}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		var v counter
		raw := yaml.Unmarshal([]byte(in), &v)
		require.Error(t, raw)
		want[i] = "yaml conversion error: " + raw.Error()
	}

	synctest.Test(t, func(t *testing.T) {
		ch := make(chan error, len(inputs))
		go func() {
			for _, in := range inputs {
				var v counter
				ch <- yamlerr.Unmarshal([]byte(in), &v)
			}
			close(ch)
		}()

		type report struct {
			text    string
			kind    tmplerr.Kind
			typeErr bool
		}
		reports := make(chan report, len(inputs))
		go func() {
			for err := range ch {
				var typeErr *yaml.TypeError
				reports <- report{
					text:    err.Error(),
					kind:    tmplerr.KindOf(err),
					typeErr: errors.As(err, &typeErr) && len(typeErr.Errors) == 1,
				}
			}
			close(reports)
		}()

		synctest.Wait()

		var got []report
		for r := range reports {
			got = append(got, r)
		}
		require.Len(t, got, len(inputs))
		for i, r := range got {
			assert.Equal(t, yamlerr.Kind, r.kind)
			assert.Equal(t, want[i], r.text)
		}
		assert.True(t, got[0].typeErr, "type mismatch keeps its *yaml.TypeError")
		assert.False(t, got[1].typeErr, "syntax errors are plain errors")
	})
}
