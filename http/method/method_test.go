package method

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkMethod(b *testing.B) {
	var parsed Method

	for i := Unknown; i <= Count; i++ {
		b.Run(i.String(), func(b *testing.B) {
			m := i.String()
			b.SetBytes(int64(len(m)))
			b.ResetTimer()

			for j := 0; j < b.N; j++ {
				parsed = Parse(m)
			}
		})
	}

	keepalive(parsed)
}

func keepalive(Method) {}

func TestMethod(t *testing.T) {
	t.Run("canonical", func(t *testing.T) {
		for _, method := range List {
			assert.Equal(t, method, Parse(method.String()))
		}
	})

	t.Run("any casing", func(t *testing.T) {
		for _, method := range List {
			str := method.String()
			for _, variant := range []string{
				strings.ToLower(str),
				strings.ToUpper(str),
				strings.ToUpper(str[:1]) + strings.ToLower(str[1:]),
				strings.ToLower(str[:1]) + strings.ToUpper(str[1:]),
			} {
				assert.Equal(t, method, Parse(variant), variant)
			}
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, str := range []string{"", "PATCH", "HEAD", "OPTIONS", "GETS", "GE", "DELET", "P0ST"} {
			assert.Equal(t, Unknown, Parse(str), str)
		}
	})

	t.Run("count", func(t *testing.T) {
		require.Equal(t, len(List), int(Count))
		require.Equal(t, "Unknown", Unknown.String())
	})
}
