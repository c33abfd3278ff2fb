package bridge

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/mona/pkg/mona"
	"github.com/ib-77/mona/pkg/mona/either"
	"github.com/ib-77/mona/pkg/mona/option"
	"github.com/ib-77/mona/pkg/mona/try"
)

type upstream struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type serviceConfig struct {
	Name     string                            `mapstructure:"name"`
	Port     option.Option[int]                `mapstructure:"port"`
	Timeout  option.Option[time.Duration]      `mapstructure:"timeout"`
	Proxy    option.Option[string]             `mapstructure:"proxy"`
	Tags     option.Option[[]string]           `mapstructure:"tags"`
	Upstream option.Option[upstream]           `mapstructure:"upstream"`
	Mode     either.Either[string, int]        `mapstructure:"mode"`
	Warmup   try.Try[string, int]              `mapstructure:"warmup"`
	Nested   option.Option[option.Option[int]] `mapstructure:"nested"`
}

const serviceYAML = `
name: api
port: 8080
timeout: 5s
tags: [a, b]
upstream:
  host: db.local
  port: 5432
mode:
  right: 3
warmup:
  left: cold
nested: 7
`

func readConfig(t *testing.T, doc string) (serviceConfig, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(doc)))

	var cfg serviceConfig
	err := v.Unmarshal(&cfg, viper.DecodeHook(DecodeHook()))
	return cfg, err
}

func TestDecodeHook_Viper(t *testing.T) {
	t.Parallel()
	cfg, err := readConfig(t, serviceYAML)
	require.NoError(t, err)

	assert.Equal(t, "api", cfg.Name)
	assert.Equal(t, 8080, cfg.Port.Value())
	assert.Equal(t, 5*time.Second, cfg.Timeout.Value())
	assert.True(t, cfg.Proxy.IsNone(), "missing key is None")
	assert.Equal(t, []string{"a", "b"}, cfg.Tags.Value())
	assert.Equal(t, upstream{Host: "db.local", Port: 5432}, cfg.Upstream.Value())
	assert.Equal(t, 3, cfg.Mode.Right())
	e, ok := cfg.Warmup.GetErr()
	assert.True(t, ok)
	assert.Equal(t, "cold", e)
	assert.Equal(t, 7, cfg.Nested.Value().Value())
}

func TestDecodeHook_MissingContainersStayEmpty(t *testing.T) {
	t.Parallel()
	cfg, err := readConfig(t, "name: bare\n")
	require.NoError(t, err)

	assert.True(t, cfg.Port.IsNone())
	assert.True(t, cfg.Mode.IsBottom())
	assert.False(t, cfg.Warmup.IsAttempted())
}

func TestDecodeHook_BadEitherShape(t *testing.T) {
	t.Parallel()
	_, err := readConfig(t, "mode:\n  left: a\n  right: 1\n")
	assert.ErrorContains(t, err, "bridge: decode")
}

func TestDecodeHook_TypeMismatch(t *testing.T) {
	t.Parallel()
	_, err := readConfig(t, "upstream: [1, 2]\n")
	assert.Error(t, err)
}

func TestDecodeHook_Mapstructure(t *testing.T) {
	t.Parallel()
	var cfg serviceConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: DecodeHook(),
		Result:     &cfg,
	})
	require.NoError(t, err)

	require.NoError(t, dec.Decode(map[string]any{
		"name": "direct",
		"port": 9000,
		"mode": map[string]any{"left": "off"},
	}))
	assert.Equal(t, 9000, cfg.Port.Value())
	assert.Equal(t, "off", cfg.Mode.Left())
}

func TestElemType(t *testing.T) {
	t.Parallel()
	elem, ok := ElemType(reflect.TypeFor[option.Option[time.Duration]]())
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[time.Duration](), elem)

	elem, ok = ElemType(reflect.TypeFor[try.Try[error, []int]]())
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[[]int](), elem)

	_, ok = ElemType(reflect.TypeFor[int]())
	assert.False(t, ok)
}

func TestSideTypes(t *testing.T) {
	t.Parallel()
	left, right, ok := SideTypes(reflect.TypeFor[either.Either[error, string]]())
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[error](), left)
	assert.Equal(t, reflect.TypeFor[string](), right)

	_, _, ok = SideTypes(reflect.TypeFor[option.Option[int]]())
	assert.False(t, ok)
}

func TestElemType_PointerToContainer(t *testing.T) {
	t.Parallel()
	elem, ok := ElemType(reflect.TypeFor[*option.Option[int]]())
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[int](), elem)

	left, right, ok := SideTypes(reflect.TypeFor[**either.Either[string, bool]]())
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[string](), left)
	assert.Equal(t, reflect.TypeFor[bool](), right)
}

func TestElemType_InterfaceTypes(t *testing.T) {
	t.Parallel()
	for _, typ := range []reflect.Type{
		reflect.TypeFor[mona.Optional](),
		reflect.TypeFor[mona.Sided](),
		reflect.TypeFor[*mona.Optional](),
		reflect.TypeFor[any](),
		nil,
	} {
		_, ok := ElemType(typ)
		assert.False(t, ok, "%v", typ)
		_, _, ok = SideTypes(typ)
		assert.False(t, ok, "%v", typ)
	}
}
