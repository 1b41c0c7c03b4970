package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/tinylog/core"
)

func withDefault(t *testing.T, d *Dispatcher) {
	t.Helper()
	prev := Default()
	SetDefault(d)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestDefault_StartsUninitialized(t *testing.T) {
	withDefault(t, New())

	assert.False(t, Default().Initialized())
	_, err := AddStreamHandler(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestDefault_PackageFunctions(t *testing.T) {
	withDefault(t, NewBuilder().WithClock(core.FixedClock(testTime)).Build())

	Init(DebugLevel)

	var buf bytes.Buffer
	h, err := AddStreamHandler(&buf)
	require.NoError(t, err)

	var got []string
	cb, err := AddCallbackHandler(func(msg string, _ any) { got = append(got, msg) }, nil)
	require.NoError(t, err)

	Debugf("d=%d", 1)
	Infof("i=%d", 2)
	Logf(InfoLevel, "l=%d", 3)

	assert.Equal(t, testStamp+": d=1\n"+testStamp+": i=2\n"+testStamp+": l=3\n", buf.String())
	assert.Equal(t, []string{testStamp + ": d=1", testStamp + ": i=2", testStamp + ": l=3"}, got)

	require.NoError(t, Remove(h))
	assert.Len(t, Default().Handlers(), 1)

	require.NoError(t, Reset())
	assert.Empty(t, Default().Handlers())
	assert.NoError(t, Remove(cb))
}

func TestDefault_FileHandlers(t *testing.T) {
	withDefault(t, New())
	Init(InfoLevel)
	dir := t.TempDir()

	_, err := AddFileHandler(dir+"/plain.log", true)
	require.NoError(t, err)
	_, err = AddRotatingFileHandler(dir+"/rot.log", 1024, 1)
	require.NoError(t, err)

	Infof("to both")
	assert.Len(t, Default().Handlers(), 2)
	require.NoError(t, Reset())
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	d := New()
	withDefault(t, d)

	SetDefault(nil)
	assert.Same(t, d, Default())
}
