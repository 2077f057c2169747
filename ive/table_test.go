package ive

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/robert-malhotra/go-dv/dv"
)

func newObservedTable(t *testing.T) (*Table, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	table := NewTable(WithLogger(zap.New(core)))
	t.Cleanup(func() { _ = table.CloseAll() })
	return table, logs
}

func testHeader() dv.Header {
	h := dv.NewHeader()
	h.NX, h.NY, h.NZ = 8, 4, 6
	h.NumWaves, h.NumTimes = 2, 3
	h.Mode = dv.Short
	return h
}

func frame(v int16) []byte {
	buf := make([]byte, 8*4*2)
	for i := 0; i < 8*4; i++ {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
	}
	return buf
}

// createVolume writes a 6-section test volume through stream 1 and closes it.
func createVolume(t *testing.T, table *Table, path string) {
	t.Helper()
	require.Equal(t, 0, table.Open(1, path, ModeNew))
	require.NoError(t, table.PutHeader(1, testHeader()))
	for i := 0; i < 6; i++ {
		require.NoError(t, table.WriteSection(1, frame(int16(i))))
	}
	require.NoError(t, table.Close(1))
}

func TestOpenModes(t *testing.T) {
	table, logs := newObservedTable(t)
	path := filepath.Join(t.TempDir(), "modes.dv")

	assert.Equal(t, 1, table.Open(1, path, ModeReadOnly), "file does not exist yet")
	assert.Equal(t, 1, table.Open(1, path, "rw"))
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 2, logs.FilterMessage("open failed").Len())

	createVolume(t, table, path)

	assert.Equal(t, 0, table.Open(2, path, ModeReadOnly))
	assert.Equal(t, 1, table.Len())

	h, err := table.Header(2)
	require.NoError(t, err)
	assert.Equal(t, testHeader(), h)
}

func TestOpenReusesStream(t *testing.T) {
	table, logs := newObservedTable(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.dv")
	second := filepath.Join(dir, "second.dv")
	createVolume(t, table, first)
	createVolume(t, table, second)

	require.Equal(t, 0, table.Open(5, first, ModeReadOnly))
	prev, err := table.File(5)
	require.NoError(t, err)

	require.Equal(t, 0, table.Open(5, second, ModeReadOnly))
	assert.True(t, prev.IsClosed(), "previous file is closed on reuse")
	assert.Equal(t, 1, table.Len())

	cur, err := table.File(5)
	require.NoError(t, err)
	assert.Equal(t, second, cur.Path())

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessageSnippet("reusing stream").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(5), warnings[0].ContextMap()["stream"])
}

func TestUnknownStream(t *testing.T) {
	table, _ := newObservedTable(t)

	_, err := table.Header(9)
	assert.ErrorIs(t, err, ErrStreamNotFound)
	_, err = table.ReadHeaderSummary(9)
	assert.ErrorIs(t, err, ErrStreamNotFound)
	assert.ErrorIs(t, table.Close(9), ErrStreamNotFound)
	assert.ErrorIs(t, table.ReadSection(9, nil), ErrStreamNotFound)
	assert.ErrorIs(t, table.WriteSection(9, nil), ErrStreamNotFound)
	assert.ErrorIs(t, table.PutHeader(9, dv.Header{}), ErrStreamNotFound)
	assert.ErrorIs(t, table.WriteHeader(9, "x", TitleReplace, 0, 0, 0), ErrStreamNotFound)
	assert.Equal(t, 1, table.Position(9, 0, 0, 0))
}

func TestPositionAndRead(t *testing.T) {
	table, logs := newObservedTable(t)
	path := filepath.Join(t.TempDir(), "read.dv")
	createVolume(t, table, path)

	require.Equal(t, 0, table.Open(3, path, ModeReadOnly))

	buf := make([]byte, 8*4*2)
	require.Equal(t, 0, table.Position(3, 0, 1, 2))
	require.NoError(t, table.ReadSection(3, buf))
	assert.Equal(t, frame(5), buf)

	require.Equal(t, 0, table.Position(3, 0, 0, 1))
	require.NoError(t, table.ReadSection(3, buf))
	assert.Equal(t, frame(2), buf)
	require.NoError(t, table.ReadSection(3, buf), "read advances to the next section")
	assert.Equal(t, frame(3), buf)

	assert.Equal(t, 1, table.Position(3, 1, 0, 0))
	assert.Equal(t, 1, table.Position(3, 0, 2, 0))
	assert.Equal(t, 1, table.Position(3, 0, 0, 3))
	assert.Equal(t, 3, logs.FilterMessage("position failed").Len())
}

func TestReadHeaderSummary(t *testing.T) {
	table, _ := newObservedTable(t)
	path := filepath.Join(t.TempDir(), "summary.dv")
	createVolume(t, table, path)

	require.Equal(t, 0, table.Open(1, path, ModeReadOnly))
	require.NoError(t, table.WriteHeader(1, "", TitleReplace, 1, 5, 2.5))

	s, err := table.ReadHeaderSummary(1)
	require.NoError(t, err)
	assert.Equal(t, [3]int32{8, 4, 6}, s.IXYZ)
	assert.Equal(t, dv.Short, s.Mode)
	assert.Equal(t, float32(1), s.Min)
	assert.Equal(t, float32(5), s.Max)
	assert.Equal(t, float32(2.5), s.Mean)
}

func TestWriteHeaderTitles(t *testing.T) {
	table, _ := newObservedTable(t)
	path := filepath.Join(t.TempDir(), "titles.dv")
	createVolume(t, table, path)

	require.Equal(t, 0, table.Open(1, path, ModeReadOnly))

	require.NoError(t, table.WriteHeader(1, "abc", TitleReplace, 0, 5, 2.5))
	h, err := table.Header(1)
	require.NoError(t, err)
	want := make([]byte, dv.TitleWidth)
	copy(want, "abc")
	assert.Equal(t, want, h.Label[:dv.TitleWidth])
	assert.Equal(t, "abc", h.Title())

	require.NoError(t, table.WriteHeader(1, "xyz", TitleAppend, 0, 5, 2.5))
	h, err = table.Header(1)
	require.NoError(t, err)
	assert.Equal(t, "xyz abc", h.Title())
	assert.True(t, strings.HasPrefix(string(h.Label[:]), "xyz abc\x00"))

	// Persisted, not just cached.
	require.NoError(t, table.Close(1))
	require.Equal(t, 0, table.Open(1, path, ModeReadOnly))
	h, err = table.Header(1)
	require.NoError(t, err)
	assert.Equal(t, "xyz abc", h.Title())
	assert.Equal(t, float32(2.5), h.AMean)
}

func TestWriteHeaderTitleWidth(t *testing.T) {
	table, _ := newObservedTable(t)
	path := filepath.Join(t.TempDir(), "width.dv")
	createVolume(t, table, path)
	require.Equal(t, 0, table.Open(1, path, ModeReadOnly))

	// Bytes past the first title slot survive a replace.
	h := testHeader()
	copy(h.Label[dv.TitleWidth:], "second")
	require.NoError(t, table.PutHeader(1, h))

	long := strings.Repeat("L", 100)
	require.NoError(t, table.WriteHeader(1, long, TitleReplace, 0, 0, 0))
	h, err := table.Header(1)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("L", dv.TitleWidth), string(h.Label[:dv.TitleWidth]))
	assert.Equal(t, "second", string(h.Label[dv.TitleWidth:dv.TitleWidth+6]))

	// Append is cut to one title width as well.
	require.NoError(t, table.WriteHeader(1, "new", TitleAppend, 0, 0, 0))
	h, err = table.Header(1)
	require.NoError(t, err)
	assert.Equal(t, "new "+strings.Repeat("L", dv.TitleWidth-4), string(h.Label[:dv.TitleWidth]))
}

func TestWriteHeaderInvalidFlag(t *testing.T) {
	table, _ := newObservedTable(t)
	path := filepath.Join(t.TempDir(), "flag.dv")
	createVolume(t, table, path)
	require.Equal(t, 0, table.Open(1, path, ModeReadOnly))

	before, err := table.Header(1)
	require.NoError(t, err)

	err = table.WriteHeader(1, "abc", 2, 1, 2, 3)
	assert.ErrorIs(t, err, dv.ErrInvalidArgument)

	after, err := table.Header(1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUnimplementedCallsWarn(t *testing.T) {
	table, logs := newObservedTable(t)

	table.SetConversion(1, 0)
	table.SetPrint(0)
	assert.Zero(t, logs.Len(), "disabling an unsupported feature is silent")

	table.SetConversion(1, 1)
	table.SetLabels(1, "title", 1)
	table.SetPrint(1)
	ival := []int32{7}
	rval := []float32{7}
	table.ExtendedHeaderValues(1, 0, 0, 0, ival, rval)

	entries := logs.All()
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.Equal(t, zapcore.WarnLevel, e.Level)
		assert.Contains(t, e.Message, "not implemented")
	}
	assert.Equal(t, []int32{7}, ival)
	assert.Equal(t, []float32{7}, rval)
}

func TestReadSectionOnClosedFile(t *testing.T) {
	table, logs := newObservedTable(t)
	path := filepath.Join(t.TempDir(), "closed.dv")
	createVolume(t, table, path)

	require.Equal(t, 0, table.Open(1, path, ModeReadOnly))
	f, err := table.File(1)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.ErrorIs(t, table.ReadSection(1, make([]byte, 64)), dv.ErrClosed)
	assert.ErrorIs(t, table.WriteSection(1, make([]byte, 64)), dv.ErrClosed)
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestContext(t *testing.T) {
	assert.Same(t, Default, FromContext(context.Background()))

	table := NewTable()
	ctx := NewContext(context.Background(), table)
	assert.Same(t, table, FromContext(ctx))
}

func TestCloseAll(t *testing.T) {
	table, _ := newObservedTable(t)
	path := filepath.Join(t.TempDir(), "all.dv")
	createVolume(t, table, path)

	require.Equal(t, 0, table.Open(1, path, ModeReadOnly))
	require.Equal(t, 0, table.Open(2, filepath.Join(t.TempDir(), "other.dv"), ModeNew))
	f1, _ := table.File(1)
	f2, _ := table.File(2)

	require.NoError(t, table.CloseAll())
	assert.Zero(t, table.Len())
	assert.True(t, f1.IsClosed())
	assert.True(t, f2.IsClosed())
}

func TestSectionIOWithBadExtents(t *testing.T) {
	table, logs := newObservedTable(t)
	path := filepath.Join(t.TempDir(), "extent.dv")

	require.Equal(t, 0, table.Open(1, path, ModeNew))
	h := testHeader()
	h.NX = -8
	require.NoError(t, table.PutHeader(1, h))

	buf := make([]byte, 64)
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, table.WriteSection(1, buf), dv.ErrInvalidArgument)
		assert.ErrorIs(t, table.ReadSection(1, buf), dv.ErrInvalidArgument)
		assert.Equal(t, 1, table.Position(1, 0, 0, 0))
	})
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
