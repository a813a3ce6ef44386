package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadsmith/leadsmith/internal/batch"
	"github.com/leadsmith/leadsmith/internal/lead"
)

func TestRender(t *testing.T) {
	got := Render([]Entry{
		{Name: "Henry", Message: "Hey Henry"},
		{Name: " ", Message: "Hey there"},
	})
	want := "--- Message for Henry ---\n\nHey Henry\n\n" +
		"\n" +
		"--- Message for there ---\n\nHey there\n\n"
	assert.Equal(t, want, got)
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, nil), ErrNothingToExport)
	assert.Zero(t, buf.Len())
}

func TestFileName(t *testing.T) {
	day := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "batch-messages-2024-03-07.txt", FileName(day))
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	day := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

	path, err := Save(dir, day, []Entry{{Name: "Ava", Message: "Hey Ava"}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "batch-messages-2024-01-02.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "--- Message for Ava ---\n\nHey Ava\n\n", string(data))
}

func TestFromResultSkipsFailures(t *testing.T) {
	res := &batch.Result{Items: []batch.Item{
		{Lead: lead.Lead{Name: "Henry"}, Message: "Hey Henry"},
		{Lead: lead.Lead{Name: "Ava"}, Err: errors.New("boom")},
		{Lead: lead.Lead{}, Message: "Hey there"},
	}}
	got := FromResult(res)
	assert.Equal(t, []Entry{{Name: "Henry", Message: "Hey Henry"}, {Name: "there", Message: "Hey there"}}, got)
	assert.Nil(t, FromResult(nil))
}

func TestCopyAll(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard on this system")
	}
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { clipboardWrite = orig })

	require.NoError(t, CopyAll([]Entry{{Name: "Wei", Message: "Hey Wei"}}))
	assert.Equal(t, "--- Message for Wei ---\n\nHey Wei\n\n", copied)
	assert.ErrorIs(t, CopyAll(nil), ErrNothingToExport)
}
