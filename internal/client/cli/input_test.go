package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsAndPrompts(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  Ada Lovelace  \n"))

	got, err := GetSimpleText(r, "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got)
	assert.Contains(t, out.String(), "Name")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Name", &out)
	require.Error(t, err)
}

func TestGetOptionalText_EnterKeepsCurrent(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))

	got, err := GetOptionalText(r, "Email", "keep@example.com", &out)
	require.NoError(t, err)
	assert.Equal(t, "keep@example.com", got)
	assert.Contains(t, out.String(), "[keep@example.com]")
}

func TestGetOptionalText_NewValueWins(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("new@example.com\n"))

	got, err := GetOptionalText(r, "Email", "old@example.com", &out)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got)
}
