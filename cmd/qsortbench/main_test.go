package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestInts(t *testing.T) {
	out, err := execute(t, "", "-n", "2000", "--runs", "1")
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, len(lines), 4)
	assert.That(t, strings.HasPrefix(lines[0], "sorter"))
	assert.That(t, strings.HasPrefix(lines[1], "stdlib"))
	assert.That(t, strings.HasPrefix(lines[2], "pdq"))
	assert.That(t, strings.HasPrefix(lines[3], "qsort"))
}

func TestStrcmp(t *testing.T) {
	out, err := execute(t, "banana\napple\ncherry\n", "--strcmp", "--sorters", "qsort", "--runs", "3")
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, len(lines), 2)
	assert.Equal(t, strings.Fields(lines[1])[:2], []string{"qsort", "3"})
}

func TestPatternsAndSrand(t *testing.T) {
	for _, p := range []string{"sorted", "reversed", "organ", "sawtooth", "few"} {
		_, err := execute(t, "", "-n", "500", "--runs", "1", "--pattern", p, "--srand")
		assert.NoError(t, err)
	}
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "", "extra")
	assert.Error(t, err)

	_, err = execute(t, "", "--pattern", "zigzag")
	assert.Error(t, err)

	_, err = execute(t, "", "--sorters", "bogo")
	assert.Error(t, err)

	_, err = execute(t, "", "-n", "-1")
	assert.Error(t, err)

	_, err = execute(t, "", "-n", "10", "--runs", "0")
	assert.Error(t, err)
}
