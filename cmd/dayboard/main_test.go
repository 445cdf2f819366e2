package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/planner"
)

type cli struct {
	t    *testing.T
	args []string
}

func newCLI(t *testing.T, backend string) *cli {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	data := filepath.Join(dir, "board.db")
	if backend == "file" {
		data = filepath.Join(dir, "board")
	}
	return &cli{t: t, args: []string{
		"--backend", backend,
		"--data", data,
		"--log", filepath.Join(dir, "dayboard.log"),
	}}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(append([]string{}, args...), c.args...))
	err := cmd.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "dayboard %v", args)
	return out
}

func (c *cli) addedID(out string) string {
	c.t.Helper()
	fields := strings.Fields(out)
	require.GreaterOrEqual(c.t, len(fields), 2)
	require.Equal(c.t, "added", fields[0])
	return fields[1]
}

func (c *cli) export() []model.Task {
	c.t.Helper()
	var tasks []model.Task
	require.NoError(c.t, json.Unmarshal([]byte(c.mustRun("export")), &tasks))
	return tasks
}

func TestAddListMoveBumpRemove(t *testing.T) {
	for _, backend := range []string{"sqlite", "file"} {
		t.Run(backend, func(t *testing.T) {
			c := newCLI(t, backend)
			today := model.Today(time.Now())

			id := c.addedID(c.mustRun("add", "Essay", "write the intro"))
			other := c.addedID(c.mustRun("add", "Lab", "methods", "--date", "2024-01-31"))

			out := c.mustRun("list")
			assert.Contains(t, out, "To Do (1)")
			assert.Contains(t, out, "Essay: write the intro")
			assert.NotContains(t, out, "Lab")

			c.mustRun("move", id, "progress")
			tasks := c.export()
			require.Len(t, tasks, 2)
			assert.Equal(t, model.StatusProgress, tasks[0].Status)
			assert.Equal(t, today, tasks[0].Date)

			out = c.mustRun("bump", other)
			assert.Contains(t, out, "2024-02-01")
			out = c.mustRun("list", "--date", "2024-02-01")
			assert.Contains(t, out, "Lab: methods")

			c.mustRun("rm", id)
			tasks = c.export()
			require.Len(t, tasks, 1)
			assert.Equal(t, other, tasks[0].ID)
		})
	}
}

func TestAddWithSubject(t *testing.T) {
	c := newCLI(t, "file")
	c.mustRun("add", "Waves", "chapter 5", "--subject", "Physics", "--date", "2026-01-01")

	out := c.mustRun("list", "--subject", "Physics")
	assert.Contains(t, out, "subject: Physics")
	assert.Contains(t, out, "Waves: chapter 5")

	tasks := c.export()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Physics", tasks[0].SubjectName())
}

func TestAddRejectsBlankAndBadDate(t *testing.T) {
	c := newCLI(t, "sqlite")
	_, err := c.run("add", " ", "desc")
	require.Error(t, err)
	_, err = c.run("add", "t", "d", "--date", "2024-02-30")
	require.ErrorIs(t, err, model.ErrInvalidDate)
	assert.Empty(t, c.export())
}

func TestUnknownIDAndStatus(t *testing.T) {
	c := newCLI(t, "sqlite")
	_, err := c.run("rm", "nope")
	require.ErrorIs(t, err, planner.ErrTaskNotFound)

	id := c.addedID(c.mustRun("add", "a", "b"))
	_, err = c.run("move", id, "blocked")
	require.ErrorIs(t, err, model.ErrInvalidStatus)

	_, err = c.run("list", "--date", "2026-10-15", "--subject", "x")
	require.Error(t, err)
}

func TestExportFormats(t *testing.T) {
	c := newCLI(t, "file")
	c.mustRun("add", "Essay", "intro", "--date", "2026-10-15")

	out := c.mustRun("export")
	assert.True(t, strings.HasPrefix(out, `[{"id":"`), out)
	assert.Contains(t, out, `"date":"2026-10-15","status":"to-do","subject":null}]`)

	var tasks []model.Task
	require.NoError(t, yaml.Unmarshal([]byte(c.mustRun("export", "--format", "yaml")), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Essay", tasks[0].Title)
	assert.Nil(t, tasks[0].Subject)

	_, err := c.run("export", "--format", "xml")
	require.Error(t, err)
}

func TestResolveID(t *testing.T) {
	tasks := []model.Task{{ID: "0190abcd"}, {ID: "0190abff"}, {ID: "7f00"}}

	id, err := resolveID(tasks, "7f")
	require.NoError(t, err)
	assert.Equal(t, "7f00", id)

	id, err = resolveID(tasks, "0190abcd")
	require.NoError(t, err)
	assert.Equal(t, "0190abcd", id)

	_, err = resolveID(tasks, "0190ab")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveID(tasks, "zz")
	assert.ErrorIs(t, err, planner.ErrTaskNotFound)
}

func TestInvalidBackendFlag(t *testing.T) {
	c := newCLI(t, "redis")
	_, err := c.run("list")
	require.Error(t, err)
}
