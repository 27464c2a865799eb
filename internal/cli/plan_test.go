package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/vertica-loader/pkg/loader"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func planFixture(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tables.yml")
	writeFile(t, configPath, fmt.Sprintf(`
file_spec:
  delimiter: ","
  skip_header: true
tables:
  foo: %s/{date}/foo.csv
`, dir))
	return dir, configPath
}

func runPlanWith(t *testing.T, flags jobFlagValues, configPath string) (string, error) {
	t.Helper()
	original := planFlags
	t.Cleanup(func() { planFlags = original })
	planFlags = flags

	var out bytes.Buffer
	planCmd.SetOut(&out)
	planCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		planCmd.SetOut(nil)
		planCmd.SetErr(nil)
	})

	err := runPlan(planCmd, []string{configPath})
	return out.String(), err
}

func TestRunPlan_PrintsStatements(t *testing.T) {
	dir, configPath := planFixture(t)
	dataFile := filepath.Join(dir, "2017-08-17", "foo.csv")
	writeFile(t, dataFile, "a,b\n1,2\n")

	out, err := runPlanWith(t, jobFlagValues{
		startDate:  "2017-08-17",
		dateFormat: loader.DefaultDateFormat,
		noDebug:    true,
	}, configPath)

	require.NoError(t, err)
	assert.Equal(t, "-- foo\n"+
		"TRUNCATE TABLE foo;\n"+
		"COPY foo FROM LOCAL '"+dataFile+"' DELIMITER ',' SKIP 1 DIRECT;\n"+
		"INSERT INTO last_updated (name, updated_at, updated_by) VALUES ('foo', now(), 'Vertica-CSV-Loader');\n"+
		"COMMIT;\n", out)
}

func TestRunPlan_MissingDataFile(t *testing.T) {
	_, configPath := planFixture(t)

	out, err := runPlanWith(t, jobFlagValues{
		startDate:  "2017-08-17",
		dateFormat: loader.DefaultDateFormat,
		debug:      true,
	}, configPath)

	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, loader.ExitMissingDataFile, loader.ExitCodeForError(err))
	assert.Contains(t, err.Error(), "foo table cannot be loaded")
}

func TestRunPlan_BadDateFormat(t *testing.T) {
	_, configPath := planFixture(t)

	_, err := runPlanWith(t, jobFlagValues{
		startDate:  "17/08/2017",
		endDate:    "2017-08-20",
		dateFormat: loader.DefaultDateFormat,
	}, configPath)

	require.Error(t, err)
	assert.True(t, errors.Is(err, loader.ErrInvalidDateFormat))
	assert.Equal(t, loader.ExitConfigError, loader.ExitCodeForError(err))
}

func TestWritePlans_SeparatesTables(t *testing.T) {
	var out bytes.Buffer
	err := writePlans(&out, []loader.TablePlan{
		{Table: "foo", Statements: []string{"TRUNCATE TABLE foo;"}},
		{Table: "bar", Statements: []string{"TRUNCATE TABLE bar;"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "-- foo\nTRUNCATE TABLE foo;\n\n-- bar\nTRUNCATE TABLE bar;\n", out.String())
}
