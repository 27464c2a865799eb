package cli

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/vertica-loader/pkg/loader"
)

var fixedNow = time.Date(2017, time.August, 17, 9, 30, 0, 0, time.UTC)

func TestBuildJobConfig_Defaults(t *testing.T) {
	t.Setenv(loader.DSNEnvVar, "")

	job, err := buildJobConfig("tables.yml", jobFlagValues{
		dateFormat: loader.DefaultDateFormat,
		debug:      true,
	}, fixedNow)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, job.RunID)
	assert.Equal(t, "tables.yml", job.ConfigPath)
	assert.Equal(t, "2017-08-17", job.StartDate)
	assert.Empty(t, job.EndDate)
	assert.Equal(t, loader.DefaultDateFormat, job.DateFormat)
	assert.Equal(t, loader.DefaultDSN, job.DSN)
	assert.True(t, job.Debug)
	assert.Zero(t, job.Timeout)
}

func TestBuildJobConfig_TodayUsesDateFormat(t *testing.T) {
	job, err := buildJobConfig("tables.yml", jobFlagValues{dateFormat: "%Y%m%d"}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "20170817", job.StartDate)
}

func TestBuildJobConfig_ExplicitValues(t *testing.T) {
	job, err := buildJobConfig("tables.yml", jobFlagValues{
		startDate:  "2017-08-01",
		endDate:    "2017-08-15",
		dateFormat: loader.DefaultDateFormat,
		dsn:        "warehouse",
		debug:      true,
		noDebug:    true,
		timeout:    30 * time.Minute,
	}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "2017-08-01", job.StartDate)
	assert.Equal(t, "2017-08-15", job.EndDate)
	assert.Equal(t, "warehouse", job.DSN)
	assert.False(t, job.Debug)
	assert.Equal(t, 30*time.Minute, job.Timeout)
}

func TestBuildJobConfig_NegativeTimeout(t *testing.T) {
	_, err := buildJobConfig("tables.yml", jobFlagValues{timeout: -time.Second}, fixedNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrInvalidConfig)
}

func TestResolveDSN(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(loader.DSNEnvVar, "from-env")
		assert.Equal(t, "from-flag", resolveDSN("from-flag"))
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(loader.DSNEnvVar, "from-env")
		assert.Equal(t, "from-env", resolveDSN(""))
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(loader.DSNEnvVar, "  ")
		assert.Equal(t, loader.DefaultDSN, resolveDSN(""))
	})
}
