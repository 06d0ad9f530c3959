package mapper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ajithnectar/neo4j-migration-entities/internal/mapper"
)

func strPtr(s string) *string { return &s }

func TestEpochToTime_SecondsAndMillisAgree(t *testing.T) {
	seconds := mapper.EpochToTime(strPtr("1700000000"))
	millis := mapper.EpochToTime(strPtr("1700000000000"))

	require.NotNil(t, seconds)
	require.NotNil(t, millis)
	require.True(t, seconds.Equal(*millis))
	require.Equal(t, time.UTC, seconds.Location())
}

func TestEpochToTime_NilInputs(t *testing.T) {
	require.Nil(t, mapper.EpochToTime(nil))
	require.Nil(t, mapper.EpochToTime(strPtr("")))
	require.Nil(t, mapper.EpochToTime(strPtr("0")))
	require.Nil(t, mapper.EpochToTime(strPtr("not-a-number")))
}

func TestEpochToTime_KnownInstant(t *testing.T) {
	got := mapper.EpochToTime(strPtr("1700000000"))
	require.NotNil(t, got)
	require.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), *got)
}
