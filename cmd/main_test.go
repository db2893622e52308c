package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/animalloo/animalloo-backend/internal/domain"
)

func TestPrintJSONKeepsKoreanAndAngleBrackets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, []types.PetNameStat{{Name: "<코코>", Count: 3}}))
	assert.Equal(t, "[\n  {\n    \"name\": \"<코코>\",\n    \"count\": 3\n  }\n]\n", buf.String())
}

func TestQueryCommandsRequireArgs(t *testing.T) {
	for _, c := range []struct {
		name string
		args []string
	}{
		{"search", nil},
		{"facility", nil},
		{"facility", []string{"a", "b"}},
		{"stats", nil},
	} {
		var cmdErr error
		switch c.name {
		case "search":
			cmdErr = querySearchCmd.Args(querySearchCmd, c.args)
		case "facility":
			cmdErr = queryFacilityCmd.Args(queryFacilityCmd, c.args)
		case "stats":
			cmdErr = queryStatsCmd.Args(queryStatsCmd, c.args)
		}
		assert.Error(t, cmdErr, c.name)
	}
}
