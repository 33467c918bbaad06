package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRelayOutboxCommand(t *testing.T) {
	testCases := []struct {
		name      string
		batchSize int
		wantErr   bool
	}{
		{"minimum", 1, false},
		{"maximum", commands.MaxRelayBatchSize, false},
		{"zero", 0, true},
		{"above maximum", commands.MaxRelayBatchSize + 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewRelayOutboxCommand(tc.batchSize)

			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.batchSize, cmd.BatchSize())
		})
	}
}
