// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/musicvm/token"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedWindow int64
		expectedErr    error
	}{
		{
			name:           "empty",
			expectedWindow: 60_000,
		},
		{
			name:           "override",
			input:          `{"validityWindow":30000}`,
			expectedWindow: 30_000,
		},
		{
			name:        "zero",
			input:       `{"validityWindow":0}`,
			expectedErr: ErrInvalidValidityWindow,
		},
		{
			name:        "misaligned",
			input:       `{"validityWindow":1500}`,
			expectedErr: ErrInvalidValidityWindow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			g, err := Load([]byte(tt.input))
			require.ErrorIs(err, tt.expectedErr)
			if tt.expectedErr != nil {
				return
			}
			require.Equal(tt.expectedWindow, g.ValidityWindow)
		})
	}
}

func TestRules(t *testing.T) {
	require := require.New(t)

	chainID := ids.GenerateTestID()
	program := token.NewStateProgram()
	r := New(Default(), 7, chainID, program)
	require.Equal(uint32(7), r.NetworkID())
	require.Equal(chainID, r.ChainID())
	require.Equal(int64(60_000), r.GetValidityWindow())
	require.Equal(program, r.TokenProgram())
}
