package service

import (
	"testing"

	"github.com/MKhiriev/fabric-launcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveOperationID(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    models.OperationID
		wantErr error
	}{
		{name: "release", version: "1.20.1", want: "1.20.1"},
		{name: "snapshot", version: "23w31a", want: "23w31a"},
		{name: "trimmed", version: "\t1.19.4 ", want: "1.19.4"},
		{name: "inner space kept", version: "1.14 Pre-Release 1", want: "1.14 Pre-Release 1"},
		{name: "empty", version: "", wantErr: ErrEmptyTarget},
		{name: "blank", version: "   ", wantErr: ErrEmptyTarget},
		{name: "slash", version: "1.20/1", wantErr: ErrInvalidTarget},
		{name: "query", version: "1.20?x", wantErr: ErrInvalidTarget},
		{name: "control", version: "1.20\x00", wantErr: ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveOperationID(models.SetupParams{GameVersion: tt.version})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveOperationID_SameVersionSameID(t *testing.T) {
	a, err := DeriveOperationID(models.SetupParams{GameVersion: "1.20.1"})
	require.NoError(t, err)
	b, err := DeriveOperationID(models.SetupParams{GameVersion: " 1.20.1"})
	require.NoError(t, err)
	c, err := DeriveOperationID(models.SetupParams{GameVersion: "1.20.2"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
