package bookmark

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "1", want: 1},
		{arg: "42", want: 42},
		{arg: "0", wantErr: true},
		{arg: "-3", wantErr: true},
		{arg: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseID(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditRequest_OnlyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "edit"}
	cmd.Flags().String("title", "", "")
	cmd.Flags().String("link", "", "")
	cmd.Flags().String("description", "", "")

	require.NoError(t, cmd.ParseFlags([]string{"--description", ""}))

	req := editRequest(cmd)
	assert.Nil(t, req.Title)
	assert.Nil(t, req.Link)
	require.NotNil(t, req.Description)
	assert.Equal(t, "", *req.Description)
}
