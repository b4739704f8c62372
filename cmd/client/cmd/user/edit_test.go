package user

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditRequest_OnlyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "edit"}
	cmd.Flags().String("email", "", "")
	cmd.Flags().String("first-name", "", "")
	cmd.Flags().String("last-name", "", "")

	require.NoError(t, cmd.ParseFlags([]string{"--first-name", "Ann", "--last-name", ""}))

	req := editRequest(cmd)
	assert.Nil(t, req.Email)
	require.NotNil(t, req.FirstName)
	assert.Equal(t, "Ann", *req.FirstName)
	require.NotNil(t, req.LastName)
	assert.Equal(t, "", *req.LastName)
	assert.False(t, req.Empty())
}
