package theme

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"github.com/thenoetrevino/taskflow/internal/models"
	clitest "github.com/thenoetrevino/taskflow/internal/testutil/cli"
)

func TestGetTheme_Default(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, GetCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, colors.DefaultPreset, strings.TrimSpace(output))
}

func TestSetTheme_Persists(t *testing.T) {
	t.Parallel()
	store, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, SetCmd(), []string{"midnight", "--json"})
	require.NoError(t, err)

	data := clitest.JSONData(t, output)
	assert.Equal(t, "midnight", data["name"])
	assert.Equal(t, true, data["dark"])
	assert.Equal(t, "midnight", app.Theme.Current())

	raw, err := store.Get(context.Background(), models.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, `"midnight"`, raw)
}

func TestSetTheme_Unknown(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, SetCmd(), []string{"neon", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	errData := clitest.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "UNKNOWN_THEME", errData["code"])
	assert.Contains(t, errData["suggestion"], "midnight")
	assert.Equal(t, colors.DefaultPreset, app.Theme.Current())
}

func TestListThemes(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, colors.Names(), strings.Fields(output))

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "* ")
}

func TestCycleTheme(t *testing.T) {
	t.Parallel()
	_, app := clitest.SetupCLITest(t)
	names := colors.Names()

	output, err := clitest.ExecuteCLICommand(t, app, CycleCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, names[1], strings.TrimSpace(output))
	assert.Equal(t, names[1], app.Theme.Current())
}
