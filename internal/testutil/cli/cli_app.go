package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/app"
	clipkg "github.com/thenoetrevino/taskflow/internal/cli"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the context so commands use the test store.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, nil)
}

// ExecuteCLICommandWithInput executes a CLI command with stdin content
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin io.Reader) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var out bytes.Buffer
	SetupCobraCommand(cmd, args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	ctx := clipkg.WithApp(context.Background(), testApp)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}
