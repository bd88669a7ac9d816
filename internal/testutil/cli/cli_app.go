package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/board"
	leadcli "github.com/thenoetrevino/leadboard/internal/cli"
)

// SetupCLITest builds an app over an in-memory provider holding the seed board.
// The provider is returned so tests can inspect or corrupt the stored snapshot.
func SetupCLITest(t *testing.T) (*app.App, *board.MemoryProvider) {
	t.Helper()

	provider := board.NewMemoryProvider()

	// EventPublisher is nil; event publishing is tested elsewhere
	appInstance, err := app.New(context.Background(), nil, app.WithProvider(provider))
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() {
		_ = appInstance.Close()
	})

	return appInstance, provider
}

// CaptureOutputFunc captures stdout and stderr during function execution
func CaptureOutputFunc(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	oldStdout, oldStderr := os.Stdout, os.Stderr

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout, os.Stderr = outW, errW

	collect := func(r io.Reader) <-chan string {
		ch := make(chan string)
		go func() {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, r)
			ch <- buf.String()
		}()
		return ch
	}
	outC, errC := collect(outR), collect(errR)

	fn()

	_ = outW.Close()
	_ = errW.Close()
	os.Stdout, os.Stderr = oldStdout, oldStderr

	return <-outC, <-errC
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the context so GetCLIFromContext reuses it.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	stdout, _, err := ExecuteCLICommandWithStderr(t, testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithStderr is ExecuteCLICommand that also returns stderr
func ExecuteCLICommandWithStderr(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := leadcli.WithApp(context.Background(), testApp)

	cmd.SetArgs(args)
	cmd.SetContext(ctx)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	stdout, stderr := CaptureOutputFunc(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return stdout, stderr, executeErr
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
