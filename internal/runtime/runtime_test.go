package runtime

import (
	"bytes"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/commandkit/internal/command"
	"github.com/manav03panchal/commandkit/internal/config"
	errs "github.com/manav03panchal/commandkit/internal/errors"
	"github.com/manav03panchal/commandkit/internal/model"
	"github.com/manav03panchal/commandkit/internal/output"
	"github.com/manav03panchal/commandkit/internal/script"
)

func memoryConfig() *config.RuntimeConfig {
	cfg := config.Default()
	cfg.Storage.Database = config.MemoryDatabase
	return cfg
}

func newTestContext(t *testing.T, format output.Format) (*Context, *bytes.Buffer) {
	opts := DefaultOptions()
	opts.Config = memoryConfig()
	opts.Format = format
	opts.ColorMode = output.ColorNever

	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	var buf bytes.Buffer
	ctx.Formatter.Writer = &buf
	return ctx, &buf
}

// =============================================================================
// Context Tests
// =============================================================================

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Nil(t, opts.Config)
	assert.Equal(t, output.FormatCLI, opts.Format)
	assert.Equal(t, output.ColorAuto, opts.ColorMode)
	assert.False(t, opts.Debug)
}

func TestNew(t *testing.T) {
	ctx, _ := newTestContext(t, output.FormatCLI)

	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.Formatter)
	assert.NotNil(t, ctx.ObjectRepo)
	assert.NotNil(t, ctx.Storage)
	assert.NotNil(t, ctx.Factory)
	assert.Same(t, ctx.Storage, ctx.Factory.Storage())
	assert.False(t, ctx.IsJSON())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("COMMANDKIT_DATABASE", ":memory:")
	t.Setenv("COMMANDKIT_DEFAULT_OBJECT", "player")

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, "", ctx.DB.Path())
	assert.Equal(t, "player", ctx.Config.Scene.DefaultObject)
}

func TestNewWithDatabasePath(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Database = t.TempDir() + "/commandkit-test.db"

	ctx, err := New(Options{Config: cfg})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, cfg.Storage.Database, ctx.DB.Path())
}

func TestNewInvalidEnv(t *testing.T) {
	t.Setenv("COMMANDKIT_DEFAULT_DISTANCE", "-5")

	_, err := New(DefaultOptions())
	assert.ErrorIs(t, err, errs.ErrInvalidDistance)
}

func TestRunnerUsesSceneDefaults(t *testing.T) {
	ctx, buf := newTestContext(t, output.FormatCLI)
	ctx.Config.Scene.DefaultObject = "player"

	outcomes, err := ctx.Runner().Run(t.Context(), []script.Step{
		{Op: script.OpMove, Direction: model.Up},
		{Op: script.OpLabel, Text: "hi"},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	obj, err := ctx.ObjectRepo.Get("player")
	require.NoError(t, err)
	assert.Equal(t, model.Up, obj.Position)
	assert.Equal(t, "hi", obj.Label)

	// The label is shown through the formatter.
	assert.Contains(t, buf.String(), "player says")
}

func TestCloseDisposesPending(t *testing.T) {
	opts := DefaultOptions()
	opts.Config = memoryConfig()
	ctx, err := New(opts)
	require.NoError(t, err)

	cmd, err := ctx.Factory.NewMove("crate", model.North, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.Storage.ActiveCount())

	require.NoError(t, ctx.Close())
	assert.True(t, cmd.Disposed())
	assert.Equal(t, 0, ctx.Storage.ActiveCount())
}

func TestCloseNil(t *testing.T) {
	ctx := &Context{}
	assert.NoError(t, ctx.Close())
}

func TestDebugf(t *testing.T) {
	ctx, buf := newTestContext(t, output.FormatCLI)

	ctx.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	ctx.Debug = true
	ctx.Debugf("shown %d", 2)
	assert.Equal(t, "debug: shown 2\n", buf.String())

	t.Run("silent_in_json", func(t *testing.T) {
		ctx, buf := newTestContext(t, output.FormatJSON)
		ctx.Debug = true
		ctx.Debugf("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestFormatterAccessors(t *testing.T) {
	ctx, _ := newTestContext(t, output.FormatJSON)

	assert.Same(t, ctx.Formatter, ctx.CLIFormatter().Formatter)
	assert.Same(t, ctx.Formatter, ctx.JSONFormatter().Formatter)
	assert.True(t, ctx.IsJSON())
}

// =============================================================================
// Error Tests
// =============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"user", errs.NewUserError("bad", "fix it"), ExitError},
		{"sentinel", fmt.Errorf("step 1: %w", errs.ErrUnknownStep), ExitError},
		{"system", errs.NewSystemError("db down", errors.New("io")), ExitSystem},
		{"errno", fmt.Errorf("write: %w", syscall.ENOSPC), ExitSystem},
		{"unknown", errors.New("huh"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, errs.InvalidValue(errs.ErrObjectNotFound, "object", "ghost"))

	out := buf.String()
	assert.Contains(t, out, "Error: object not found: 'ghost'")
	assert.Contains(t, out, "Try: ")
}

func TestReportError(t *testing.T) {
	t.Run("cli_goes_to_err_writer", func(t *testing.T) {
		ctx, buf := newTestContext(t, output.FormatCLI)
		var stderr bytes.Buffer

		ctx.ReportError(&stderr, errors.New("boom"))
		assert.Empty(t, buf.String())
		assert.Equal(t, "Error: boom\n", stderr.String())
	})

	t.Run("json_goes_to_formatter", func(t *testing.T) {
		ctx, buf := newTestContext(t, output.FormatJSON)
		var stderr bytes.Buffer

		ctx.ReportError(&stderr, errs.InvalidValue(errs.ErrUnknownStep, "step", "jump"))
		assert.Empty(t, stderr.String())
		assert.Contains(t, buf.String(), `"status": "error"`)
		assert.Contains(t, buf.String(), `"suggestion"`)
	})

	t.Run("nil_is_silent", func(t *testing.T) {
		ctx, buf := newTestContext(t, output.FormatJSON)
		ctx.ReportError(buf, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("reported_json_is_not_repeated", func(t *testing.T) {
		ctx, buf := newTestContext(t, output.FormatJSON)
		var stderr bytes.Buffer

		err := Reported(errs.InvalidValue(errs.ErrUnknownStep, "step", "jump"))
		ctx.ReportError(&stderr, err)
		assert.Empty(t, buf.String())
		assert.Empty(t, stderr.String())
		assert.Equal(t, ExitError, ExitCode(err))
	})

	t.Run("reported_cli_still_written", func(t *testing.T) {
		ctx, _ := newTestContext(t, output.FormatCLI)
		var stderr bytes.Buffer

		ctx.ReportError(&stderr, Reported(errors.New("boom")))
		assert.Equal(t, "Error: boom\n", stderr.String())
	})
}

func TestReportedNil(t *testing.T) {
	assert.NoError(t, Reported(nil))
}

func TestCommandKindsAreDistinct(t *testing.T) {
	ctx, _ := newTestContext(t, output.FormatCLI)

	_, err := ctx.Factory.NewMove("crate", model.North, 1)
	require.NoError(t, err)
	_, err = ctx.Factory.NewLabel("crate", "x")
	require.NoError(t, err)

	assert.Equal(t, []command.Kind{"label", "move"}, ctx.Storage.ActiveKinds())
}
