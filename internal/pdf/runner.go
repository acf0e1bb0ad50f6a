package pdf

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"ocrtoolkit/internal/logger"
)

// Runner lets us stub the external rasterizer command in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	log := logger.WithComponent("pdf-exec")
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		log.Error().
			Str("cmd", name).
			Str("args", strings.Join(args, " ")).
			Dur("duration", dur).
			Err(err).
			Str("stderr", truncate(errb.String(), 8<<10)).
			Msg("External command failed")
	} else {
		log.Debug().
			Str("cmd", name).
			Str("args", strings.Join(args, " ")).
			Dur("duration", dur).
			Int("stdout_bytes", out.Len()).
			Msg("External command ok")
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
