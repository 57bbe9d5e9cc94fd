package execx

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunCapturesExitCode(t *testing.T) {
	if res := Run("sh", "-c", "exit 0"); res.Code != 0 || res.Err != nil {
		t.Fatalf("exit 0: code=%d err=%v", res.Code, res.Err)
	}
	if res := Run("sh", "-c", "exit 3"); res.Code != 3 {
		t.Fatalf("exit 3: code=%d", res.Code)
	}
}

func TestRunMissingBinary(t *testing.T) {
	res := Run("specrun-test-missing-binary")
	if res.Code != 1 {
		t.Fatalf("missing binary: code=%d", res.Code)
	}
	if res.Err == nil {
		t.Fatalf("missing binary: expected error")
	}
}

func TestRunCtxDeadline(t *testing.T) {
	ctx, cancel := WithTimeout(50 * time.Millisecond)
	defer cancel()
	if res := RunCtx(ctx, "sh", "-c", "sleep 5"); res.Code != 124 {
		t.Fatalf("deadline: code=%d err=%v", res.Code, res.Err)
	}
}

func TestCapture(t *testing.T) {
	out, res := Capture(context.Background(), "sh", "-c", "printf hello")
	if res.Code != 0 {
		t.Fatalf("capture: code=%d err=%v", res.Code, res.Err)
	}
	if out != "hello" {
		t.Fatalf("capture out = %q", out)
	}
}

func TestRunCtxWithEnvOverlay(t *testing.T) {
	out, res := Capture(context.Background(), "sh", "-c", "printf %s \"$SPECRUN_TEST_VALUE\"")
	if res.Code != 0 || out != "" {
		t.Fatalf("baseline: code=%d out=%q", res.Code, out)
	}
	env := map[string]string{"SPECRUN_TEST_VALUE": "42"}
	if res := RunCtxWithEnv(context.Background(), env, "sh", "-c", "test \"$SPECRUN_TEST_VALUE\" = 42"); res.Code != 0 {
		t.Fatalf("overlay not applied: code=%d err=%v", res.Code, res.Err)
	}
}

func TestProcessErrorMessage(t *testing.T) {
	pe := &ProcessError{Name: "nvim", Code: 1}
	if got := pe.Error(); !strings.Contains(got, "exited with status 1") {
		t.Fatalf("ProcessError.Error = %q", got)
	}
	res := Run("specrun-test-missing-binary")
	pe = &ProcessError{Name: "specrun-test-missing-binary", Code: res.Code, Err: res.Err}
	if got := pe.Error(); !strings.Contains(got, "specrun-test-missing-binary:") {
		t.Fatalf("launch failure message = %q", got)
	}
}
