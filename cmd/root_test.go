package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gvko/minigrep/internal/config"
	"github.com/gvko/minigrep/internal/logging"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	logging.SetOutput(&errb)
	t.Cleanup(func() {
		logging.SetOutput(os.Stderr)
		logging.SetVerbose(false)
		logging.SetColor(true)
		logging.Close()
	})
	c := NewRootCmd()
	c.SetOut(&out)
	c.SetErr(&errb)
	if args == nil {
		// a nil slice makes cobra fall back to os.Args
		args = []string{}
	}
	c.SetArgs(args)
	err := execute(c)
	return result{stdout: out.String(), stderr: errb.String(), err: err}
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// cleanEnv clears every variable the command reads.
func cleanEnv(t *testing.T) {
	t.Helper()
	unsetEnv(t, config.CaseSensitiveEnv, config.ConfigEnv, config.VerboseEnv)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\nDuct tape.\n"

func TestRoot_MissingQuery(t *testing.T) {
	cleanEnv(t)
	r := run(t)
	if r.err == nil {
		t.Fatalf("expected error")
	}
	if r.stderr != "Problem parsing input args: Didn't get a query string\n" {
		t.Fatalf("unexpected stderr: %q", r.stderr)
	}
	if r.stdout != "" {
		t.Fatalf("nothing should be printed to stdout: %q", r.stdout)
	}
}

func TestRoot_MissingFilename(t *testing.T) {
	cleanEnv(t)
	r := run(t, "rust")
	if r.err == nil {
		t.Fatalf("expected error")
	}
	if r.stderr != "Problem parsing input args: Didn't get a filename string\n" {
		t.Fatalf("unexpected stderr: %q", r.stderr)
	}
	if r.stdout != "" {
		t.Fatalf("nothing should be printed to stdout: %q", r.stdout)
	}
}

func TestRoot_CaseInsensitiveByDefault(t *testing.T) {
	cleanEnv(t)
	p := writeFile(t, "poem.txt", poem)
	r := run(t, "rUsT", p)
	if r.err != nil {
		t.Fatalf("unexpected err: %v (stderr %q)", r.err, r.stderr)
	}
	want := "Searching for 'rUsT'\nIn file " + p + "\n---\n\nRust:\nTrust me.\n---\n"
	if r.stdout != want {
		t.Fatalf("want %q, got %q", want, r.stdout)
	}
	if r.stderr != "" {
		t.Fatalf("unexpected stderr: %q", r.stderr)
	}
}

func TestRoot_CaseSensitiveWhenEnvPresent(t *testing.T) {
	for _, v := range []string{"", "1", "false"} {
		t.Run("value="+v, func(t *testing.T) {
			cleanEnv(t)
			t.Setenv(config.CaseSensitiveEnv, v)
			p := writeFile(t, "poem.txt", poem)
			r := run(t, "duct", p)
			if r.err != nil {
				t.Fatalf("unexpected err: %v", r.err)
			}
			if !strings.Contains(r.stdout, "\n\nsafe, fast, productive.\n---\n") {
				t.Fatalf("unexpected stdout: %q", r.stdout)
			}
			if strings.Contains(r.stdout, "Duct tape.") {
				t.Fatalf("case-sensitive search matched Duct: %q", r.stdout)
			}
		})
	}
}

func TestRoot_ExtraArgsIgnored(t *testing.T) {
	cleanEnv(t)
	p := writeFile(t, "poem.txt", poem)
	r := run(t, "three", p, "ignored", "also-ignored")
	if r.err != nil {
		t.Fatalf("unexpected err: %v", r.err)
	}
	if !strings.HasSuffix(r.stdout, "\n\nPick three.\n---\n") {
		t.Fatalf("unexpected stdout: %q", r.stdout)
	}
}

func TestRoot_DashLeadingQuery(t *testing.T) {
	cleanEnv(t)
	p := writeFile(t, "flags.txt", "use -v for more\n-use it\nsee --version\n--help wanted\nplain\n")
	cases := []struct {
		query string
		want  string
	}{
		{"-v", "use -v for more\nsee --version\n"},
		{"-use", "-use it\n"},
		{"--version", "see --version\n"},
		{"--help", "--help wanted\n"},
	}
	for _, c := range cases {
		t.Run(c.query, func(t *testing.T) {
			r := run(t, c.query, p)
			if r.err != nil {
				t.Fatalf("unexpected err: %v (stderr %q)", r.err, r.stderr)
			}
			want := "Searching for '" + c.query + "'\nIn file " + p + "\n---\n\n" + c.want + "---\n"
			if r.stdout != want {
				t.Fatalf("want %q, got %q", want, r.stdout)
			}
		})
	}
}

func TestRoot_DashDashIsAQuery(t *testing.T) {
	cleanEnv(t)
	p := writeFile(t, "dashes.txt", "a -- b\nnone\n")
	r := run(t, "--", p)
	if r.err != nil {
		t.Fatalf("unexpected err: %v", r.err)
	}
	if !strings.HasSuffix(r.stdout, "\n\na -- b\n---\n") {
		t.Fatalf("unexpected stdout: %q", r.stdout)
	}
}

func TestRoot_MissingFile(t *testing.T) {
	cleanEnv(t)
	p := filepath.Join(t.TempDir(), "missing.txt")
	r := run(t, "x", p)
	if r.err == nil {
		t.Fatalf("expected error")
	}
	want := "Application error: open " + p + ": no such file or directory\n"
	if r.stderr != want {
		t.Fatalf("want plain stderr %q, got %q", want, r.stderr)
	}
	if r.stdout != "Searching for 'x'\nIn file "+p+"\n---\n\n" {
		t.Fatalf("unexpected stdout: %q", r.stdout)
	}
}

func TestRoot_BadConfigYAML(t *testing.T) {
	cleanEnv(t)
	t.Setenv(config.ConfigEnv, writeFile(t, "settings.yaml", "color: [\n"))
	p := writeFile(t, "poem.txt", poem)
	r := run(t, "rust", p)
	if r.err == nil {
		t.Fatalf("expected config error")
	}
	if !strings.HasPrefix(r.stderr, "config error: ") {
		t.Fatalf("unexpected stderr: %q", r.stderr)
	}
	if r.stdout != "" {
		t.Fatalf("no search should run: %q", r.stdout)
	}
}

func TestRoot_SchemaViolation(t *testing.T) {
	cleanEnv(t)
	t.Setenv(config.ConfigEnv, writeFile(t, "settings.yaml", "colour: false\n"))
	p := writeFile(t, "poem.txt", poem)
	r := run(t, "rust", p)
	if r.err == nil {
		t.Fatalf("expected schema error")
	}
	if !strings.HasPrefix(r.stderr, "schema error: ") {
		t.Fatalf("unexpected stderr: %q", r.stderr)
	}
	if r.stdout != "" {
		t.Fatalf("no search should run: %q", r.stdout)
	}
}

func TestRoot_VerboseAndLogFile(t *testing.T) {
	cleanEnv(t)
	logPath := filepath.Join(t.TempDir(), "logs", "minigrep.log")
	t.Setenv(config.ConfigEnv, writeFile(t, "settings.yaml", "log:\n  file: "+logPath+"\n"))
	t.Setenv(config.VerboseEnv, "1")
	p := writeFile(t, "poem.txt", poem)
	r := run(t, "rust", p)
	if r.err != nil {
		t.Fatalf("unexpected err: %v", r.err)
	}
	if !strings.Contains(r.stderr, "2 matching lines\n") {
		t.Fatalf("verbose diagnostics missing: %q", r.stderr)
	}
	if strings.Contains(r.stderr, "\x1b[") {
		t.Fatalf("colors written to a non-terminal: %q", r.stderr)
	}
	if strings.Contains(r.stdout, "matching lines") {
		t.Fatalf("diagnostics leaked into stdout: %q", r.stdout)
	}
	logging.Close()
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "[DEBUG] 2 matching lines") {
		t.Fatalf("log file missing diagnostics: %q", string(b))
	}
}
