package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/ps1/internal/config"
	"github.com/zjrosen/ps1/internal/prompt"
	"github.com/zjrosen/ps1/internal/system"
)

// execute runs ps1 with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// enterDir makes dir the working directory with PWD and HOME pointing at
// it and every PS1_* and color variable cleared.
func enterDir(t *testing.T, dir string) {
	t.Helper()
	for _, kv := range os.Environ() {
		if key, _, _ := strings.Cut(kv, "="); strings.HasPrefix(key, "PS1_") {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("HOME", filepath.Join(dir, "elsewhere"))
	t.Setenv("PWD", dir)
	testChdir(t, dir)
}

var promptChar = prompt.PromptChar(system.OS{})

func initRepo(t *testing.T, dir string) {
	t.Helper()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName("main")},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hi\n"), 0600))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestRoot_RendersPlainPrompt(t *testing.T) {
	dir := t.TempDir()
	enterDir(t, dir)

	out, err := execute(t, "--shell", "none", "--color-profile", "ascii")
	require.NoError(t, err)
	assert.Equal(t, dir+"\n"+promptChar+" ", out)
}

func TestRoot_RendersRepository(t *testing.T) {
	dir := t.TempDir()
	initRepo(t, dir)
	enterDir(t, dir)

	out, err := execute(t, "--shell", "zsh", "--color-profile", "ansi")
	require.NoError(t, err)

	want := "%{\x1b[36m%}" + dir + "%{\x1b[0m%} " +
		"%{\x1b[34m%}main%{\x1b[0m%} " +
		"%{\x1b[32m%}✓%{\x1b[0m%}" +
		"\n" + promptChar + " "
	assert.Equal(t, want, out)
}

func TestRoot_EnvironmentAndFlags(t *testing.T) {
	dir := t.TempDir()
	enterDir(t, dir)
	t.Setenv("PS1_SEPARATOR", " ")
	t.Setenv("PS1_SHELL", "zsh")
	t.Setenv("NO_COLOR", "1")

	// --shell beats PS1_SHELL; NO_COLOR removes escapes, so no markers either.
	out, err := execute(t, "--shell", "none")
	require.NoError(t, err)
	assert.Equal(t, dir+" "+promptChar+" ", out)
}

func TestRoot_HomeToken(t *testing.T) {
	dir := t.TempDir()
	enterDir(t, dir)
	t.Setenv("HOME", filepath.Dir(dir))

	out, err := execute(t, "--color-profile", "ascii", "--home-token", "⌂", "--separator", " ")
	require.NoError(t, err)
	assert.Equal(t, "⌂/"+filepath.Base(dir)+" "+promptChar+" ", out)

	out, err = execute(t, "--color-profile", "ascii", "--no-home-token", "--separator", " ")
	require.NoError(t, err)
	assert.Equal(t, dir+" "+promptChar+" ", out)
}

func TestRoot_InvalidSettingsWriteNothing(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown theme", []string{"--theme", "dracula"}, "unknown theme preset"},
		{"unknown shell", []string{"--shell", "fish"}, "unknown shell"},
		{"unknown color profile", []string{"--color-profile", "16m"}, "unknown color profile"},
		{"unknown color token", []string{"--color", "prompt=1"}, "unknown color token"},
		{"unexpected argument", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enterDir(t, t.TempDir())

			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, out)
		})
	}
}

func TestRoot_LogFile(t *testing.T) {
	dir := t.TempDir()
	enterDir(t, dir)
	logPath := filepath.Join(dir, "ps1.log")

	_, err := execute(t, "--color-profile", "ascii", "--log-file", logPath, "-v")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Logging started"`)
	assert.Contains(t, string(data), `"msg":"Rendering prompt"`)
	assert.Contains(t, string(data), `"cat":"cli"`)
}

func TestThemes(t *testing.T) {
	enterDir(t, t.TempDir())
	t.Setenv("NO_COLOR", "1")

	out, err := execute(t, "themes")
	require.NoError(t, err)
	assert.Contains(t, out, "Themes:\n")
	assert.Contains(t, out, "* default    ~/src main ✓ × ±\n")
	assert.Contains(t, out, "  nord       ~/src main ✓ × ±\n")
	assert.Contains(t, out, "  solarized  ~/src main ✓ × ±\n")

	out, err = execute(t, "themes", "--theme", "nord", "--staged-icon", "+")
	require.NoError(t, err)
	assert.Contains(t, out, "  default    ~/src main ✓ × +\n")
	assert.Contains(t, out, "* nord       ~/src main ✓ × +\n")
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorsAreReported(t *testing.T) {
	enterDir(t, t.TempDir())

	err := runThemes(failingWriter{}, config.Config{NoColor: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing themes: disk full")

	err = runInit(failingWriter{}, "bash", config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing bash snippet: disk full")

	err = runConfig(failingWriter{}, config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestInit(t *testing.T) {
	enterDir(t, t.TempDir())

	out, err := execute(t, "init", "bash")
	require.NoError(t, err)
	assert.Equal(t, "PS1='$(command ps1 --shell readline)'\n", out)

	out, err = execute(t, "init", "zsh", "--theme", "nord")
	require.NoError(t, err)
	assert.Equal(t, "setopt promptsubst\nPROMPT='$(command ps1 --shell zsh --theme '\\''nord'\\'')'\n", out)

	_, err = execute(t, "init", "fish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported shell "fish"`)

	_, err = execute(t, "init")
	require.Error(t, err)
}

// TestInitBash_DirectoryNamesStayText expands the prompt the way bash does
// before drawing it, inside a directory whose name is a command
// substitution, and checks the name is shown rather than run.
func TestInitBash_DirectoryNamesStayText(t *testing.T) {
	bash, err := exec.LookPath("bash")
	if err != nil {
		t.Skip("bash not installed")
	}

	tests := []struct {
		name   string
		shell  string
		script func(snippet string) string
	}{
		{
			name:   "init snippet",
			shell:  "readline",
			script: func(snippet string) string { return snippet },
		},
		{
			name:   "bash dialect stored in PS1",
			shell:  "bash",
			script: func(string) string { return `PS1="$(command ps1)"` + "\n" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			dir := filepath.Join(root, "$(touch pwned)")
			require.NoError(t, os.MkdirAll(dir, 0750))
			enterDir(t, dir)

			snippet, err := execute(t, "init", "bash")
			require.NoError(t, err)
			rendered, err := execute(t, "--shell", tt.shell, "--color-profile", "ansi")
			require.NoError(t, err)

			// A stand-in ps1 on PATH replays the prompt rendered above.
			renderedPath := filepath.Join(root, "rendered")
			require.NoError(t, os.WriteFile(renderedPath, []byte(rendered), 0600))
			bin := filepath.Join(root, "bin")
			require.NoError(t, os.MkdirAll(bin, 0750))
			stub := "#!/bin/sh\ncat '" + renderedPath + "'\n"
			require.NoError(t, os.WriteFile(filepath.Join(bin, "ps1"), []byte(stub), 0700)) //nolint:gosec // test executable

			script := `if ((BASH_VERSINFO[0] < 4 || (BASH_VERSINFO[0] == 4 && BASH_VERSINFO[1] < 4))); then exit 42; fi` + "\n" +
				tt.script(snippet) +
				`printf '%s' "${PS1@P}"`
			c := exec.Command(bash, "--norc", "--noprofile", "-c", script)
			c.Dir = dir
			c.Env = append(os.Environ(), "PATH="+bin+string(os.PathListSeparator)+os.Getenv("PATH"))
			out, err := c.Output()
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) && exitErr.ExitCode() == 42 {
				t.Skip("bash older than 4.4 has no ${PS1@P}")
			}
			require.NoError(t, err)

			assert.Contains(t, string(out), "$(touch pwned)")
			assert.True(t, strings.HasSuffix(string(out), promptChar+" "), "got %q", out)
			assert.NoFileExists(t, filepath.Join(dir, "pwned"))
			assert.NoFileExists(t, filepath.Join(root, "pwned"))
		})
	}
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "'nord'", shellQuote("nord"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestConfig(t *testing.T) {
	enterDir(t, t.TempDir())

	out, err := execute(t, "config", "--theme", "nord", "--color", "branch=#17C8B0", "--shorten-cwd")
	require.NoError(t, err)

	var got struct {
		Settings map[string]any `yaml:"settings"`
		Prompt   map[string]any `yaml:"prompt"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	assert.Equal(t, "nord", got.Settings["theme"])
	assert.Equal(t, true, got.Settings["shorten_cwd"])
	assert.Equal(t, "#88C0D0", got.Prompt["cwd_color"])
	assert.Equal(t, "#17C8B0", got.Prompt["git_branch_color"])
	assert.Equal(t, true, got.Prompt["shorten_cwd"])
	assert.Equal(t, "~", got.Prompt["shorten_home_cwd"])
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it
// changes the working directory for the duration of the test, sets PWD, and
// restores the previous directory on cleanup.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testChdir: could not restore working directory: " + err.Error())
		}
	})
}
