// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"envf/internal/envfile"
)

type (
	// ExecFunc replaces the current process image with argv0 running under
	// envv. On success it never returns; it returns an error only when the
	// replacement could not be started.
	ExecFunc func(argv0 string, argv []string, envv []string) error

	// LoadFunc loads one environment file into a map of entries.
	LoadFunc func(path string) (map[string]string, error)

	// Launcher builds the merged environment for a run and hands control to
	// the target command.
	Launcher struct {
		logger *log.Logger

		// execFn replaces the process image. Nil means the platform exec
		// primitive. Injectable for testing — tests capture the arguments
		// without actually replacing the test process.
		execFn ExecFunc

		// load reads one environment file. Nil means envfile.Load.
		load LoadFunc

		// environ returns the host environment as "KEY=VALUE" strings.
		// Nil means os.Environ.
		environ func() []string
	}
)

// Option customizes a Launcher.
type Option func(*Launcher)

// WithExecFunc overrides the process-replacement primitive. Tests use it to
// record the (argv0, argv, envv) triple instead of replacing the test
// process.
func WithExecFunc(fn ExecFunc) Option {
	return func(l *Launcher) { l.execFn = fn }
}

// WithLoadFunc overrides the env-file loader.
func WithLoadFunc(fn LoadFunc) Option {
	return func(l *Launcher) { l.load = fn }
}

// WithEnviron overrides the host environment source.
func WithEnviron(fn func() []string) Option {
	return func(l *Launcher) { l.environ = fn }
}

// New returns a Launcher that reports file warnings through logger and, by
// default, loads env files as TOML tables and replaces the process image
// with the platform exec primitive.
func New(logger *log.Logger, opts ...Option) *Launcher {
	l := &Launcher{logger: logger}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// MergeEnv loads every path in order and merges the results with last-write
// wins per key. A path that fails to load contributes nothing: it is
// reported as one "{path} ignored: {reason}" warning (suppressed when
// silent) and the merge continues with the next path. MergeEnv always
// returns a map, possibly empty.
func (l *Launcher) MergeEnv(paths []string, silent bool) map[string]string {
	loadFile := l.load
	if loadFile == nil {
		loadFile = envfile.Load
	}

	env := make(map[string]string)
	for _, path := range paths {
		entries, err := loadFile(path)
		if err != nil {
			if !silent {
				l.logger.Warnf("%s ignored: %s", path, err)
			}
			continue
		}
		maps.Copy(env, entries)
	}

	return env
}

// Run resolves command[0] against PATH and replaces the current process
// image with it, running under the host environment overlaid with env. On
// success the calling process ceases to exist and Run never returns. The
// returned error always names the attempted command.
func (l *Launcher) Run(command []string, env map[string]string) error {
	argv0, err := exec.LookPath(command[0])
	if err != nil {
		return fmt.Errorf("couldn't execute command %q: %w", command, err)
	}

	execFn := l.execFn
	if execFn == nil {
		execFn = execReplace
	}

	err = execFn(argv0, command, l.environSlice(env))
	return fmt.Errorf("couldn't execute command %q: %w", command, err)
}

// environSlice renders the host environment overlaid with env as "KEY=VALUE"
// pairs. Overlay keys win on collision and are appended in sorted order so
// the result is deterministic.
func (l *Launcher) environSlice(env map[string]string) []string {
	environ := l.environ
	if environ == nil {
		environ = os.Environ
	}

	host := environ()
	out := make([]string, 0, len(host)+len(env))
	for _, kv := range host {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := env[key]; overridden {
			continue
		}
		out = append(out, kv)
	}
	for _, key := range slices.Sorted(maps.Keys(env)) {
		out = append(out, key+"="+env[key])
	}

	return out
}
