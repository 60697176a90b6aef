package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thoreinstein/mpm/internal/descriptor"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/event"
	"github.com/thoreinstein/mpm/internal/logging"
	"github.com/thoreinstein/mpm/internal/platform"
)

// Runner executes a command line in a directory and reports its lifecycle
// on its own. The result is informational.
type Runner interface {
	Execute(ctx context.Context, dir, commandLine string) bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithRemover replaces the function used to delete the project root.
func WithRemover(remove func(path string) error) Option {
	return func(m *Manager) {
		m.remove = remove
	}
}

// Manager orchestrates toolchain operations against one project.
type Manager struct {
	bus    *event.Bus
	runner Runner
	cmds   Commands
	remove func(string) error

	project Context
}

// NewManager creates a manager that runs commands through runner and
// reports gate failures on bus. The runner is expected to emit on the same
// bus.
func NewManager(bus *event.Bus, runner Runner, cmds Commands, opts ...Option) *Manager {
	m := &Manager{
		bus:    bus,
		runner: runner,
		cmds:   cmds,
		remove: os.RemoveAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers o for lifecycle events. The returned function removes
// the subscription.
func (m *Manager) Subscribe(o event.Observer) func() {
	return m.bus.Subscribe(o)
}

// Context returns a snapshot of the project context.
func (m *Manager) Context() Context {
	return m.project
}

// State returns the current project state.
func (m *Manager) State() State {
	return m.project.State()
}

// ProjectPath returns the descriptor path, or "" when none was found.
func (m *Manager) ProjectPath() string {
	return m.project.DescriptorPath
}

// SetProjectDirectory selects the project root. An existing file selects
// its directory, an existing directory is used as is, and any other path is
// created. The descriptor and application kind are then re-resolved.
func (m *Manager) SetProjectDirectory(ctx context.Context, path string) {
	logger := logging.FromContext(ctx)

	if path == "" {
		m.bus.Emit(event.Error, "project directory is not set")
		return
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		m.bus.Emit(event.Error, fmt.Sprintf("resolving project directory %s: %v", path, err))
		return
	}

	root := abs
	info, err := os.Stat(abs)
	switch {
	case err == nil && !info.IsDir():
		root = filepath.Dir(abs)
	case err == nil:
	default:
		logger.Debug("creating project directory", "path", abs)
		if err := os.MkdirAll(abs, 0o755); err != nil {
			m.bus.Emit(event.Error, fmt.Sprintf("creating project directory %s: %v", abs, err))
			return
		}
	}

	m.project = Context{Root: root}
	m.resolve(ctx)

	logger.Debug("project directory set",
		"root", m.project.Root,
		"descriptor", m.project.DescriptorPath,
		"state", m.State())
}

// resolve re-reads the descriptor path and application kind for the
// current root.
func (m *Manager) resolve(ctx context.Context) {
	logger := logging.FromContext(ctx)

	m.project.DescriptorPath = ""
	m.project.Application = false

	if !m.ensureProjectDirectoryIsSet() {
		return
	}

	path, err := descriptor.Find(m.project.Root)
	if err != nil {
		if !errors.Is(err, errors.ErrNotFound) {
			logger.Warn("locating project descriptor", "root", m.project.Root, "error", err)
		}
		return
	}
	m.project.DescriptorPath = path

	d, err := descriptor.Load(path)
	if err != nil {
		logger.Warn("loading project descriptor", "path", path, "error", err)
		return
	}
	m.project.Application = d.IsApplication()
}

// ensureProjectDirectoryIsSet reports a missing root as an error event.
func (m *Manager) ensureProjectDirectoryIsSet() bool {
	if m.project.Root == "" {
		m.bus.Emit(event.Error, "project directory is not set")
		return false
	}
	if !dirExists(m.project.Root) {
		m.bus.Emit(event.Error, fmt.Sprintf("project directory %s does not exist", m.project.Root))
		return false
	}
	return true
}

// ready is the quiet gate shared by every operation except Create.
func (m *Manager) ready(ctx context.Context, op string) bool {
	if state := m.State(); state != Valid {
		logging.FromContext(ctx).Debug("operation skipped", "op", op, "state", state)
		return false
	}
	return true
}

// Create scaffolds a new project in the root and re-resolves the context.
func (m *Manager) Create(ctx context.Context) {
	if !m.ensureProjectDirectoryIsSet() {
		return
	}

	ok := m.runner.Execute(ctx, m.project.Root, m.cmds.Scaffold())
	m.resolve(ctx)

	logging.FromContext(ctx).Info("create finished",
		"success", ok,
		"descriptor", m.project.DescriptorPath,
		"state", m.State())
}

// Build compiles the project.
func (m *Manager) Build(ctx context.Context) {
	if !m.ready(ctx, "build") {
		return
	}
	m.runner.Execute(ctx, m.project.Root, m.cmds.Build())
}

// Restore restores the project's dependencies.
func (m *Manager) Restore(ctx context.Context) {
	if !m.ready(ctx, "restore") {
		return
	}
	m.runner.Execute(ctx, m.project.Root, m.cmds.Restore())
}

// Run launches the app for the target framework identifier. Targets without
// a launch command do nothing.
func (m *Manager) Run(ctx context.Context, target string) {
	if !m.ready(ctx, "run") {
		return
	}

	logger := logging.FromContext(ctx).With("target", target)

	commandLine, ok := m.cmds.Run(target)
	if !ok {
		if ClassifyRunTarget(target) == RunApple {
			logger.Info("no launch command for Apple targets")
		} else {
			logger.Debug("unsupported run target")
		}
		return
	}

	m.runner.Execute(ctx, m.project.Root, commandLine)
}

// Delete cleans the project and removes its root directory. A second
// removal is attempted if the first leaves the directory behind. The
// context is cleared only once the directory is gone.
func (m *Manager) Delete(ctx context.Context) {
	if !m.ready(ctx, "delete") {
		return
	}

	logger := logging.FromContext(ctx)
	root := m.project.Root

	m.runner.Execute(ctx, root, m.cmds.Clean())

	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		if err := m.remove(root); err != nil {
			logger.Warn("removing project directory", "root", root, "attempt", attempt, "error", err)
			lastErr = err
		}
		if !pathExists(root) {
			logger.Info("project deleted", "root", root, "attempts", attempt)
			m.project = Context{}
			return
		}
	}

	if lastErr == nil {
		lastErr = errors.New("directory still present")
	}
	m.bus.Emit(event.Error, fmt.Sprintf("deleting project directory %s: %v", root, lastErr))
}

// TargetPlatforms reads the platforms declared by the descriptor. It is
// recomputed on every call.
func (m *Manager) TargetPlatforms(ctx context.Context) platform.Map {
	platforms := platform.Map{}
	if !m.ready(ctx, "platforms") {
		return platforms
	}

	logger := logging.FromContext(ctx)

	path, err := descriptor.Find(m.project.Root)
	if err != nil {
		logger.Debug("no project descriptor", "root", m.project.Root, "error", err)
		return platforms
	}

	d, err := descriptor.Load(path)
	if err != nil {
		logger.Warn("loading project descriptor", "path", path, "error", err)
		return platforms
	}

	return d.Platforms()
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return !os.IsNotExist(err)
}
