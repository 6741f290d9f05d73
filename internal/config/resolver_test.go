package config

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newResolverLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolver_DefaultsToProduction(t *testing.T) {
	cfg := &Config{StateDir: t.TempDir()}
	r := NewResolver(cfg, newResolverLogger())
	require.Equal(t, Production, r.Current())
}

func TestResolver_ConfigValueWins(t *testing.T) {
	dir := t.TempDir()

	// Persist staging, then configure development explicitly.
	r := NewResolver(&Config{StateDir: dir}, newResolverLogger())
	r.SwitchTo(Staging)

	r = NewResolver(&Config{StateDir: dir, Environment: "development"}, newResolverLogger())
	require.Equal(t, Development, r.Current())
}

func TestResolver_SelectionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	r := NewResolver(&Config{StateDir: dir}, newResolverLogger())
	r.SwitchTo(Staging)
	require.Equal(t, Staging, r.Current())

	restarted := NewResolver(&Config{StateDir: dir}, newResolverLogger())
	require.Equal(t, Staging, restarted.Current())
}

func TestResolver_ResetRevertsToProduction(t *testing.T) {
	dir := t.TempDir()

	r := NewResolver(&Config{StateDir: dir}, newResolverLogger())
	r.SwitchTo(Development)
	r.Reset()
	require.Equal(t, Production, r.Current())

	restarted := NewResolver(&Config{StateDir: dir}, newResolverLogger())
	require.Equal(t, Production, restarted.Current())
}

func TestResolver_NotifiesSubscribers(t *testing.T) {
	r := NewResolver(&Config{StateDir: t.TempDir()}, newResolverLogger())

	var seen []Environment
	r.Subscribe(func(env Environment) { seen = append(seen, env) })

	r.SwitchTo(Staging)
	r.SwitchTo(Development)
	r.Reset()

	require.Equal(t, []Environment{Staging, Development, Production}, seen)
}

func TestResolver_IgnoresUnknownEnvironment(t *testing.T) {
	r := NewResolver(&Config{StateDir: t.TempDir()}, newResolverLogger())
	r.SwitchTo(Environment("qa"))
	require.Equal(t, Production, r.Current())
}

func TestResolver_SettingsFollowCurrent(t *testing.T) {
	r := NewResolver(&Config{StateDir: t.TempDir()}, newResolverLogger())
	require.Equal(t, Production.Settings(), r.Settings())

	r.SwitchTo(Development)
	require.Equal(t, Development.Settings(), r.Settings())
}
