package platform

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromName_IsStableAndInRange(t *testing.T) {
	port := portFromName("Pomodoro")

	assert.Equal(t, port, portFromName("Pomodoro"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestAcquireSingleInstance_SecondLaunchActivatesFirst(t *testing.T) {
	appName := "PomodoroTest-" + t.Name()
	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	defer guard.Release()

	activated := make(chan struct{}, 1)
	guard.OnActivate(func() { activated <- struct{}{} })

	second, err := AcquireSingleInstance(appName)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatalf("running instance was not activated")
	}
}

func TestInstanceGuard_ReleaseAllowsReacquire(t *testing.T) {
	appName := "PomodoroTest-" + t.Name()
	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	assert.NotEmpty(t, again.Address())
	assert.NoError(t, again.Release())
}

func TestNilGuardIsSafe(t *testing.T) {
	var guard *InstanceGuard

	guard.OnActivate(func() {})
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

func TestGetConfigDir_UsesXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir, err := NewService().GetConfigDir()

	require.NoError(t, err)
	assert.Equal(t, dir, configDir)
}
