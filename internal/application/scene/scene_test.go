package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/finnshooter/internal/application/scene"
	"github.com/younwookim/finnshooter/internal/application/scene/scenetest"
	"github.com/younwookim/finnshooter/internal/application/state"
)

func TestTarget_ResolveSwitchBuildsFreshScene(t *testing.T) {
	var built []*scenetest.Stub
	sw := &scenetest.Switcher{}
	factory := scenetest.Factory(&built)

	scene.SwitchTo(state.StatePlaying).Resolve(sw, factory, nil)
	scene.SwitchTo(state.StatePlaying).Resolve(sw, factory, nil)

	require.Len(t, sw.Scenes, 2)
	require.Len(t, built, 2)
	assert.Equal(t, state.StatePlaying, sw.Scenes[0].Kind())
	assert.NotSame(t, sw.Scenes[0], sw.Scenes[1])
	assert.Nil(t, built[0].Caller)
}

func TestTarget_ResolveResumeReturnsCallerInstance(t *testing.T) {
	var built []*scenetest.Stub
	sw := &scenetest.Switcher{}
	caller := &scenetest.Stub{State: state.StatePlaying}

	scene.Resume().Resolve(sw, scenetest.Factory(&built), caller)

	require.Len(t, sw.Scenes, 1)
	assert.Same(t, caller, sw.Scenes[0])
	assert.Empty(t, built)
}

func TestTarget_ResolveResumeWithoutCaller(t *testing.T) {
	var built []*scenetest.Stub
	sw := &scenetest.Switcher{}

	scene.Resume().Resolve(sw, scenetest.Factory(&built), nil)

	assert.Empty(t, sw.Scenes)
	assert.Zero(t, sw.Quits)
}

func TestTarget_ResolveQuit(t *testing.T) {
	var built []*scenetest.Stub
	sw := &scenetest.Switcher{}

	scene.Quit().Resolve(sw, scenetest.Factory(&built), nil)

	assert.Equal(t, 1, sw.Quits)
	assert.Empty(t, sw.Scenes)
}
