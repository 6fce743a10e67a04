package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }

func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &fakeFeature{name: "library", enabled: true}
	off := &fakeFeature{name: "mirror", enabled: false}

	mgr := NewManager(nil)
	mgr.Register(on)
	mgr.Register(off)

	assert.NoError(t, mgr.LoadAll(fiber.New()))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Len(t, mgr.Features(), 2)
}

func TestManager_LoadAll_Error(t *testing.T) {
	broken := &fakeFeature{name: "backup", enabled: true, err: errors.New("no bucket")}
	after := &fakeFeature{name: "after", enabled: true}

	mgr := NewManager(nil)
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "load feature backup")
	assert.False(t, after.loaded)
}
