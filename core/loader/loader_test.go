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
	loads   int
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loads++
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("Skips disabled", func(t *testing.T) {
		on := &fakeFeature{name: "pages", enabled: true}
		off := &fakeFeature{name: "legacy"}

		mgr := NewManager()
		mgr.Register(on)
		mgr.Register(off)

		loaded, err := mgr.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.Equal(t, []string{"pages"}, loaded)
		assert.Equal(t, 1, on.loads)
		assert.Equal(t, 0, off.loads)
	})

	t.Run("Stops on error", func(t *testing.T) {
		broken := &fakeFeature{name: "broken", enabled: true, err: errors.New("boom")}
		after := &fakeFeature{name: "after", enabled: true}

		mgr := NewManager()
		mgr.Register(broken)
		mgr.Register(after)

		_, err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "failed to load feature broken")
		assert.Equal(t, 0, after.loads)
	})
}
