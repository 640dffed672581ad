package pages

import (
	"testing"

	"fragment-loader/core/fragment"
	"fragment-loader/core/source/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Source), fragment.Config{}, "", zap.NewNop(), nil)

	assert.Equal(t, "pages", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
