package fragment_test

import (
	"context"
	"testing"

	"fragment-loader/core/document"
	"fragment-loader/core/fragment"
	"fragment-loader/core/source/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const declarativePage = `<!DOCTYPE html><html><head></head><body>` +
	`<div id="h" data-component="/parts/header.html"></div>` +
	`<main id="m"><div id="f" data-component="/parts/footer.html" data-position="afterend"></div></main>` +
	`<div id="e" data-component=""></div>` +
	`<div id="x" data-component="/parts/bad-pos.html" data-position="sideways"></div>` +
	`</body></html>`

func TestBootstrap(t *testing.T) {
	src := new(mocks.Source)
	src.On("Fetch", mock.Anything, "/parts/header.html").Return("<header>A</header><nav>B</nav>", nil)
	src.On("Fetch", mock.Anything, "/parts/footer.html").Return("<footer>F</footer>", nil)
	src.On("Fetch", mock.Anything, "/parts/bad-pos.html").Return("<p>X</p>", nil)

	l, logs := newLoader(t, declarativePage, src)
	issued := fragment.Bootstrap(context.Background(), l)

	assert.Equal(t, 3, issued)
	assert.Equal(t, "<header>A</header><nav>B</nav>", inner(t, l, "#h"))
	assert.Equal(t, `<div id="f" data-component="/parts/footer.html" data-position="afterend"></div><footer>F</footer>`, inner(t, l, "#m"))
	assert.Empty(t, inner(t, l, "#e"))
	assert.Equal(t, "<p>X</p>", inner(t, l, "#x"))
	assert.Equal(t, 1, logs.FilterMessage("Invalid component position, using beforeend").Len())
	src.AssertNumberOfCalls(t, "Fetch", 3)
}

func TestBootstrap_DuplicateDeclarations(t *testing.T) {
	const page = `<body><div id="one" data-component="/parts/a.html"></div><div id="two" data-component="/parts/a.html"></div></body>`

	src := new(mocks.Source)
	src.On("Fetch", mock.Anything, "/parts/a.html").Return("<p>a</p>", nil)

	l, _ := newLoader(t, page, src)
	fragment.Bootstrap(context.Background(), l)

	// Both declarations resolve to the first element; the loaded-set stops the second
	assert.Equal(t, "<p>a</p>", inner(t, l, "#one"))
	assert.Empty(t, inner(t, l, "#two"))
	src.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestDeclarations(t *testing.T) {
	l, _ := newLoader(t, `<body><section data-component='/parts/"q".html' data-position="afterbegin"></section></body>`, new(mocks.Source))

	requests := fragment.Declarations(l)
	if assert.Len(t, requests, 1) {
		assert.Equal(t, `/parts/"q".html`, requests[0].Ref)
		assert.Equal(t, `[data-component="/parts/\"q\".html"]`, requests[0].Target)
		assert.Equal(t, document.AfterBegin, requests[0].Position)

		n, err := l.Document().Query(requests[0].Target)
		assert.NoError(t, err)
		assert.NotNil(t, n)
	}
}
