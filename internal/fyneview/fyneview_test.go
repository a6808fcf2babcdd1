// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fyneview

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containerbench/benchplot/slideshow"
)

func TestKeyFor(t *testing.T) {
	assert.Equal(t, slideshow.KeyLeft, KeyFor(fyne.KeyLeft))
	assert.Equal(t, slideshow.KeyRight, KeyFor(fyne.KeyRight))
	assert.Equal(t, slideshow.KeyEscape, KeyFor(fyne.KeyEscape))
	assert.Equal(t, slideshow.KeyOther, KeyFor(fyne.KeySpace))
	assert.Equal(t, slideshow.KeyOther, KeyFor(fyne.KeyA))
}

func TestWindowKeys(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w := NewWindow(a)
	s, err := slideshow.New([]string{"dir/a.png", "dir/b.png"}, w)
	require.NoError(t, err)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	s.Decode = func(string) (image.Image, error) { return img, nil }

	var errs []error
	w.Bind(s, func(err error) { errs = append(errs, err) })
	require.NoError(t, s.Start())
	assert.Equal(t, "a.png  (1/2)", w.win.Title())
	assert.Equal(t, "a.png  (1/2)", w.title.Text)
	assert.Equal(t, image.Image(img), w.img.Image)

	press := w.win.Canvas().OnTypedKey()
	press(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, "b.png  (2/2)", w.win.Title())

	press(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, 0, s.Index())

	press(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.True(t, s.Closed())
	assert.Empty(t, errs)
}

func TestWindowLoadFailure(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w := NewWindow(a)
	s, err := slideshow.New([]string{"dir/a.png", "dir/broken.png"}, w)
	require.NoError(t, err)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	s.Decode = func(path string) (image.Image, error) {
		if path == "dir/broken.png" {
			return nil, errors.New("bad image")
		}
		return img, nil
	}

	var errs []error
	w.Bind(s, func(err error) { errs = append(errs, err) })
	require.NoError(t, s.Start())

	press := w.win.Canvas().OnTypedKey()
	press(&fyne.KeyEvent{Name: fyne.KeyRight})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "dir/broken.png")
	assert.True(t, s.Closed())

	// Further keys are ignored once closed.
	press(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.Len(t, errs, 1)
	assert.Equal(t, "a.png  (1/2)", w.win.Title())
}
