// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fyneview shows a slideshow in a fyne window.
package fyneview

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/containerbench/benchplot/slideshow"
)

const appID = "com.containerbench.benchplot"

// A Window is a slideshow.Display backed by a fyne window.
type Window struct {
	win   fyne.Window
	img   *canvas.Image
	title *widget.Label
}

// NewWindow creates the slideshow window in a. It is not shown until
// the caller shows it.
func NewWindow(a fyne.App) *Window {
	w := &Window{
		win:   a.NewWindow("benchplot"),
		img:   canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
		title: widget.NewLabel(""),
	}
	w.img.FillMode = canvas.ImageFillContain
	w.title.Alignment = fyne.TextAlignCenter
	w.title.TextStyle = fyne.TextStyle{Bold: true}

	w.win.SetContent(container.NewBorder(w.title, nil, nil, nil, w.img))
	w.win.Resize(fyne.NewSize(1200, 700))
	w.win.SetMaster()
	return w
}

// Show implements slideshow.Display.
func (w *Window) Show(img image.Image, title string) {
	w.img.Image = img
	w.img.Refresh()
	w.title.SetText(title)
	w.win.SetTitle(title)
}

// Close implements slideshow.Display.
func (w *Window) Close() {
	w.win.Close()
}

// Bind routes key presses in w to s. Errors from s are passed to
// onErr.
func (w *Window) Bind(s *slideshow.Slideshow, onErr func(error)) {
	w.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if err := s.HandleKey(KeyFor(ev.Name)); err != nil {
			onErr(err)
		}
	})
}

// KeyFor maps a fyne key to a slideshow key.
func KeyFor(name fyne.KeyName) slideshow.Key {
	switch name {
	case fyne.KeyLeft:
		return slideshow.KeyLeft
	case fyne.KeyRight:
		return slideshow.KeyRight
	case fyne.KeyEscape:
		return slideshow.KeyEscape
	}
	return slideshow.KeyOther
}

// Run shows files in a new window and blocks until it is closed. An
// image that fails to load closes the window and its error is
// returned.
func Run(files []string) error {
	a := app.NewWithID(appID)
	w := NewWindow(a)
	s, err := slideshow.New(files, w)
	if err != nil {
		return err
	}

	var loadErr error
	w.Bind(s, func(err error) {
		if loadErr == nil {
			loadErr = err
		}
	})
	if err := s.Start(); err != nil {
		return err
	}
	w.win.ShowAndRun()
	return loadErr
}
