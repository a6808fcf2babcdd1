// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slideshow steps through a list of images one at a time.
//
// A Slideshow holds the current position in the list and reacts to
// key presses: KeyRight and KeyLeft move forward and back, wrapping
// at either end, and KeyEscape closes it. Drawing is delegated to a
// Display, so the same state machine drives any UI toolkit.
package slideshow

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// A Key is a key press the slideshow reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEscape:
		return "escape"
	}
	return "other"
}

// A Display shows slides.
type Display interface {
	// Show replaces whatever is displayed with img and sets the
	// display title.
	Show(img image.Image, title string)

	// Close terminates the display.
	Close()
}

// ErrNoImages is returned by New for an empty image list.
var ErrNoImages = errors.New("no images to show")

// A Slideshow is the navigation state over an image list.
// Its methods must be called from one goroutine at a time.
type Slideshow struct {
	files   []string
	index   int
	closed  bool
	display Display

	// Decode loads an image. It defaults to LoadImage.
	Decode func(path string) (image.Image, error)
}

// New returns a Slideshow over files positioned at the first image.
func New(files []string, d Display) (*Slideshow, error) {
	if len(files) == 0 {
		return nil, ErrNoImages
	}
	return &Slideshow{
		files:   append([]string(nil), files...),
		display: d,
		Decode:  LoadImage,
	}, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// Start draws the first image.
func (s *Slideshow) Start() error {
	return s.show()
}

// HandleKey applies one key press. Keys pressed after the slideshow
// is closed are ignored.
func (s *Slideshow) HandleKey(k Key) error {
	if s.closed {
		return nil
	}
	n := len(s.files)
	switch k {
	case KeyRight:
		s.index = (s.index + 1) % n
	case KeyLeft:
		s.index = (s.index - 1 + n) % n
	case KeyEscape:
		s.close()
		return nil
	default:
		return nil
	}
	return s.show()
}

// show draws the current image. If it cannot be loaded the display is
// closed and the error returned.
func (s *Slideshow) show() error {
	path := s.files[s.index]
	img, err := s.Decode(path)
	if err != nil {
		s.close()
		return errors.Wrapf(err, "loading image %s", path)
	}
	s.display.Show(img, s.Title())
	return nil
}

func (s *Slideshow) close() {
	s.closed = true
	s.display.Close()
}

// Index returns the position of the current image.
func (s *Slideshow) Index() int { return s.index }

// Len returns the number of images.
func (s *Slideshow) Len() int { return len(s.files) }

// Current returns the path of the current image.
func (s *Slideshow) Current() string { return s.files[s.index] }

// Closed reports whether the slideshow has been closed.
func (s *Slideshow) Closed() bool { return s.closed }

// Title returns the current file name and its 1-based position, for
// example "push_back.png  (2/7)".
func (s *Slideshow) Title() string {
	return fmt.Sprintf("%s  (%d/%d)", filepath.Base(s.files[s.index]), s.index+1, len(s.files))
}
