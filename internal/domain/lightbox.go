package domain

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"
)

// Lightbox browses the image list of one item. The zero value is closed.
type Lightbox struct {
	open   bool
	title  string
	images []string
	index  int
	rng    *rand.Rand
}

// NewLightbox creates a closed lightbox. A nil rng uses a randomly seeded source.
func NewLightbox(rng *rand.Rand) *Lightbox {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Lightbox{rng: rng}
}

// Open shows images starting at the first one. The title is URI-decoded.
func (l *Lightbox) Open(title string, images []string) {
	l.open = true
	l.title = decodeTitle(title)
	l.images = slices.Clone(images)
	l.index = 0
}

// Close hides the lightbox and discards its state
func (l *Lightbox) Close() {
	l.open = false
	l.title = ""
	l.images = nil
	l.index = 0
}

// IsOpen reports whether the lightbox is showing
func (l *Lightbox) IsOpen() bool {
	return l.open
}

// Title returns the decoded item title
func (l *Lightbox) Title() string {
	return l.title
}

// Len returns the number of images
func (l *Lightbox) Len() int {
	return len(l.images)
}

// Index returns the current image index
func (l *Lightbox) Index() int {
	return l.index
}

// Current returns the current image URL, empty when there is none
func (l *Lightbox) Current() string {
	if l.index < 0 || l.index >= len(l.images) {
		return ""
	}
	return l.images[l.index]
}

// Caption renders "<n> / <len> ( <url> )"
func (l *Lightbox) Caption() string {
	if len(l.images) == 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d ( %s )", l.index+1, len(l.images), l.Current())
}

// Next advances one image, wrapping to the first
func (l *Lightbox) Next() {
	if len(l.images) == 0 {
		return
	}
	if l.index < len(l.images)-1 {
		l.index++
	} else {
		l.index = 0
	}
}

// Previous goes back one image, wrapping to the last
func (l *Lightbox) Previous() {
	if len(l.images) == 0 {
		return
	}
	if l.index > 0 {
		l.index--
	} else {
		l.index = len(l.images) - 1
	}
}

// Random jumps to a uniformly chosen image
func (l *Lightbox) Random() {
	if len(l.images) == 0 {
		return
	}
	if l.rng == nil {
		l.index = rand.IntN(len(l.images))
		return
	}
	l.index = l.rng.IntN(len(l.images))
}

// reservedEscapes are the characters whose %XX escapes decodeTitle keeps
const reservedEscapes = ";/?:@&=+$,#"

// decodeTitle decodes percent escapes except those of reserved characters.
// A malformed escape or invalid UTF-8 leaves the title unchanged.
func decodeTitle(title string) string {
	if !strings.Contains(title, "%") {
		return title
	}
	out := make([]byte, 0, len(title))
	for i := 0; i < len(title); i++ {
		if title[i] != '%' {
			out = append(out, title[i])
			continue
		}
		if i+2 >= len(title) {
			return title
		}
		hi, ok1 := unhex(title[i+1])
		lo, ok2 := unhex(title[i+2])
		if !ok1 || !ok2 {
			return title
		}
		b := hi<<4 | lo
		if b < utf8.RuneSelf && strings.IndexByte(reservedEscapes, b) >= 0 {
			out = append(out, title[i:i+3]...)
		} else {
			out = append(out, b)
		}
		i += 2
	}
	if !utf8.Valid(out) {
		return title
	}
	return string(out)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// LightboxNav is a navigation intent for an open lightbox
type LightboxNav int

const (
	NavNext LightboxNav = iota
	NavPrevious
	NavRandom
	NavClose
)

func (n LightboxNav) String() string {
	switch n {
	case NavNext:
		return "next"
	case NavPrevious:
		return "previous"
	case NavRandom:
		return "random"
	case NavClose:
		return "close"
	default:
		return "unknown"
	}
}

// Apply performs nav on l
func (l *Lightbox) Apply(nav LightboxNav) {
	switch nav {
	case NavNext:
		l.Next()
	case NavPrevious:
		l.Previous()
	case NavRandom:
		l.Random()
	case NavClose:
		l.Close()
	}
}
