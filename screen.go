package pane

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Size is a terminal dimension pair.
type Size struct {
	Width  int
	Height int
}

// Screen owns the terminal: raw mode, the alternate buffer, resize
// signals, and flushing the cell buffer as ANSI output. Drawing
// happens into the back buffer; Flush diffs it against what is on
// screen and emits only changed runs.
type Screen struct {
	front *Buffer
	back  *Buffer
	out   io.Writer
	fd    int

	width  int
	height int

	prevState *term.State
	resizeCh  chan Size
	sigCh     chan os.Signal

	mu  sync.Mutex
	buf bytes.Buffer
}

// NewScreen creates a screen writing to out (os.Stdout when nil).
func NewScreen(out io.Writer) *Screen {
	if out == nil {
		out = os.Stdout
	}
	fd := int(os.Stdout.Fd())
	width, height, err := term.GetSize(fd)
	if err != nil {
		width, height = 80, 24
	}
	return &Screen{
		front:    NewBuffer(width, height),
		back:     NewBuffer(width, height),
		out:      out,
		fd:       fd,
		width:    width,
		height:   height,
		resizeCh: make(chan Size, 1),
		sigCh:    make(chan os.Signal, 1),
	}
}

// Back returns the back buffer for drawing.
func (s *Screen) Back() *Buffer { return s.back }

// Size returns the current terminal dimensions.
func (s *Screen) Size() Size { return Size{Width: s.width, Height: s.height} }

// ResizeChan delivers terminal size changes.
func (s *Screen) ResizeChan() <-chan Size { return s.resizeCh }

// Enter switches the terminal to raw mode and the alternate buffer
// and starts resize tracking.
func (s *Screen) Enter() error {
	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.prevState = state

	signal.Notify(s.sigCh, unix.SIGWINCH)
	go s.watchResize(Size{Width: s.width, Height: s.height})

	io.WriteString(s.out, "\x1b[?1049h\x1b[2J\x1b[H\x1b[?25l")
	return nil
}

// Leave restores the terminal.
func (s *Screen) Leave() error {
	io.WriteString(s.out, "\x1b[?25h\x1b[?1049l")
	signal.Stop(s.sigCh)
	if s.prevState != nil {
		if err := term.Restore(s.fd, s.prevState); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
	}
	return nil
}

// watchResize only measures the terminal and reports sizes; buffer
// mutation happens in Resize, on the goroutine that renders, so a
// signal arriving mid-render cannot touch the cells under it.
func (s *Screen) watchResize(last Size) {
	for range s.sigCh {
		width, height, err := term.GetSize(s.fd)
		if err != nil {
			continue
		}
		size := Size{Width: width, Height: height}
		if size == last {
			continue
		}
		last = size

		// drop any stale pending size, then send; with the buffer
		// just drained and a single sender this cannot block
		select {
		case <-s.resizeCh:
		default:
		}
		s.resizeCh <- size
	}
}

// Resize adopts a new terminal size: both buffers are resized and
// cleared and the terminal wiped for a full repaint. Must be called
// from the goroutine that draws and flushes.
func (s *Screen) Resize(size Size) {
	if size.Width == s.width && size.Height == s.height {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = size.Width, size.Height
	s.front.Resize(size.Width, size.Height)
	s.back.Resize(size.Width, size.Height)
	s.front.Clear()
	s.back.Clear()
	io.WriteString(s.out, "\x1b[2J")
}

// Flush writes back-buffer changes to the terminal. Adjacent changed
// cells sharing a style are emitted as one lipgloss-styled run.
func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	for y := 0; y < s.height; y++ {
		s.flushRow(y, false)
	}
	if s.buf.Len() > 0 {
		s.out.Write(s.buf.Bytes())
	}
}

// FlushFull redraws every cell, ignoring the front buffer.
func (s *Screen) FlushFull() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	s.buf.WriteString("\x1b[2J")
	for y := 0; y < s.height; y++ {
		s.flushRow(y, true)
	}
	s.out.Write(s.buf.Bytes())
}

func (s *Screen) flushRow(y int, force bool) {
	x := 0
	for x < s.width {
		cell := s.back.Get(x, y)
		if cell.Rune == 0 || (!force && cell == s.front.Get(x, y)) {
			s.front.Set(x, y, cell)
			x++
			continue
		}

		// collect a run of changed cells with one style
		runStart := x
		var run bytes.Buffer
		for x < s.width {
			c := s.back.Get(x, y)
			if c.Rune == 0 {
				// shadow of a wide rune: part of the run
				s.front.Set(x, y, c)
				x++
				continue
			}
			if !c.Style.Equal(cell.Style) || (!force && c == s.front.Get(x, y)) {
				break
			}
			run.WriteRune(c.Rune)
			s.front.Set(x, y, c)
			x++
		}

		fmt.Fprintf(&s.buf, "\x1b[%d;%dH", y+1, runStart+1)
		s.buf.WriteString(cell.Style.lip().Render(run.String()))
	}
}
