package term

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// Session is a raw-mode guard for one terminal descriptor. Restore
// puts back the mode that was in effect when the session began; a
// signal handler acts as a last-resort safety net so an interrupted
// process does not leave the terminal raw.
type Session struct {
	term    *Terminal
	restore sync.Once
	release sync.Once
	sigs    chan os.Signal
	done    chan struct{}
}

// EnterRaw captures f's attributes and switches it to raw mode. Only
// one session may be active per descriptor at a time.
func EnterRaw(f *os.File) (*Session, error) {
	t, err := NewTerminal(f)
	if err != nil {
		return nil, err
	}
	if err := t.SetRaw(true); err != nil {
		return nil, err
	}
	s := &Session{
		term: t,
		sigs: make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(s.sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go s.watch()
	return s, nil
}

// Restore returns the terminal to its original mode and releases the
// safety net. Safe to call more than once; only the first call does
// anything. A failing restore is logged, not returned: there is
// nothing a caller can do about it at that point.
func (s *Session) Restore() {
	s.release.Do(func() {
		signal.Stop(s.sigs)
		close(s.done)
	})
	s.restoreMode()
}

func (s *Session) restoreMode() {
	s.restore.Do(func() {
		if err := s.term.Restore(); err != nil {
			log.Printf("term: restore terminal mode: %v", err)
		}
	})
}

// watch restores the terminal when a fatal signal arrives before the
// session was released, then re-raises the signal with its default
// disposition so the process still dies from it.
func (s *Session) watch() {
	select {
	case sig := <-s.sigs:
		s.restoreMode()
		signal.Reset(sig)
		if ss, ok := sig.(syscall.Signal); ok {
			unix.Kill(unix.Getpid(), ss)
		}
	case <-s.done:
	}
}
