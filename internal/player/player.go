package player

import (
	"errors"
	"io"
	"net"
	"sync"
	"syscall"

	"github.com/fhs/gompd/v2/mpd"
	"github.com/sirupsen/logrus"

	"github.com/olivier-w/smpd/internal/queue"
)

// Session is a long-lived connection to an MPD server. A dropped connection
// is re-established on the next call. Calls are serialized, so a Session
// may be used from several goroutines.
type Session struct {
	network  string
	addr     string
	password string
	log      *logrus.Entry

	mu     sync.Mutex
	client *mpd.Client
	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithPassword authenticates every new connection with the given password.
func WithPassword(password string) Option {
	return func(s *Session) { s.password = password }
}

// WithLogger routes session logs to the given entry.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Session) { s.log = log }
}

// Dial connects to the server at addr. network is "tcp" or "unix".
func Dial(network, addr string, opts ...Option) (*Session, error) {
	s := &Session{
		network: network,
		addr:    addr,
		log:     logrus.WithField("component", "player"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("addr", addr)

	if err := s.connect(); err != nil {
		return nil, err
	}
	s.log.Info("connected")
	return s, nil
}

// Addr returns the address the session dials.
func (s *Session) Addr() string { return s.addr }

func (s *Session) connect() error {
	var (
		c   *mpd.Client
		err error
	)
	if s.password != "" {
		c, err = mpd.DialAuthenticated(s.network, s.addr, s.password)
	} else {
		c, err = mpd.Dial(s.network, s.addr)
	}
	if err != nil {
		return &ConnectionError{Addr: s.addr, Err: err}
	}
	s.client = c
	return nil
}

func (s *Session) drop(cause error) {
	if s.client == nil {
		return
	}
	s.log.WithError(cause).Warn("connection lost")
	_ = s.client.Close()
	s.client = nil
}

// do runs fn against the live client. When the connection turns out to be
// broken it redials once and retries before giving up.
func (s *Session) do(command string, fn func(c *mpd.Client) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return &ConnectionError{Addr: s.addr, Err: net.ErrClosed}
	}

	for attempt := 0; ; attempt++ {
		if s.client == nil {
			if err := s.connect(); err != nil {
				return err
			}
			s.log.Info("reconnected")
		}

		err := fn(s.client)
		if err == nil {
			return nil
		}
		if !isConnError(err) {
			var pe *ProtocolError
			if errors.As(err, &pe) {
				return err
			}
			return &ProtocolError{Command: command, Err: err}
		}

		s.drop(err)
		if attempt > 0 {
			return &ConnectionError{Addr: s.addr, Err: err}
		}
	}
}

func isConnError(err error) bool {
	if errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Queue returns every track in the play queue, in queue order.
func (s *Session) Queue() ([]queue.Track, error) {
	var tracks []queue.Track
	err := s.do("playlistinfo", func(c *mpd.Client) error {
		entries, err := c.PlaylistInfo(-1, -1)
		if err != nil {
			return err
		}
		tracks = make([]queue.Track, 0, len(entries))
		for _, attrs := range entries {
			t, err := trackFromAttrs(attrs)
			if err != nil {
				return err
			}
			tracks = append(tracks, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tracks, nil
}

// Status returns the current playback status.
func (s *Session) Status() (Status, error) {
	var st Status
	err := s.do("status", func(c *mpd.Client) error {
		attrs, err := c.Status()
		if err != nil {
			return err
		}
		st, err = parseStatus(attrs)
		return err
	})
	return st, err
}

// SetPause pauses or resumes playback.
func (s *Session) SetPause(pause bool) error {
	err := s.do("pause", func(c *mpd.Client) error {
		return c.Pause(pause)
	})
	if err == nil {
		s.log.WithField("pause", pause).Info("pause set")
	}
	return err
}

// TogglePause pauses when playing and resumes otherwise. A stopped daemon is
// started from its current song. It returns the phase after the toggle.
func (s *Session) TogglePause() (Phase, error) {
	var next Phase
	err := s.do("pause", func(c *mpd.Client) error {
		attrs, err := c.Status()
		if err != nil {
			return err
		}
		st, err := parseStatus(attrs)
		if err != nil {
			return err
		}
		switch st.Phase {
		case PhasePlaying:
			next = PhasePaused
			return c.Pause(true)
		case PhasePaused:
			next = PhasePlaying
			return c.Pause(false)
		default:
			next = PhasePlaying
			return c.Play(-1)
		}
	})
	if err != nil {
		return PhaseStopped, err
	}
	s.log.WithField("phase", next).Info("playback toggled")
	return next, nil
}

// Ping checks that the daemon still answers.
func (s *Session) Ping() error {
	return s.do("ping", func(c *mpd.Client) error {
		return c.Ping()
	})
}

// Close ends the session. Later calls fail with ErrConnection.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}
