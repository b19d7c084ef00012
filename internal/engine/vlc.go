package engine

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Options configures the VLC adapter.
type Options struct {
	// BinPath is the vlc executable. Empty means look it up in PATH.
	BinPath string
	// ExtraArgs are appended to the engine command line.
	ExtraArgs []string
}

// VLC talks to a vlc process through its remote-control interface,
// bound to a unix socket in a randomized temp dir (TCP on Windows,
// which has no rc-unix support). The engine renders video in its own
// window; this adapter only forwards commands and reads back state.
type VLC struct {
	mu      sync.Mutex
	cmd     *exec.Cmd
	conn    *rcConn
	sockDir string

	media  *MediaInfo
	state  State
	volume int
}

// New starts the engine process and connects to its control socket.
func New(opts Options) (*VLC, error) {
	bin := opts.BinPath
	if bin == "" {
		var err error
		bin, err = exec.LookPath("vlc")
		if err != nil {
			return nil, fmt.Errorf("%w: vlc not found in PATH", ErrUnavailable)
		}
	}

	sockDir, err := os.MkdirTemp("", "reel-vlc-*")
	if err != nil {
		return nil, fmt.Errorf("creating control socket dir: %w", err)
	}

	network, addr, rcArgs, err := controlEndpoint(sockDir)
	if err != nil {
		os.RemoveAll(sockDir)
		return nil, err
	}

	args := append(rcArgs,
		"--quiet",
		"--no-video-title-show",
	)
	args = append(args, opts.ExtraArgs...)

	cmd := exec.Command(bin, args...)
	if err := cmd.Start(); err != nil {
		os.RemoveAll(sockDir)
		return nil, fmt.Errorf("%w: starting engine: %v", ErrUnavailable, err)
	}

	conn, err := dialRC(network, addr)
	if err != nil {
		_ = cmd.Process.Kill()
		os.RemoveAll(sockDir)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &VLC{
		cmd:     cmd,
		conn:    conn,
		sockDir: sockDir,
		state:   Stopped,
		volume:  100,
	}, nil
}

// controlEndpoint picks the RC transport for the current platform.
func controlEndpoint(sockDir string) (network, addr string, args []string, err error) {
	if runtime.GOOS == "windows" {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return "", "", nil, fmt.Errorf("reserving control port: %w", err)
		}
		addr = l.Addr().String()
		l.Close()
		return "tcp", addr, []string{"--intf", "rc", "--rc-host", addr, "--rc-quiet"}, nil
	}
	addr = filepath.Join(sockDir, "rc.sock")
	return "unix", addr, []string{"--intf", "rc", "--rc-unix", addr}, nil
}

// Load opens a media file for playback, replacing any loaded media.
// Engine rejections surface as ErrUnsupportedFormat and leave the
// previously loaded media playing untouched.
func (v *VLC) Load(path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if !IsVideoFile(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	// add switches playback to the new entry on its own, so nothing is
	// cleared up front: a rejected file must not disturb what is
	// already playing. Superseded entries stay in the playlist until
	// Clear drops them.
	lines, err := v.conn.exec("add " + path)
	if err != nil {
		return err
	}
	if hasRCError(lines) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	v.media = &MediaInfo{Path: path, Title: TitleFromPath(path)}
	v.state = Playing
	return v.applyVolumeLocked()
}

func (v *VLC) Play() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.media == nil {
		return ErrNoMedia
	}
	if v.state == Playing {
		return nil
	}
	var err error
	if v.state == Paused {
		// RC pause is a toggle.
		_, err = v.conn.exec("pause")
	} else {
		_, err = v.conn.exec("play")
	}
	if err != nil {
		return err
	}
	v.state = Playing
	return nil
}

func (v *VLC) Pause() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != Playing {
		return nil
	}
	if _, err := v.conn.exec("pause"); err != nil {
		return err
	}
	v.state = Paused
	return nil
}

func (v *VLC) Toggle() error {
	v.mu.Lock()
	state := v.state
	v.mu.Unlock()
	switch state {
	case Playing:
		return v.Pause()
	case Paused:
		return v.Play()
	default:
		return nil
	}
}

// Clear stops playback and releases the loaded media.
func (v *VLC) Clear() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, err := v.conn.exec("stop"); err != nil {
		return err
	}
	if _, err := v.conn.exec("clear"); err != nil {
		return err
	}
	v.media = nil
	v.state = Stopped
	return nil
}

func (v *VLC) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *VLC) MediaInfo() *MediaInfo {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.media == nil {
		return nil
	}
	info := *v.media
	return &info
}

// Position reads the current playback position from the engine.
func (v *VLC) Position() time.Duration {
	if v.State() == Stopped {
		return 0
	}
	sec, ok := v.conn.execInt("get_time")
	if !ok {
		return 0
	}
	return time.Duration(sec) * time.Second
}

// Duration reads the loaded media length from the engine.
func (v *VLC) Duration() time.Duration {
	if v.State() == Stopped {
		return 0
	}
	sec, ok := v.conn.execInt("get_length")
	if !ok {
		return 0
	}
	return time.Duration(sec) * time.Second
}

// SeekTo moves to an absolute position. Range clamping happens above
// this layer; the engine additionally clamps whatever it receives.
func (v *VLC) SeekTo(pos time.Duration) error {
	if v.State() == Stopped {
		return ErrNoMedia
	}
	_, err := v.conn.exec(fmt.Sprintf("seek %d", int(pos.Seconds())))
	return err
}

// SetVolume sets the engine volume from a 0-200 percentage.
// The RC scale is 0-512 with 256 meaning 100%.
func (v *VLC) SetVolume(percent int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.volume = percent
	return v.applyVolumeLocked()
}

func (v *VLC) applyVolumeLocked() error {
	raw := v.volume * 256 / 100
	_, err := v.conn.exec(fmt.Sprintf("volume %d", raw))
	return err
}

// SubtitleTracks lists the subtitle tracks the engine found.
func (v *VLC) SubtitleTracks() ([]SubtitleTrack, error) {
	if v.State() == Stopped {
		return nil, ErrNoMedia
	}
	lines, err := v.conn.exec("strack")
	if err != nil {
		return nil, err
	}
	tracks, _ := parseTracks(lines)
	return tracks, nil
}

func (v *VLC) SetSubtitleTrack(id int) error {
	if v.State() == Stopped {
		return ErrNoMedia
	}
	_, err := v.conn.exec(fmt.Sprintf("strack %d", id))
	return err
}

// SetFullscreen toggles the engine's video window fullscreen state.
func (v *VLC) SetFullscreen(on bool) error {
	arg := "off"
	if on {
		arg = "on"
	}
	_, err := v.conn.exec("fullscreen " + arg)
	return err
}

// Close shuts down the engine process and removes the control socket.
func (v *VLC) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	_, _ = v.conn.exec("quit")
	_ = v.conn.close()

	done := make(chan struct{})
	go func() {
		_ = v.cmd.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		_ = v.cmd.Process.Kill()
		<-done
	}

	return os.RemoveAll(v.sockDir)
}
