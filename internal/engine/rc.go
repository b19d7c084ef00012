package engine

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

// rcConn is a connection to the engine's remote-control interface.
// The protocol is line oriented: one command per line, zero or more
// response lines. Responses carry no terminator, so reads drain until
// the connection goes idle.
type rcConn struct {
	mu   sync.Mutex
	conn net.Conn
	r    *bufio.Reader
}

const (
	rcDialAttempts = 50
	rcDialInterval = 100 * time.Millisecond
	rcReadIdle     = 150 * time.Millisecond
)

// dialRC connects to the RC socket, retrying while the engine starts up.
func dialRC(network, addr string) (*rcConn, error) {
	var conn net.Conn
	var err error
	for range rcDialAttempts {
		conn, err = net.DialTimeout(network, addr, rcDialInterval)
		if err == nil {
			return &rcConn{conn: conn, r: bufio.NewReader(conn)}, nil
		}
		time.Sleep(rcDialInterval)
	}
	return nil, fmt.Errorf("connecting to engine control socket: %w", err)
}

// exec sends one command and returns the response lines.
func (c *rcConn) exec(cmd string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.conn, "%s\n", cmd); err != nil {
		return nil, fmt.Errorf("sending %q: %w", cmd, err)
	}

	var lines []string
	for {
		if err := c.conn.SetReadDeadline(time.Now().Add(rcReadIdle)); err != nil {
			return lines, nil
		}
		line, err := c.r.ReadString('\n')
		if line = cleanRCLine(line); line != "" {
			lines = append(lines, line)
		}
		if err != nil {
			// Idle timeout means the response is complete.
			return lines, nil
		}
	}
}

// execInt sends a command expected to return a single integer.
func (c *rcConn) execInt(cmd string) (int64, bool) {
	lines, err := c.exec(cmd)
	if err != nil {
		return 0, false
	}
	for _, l := range lines {
		if n, err := strconv.ParseInt(l, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func (c *rcConn) close() error {
	return c.conn.Close()
}

// cleanRCLine strips the interactive prompt and surrounding whitespace.
func cleanRCLine(line string) string {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimPrefix(line, "> ")
	return strings.TrimSpace(line)
}

// hasRCError reports whether any response line signals a failure.
func hasRCError(lines []string) bool {
	for _, l := range lines {
		lower := strings.ToLower(l)
		if strings.Contains(lower, "error") || strings.Contains(lower, "unable to open") {
			return true
		}
	}
	return false
}

// parseTrackLine parses one entry of the engine's track listing.
// Entries look like "| -1 - Disable" or "| 2 - Track 1 - [English] *"
// where the trailing star marks the active track.
func parseTrackLine(line string) (track SubtitleTrack, active, ok bool) {
	if !strings.HasPrefix(line, "|") {
		return SubtitleTrack{}, false, false
	}
	body := strings.TrimSpace(strings.TrimPrefix(line, "|"))
	if body == "" {
		return SubtitleTrack{}, false, false
	}
	if strings.HasSuffix(body, "*") {
		active = true
		body = strings.TrimSpace(strings.TrimSuffix(body, "*"))
	}
	id, name, found := strings.Cut(body, " - ")
	if !found {
		return SubtitleTrack{}, false, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return SubtitleTrack{}, false, false
	}
	return SubtitleTrack{ID: n, Name: strings.TrimSpace(name)}, active, true
}

// parseTracks extracts subtitle tracks from an strack response.
func parseTracks(lines []string) (tracks []SubtitleTrack, activeID int) {
	activeID = -1
	for _, l := range lines {
		track, active, ok := parseTrackLine(l)
		if !ok {
			continue
		}
		tracks = append(tracks, track)
		if active {
			activeID = track.ID
		}
	}
	return tracks, activeID
}
