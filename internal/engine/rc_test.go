package engine

import "testing"

func TestCleanRCLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"> status change: ( play state: 3 )\r\n", "status change: ( play state: 3 )"},
		{"1234\n", "1234"},
		{"   \r\n", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanRCLine(tt.in); got != tt.want {
			t.Errorf("cleanRCLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasRCError(t *testing.T) {
	if hasRCError([]string{"status change: ( new input: file://x.mp4 )"}) {
		t.Error("benign status line flagged as error")
	}
	if !hasRCError([]string{"error: unable to open 'x.mp4'"}) {
		t.Error("error line not flagged")
	}
}

func TestParseTrackLine(t *testing.T) {
	tests := []struct {
		line   string
		want   SubtitleTrack
		active bool
		ok     bool
	}{
		{"| -1 - Disable", SubtitleTrack{ID: -1, Name: "Disable"}, false, true},
		{"| 2 - Track 1 - [English] *", SubtitleTrack{ID: 2, Name: "Track 1 - [English]"}, true, true},
		{"+----[ spu-es ]", SubtitleTrack{}, false, false},
		{"| garbage", SubtitleTrack{}, false, false},
	}
	for _, tt := range tests {
		track, active, ok := parseTrackLine(tt.line)
		if ok != tt.ok || active != tt.active || track != tt.want {
			t.Errorf("parseTrackLine(%q) = (%+v, %v, %v), want (%+v, %v, %v)",
				tt.line, track, active, ok, tt.want, tt.active, tt.ok)
		}
	}
}

func TestParseTracks(t *testing.T) {
	lines := []string{
		"+----[ spu-es ]",
		"| -1 - Disable",
		"| 2 - Track 1 - [English]",
		"| 3 - Track 2 - [French] *",
		"+----[ end of spu-es ]",
	}
	tracks, active := parseTracks(lines)
	if len(tracks) != 3 {
		t.Fatalf("got %d tracks, want 3", len(tracks))
	}
	if active != 3 {
		t.Errorf("active track = %d, want 3", active)
	}
	if tracks[0].ID != -1 || tracks[2].Name != "Track 2 - [French]" {
		t.Errorf("unexpected tracks: %+v", tracks)
	}
}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/movies/film.mp4", true},
		{"/movies/film.MKV", true},
		{"/movies/film.webm", true},
		{"/music/song.mp3", false},
		{"/docs/readme.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsVideoFile(tt.path); got != tt.want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTitleFromPath(t *testing.T) {
	if got := TitleFromPath("/movies/The Film (2024).mkv"); got != "The Film (2024)" {
		t.Errorf("TitleFromPath = %q", got)
	}
}
