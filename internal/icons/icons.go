package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder     string
	Video      string
	Play       string
	Pause      string
	Stop       string
	SeekFwd    string
	SeekBack   string
	Volume     string
	VolumeMute string
	Subtitle   string
	Fullscreen string
}

var (
	nerdIcons = Icons{
		Folder:     " ", // nf-fa-folder
		Video:      " ", // nf-fa-film
		Play:       "",  // nf-fa-play
		Pause:      "",  // nf-fa-pause
		Stop:       "",  // nf-fa-stop
		SeekFwd:    "",  // nf-fa-forward
		SeekBack:   "",  // nf-fa-backward
		Volume:     "",  // nf-fa-volume_up
		VolumeMute: "",  // nf-fa-volume_off
		Subtitle:   "󰨖",       // nf-md-subtitles
		Fullscreen: "󰊓",       // nf-md-fullscreen
	}

	unicodeIcons = Icons{
		Folder:     "📁 ",
		Video:      "🎬 ",
		Play:       "▶",
		Pause:      "⏸",
		Stop:       "⏹",
		SeekFwd:    "⏩",
		SeekBack:   "⏪",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Subtitle:   "💬",
		Fullscreen: "⛶",
	}

	noneIcons = Icons{
		Folder:     "/",
		Video:      "",
		Play:       ">",
		Pause:      "||",
		Stop:       "[]",
		SeekFwd:    ">>",
		SeekBack:   "<<",
		Volume:     "vol",
		VolumeMute: "mut",
		Subtitle:   "sub",
		Fullscreen: "[f]",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = unicodeIcons
	}
}

// FormatDir formats a directory name with the appropriate icon.
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatVideo formats a video file name with the appropriate icon.
func FormatVideo(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Video + name
}

func Play() string       { return current.Play }
func Pause() string      { return current.Pause }
func Stop() string       { return current.Stop }
func SeekFwd() string    { return current.SeekFwd }
func SeekBack() string   { return current.SeekBack }
func Volume() string     { return current.Volume }
func VolumeMute() string { return current.VolumeMute }
func Subtitle() string   { return current.Subtitle }
func Fullscreen() string { return current.Fullscreen }
