package probe

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	FormatName string
	Duration   float64
	Size       int64
	BitRate    int64
}

// VideoStream holds the properties the report prints for the first video stream.
type VideoStream struct {
	Codec  string
	Width  int
	Height int
}

// AudioStream holds the properties the report prints for the first audio stream.
type AudioStream struct {
	Codec    string
	Channels int
	BitRate  int64
}

// Result is the parsed output of a single ffprobe JSON call.
// Video and Audio are the first stream of each type (nil if none).
type Result struct {
	Format FormatInfo
	Video  *VideoStream
	Audio  *AudioStream
}

// Resolution returns "WxH" for the video stream, or "unknown".
func (r *Result) Resolution() string {
	if r.Video == nil || r.Video.Width <= 0 || r.Video.Height <= 0 {
		return "unknown"
	}
	return itoa(r.Video.Width) + "x" + itoa(r.Video.Height)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
