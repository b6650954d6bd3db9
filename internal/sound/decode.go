package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var errUnsupported = errors.New("unsupported audio file type")

// decodeFile picks a decoder from the file extension.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", errUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return streamer, format, nil
}

// loadSample decodes a whole file into memory at the speaker's rate.
func loadSample(path string, sr beep.SampleRate) (*beep.Buffer, error) {
	streamer, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sr {
		src = beep.Resample(4, format.SampleRate, sr, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: format.NumChannels, Precision: format.Precision})
	buf.Append(src)
	return buf, nil
}
