package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNoFrames is returned when saving or playing an empty replay
var ErrNoFrames = errors.New("replay has no frames")

// MsgpackExt selects the binary encoding
const MsgpackExt = ".msgpack"

func isMsgpack(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), MsgpackExt)
}

// Save writes replay data to a file, choosing the encoding by extension
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := Encode(file, data, isMsgpack(filename)); err != nil {
		return err
	}
	return file.Close()
}

// Load reads replay data from a file, choosing the encoding by extension
func Load(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, isMsgpack(filename))
}

// Encode writes replay data as msgpack or indented JSON
func Encode(w io.Writer, data ReplayData, binary bool) error {
	if binary {
		if err := msgpack.NewEncoder(w).Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
		return nil
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads replay data written by Encode
func Decode(r io.Reader, binary bool) (*ReplayData, error) {
	var data ReplayData
	var err error
	if binary {
		err = msgpack.NewDecoder(r).Decode(&data)
	} else {
		err = json.NewDecoder(r).Decode(&data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}
