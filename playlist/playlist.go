// Package playlist resolves directories of audio files into ordered track lists.
//
// A playlist library is a root directory holding one subdirectory per playlist; the
// playable files of a playlist are the files directly inside its subdirectory whose
// extension matches the configured suffix.
package playlist

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/spindle-cli/spindle/filesystem"
	"github.com/spindle-cli/spindle/key"
	"github.com/spindle-cli/spindle/util"
)

// Track is a single playable file inside a playlist directory.
type Track struct {
	Path string
}

// Name returns the track's filename without its extension, for display.
func (t Track) Name() string {
	return util.FileStem(t.Path)
}

func (t Track) String() string {
	return t.Name()
}

// extension returns the configured playable-file suffix, including the leading dot.
func extension() string {
	ext := viper.GetString(key.PlayerExtension)
	if ext == "" {
		ext = ".mp3"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Scan collects the playable files directly inside dir, sorted lexicographically by
// filename. It fails when dir is not a readable directory or holds no playable files,
// so callers never end up with an empty track list.
func Scan(dir string) ([]Track, error) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read playlist directory %s: %w", dir, err)
	}

	ext := extension()
	var tracks []Track
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			tracks = append(tracks, Track{Path: filepath.Join(dir, entry.Name())})
		}
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", ext, dir)
	}

	slices.SortFunc(tracks, func(a, b Track) int {
		return strings.Compare(filepath.Base(a.Path), filepath.Base(b.Path))
	})

	return tracks, nil
}

// List returns the sorted names of the playlist subdirectories under root.
// Access errors yield an empty list rather than an error; a missing or unreadable
// library is presented the same as an empty one.
func List(root string) []string {
	names, err := filesystem.Subdirectories(root)
	if err != nil {
		return nil
	}

	slices.Sort(names)
	return names
}

// Load validates that name resolves to a playlist subdirectory of root and returns its
// track list. On any failure the caller's prior state is left untouched: Load either
// returns a complete non-empty track list or an error.
func Load(root, name string) ([]Track, error) {
	dir := filepath.Join(root, name)

	isDir, err := filesystem.API().IsDir(dir)
	if err != nil || !isDir {
		return nil, fmt.Errorf("no playlist named \"%s\" under %s", name, root)
	}

	return Scan(dir)
}

// Suggest proposes the closest existing playlist name to a query that failed to resolve.
func Suggest(root, name string) mo.Option[string] {
	matches := fuzzy.RankFindNormalizedFold(name, List(root))
	if len(matches) == 0 {
		return mo.None[string]()
	}

	slices.SortFunc(matches, func(a, b fuzzy.Rank) int {
		return a.Distance - b.Distance
	})
	return mo.Some(matches[0].Target)
}
