package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mj1618/zommation/internal/model"
)

// ErrNoSnapshots is returned by LatestSnapshot when the folder holds no PNG.
var ErrNoSnapshots = errors.New("no snapshots")

// SnapshotInfo describes a saved snapshot.
type SnapshotInfo struct {
	Name     string    `yaml:"name"     json:"name"`
	Size     int64     `yaml:"size"     json:"size"`
	Modified time.Time `yaml:"modified" json:"modified"`
}

// CropSnapshot copies the part of img under rect, clipped to the image. When
// grey is set the copy is converted to 8-bit greyscale.
func CropSnapshot(img image.Image, rect model.Rect, grey bool) (image.Image, error) {
	if rect.W <= 0 || rect.H <= 0 {
		return nil, fmt.Errorf("%w: snapshot size %dx%d", model.ErrInvalidDimension, rect.W, rect.H)
	}
	right, bottom, ok := rect.Extent()
	if !ok {
		return nil, fmt.Errorf("%w: rect %s overflows", model.ErrOutOfBounds, rect)
	}
	src := image.Rect(rect.X, rect.Y, right, bottom).Add(img.Bounds().Min)
	area := src.Intersect(img.Bounds())
	if area.Empty() {
		return nil, fmt.Errorf("%w: rect %s outside image %dx%d", model.ErrOutOfBounds, rect, img.Bounds().Dx(), img.Bounds().Dy())
	}

	bounds := image.Rect(0, 0, area.Dx(), area.Dy())
	var dst draw.Image
	if grey {
		dst = image.NewGray(bounds)
	} else {
		dst = image.NewRGBA(bounds)
	}
	draw.Draw(dst, bounds, img, area.Min, draw.Src)
	return dst, nil
}

// SaveSnapshot writes img as dir/name.png, creating dir. A name that already
// ends in ".png" is used as is. It returns the written path.
func SaveSnapshot(dir, name string, img image.Image) (string, error) {
	if err := checkSnapshotName(name); err != nil {
		return "", err
	}
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	path := filepath.Join(dir, name)
	if err := SavePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func checkSnapshotName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: snapshot name is empty", model.ErrInvalidParameter)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: snapshot name %q must not contain a path", model.ErrInvalidParameter, name)
	}
	return nil
}

// ListSnapshots returns the PNG files in dir, newest first. A missing dir
// yields an empty list.
func ListSnapshots(dir string) ([]SnapshotInfo, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot dir: %w", err)
	}

	var snaps []SnapshotInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat snapshot %s: %w", e.Name(), err)
		}
		snaps = append(snaps, SnapshotInfo{Name: e.Name(), Size: info.Size(), Modified: info.ModTime()})
	}
	sort.SliceStable(snaps, func(i, j int) bool {
		if snaps[i].Modified.Equal(snaps[j].Modified) {
			return snaps[i].Name < snaps[j].Name
		}
		return snaps[i].Modified.After(snaps[j].Modified)
	})
	return snaps, nil
}

// LatestSnapshot returns the file name of the most recently modified PNG in dir.
func LatestSnapshot(dir string) (string, error) {
	snaps, err := ListSnapshots(dir)
	if err != nil {
		return "", err
	}
	if len(snaps) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoSnapshots, dir)
	}
	return snaps[0].Name, nil
}
